package models

// Destination categories
const (
	CategoryAttraction   = "ATTRACTION"
	CategoryRestaurant   = "RESTAURANT"
	CategoryCafe         = "CAFE"
	CategoryNature       = "NATURE"
	CategoryAdventure    = "ADVENTURE"
	CategoryEvent        = "EVENT"
	CategoryShopping     = "SHOPPING"
	CategoryHotel        = "HOTEL"
	CategoryTransportHub = "TRANSPORT_HUB"
)

// Destination represents a visitable place in the catalog
type Destination struct {
	ID              int64    `json:"id" db:"id"`
	Slug            string   `json:"slug" db:"slug"`
	RegionSlug      string   `json:"regionSlug" db:"region_slug"`
	Category        string   `json:"category" db:"category"`
	Tags            []string `json:"tags" db:"tags"`
	AvgDurationMins int      `json:"avgDurationMins" db:"avg_duration_mins"`
	PriceLevel      int      `json:"priceLevel" db:"price_level"`
	NameEn          string   `json:"nameEn" db:"name_en"`
	NameAr          string   `json:"nameAr" db:"name_ar"`
	DescEn          string   `json:"descEn,omitempty" db:"desc_en"`
	DescAr          string   `json:"descAr,omitempty" db:"desc_ar"`
	Lat             float64  `json:"lat" db:"lat"`
	Lng             float64  `json:"lng" db:"lng"`
	Rating          float64  `json:"rating,omitempty" db:"rating"`
	ReviewCount     int      `json:"reviewCount,omitempty" db:"review_count"`
	GoogleMapsURL   string   `json:"googleMapsUrl,omitempty" db:"google_maps_url"`
	TripAdvisorURL  string   `json:"tripAdvisorUrl,omitempty" db:"trip_advisor_url"`
	OfficialURL     string   `json:"officialUrl,omitempty" db:"official_url"`
}

// DestinationFilter narrows catalog reads. Zero-value fields are ignored.
type DestinationFilter struct {
	RegionSlug   string
	Category     string
	TagsAny      []string
	CategoriesIn []string
}
