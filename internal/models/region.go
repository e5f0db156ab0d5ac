package models

// Region represents a geographic grouping of destinations (city or province)
type Region struct {
	Slug   string  `json:"slug" db:"slug"`
	NameEn string  `json:"nameEn" db:"name_en"`
	NameAr string  `json:"nameAr" db:"name_ar"`
	DescEn string  `json:"descEn,omitempty" db:"desc_en"`
	DescAr string  `json:"descAr,omitempty" db:"desc_ar"`
	Lat    float64 `json:"lat" db:"lat"`
	Lng    float64 `json:"lng" db:"lng"`

	// Populated on detail reads only
	Destinations []Destination `json:"destinations,omitempty" db:"-"`
}
