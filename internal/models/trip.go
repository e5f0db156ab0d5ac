package models

import "time"

// Trip pace profiles
const (
	PaceRelaxed  = "RELAXED"
	PaceModerate = "MODERATE"
	PacePacked   = "PACKED"
)

// Accommodation tiers
const (
	TierBudget   = "BUDGET"
	TierMidRange = "MID_RANGE"
	TierLuxury   = "LUXURY"
)

// Transport preferences
const (
	TransportPublic        = "PUBLIC"
	TransportRentalCar     = "RENTAL_CAR"
	TransportPrivateDriver = "PRIVATE_DRIVER"
	TransportMix           = "MIX"
)

// TripInput is the validated trip request. Binding tags enforce the
// boundary schema; the engines assume these constraints hold.
type TripInput struct {
	StartDate         string   `json:"startDate" binding:"required,datetime=2006-01-02"`
	EndDate           string   `json:"endDate" binding:"required,datetime=2006-01-02"`
	StartingCity      string   `json:"startingCity" binding:"required"`
	PartySize         int      `json:"partySize" binding:"required,min=1,max=20"`
	Pace              string   `json:"pace" binding:"required,oneof=RELAXED MODERATE PACKED"`
	Interests         []string `json:"interests" binding:"required,min=1"`
	BudgetMinSar      int      `json:"budgetMinSar" binding:"min=0"`
	BudgetMaxSar      int      `json:"budgetMaxSar" binding:"required,min=1"`
	AccommodationTier string   `json:"accommodationTier" binding:"required,oneof=BUDGET MID_RANGE LUXURY"`
	TransportPref     string   `json:"transportPref" binding:"required,oneof=PUBLIC RENTAL_CAR PRIVATE_DRIVER MIX"`
}

// Trip is a persisted trip with its generated itinerary and cost breakdown
type Trip struct {
	ID                string    `json:"id" db:"id"`
	SessionID         string    `json:"sessionId" db:"session_id"`
	StartDate         string    `json:"startDate" db:"start_date"`
	EndDate           string    `json:"endDate" db:"end_date"`
	StartingCity      string    `json:"startingCity" db:"starting_city"`
	PartySize         int       `json:"partySize" db:"party_size"`
	Pace              string    `json:"pace" db:"pace"`
	Interests         []string  `json:"interests" db:"interests"`
	BudgetMinSar      int       `json:"budgetMinSar" db:"budget_min_sar"`
	BudgetMaxSar      int       `json:"budgetMaxSar" db:"budget_max_sar"`
	AccommodationTier string    `json:"accommodationTier" db:"accommodation_tier"`
	TransportPref     string    `json:"transportPref" db:"transport_pref"`
	CreatedAt         time.Time `json:"createdAt" db:"created_at"`

	Days          []ItineraryDay `json:"days,omitempty" db:"-"`
	CostBreakdown *CostBreakdown `json:"costBreakdown,omitempty" db:"-"`
}

// ItineraryDay is one persisted day of a trip's schedule
type ItineraryDay struct {
	ID         int64           `json:"id" db:"id"`
	TripID     string          `json:"-" db:"trip_id"`
	DayNumber  int             `json:"dayNumber" db:"day_number"`
	Date       string          `json:"date" db:"date"`
	RegionSlug string          `json:"regionSlug" db:"region_slug"`
	Items      []ItineraryItem `json:"items" db:"-"`
}

// ItineraryItem is one persisted scheduled stop within a day
type ItineraryItem struct {
	ID               int64  `json:"id" db:"id"`
	DayID            int64  `json:"-" db:"day_id"`
	SortOrder        int    `json:"sortOrder" db:"sort_order"`
	DestinationSlug  string `json:"destinationSlug" db:"destination_slug"`
	StartTime        string `json:"startTime" db:"start_time"`
	EndTime          string `json:"endTime" db:"end_time"`
	TitleEn          string `json:"titleEn" db:"title_en"`
	TitleAr          string `json:"titleAr" db:"title_ar"`
	NoteEn           string `json:"noteEn" db:"note_en"`
	NoteAr           string `json:"noteAr" db:"note_ar"`
	Category         string `json:"category" db:"category"`
	EstimatedCostSar int    `json:"estimatedCostSar" db:"estimated_cost_sar"`

	// Joined from the catalog on reads
	Destination *Destination `json:"destination,omitempty" db:"-"`
}

// SavedItinerary is a share-token bookmark of a generated trip
type SavedItinerary struct {
	ID         int64     `json:"id" db:"id"`
	TripID     string    `json:"tripId" db:"trip_id"`
	Title      string    `json:"title" db:"title"`
	ShareToken string    `json:"shareToken" db:"share_token"`
	SavedAt    time.Time `json:"savedAt" db:"saved_at"`

	Trip *Trip `json:"trip,omitempty" db:"-"`
}
