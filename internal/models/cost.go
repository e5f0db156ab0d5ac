package models

// Cost line categories
const (
	CostCategoryLodging   = "LODGING"
	CostCategoryTransport = "TRANSPORT"
	CostCategoryFood      = "FOOD"
	CostCategoryTickets   = "TICKETS"
	CostCategoryMisc      = "MISC"
)

// CostEstimate is the in-memory costing result before persistence. Items
// keep their computed order: lodging, transport, food allowance, per-visit
// lines, miscellaneous.
type CostEstimate struct {
	TotalSar     int               `json:"totalSar"`
	PerPersonSar int               `json:"perPersonSar"`
	Items        []CostLineItem    `json:"items"`
	Assumptions  map[string]string `json:"assumptions"`
}

// CostLineItem is one line of a cost estimate
type CostLineItem struct {
	ID          int64  `json:"id,omitempty" db:"id"`
	BreakdownID int64  `json:"-" db:"breakdown_id"`
	Category    string `json:"category" db:"category"`
	LabelEn     string `json:"labelEn" db:"label_en"`
	LabelAr     string `json:"labelAr" db:"label_ar"`
	AmountSar   int    `json:"amountSar" db:"amount_sar"`
	IsEditable  bool   `json:"isEditable" db:"is_editable"`
	Notes       string `json:"notes,omitempty" db:"notes"`
}

// CostBreakdown is a persisted cost estimate attached to a trip
type CostBreakdown struct {
	ID           int64             `json:"id" db:"id"`
	TripID       string            `json:"-" db:"trip_id"`
	TotalSar     int               `json:"totalSar" db:"total_sar"`
	PerPersonSar int               `json:"perPersonSar" db:"per_person_sar"`
	Assumptions  map[string]string `json:"assumptions" db:"assumptions"`
	Items        []CostItem        `json:"items" db:"-"`
}

// CostItem is one persisted cost line, editable by the client
type CostItem struct {
	ID          int64  `json:"id" db:"id"`
	BreakdownID int64  `json:"-" db:"breakdown_id"`
	Category    string `json:"category" db:"category"`
	LabelEn     string `json:"labelEn" db:"label_en"`
	LabelAr     string `json:"labelAr" db:"label_ar"`
	AmountSar   int    `json:"amountSar" db:"amount_sar"`
	IsEditable  bool   `json:"isEditable" db:"is_editable"`
	Notes       string `json:"notes,omitempty" db:"notes"`
}
