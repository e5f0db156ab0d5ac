package engine

import (
	"fmt"
	"math"

	"github.com/rihla/trip-planner-go/internal/models"
)

// Rate tables in SAR. Realistic 2024-2025 averages for Saudi Arabia.

type nightlyRate struct {
	Rate  int
	Label string
}

var hotelRatesPerNight = map[string]nightlyRate{
	models.TierBudget:   {Rate: 250, Label: "Budget hotel / hostel (~250 SAR/night)"},
	models.TierMidRange: {Rate: 550, Label: "3-4 star hotel (~550 SAR/night)"},
	models.TierLuxury:   {Rate: 1500, Label: "5-star / luxury resort (~1,500 SAR/night)"},
}

var transportDaily = map[string]nightlyRate{
	models.TransportPublic:        {Rate: 50, Label: "Public transport (metro/bus ~50 SAR/day)"},
	models.TransportRentalCar:     {Rate: 180, Label: "Rental car (~180 SAR/day incl. fuel)"},
	models.TransportPrivateDriver: {Rate: 600, Label: "Private driver (~600 SAR/day)"},
	models.TransportMix:           {Rate: 150, Label: "Mixed transport (~150 SAR/day)"},
}

// category -> price level (1-4) -> per-person SAR
var itemCostEstimates = map[string]map[int]int{
	models.CategoryAttraction:   {1: 0, 2: 75, 3: 150, 4: 300},
	models.CategoryRestaurant:   {1: 40, 2: 80, 3: 150, 4: 350},
	models.CategoryCafe:         {1: 20, 2: 35, 3: 50, 4: 80},
	models.CategoryHotel:        {1: 250, 2: 550, 3: 1000, 4: 1500},
	models.CategoryShopping:     {1: 50, 2: 150, 3: 300, 4: 800},
	models.CategoryNature:       {1: 0, 2: 30, 3: 80, 4: 150},
	models.CategoryAdventure:    {1: 100, 2: 200, 3: 400, 4: 800},
	models.CategoryEvent:        {1: 50, 2: 150, 3: 350, 4: 750},
	models.CategoryTransportHub: {1: 0, 2: 0, 3: 0, 4: 0},
}

// per person per day, by accommodation tier
var dailyFoodAllowance = map[string]int{
	models.TierBudget:   80,
	models.TierMidRange: 150,
	models.TierLuxury:   350,
}

// BreakdownInput carries everything ComputeFullBreakdown needs
type BreakdownInput struct {
	Days              []GeneratedDay
	TotalDays         int
	PartySize         int
	AccommodationTier string
	TransportPref     string
}

// CostingEngine converts itinerary structure and trip preferences into a
// monetary breakdown. Stateless; every method is a pure function over the
// rate tables and its inputs.
type CostingEngine struct{}

// NewCostingEngine creates a new costing engine
func NewCostingEngine() *CostingEngine {
	return &CostingEngine{}
}

// EstimateItemCost returns the whole-party cost estimate for one destination
// visit. Price level is clamped to [1,4]; unknown categories use the
// ATTRACTION table; a missing level falls back to level 2. Never fails.
func (e *CostingEngine) EstimateItemCost(category string, priceLevel, partySize int) int {
	catRates, ok := itemCostEstimates[category]
	if !ok {
		catRates = itemCostEstimates[models.CategoryAttraction]
	}

	level := priceLevel
	if level < 1 {
		level = 1
	}
	if level > 4 {
		level = 4
	}

	perPerson, ok := catRates[level]
	if !ok {
		perPerson = catRates[2]
	}
	return perPerson * partySize
}

// ComputeFullBreakdown builds the ordered cost line items for a generated
// itinerary: lodging, transport, food allowance, per-item costs, then a 10%
// miscellaneous buffer. Line order is part of the contract.
func (e *CostingEngine) ComputeFullBreakdown(input BreakdownInput) models.CostEstimate {
	if input.PartySize <= 0 {
		panic("costing: party size must be positive")
	}

	items := make([]models.CostLineItem, 0, len(input.Days)+4)
	assumptions := make(map[string]string, 4)

	// 1. Lodging. A same-day trip has zero nights, so zero lodging cost.
	nights := input.TotalDays - 1
	hotel := hotelRatesPerNight[input.AccommodationTier]
	lodgingTotal := hotel.Rate * nights
	items = append(items, models.CostLineItem{
		Category:   models.CostCategoryLodging,
		LabelEn:    fmt.Sprintf("Accommodation (%d nights)", nights),
		LabelAr:    fmt.Sprintf("الإقامة (%d ليالي)", nights),
		AmountSar:  lodgingTotal,
		IsEditable: true,
		Notes:      hotel.Label,
	})
	assumptions["lodging"] = hotel.Label

	// 2. Transport
	transport := transportDaily[input.TransportPref]
	transportTotal := transport.Rate * input.TotalDays
	items = append(items, models.CostLineItem{
		Category:   models.CostCategoryTransport,
		LabelEn:    fmt.Sprintf("Transport (%d days)", input.TotalDays),
		LabelAr:    fmt.Sprintf("النقل (%d أيام)", input.TotalDays),
		AmountSar:  transportTotal,
		IsEditable: true,
		Notes:      transport.Label,
	})
	assumptions["transport"] = transport.Label

	// 3. Daily food allowance, covering meals not explicitly scheduled.
	// Itinerary restaurant/cafe stops are itemized separately below.
	foodAllowance := dailyFoodAllowance[input.AccommodationTier]
	foodTotal := foodAllowance * input.TotalDays * input.PartySize
	items = append(items, models.CostLineItem{
		Category:   models.CostCategoryFood,
		LabelEn:    fmt.Sprintf("Daily food allowance (%d days × %d pax)", input.TotalDays, input.PartySize),
		LabelAr:    fmt.Sprintf("بدل الطعام اليومي (%d أيام × %d أشخاص)", input.TotalDays, input.PartySize),
		AmountSar:  foodTotal,
		IsEditable: true,
		Notes:      fmt.Sprintf("~%d SAR/person/day for meals not in itinerary", foodAllowance),
	})
	assumptions["food"] = fmt.Sprintf("%d SAR/person/day base allowance", foodAllowance)

	// 4. Per-item costs from the itinerary, day-major order
	activitiesTotal := 0
	for _, day := range input.Days {
		for _, item := range day.Items {
			if item.EstimatedCostSar <= 0 {
				continue
			}
			activitiesTotal += item.EstimatedCostSar
			category := models.CostCategoryTickets
			if item.Category == models.CategoryRestaurant || item.Category == models.CategoryCafe {
				category = models.CostCategoryFood
			}
			items = append(items, models.CostLineItem{
				Category:   category,
				LabelEn:    fmt.Sprintf("Day %d: %s", day.DayNumber, item.TitleEn),
				LabelAr:    fmt.Sprintf("اليوم %d: %s", day.DayNumber, item.TitleAr),
				AmountSar:  item.EstimatedCostSar,
				IsEditable: true,
			})
		}
	}

	// 5. Miscellaneous buffer, 10% of the running subtotal
	subtotal := lodgingTotal + transportTotal + foodTotal + activitiesTotal
	misc := int(math.Round(float64(subtotal) * 0.1))
	items = append(items, models.CostLineItem{
		Category:   models.CostCategoryMisc,
		LabelEn:    "Miscellaneous & tips (~10%)",
		LabelAr:    "متنوعات وإكراميات (~10%)",
		AmountSar:  misc,
		IsEditable: true,
	})
	assumptions["misc"] = "10% buffer for tips, SIM card, souvenirs, etc."

	total := subtotal + misc
	return models.CostEstimate{
		TotalSar:     total,
		PerPersonSar: RoundPerPerson(total, input.PartySize),
		Items:        items,
		Assumptions:  assumptions,
	}
}

// RoundPerPerson divides a total across a party, rounding to the nearest
// whole SAR. Shared with the cost-line edit recompute path.
func RoundPerPerson(totalSar, partySize int) int {
	if partySize <= 0 {
		panic("costing: party size must be positive")
	}
	return int(math.Round(float64(totalSar) / float64(partySize)))
}
