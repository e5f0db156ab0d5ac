package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rihla/trip-planner-go/internal/models"
)

func TestEstimateItemCost(t *testing.T) {
	e := NewCostingEngine()

	t.Run("known category and level", func(t *testing.T) {
		assert.Equal(t, 75, e.EstimateItemCost(models.CategoryAttraction, 2, 1))
		assert.Equal(t, 150, e.EstimateItemCost(models.CategoryAttraction, 2, 2))
		assert.Equal(t, 350, e.EstimateItemCost(models.CategoryRestaurant, 4, 1))
		assert.Equal(t, 0, e.EstimateItemCost(models.CategoryTransportHub, 3, 5))
	})

	t.Run("price level clamped to 1-4", func(t *testing.T) {
		for _, cat := range []string{models.CategoryAttraction, models.CategoryCafe, models.CategoryAdventure} {
			assert.Equal(t, e.EstimateItemCost(cat, 1, 2), e.EstimateItemCost(cat, 0, 2))
			assert.Equal(t, e.EstimateItemCost(cat, 1, 2), e.EstimateItemCost(cat, -3, 2))
			assert.Equal(t, e.EstimateItemCost(cat, 4, 2), e.EstimateItemCost(cat, 99, 2))
		}
	})

	t.Run("unknown category falls back to attraction rates", func(t *testing.T) {
		assert.Equal(t, e.EstimateItemCost(models.CategoryAttraction, 3, 2), e.EstimateItemCost("THEME_PARK", 3, 2))
	})

	t.Run("never negative", func(t *testing.T) {
		for level := -2; level <= 6; level++ {
			assert.GreaterOrEqual(t, e.EstimateItemCost(models.CategoryNature, level, 3), 0)
		}
	})
}

func TestComputeFullBreakdownLodging(t *testing.T) {
	e := NewCostingEngine()

	t.Run("five day mid-range trip has four nights", func(t *testing.T) {
		est := e.ComputeFullBreakdown(BreakdownInput{
			TotalDays:         5,
			PartySize:         2,
			AccommodationTier: models.TierMidRange,
			TransportPref:     models.TransportPublic,
		})
		lodging := est.Items[0]
		assert.Equal(t, models.CostCategoryLodging, lodging.Category)
		assert.Equal(t, 2200, lodging.AmountSar)
		assert.Equal(t, "Accommodation (4 nights)", lodging.LabelEn)
	})

	t.Run("same-day trip has zero lodging nights", func(t *testing.T) {
		est := e.ComputeFullBreakdown(BreakdownInput{
			TotalDays:         1,
			PartySize:         1,
			AccommodationTier: models.TierLuxury,
			TransportPref:     models.TransportPublic,
		})
		assert.Equal(t, models.CostCategoryLodging, est.Items[0].Category)
		assert.Equal(t, 0, est.Items[0].AmountSar)
	})
}

func TestComputeFullBreakdownLineOrder(t *testing.T) {
	e := NewCostingEngine()

	days := []GeneratedDay{
		{
			DayNumber: 1,
			Items: []GeneratedItem{
				{TitleEn: "Museum", Category: models.CategoryAttraction, EstimatedCostSar: 150},
				{TitleEn: "Free Park", Category: models.CategoryNature, EstimatedCostSar: 0},
			},
		},
		{
			DayNumber: 2,
			Items: []GeneratedItem{
				{TitleEn: "Lunch Spot", Category: models.CategoryRestaurant, EstimatedCostSar: 160},
			},
		},
	}

	est := e.ComputeFullBreakdown(BreakdownInput{
		Days:              days,
		TotalDays:         2,
		PartySize:         2,
		AccommodationTier: models.TierBudget,
		TransportPref:     models.TransportMix,
	})

	require.Len(t, est.Items, 6)
	assert.Equal(t, models.CostCategoryLodging, est.Items[0].Category)
	assert.Equal(t, models.CostCategoryTransport, est.Items[1].Category)
	assert.Equal(t, models.CostCategoryFood, est.Items[2].Category)
	// Per-item lines follow in day-major order; zero-cost items are skipped
	assert.Equal(t, models.CostCategoryTickets, est.Items[3].Category)
	assert.Equal(t, "Day 1: Museum", est.Items[3].LabelEn)
	assert.Equal(t, models.CostCategoryFood, est.Items[4].Category)
	assert.Equal(t, "Day 2: Lunch Spot", est.Items[4].LabelEn)
	assert.Equal(t, models.CostCategoryMisc, est.Items[5].Category)
}

func TestComputeFullBreakdownAmounts(t *testing.T) {
	e := NewCostingEngine()

	est := e.ComputeFullBreakdown(BreakdownInput{
		Days: []GeneratedDay{
			{DayNumber: 1, Items: []GeneratedItem{
				{TitleEn: "Dive Trip", Category: models.CategoryAdventure, EstimatedCostSar: 400},
			}},
		},
		TotalDays:         3,
		PartySize:         2,
		AccommodationTier: models.TierBudget,
		TransportPref:     models.TransportRentalCar,
	})

	// lodging 2*250=500, transport 3*180=540, food 80*3*2=480, items 400
	subtotal := 500 + 540 + 480 + 400
	misc := 192 // round(1920 * 0.1)
	assert.Equal(t, subtotal+misc, est.TotalSar)

	sum := 0
	for _, item := range est.Items {
		sum += item.AmountSar
	}
	assert.Equal(t, est.TotalSar, sum, "total must equal the sum of line items")

	for _, item := range est.Items {
		assert.True(t, item.IsEditable)
	}
}

func TestComputeFullBreakdownAssumptions(t *testing.T) {
	e := NewCostingEngine()

	est := e.ComputeFullBreakdown(BreakdownInput{
		TotalDays:         2,
		PartySize:         1,
		AccommodationTier: models.TierMidRange,
		TransportPref:     models.TransportPrivateDriver,
	})

	for _, key := range []string{"lodging", "transport", "food", "misc"} {
		assert.Contains(t, est.Assumptions, key)
	}
	assert.Contains(t, est.Assumptions["lodging"], "550")
	assert.Contains(t, est.Assumptions["transport"], "600")
}

func TestMiscBufferRounding(t *testing.T) {
	e := NewCostingEngine()

	// 5 days luxury, public transport, 1 pax, no items:
	// 4*1500 + 5*50 + 5*1*350 = 8000 -> misc 800
	est := e.ComputeFullBreakdown(BreakdownInput{
		TotalDays:         5,
		PartySize:         1,
		AccommodationTier: models.TierLuxury,
		TransportPref:     models.TransportPublic,
	})
	assert.Equal(t, 800, est.Items[len(est.Items)-1].AmountSar)
	assert.Equal(t, 8800, est.TotalSar)
}

func TestRoundPerPerson(t *testing.T) {
	assert.Equal(t, 4000, RoundPerPerson(12000, 3))
	assert.Equal(t, 3333, RoundPerPerson(10000, 3))
	assert.Equal(t, 1667, RoundPerPerson(5000, 3))
	assert.Equal(t, 5000, RoundPerPerson(5000, 1))

	assert.Panics(t, func() { RoundPerPerson(100, 0) })
}

func TestComputeFullBreakdownPerPerson(t *testing.T) {
	e := NewCostingEngine()

	est := e.ComputeFullBreakdown(BreakdownInput{
		TotalDays:         4,
		PartySize:         3,
		AccommodationTier: models.TierMidRange,
		TransportPref:     models.TransportMix,
	})
	assert.Equal(t, RoundPerPerson(est.TotalSar, 3), est.PerPersonSar)

	assert.Panics(t, func() {
		e.ComputeFullBreakdown(BreakdownInput{TotalDays: 1, PartySize: 0, AccommodationTier: models.TierBudget, TransportPref: models.TransportPublic})
	})
}
