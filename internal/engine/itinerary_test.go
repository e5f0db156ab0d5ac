package engine

import (
	"fmt"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rihla/trip-planner-go/internal/models"
)

// stubCatalog serves a fixed snapshot with the same OR semantics as the
// destination repository: any tag match or any listed category passes.
type stubCatalog struct {
	regions []models.Region
	dests   []models.Destination
}

func (s *stubCatalog) ListRegions() ([]models.Region, error) {
	return s.regions, nil
}

func (s *stubCatalog) ListDestinationsByFilter(filter models.DestinationFilter) ([]models.Destination, error) {
	var out []models.Destination
	for _, d := range s.dests {
		if matchesAny(d, filter) {
			out = append(out, d)
		}
	}
	return out, nil
}

func matchesAny(d models.Destination, filter models.DestinationFilter) bool {
	for _, c := range filter.CategoriesIn {
		if d.Category == c {
			return true
		}
	}
	for _, want := range filter.TagsAny {
		for _, tag := range d.Tags {
			if tag == want {
				return true
			}
		}
	}
	return false
}

func testRegions() []models.Region {
	return []models.Region{
		{Slug: "riyadh", NameEn: "Riyadh", Lat: 24.7136, Lng: 46.6753},
		{Slug: "makkah", NameEn: "Makkah", Lat: 21.4858, Lng: 39.1925},
		{Slug: "madinah", NameEn: "Madinah", Lat: 24.5247, Lng: 39.5692},
		{Slug: "eastern-province", NameEn: "Eastern Province", Lat: 26.4207, Lng: 50.0888},
		{Slug: "tabuk", NameEn: "Tabuk", Lat: 28.3835, Lng: 36.5662},
	}
}

func dest(id int64, slug, region, category string, tags []string, durationMins, priceLevel int) models.Destination {
	return models.Destination{
		ID: id, Slug: slug, RegionSlug: region, Category: category, Tags: tags,
		AvgDurationMins: durationMins, PriceLevel: priceLevel,
		NameEn: slug, NameAr: slug,
	}
}

func defaultInput() models.TripInput {
	return models.TripInput{
		StartDate:         "2025-03-01",
		EndDate:           "2025-03-05",
		StartingCity:      "riyadh",
		PartySize:         2,
		Pace:              models.PaceModerate,
		Interests:         []string{"culture", "nature"},
		BudgetMinSar:      1000,
		BudgetMaxSar:      8000,
		AccommodationTier: models.TierMidRange,
		TransportPref:     models.TransportMix,
	}
}

func richCatalog() *stubCatalog {
	var dests []models.Destination
	var id int64
	for _, region := range []string{"riyadh", "makkah", "madinah", "eastern-province", "tabuk"} {
		for i := 0; i < 8; i++ {
			id++
			tags := []string{"culture"}
			if i%2 == 0 {
				tags = []string{"nature", "hiking"}
			}
			dests = append(dests, dest(id, fmt.Sprintf("%s-stop-%d", region, i), region,
				models.CategoryAttraction, tags, 90+30*i, 1+i%4))
		}
	}
	return &stubCatalog{regions: testRegions(), dests: dests}
}

func TestGenerateDeterminism(t *testing.T) {
	catalog := richCatalog()
	e := NewItineraryEngine(catalog)
	input := defaultInput()

	first, err := e.Generate(input)
	require.NoError(t, err)
	second, err := e.Generate(input)
	require.NoError(t, err)

	assert.Equal(t, first, second, "identical inputs must produce identical output")
}

func TestGenerateTripLengthAndDates(t *testing.T) {
	e := NewItineraryEngine(richCatalog())

	input := defaultInput()
	result, err := e.Generate(input)
	require.NoError(t, err)

	require.Len(t, result.Days, 5)
	for i, day := range result.Days {
		assert.Equal(t, i+1, day.DayNumber)
	}
	assert.Equal(t, "2025-03-01", result.Days[0].Date)
	assert.Equal(t, "2025-03-05", result.Days[4].Date)
}

func TestGenerateNoDuplicateSelections(t *testing.T) {
	e := NewItineraryEngine(richCatalog())

	input := defaultInput()
	input.EndDate = "2025-03-10"
	input.Pace = models.PacePacked

	result, err := e.Generate(input)
	require.NoError(t, err)

	seen := make(map[string]int)
	for _, day := range result.Days {
		for _, item := range day.Items {
			seen[item.DestinationSlug]++
		}
	}
	for slug, count := range seen {
		assert.Equal(t, 1, count, "destination %s selected more than once", slug)
	}
}

func TestGenerateDayWindowContainment(t *testing.T) {
	for _, pace := range []string{models.PaceRelaxed, models.PaceModerate, models.PacePacked} {
		t.Run(pace, func(t *testing.T) {
			e := NewItineraryEngine(richCatalog())
			input := defaultInput()
			input.Pace = pace
			cfg := PaceConfigFor(pace)

			result, err := e.Generate(input)
			require.NoError(t, err)

			for _, day := range result.Days {
				assert.LessOrEqual(t, len(day.Items), cfg.MaxItemsPerDay)
				for _, item := range day.Items {
					start, err := strconv.Atoi(item.StartTime[:2])
					require.NoError(t, err)
					end, err := strconv.Atoi(item.EndTime[:2])
					require.NoError(t, err)
					assert.GreaterOrEqual(t, start, cfg.StartHour)
					assert.LessOrEqual(t, end, cfg.EndHour)
				}
			}
		})
	}
}

func TestGenerateRelaxedPackingStopsAtWindow(t *testing.T) {
	// Five equal three-hour candidates against the relaxed 10:00-18:00
	// window: the third still starts inside the window and is truncated to
	// 18:00, then both limits stop the day.
	var dests []models.Destination
	for i := 0; i < 5; i++ {
		dests = append(dests, dest(int64(i+1), fmt.Sprintf("stop-%d", i), "riyadh",
			models.CategoryAttraction, []string{"culture"}, 180, 2))
	}
	catalog := &stubCatalog{
		regions: []models.Region{{Slug: "riyadh", Lat: 24.7136, Lng: 46.6753}},
		dests:   dests,
	}

	e := NewItineraryEngine(catalog)
	input := defaultInput()
	input.EndDate = "2025-03-01"
	input.Pace = models.PaceRelaxed

	result, err := e.Generate(input)
	require.NoError(t, err)
	require.Len(t, result.Days, 1)

	items := result.Days[0].Items
	require.Len(t, items, 3)
	assert.Equal(t, "stop-0", items[0].DestinationSlug)
	assert.Equal(t, "10:00", items[0].StartTime)
	assert.Equal(t, "13:00", items[0].EndTime)
	assert.Equal(t, "13:00", items[1].StartTime)
	assert.Equal(t, "16:00", items[1].EndTime)
	assert.Equal(t, "16:00", items[2].StartTime)
	assert.Equal(t, "18:00", items[2].EndTime, "last item is truncated to the window end")
}

func TestGenerateShortVisitGetsFullHour(t *testing.T) {
	catalog := &stubCatalog{
		regions: []models.Region{{Slug: "riyadh", Lat: 24.7136, Lng: 46.6753}},
		dests: []models.Destination{
			dest(1, "quick-stop", "riyadh", models.CategoryAttraction, []string{"culture"}, 30, 1),
		},
	}

	e := NewItineraryEngine(catalog)
	input := defaultInput()
	input.EndDate = "2025-03-01"

	result, err := e.Generate(input)
	require.NoError(t, err)
	require.Len(t, result.Days[0].Items, 1)
	assert.Equal(t, "09:00", result.Days[0].Items[0].StartTime)
	assert.Equal(t, "10:00", result.Days[0].Items[0].EndTime)
}

func TestGenerateScoringOrder(t *testing.T) {
	// Two tag matches beat one; the event bonus breaks the remaining tie.
	catalog := &stubCatalog{
		regions: []models.Region{{Slug: "riyadh", Lat: 24.7136, Lng: 46.6753}},
		dests: []models.Destination{
			dest(1, "one-match", "riyadh", models.CategoryAttraction, []string{"culture"}, 60, 3),
			dest(2, "event-match", "riyadh", models.CategoryEvent, []string{"culture"}, 60, 3),
			dest(3, "two-matches", "riyadh", models.CategoryAttraction, []string{"culture", "nature"}, 60, 3),
		},
	}

	e := NewItineraryEngine(catalog)
	input := defaultInput()
	input.EndDate = "2025-03-01"

	result, err := e.Generate(input)
	require.NoError(t, err)

	items := result.Days[0].Items
	require.Len(t, items, 3)
	assert.Equal(t, "two-matches", items[0].DestinationSlug)
	assert.Equal(t, "event-match", items[1].DestinationSlug)
	assert.Equal(t, "one-match", items[2].DestinationSlug)
}

func TestGenerateBudgetConsciousBoost(t *testing.T) {
	catalog := &stubCatalog{
		regions: []models.Region{{Slug: "riyadh", Lat: 24.7136, Lng: 46.6753}},
		dests: []models.Destination{
			dest(1, "pricey", "riyadh", models.CategoryAttraction, []string{"culture"}, 60, 4),
			dest(2, "affordable", "riyadh", models.CategoryAttraction, []string{"culture"}, 60, 2),
		},
	}

	e := NewItineraryEngine(catalog)
	input := defaultInput()
	input.EndDate = "2025-03-01"
	input.BudgetMaxSar = 3000

	result, err := e.Generate(input)
	require.NoError(t, err)
	require.NotEmpty(t, result.Days[0].Items)
	assert.Equal(t, "affordable", result.Days[0].Items[0].DestinationSlug)
}

func TestGenerateNotes(t *testing.T) {
	catalog := &stubCatalog{
		regions: []models.Region{{Slug: "riyadh", Lat: 24.7136, Lng: 46.6753}},
		dests: []models.Destination{
			dest(1, "tagged", "riyadh", models.CategoryAttraction, []string{"culture", "shopping"}, 60, 1),
			dest(2, "meal", "riyadh", models.CategoryRestaurant, []string{"food"}, 60, 1),
		},
	}

	e := NewItineraryEngine(catalog)
	input := defaultInput()
	input.EndDate = "2025-03-01"

	result, err := e.Generate(input)
	require.NoError(t, err)
	require.Len(t, result.Days[0].Items, 2)
	assert.Equal(t, "Matches your interests: culture.", result.Days[0].Items[0].NoteEn)
	assert.Equal(t, "A recommended stop in this region.", result.Days[0].Items[1].NoteEn)
}

func TestGenerateMealsEligibleWithoutInterestMatch(t *testing.T) {
	catalog := &stubCatalog{
		regions: []models.Region{{Slug: "riyadh", Lat: 24.7136, Lng: 46.6753}},
		dests: []models.Destination{
			dest(1, "cafe", "riyadh", models.CategoryCafe, []string{"coffee"}, 60, 2),
			dest(2, "irrelevant", "riyadh", models.CategoryShopping, []string{"luxury"}, 60, 2),
		},
	}

	e := NewItineraryEngine(catalog)
	input := defaultInput()
	input.EndDate = "2025-03-01"

	result, err := e.Generate(input)
	require.NoError(t, err)
	require.Len(t, result.Days[0].Items, 1)
	assert.Equal(t, "cafe", result.Days[0].Items[0].DestinationSlug)
}

func TestGenerateEmptyRegionProducesEmptyDay(t *testing.T) {
	// Catalog has regions but no destinations at all
	catalog := &stubCatalog{regions: testRegions()}

	e := NewItineraryEngine(catalog)
	result, err := e.Generate(defaultInput())
	require.NoError(t, err)

	require.Len(t, result.Days, 5)
	for _, day := range result.Days {
		assert.Empty(t, day.Items)
		assert.NotEmpty(t, day.RegionSlug)
	}
}

func TestGenerateCostBreakdownAdditivity(t *testing.T) {
	e := NewItineraryEngine(richCatalog())

	result, err := e.Generate(defaultInput())
	require.NoError(t, err)

	sum := 0
	for _, item := range result.CostBreakdown.Items {
		sum += item.AmountSar
	}
	assert.Equal(t, result.CostBreakdown.TotalSar, sum)
	assert.Equal(t, RoundPerPerson(result.CostBreakdown.TotalSar, 2), result.CostBreakdown.PerPersonSar)
}

func TestBuildRegionOrder(t *testing.T) {
	regions := testRegions()

	t.Run("empty catalog falls back to starting city", func(t *testing.T) {
		order := buildRegionOrder("riyadh", 4, nil)
		assert.Equal(t, []string{"riyadh", "riyadh", "riyadh", "riyadh"}, order)
	})

	t.Run("nearest regions get consecutive blocks", func(t *testing.T) {
		// From Riyadh: itself, then Eastern Province, then Madinah
		order := buildRegionOrder("riyadh", 6, regions)
		assert.Equal(t, []string{
			"riyadh", "riyadh",
			"eastern-province", "eastern-province",
			"madinah", "madinah",
		}, order)
	})

	t.Run("rounding leftovers pad with the starting region", func(t *testing.T) {
		order := buildRegionOrder("riyadh", 7, regions)
		require.Len(t, order, 7)
		assert.Equal(t, "riyadh", order[6])
	})

	t.Run("single day trip stays in the starting region", func(t *testing.T) {
		order := buildRegionOrder("riyadh", 1, regions)
		assert.Equal(t, []string{"riyadh"}, order)
	})

	t.Run("unknown starting city falls back to the first region", func(t *testing.T) {
		order := buildRegionOrder("nowhere", 2, regions)
		require.Len(t, order, 2)
		assert.Equal(t, "riyadh", order[0])
	})
}
