package engine

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/rihla/trip-planner-go/internal/models"
	"github.com/rihla/trip-planner-go/internal/spatial"
)

const dateLayout = "2006-01-02"

// CatalogAccessor is the read-only view of the destination catalog the
// engine consumes. The storage layer implements it; tests stub it.
type CatalogAccessor interface {
	ListRegions() ([]models.Region, error)
	ListDestinationsByFilter(filter models.DestinationFilter) ([]models.Destination, error)
}

// PaceConfig controls how many stops fit in a day and the active-hours window
type PaceConfig struct {
	MaxItemsPerDay int
	StartHour      int
	EndHour        int
}

var paceConfigs = map[string]PaceConfig{
	models.PaceRelaxed:  {MaxItemsPerDay: 3, StartHour: 10, EndHour: 18},
	models.PaceModerate: {MaxItemsPerDay: 5, StartHour: 9, EndHour: 20},
	models.PacePacked:   {MaxItemsPerDay: 7, StartHour: 8, EndHour: 22},
}

// PaceConfigFor returns the pace profile for a pace name
func PaceConfigFor(pace string) PaceConfig {
	return paceConfigs[pace]
}

// GeneratedDay is one day of a generated schedule
type GeneratedDay struct {
	DayNumber  int             `json:"dayNumber"`
	Date       string          `json:"date"`
	RegionSlug string          `json:"regionSlug"`
	Items      []GeneratedItem `json:"items"`
}

// GeneratedItem is one scheduled stop; immutable once selected
type GeneratedItem struct {
	DestinationID    int64  `json:"destinationId"`
	DestinationSlug  string `json:"destinationSlug"`
	StartTime        string `json:"startTime"`
	EndTime          string `json:"endTime"`
	TitleEn          string `json:"titleEn"`
	TitleAr          string `json:"titleAr"`
	NoteEn           string `json:"noteEn"`
	NoteAr           string `json:"noteAr"`
	Category         string `json:"category"`
	EstimatedCostSar int    `json:"estimatedCostSar"`
}

// GeneratedItinerary is the engine output: the day-by-day plan plus its
// cost breakdown
type GeneratedItinerary struct {
	Days          []GeneratedDay      `json:"days"`
	CostBreakdown models.CostEstimate `json:"costBreakdown"`
}

// ItineraryEngine turns a trip request plus the destination catalog into a
// day-by-day plan. Deterministic for a fixed input and catalog snapshot.
type ItineraryEngine struct {
	catalog CatalogAccessor
	costing *CostingEngine
}

// NewItineraryEngine creates an itinerary engine over the given catalog
func NewItineraryEngine(catalog CatalogAccessor) *ItineraryEngine {
	return &ItineraryEngine{
		catalog: catalog,
		costing: NewCostingEngine(),
	}
}

// Generate builds the full itinerary for a validated trip input
func (e *ItineraryEngine) Generate(input models.TripInput) (*GeneratedItinerary, error) {
	startDate, err := time.Parse(dateLayout, input.StartDate)
	if err != nil {
		return nil, fmt.Errorf("failed to parse start date: %w", err)
	}
	endDate, err := time.Parse(dateLayout, input.EndDate)
	if err != nil {
		return nil, fmt.Errorf("failed to parse end date: %w", err)
	}

	// Inclusive of both endpoints
	totalDays := int(math.Ceil(endDate.Sub(startDate).Hours()/24)) + 1
	paceConfig := paceConfigs[input.Pace]

	regions, err := e.catalog.ListRegions()
	if err != nil {
		return nil, fmt.Errorf("failed to list regions: %w", err)
	}
	regionOrder := buildRegionOrder(input.StartingCity, totalDays, regions)

	// Meals and events stay eligible even without an interest match
	candidates, err := e.catalog.ListDestinationsByFilter(models.DestinationFilter{
		TagsAny:      input.Interests,
		CategoriesIn: []string{models.CategoryRestaurant, models.CategoryCafe, models.CategoryEvent},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list destinations: %w", err)
	}

	destByRegion := make(map[string][]models.Destination)
	for _, d := range candidates {
		destByRegion[d.RegionSlug] = append(destByRegion[d.RegionSlug], d)
	}

	days := make([]GeneratedDay, 0, totalDays)
	usedSlugs := make(map[string]bool)

	for dayIdx := 0; dayIdx < totalDays; dayIdx++ {
		regionSlug := regionOrder[dayIdx%len(regionOrder)]
		dayDate := startDate.AddDate(0, 0, dayIdx)

		scored := scoreCandidates(destByRegion[regionSlug], usedSlugs, input)

		dayItems := []GeneratedItem{}
		currentHour := paceConfig.StartHour

		for _, dest := range scored {
			// Item-count limit is checked before the time window; this
			// ordering decides which candidate is dropped at the boundary.
			if len(dayItems) >= paceConfig.MaxItemsPerDay {
				break
			}
			if currentHour >= paceConfig.EndHour {
				break
			}

			durationHours := (dest.AvgDurationMins + 59) / 60
			if durationHours < 1 {
				durationHours = 1
			}
			endHour := currentHour + durationHours
			clampedEnd := endHour
			if clampedEnd > paceConfig.EndHour {
				clampedEnd = paceConfig.EndHour
			}

			dayItems = append(dayItems, GeneratedItem{
				DestinationID:    dest.ID,
				DestinationSlug:  dest.Slug,
				StartTime:        fmt.Sprintf("%02d:00", currentHour),
				EndTime:          fmt.Sprintf("%02d:00", clampedEnd),
				TitleEn:          dest.NameEn,
				TitleAr:          dest.NameAr,
				NoteEn:           buildWhyItFits(dest.Tags, input.Interests),
				NoteAr:           buildWhyItFitsAr(dest.Tags, input.Interests),
				Category:         dest.Category,
				EstimatedCostSar: e.costing.EstimateItemCost(dest.Category, dest.PriceLevel, input.PartySize),
			})

			usedSlugs[dest.Slug] = true
			currentHour = endHour
		}

		days = append(days, GeneratedDay{
			DayNumber:  dayIdx + 1,
			Date:       dayDate.Format(dateLayout),
			RegionSlug: regionSlug,
			Items:      dayItems,
		})
	}

	costBreakdown := e.costing.ComputeFullBreakdown(BreakdownInput{
		Days:              days,
		TotalDays:         totalDays,
		PartySize:         input.PartySize,
		AccommodationTier: input.AccommodationTier,
		TransportPref:     input.TransportPref,
	})

	return &GeneratedItinerary{Days: days, CostBreakdown: costBreakdown}, nil
}

// scoreCandidates filters out already-used destinations and sorts the rest
// by descending score. The sort is stable so ties keep catalog order, which
// keeps generation deterministic.
func scoreCandidates(dests []models.Destination, usedSlugs map[string]bool, input models.TripInput) []models.Destination {
	interests := make(map[string]bool, len(input.Interests))
	for _, t := range input.Interests {
		interests[t] = true
	}

	type scoredDest struct {
		dest  models.Destination
		score int
	}

	scored := make([]scoredDest, 0, len(dests))
	for _, d := range dests {
		if usedSlugs[d.Slug] {
			continue
		}
		score := 0
		for _, tag := range d.Tags {
			if interests[tag] {
				score += 2
			}
		}
		if d.PriceLevel <= 2 && input.BudgetMaxSar < 5000 {
			score++
		}
		if d.Category == models.CategoryEvent {
			score++
		}
		scored = append(scored, scoredDest{dest: d, score: score})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].score > scored[j].score
	})

	out := make([]models.Destination, len(scored))
	for i, s := range scored {
		out[i] = s.dest
	}
	return out
}

// buildRegionOrder assigns one region per trip day: the nearest regions to
// the starting city get consecutive blocks of days, nearest first. With an
// empty catalog every day falls back to the starting city.
func buildRegionOrder(startingCity string, totalDays int, regions []models.Region) []string {
	if len(regions) == 0 {
		order := make([]string, totalDays)
		for i := range order {
			order[i] = startingCity
		}
		return order
	}

	startingRegion := regions[0]
	for _, r := range regions {
		if r.Slug == startingCity {
			startingRegion = r
			break
		}
	}

	sorted := make([]models.Region, len(regions))
	copy(sorted, regions)
	sort.SliceStable(sorted, func(i, j int) bool {
		di := spatial.HaversineKm(startingRegion.Lat, startingRegion.Lng, sorted[i].Lat, sorted[i].Lng)
		dj := spatial.HaversineKm(startingRegion.Lat, startingRegion.Lng, sorted[j].Lat, sorted[j].Lng)
		return di < dj
	})

	// Never fewer than 3 regions (or however many exist), scaling with length
	maxRegions := (totalDays + 1) / 2
	if maxRegions < 3 {
		maxRegions = 3
	}
	if maxRegions > len(sorted) {
		maxRegions = len(sorted)
	}
	selected := sorted[:maxRegions]

	daysPerRegion := totalDays / len(selected)
	if daysPerRegion < 1 {
		daysPerRegion = 1
	}

	order := make([]string, 0, totalDays)
	for _, region := range selected {
		for i := 0; i < daysPerRegion; i++ {
			order = append(order, region.Slug)
		}
	}

	// Rounding leftovers go to the starting region
	for len(order) < totalDays {
		order = append(order, startingRegion.Slug)
	}
	return order[:totalDays]
}

func buildWhyItFits(tags, interests []string) string {
	matched := matchedTags(tags, interests)
	if len(matched) == 0 {
		return "A recommended stop in this region."
	}
	return fmt.Sprintf("Matches your interests: %s.", strings.Join(matched, ", "))
}

func buildWhyItFitsAr(tags, interests []string) string {
	matched := matchedTags(tags, interests)
	if len(matched) == 0 {
		return "محطة موصى بها في هذه المنطقة."
	}
	return fmt.Sprintf("تناسب اهتماماتك: %s.", strings.Join(matched, ", "))
}

func matchedTags(tags, interests []string) []string {
	set := make(map[string]bool, len(interests))
	for _, i := range interests {
		set[i] = true
	}
	var matched []string
	for _, t := range tags {
		if set[t] {
			matched = append(matched, t)
		}
	}
	return matched
}
