package service

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/rihla/trip-planner-go/internal/engine"
	"github.com/rihla/trip-planner-go/internal/models"
	"github.com/rihla/trip-planner-go/internal/repository"
)

// ErrNotEnoughStops is returned by the Google Maps export when the trip has
// fewer than two mapped itinerary points
var ErrNotEnoughStops = errors.New("not enough mapped itinerary points to export")

const maxExportWaypoints = 8

// TripService orchestrates itinerary generation and trip persistence
type TripService struct {
	trips  *repository.TripRepository
	engine *engine.ItineraryEngine
}

// NewTripService creates a new trip service over the given catalog
func NewTripService(trips *repository.TripRepository, catalog engine.CatalogAccessor) *TripService {
	return &TripService{
		trips:  trips,
		engine: engine.NewItineraryEngine(catalog),
	}
}

// CreateTrip generates an itinerary for the input and persists the result.
// Returns the stored trip with catalog joins and cost breakdown attached.
func (s *TripService) CreateTrip(sessionID string, input models.TripInput) (*models.Trip, error) {
	generated, err := s.engine.Generate(input)
	if err != nil {
		return nil, fmt.Errorf("failed to generate itinerary: %w", err)
	}

	if sessionID == "" {
		sessionID = "anonymous"
	}

	trip := &models.Trip{
		ID:                uuid.NewString(),
		SessionID:         sessionID,
		StartDate:         input.StartDate,
		EndDate:           input.EndDate,
		StartingCity:      input.StartingCity,
		PartySize:         input.PartySize,
		Pace:              input.Pace,
		Interests:         input.Interests,
		BudgetMinSar:      input.BudgetMinSar,
		BudgetMaxSar:      input.BudgetMaxSar,
		AccommodationTier: input.AccommodationTier,
		TransportPref:     input.TransportPref,
		CreatedAt:         time.Now().UTC(),
		Days:              daysToModels(generated.Days),
		CostBreakdown:     breakdownToModel(generated.CostBreakdown),
	}

	if err := s.trips.CreateTrip(trip); err != nil {
		return nil, err
	}
	return s.trips.GetTripByID(trip.ID)
}

// GetTrip retrieves a stored trip, or nil
func (s *TripService) GetTrip(id string) (*models.Trip, error) {
	return s.trips.GetTripByID(id)
}

// UpdateCostItem sets a cost line's amount and recomputes the owning
// breakdown: total = sum of current line amounts, per-person = round(total /
// party size). Returns nil when the line does not exist.
func (s *TripService) UpdateCostItem(costItemID int64, amountSar int) (*models.CostItem, error) {
	updated, err := s.trips.UpdateCostItemAmount(costItemID, amountSar)
	if err != nil || updated == nil {
		return updated, err
	}

	sum, partySize, err := s.trips.BreakdownTotals(updated.BreakdownID)
	if err != nil {
		return nil, err
	}
	if err := s.trips.UpdateBreakdownTotals(updated.BreakdownID, sum, engine.RoundPerPerson(sum, partySize)); err != nil {
		return nil, err
	}
	return updated, nil
}

// SaveItinerary bookmarks a trip behind a fresh share token. Returns nil
// when the trip does not exist.
func (s *TripService) SaveItinerary(tripID, title string) (*models.SavedItinerary, error) {
	trip, err := s.trips.GetTripByID(tripID)
	if err != nil || trip == nil {
		return nil, err
	}

	if title == "" {
		title = fmt.Sprintf("Saudi itinerary (%s)", trip.StartDate)
	}

	saved := &models.SavedItinerary{
		TripID:     trip.ID,
		Title:      title,
		ShareToken: newShareToken(),
		SavedAt:    time.Now().UTC(),
	}
	if err := s.trips.CreateSavedItinerary(saved); err != nil {
		return nil, err
	}
	return saved, nil
}

// GetSavedByToken retrieves a saved itinerary and its trip, or nil
func (s *TripService) GetSavedByToken(token string) (*models.SavedItinerary, error) {
	return s.trips.GetSavedByToken(token)
}

// GoogleMapsExport is a directions link covering the trip's stops
type GoogleMapsExport struct {
	URL           string `json:"url"`
	StopsIncluded int    `json:"stopsIncluded"`
	TotalStops    int    `json:"totalStops"`
}

// BuildGoogleMapsExport builds a Google Maps directions URL from the trip's
// itinerary points in visit order. Duplicate coordinates collapse; at most
// eight intermediate waypoints are included.
func (s *TripService) BuildGoogleMapsExport(tripID string) (*GoogleMapsExport, error) {
	trip, err := s.trips.GetTripByID(tripID)
	if err != nil || trip == nil {
		return nil, err
	}

	seen := make(map[string]bool)
	var points []string
	for _, day := range trip.Days {
		for _, item := range day.Items {
			if item.Destination == nil {
				continue
			}
			p := fmt.Sprintf("%v,%v", item.Destination.Lat, item.Destination.Lng)
			if seen[p] {
				continue
			}
			seen[p] = true
			points = append(points, p)
		}
	}

	if len(points) < 2 {
		return nil, ErrNotEnoughStops
	}

	origin := points[0]
	destination := points[len(points)-1]
	waypoints := points[1 : len(points)-1]
	if len(waypoints) > maxExportWaypoints {
		waypoints = waypoints[:maxExportWaypoints]
	}

	exportURL := fmt.Sprintf(
		"https://www.google.com/maps/dir/?api=1&origin=%s&destination=%s",
		url.QueryEscape(origin), url.QueryEscape(destination),
	)
	if len(waypoints) > 0 {
		exportURL += "&waypoints=" + url.QueryEscape(strings.Join(waypoints, "|"))
	}
	exportURL += "&travelmode=driving"

	included := len(points)
	if included > maxExportWaypoints+2 {
		included = maxExportWaypoints + 2
	}

	return &GoogleMapsExport{
		URL:           exportURL,
		StopsIncluded: included,
		TotalStops:    len(points),
	}, nil
}

func daysToModels(days []engine.GeneratedDay) []models.ItineraryDay {
	out := make([]models.ItineraryDay, len(days))
	for i, d := range days {
		items := make([]models.ItineraryItem, len(d.Items))
		for j, it := range d.Items {
			items[j] = models.ItineraryItem{
				SortOrder:        j,
				DestinationSlug:  it.DestinationSlug,
				StartTime:        it.StartTime,
				EndTime:          it.EndTime,
				TitleEn:          it.TitleEn,
				TitleAr:          it.TitleAr,
				NoteEn:           it.NoteEn,
				NoteAr:           it.NoteAr,
				Category:         it.Category,
				EstimatedCostSar: it.EstimatedCostSar,
			}
		}
		out[i] = models.ItineraryDay{
			DayNumber:  d.DayNumber,
			Date:       d.Date,
			RegionSlug: d.RegionSlug,
			Items:      items,
		}
	}
	return out
}

func breakdownToModel(estimate models.CostEstimate) *models.CostBreakdown {
	bd := &models.CostBreakdown{
		TotalSar:     estimate.TotalSar,
		PerPersonSar: estimate.PerPersonSar,
		Assumptions:  estimate.Assumptions,
	}
	for _, line := range estimate.Items {
		bd.Items = append(bd.Items, models.CostItem{
			Category:   line.Category,
			LabelEn:    line.LabelEn,
			LabelAr:    line.LabelAr,
			AmountSar:  line.AmountSar,
			IsEditable: line.IsEditable,
			Notes:      line.Notes,
		})
	}
	return bd
}

func newShareToken() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:16]
}
