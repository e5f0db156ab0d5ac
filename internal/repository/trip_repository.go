package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/rihla/trip-planner-go/internal/database"
	"github.com/rihla/trip-planner-go/internal/models"
)

// TripRepository handles database operations for trips and their generated
// itineraries and cost breakdowns
type TripRepository struct {
	db *sql.DB
}

// NewTripRepository creates a new trip repository
func NewTripRepository(db *sql.DB) *TripRepository {
	return &TripRepository{db: db}
}

// CreateTrip persists a trip with its days, items, breakdown and cost lines
// in one transaction. Generated IDs are written back into the models.
func (r *TripRepository) CreateTrip(trip *models.Trip) error {
	return database.Transaction(r.db, func(tx *sql.Tx) error {
		interests, err := json.Marshal(trip.Interests)
		if err != nil {
			return fmt.Errorf("failed to marshal interests: %w", err)
		}

		_, err = tx.Exec(
			`INSERT INTO trips (id, session_id, start_date, end_date, starting_city,
			 party_size, pace, interests, budget_min_sar, budget_max_sar,
			 accommodation_tier, transport_pref, created_at)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			trip.ID, trip.SessionID, trip.StartDate, trip.EndDate, trip.StartingCity,
			trip.PartySize, trip.Pace, string(interests), trip.BudgetMinSar, trip.BudgetMaxSar,
			trip.AccommodationTier, trip.TransportPref, trip.CreatedAt,
		)
		if err != nil {
			return fmt.Errorf("failed to insert trip: %w", err)
		}

		for di := range trip.Days {
			day := &trip.Days[di]
			day.TripID = trip.ID
			res, err := tx.Exec(
				`INSERT INTO itinerary_days (trip_id, day_number, date, region_slug)
				 VALUES (?, ?, ?, ?)`,
				day.TripID, day.DayNumber, day.Date, day.RegionSlug,
			)
			if err != nil {
				return fmt.Errorf("failed to insert day %d: %w", day.DayNumber, err)
			}
			day.ID, err = res.LastInsertId()
			if err != nil {
				return fmt.Errorf("failed to read day id: %w", err)
			}

			for ii := range day.Items {
				item := &day.Items[ii]
				item.DayID = day.ID
				res, err := tx.Exec(
					`INSERT INTO itinerary_items (day_id, sort_order, destination_slug,
					 start_time, end_time, title_en, title_ar, note_en, note_ar,
					 category, estimated_cost_sar)
					 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
					item.DayID, item.SortOrder, item.DestinationSlug,
					item.StartTime, item.EndTime, item.TitleEn, item.TitleAr,
					item.NoteEn, item.NoteAr, item.Category, item.EstimatedCostSar,
				)
				if err != nil {
					return fmt.Errorf("failed to insert item %s: %w", item.DestinationSlug, err)
				}
				item.ID, err = res.LastInsertId()
				if err != nil {
					return fmt.Errorf("failed to read item id: %w", err)
				}
			}
		}

		if trip.CostBreakdown != nil {
			bd := trip.CostBreakdown
			bd.TripID = trip.ID
			assumptions, err := json.Marshal(bd.Assumptions)
			if err != nil {
				return fmt.Errorf("failed to marshal assumptions: %w", err)
			}
			res, err := tx.Exec(
				`INSERT INTO cost_breakdowns (trip_id, total_sar, per_person_sar, assumptions)
				 VALUES (?, ?, ?, ?)`,
				bd.TripID, bd.TotalSar, bd.PerPersonSar, string(assumptions),
			)
			if err != nil {
				return fmt.Errorf("failed to insert cost breakdown: %w", err)
			}
			bd.ID, err = res.LastInsertId()
			if err != nil {
				return fmt.Errorf("failed to read breakdown id: %w", err)
			}

			for ci := range bd.Items {
				line := &bd.Items[ci]
				line.BreakdownID = bd.ID
				res, err := tx.Exec(
					`INSERT INTO cost_items (breakdown_id, category, label_en, label_ar,
					 amount_sar, is_editable, notes)
					 VALUES (?, ?, ?, ?, ?, ?, ?)`,
					line.BreakdownID, line.Category, line.LabelEn, line.LabelAr,
					line.AmountSar, line.IsEditable, line.Notes,
				)
				if err != nil {
					return fmt.Errorf("failed to insert cost item: %w", err)
				}
				line.ID, err = res.LastInsertId()
				if err != nil {
					return fmt.Errorf("failed to read cost item id: %w", err)
				}
			}
		}

		return nil
	})
}

// GetTripByID retrieves a trip with days, items, catalog joins and cost
// breakdown, or nil if absent
func (r *TripRepository) GetTripByID(id string) (*models.Trip, error) {
	var t models.Trip
	var interestsJSON string
	err := r.db.QueryRow(
		`SELECT id, session_id, start_date, end_date, starting_city, party_size,
		 pace, interests, budget_min_sar, budget_max_sar, accommodation_tier,
		 transport_pref, created_at FROM trips WHERE id = ?`, id,
	).Scan(
		&t.ID, &t.SessionID, &t.StartDate, &t.EndDate, &t.StartingCity, &t.PartySize,
		&t.Pace, &interestsJSON, &t.BudgetMinSar, &t.BudgetMaxSar, &t.AccommodationTier,
		&t.TransportPref, &t.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get trip: %w", err)
	}
	if err := json.Unmarshal([]byte(interestsJSON), &t.Interests); err != nil {
		return nil, fmt.Errorf("failed to decode interests: %w", err)
	}

	if t.Days, err = r.loadDays(t.ID); err != nil {
		return nil, err
	}
	if t.CostBreakdown, err = r.loadBreakdown(t.ID); err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *TripRepository) loadDays(tripID string) ([]models.ItineraryDay, error) {
	rows, err := r.db.Query(
		`SELECT id, trip_id, day_number, date, region_slug
		 FROM itinerary_days WHERE trip_id = ? ORDER BY day_number`, tripID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query days: %w", err)
	}
	defer rows.Close()

	var days []models.ItineraryDay
	for rows.Next() {
		var d models.ItineraryDay
		if err := rows.Scan(&d.ID, &d.TripID, &d.DayNumber, &d.Date, &d.RegionSlug); err != nil {
			return nil, fmt.Errorf("failed to scan day: %w", err)
		}
		days = append(days, d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range days {
		if days[i].Items, err = r.loadItems(days[i].ID); err != nil {
			return nil, err
		}
	}
	return days, nil
}

func (r *TripRepository) loadItems(dayID int64) ([]models.ItineraryItem, error) {
	rows, err := r.db.Query(
		`SELECT i.id, i.day_id, i.sort_order, i.destination_slug, i.start_time,
		 i.end_time, i.title_en, i.title_ar, i.note_en, i.note_ar, i.category,
		 i.estimated_cost_sar,
		 d.id, d.name_en, d.name_ar, d.lat, d.lng, d.google_maps_url,
		 d.trip_advisor_url, d.official_url
		 FROM itinerary_items i
		 LEFT JOIN destinations d ON d.slug = i.destination_slug
		 WHERE i.day_id = ? ORDER BY i.sort_order`, dayID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query items: %w", err)
	}
	defer rows.Close()

	items := []models.ItineraryItem{}
	for rows.Next() {
		var it models.ItineraryItem
		var destID sql.NullInt64
		var nameEn, nameAr, mapsURL, taURL, officialURL sql.NullString
		var lat, lng sql.NullFloat64
		err := rows.Scan(
			&it.ID, &it.DayID, &it.SortOrder, &it.DestinationSlug, &it.StartTime,
			&it.EndTime, &it.TitleEn, &it.TitleAr, &it.NoteEn, &it.NoteAr, &it.Category,
			&it.EstimatedCostSar,
			&destID, &nameEn, &nameAr, &lat, &lng, &mapsURL, &taURL, &officialURL,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan item: %w", err)
		}
		if destID.Valid {
			it.Destination = &models.Destination{
				ID:             destID.Int64,
				Slug:           it.DestinationSlug,
				NameEn:         nameEn.String,
				NameAr:         nameAr.String,
				Lat:            lat.Float64,
				Lng:            lng.Float64,
				GoogleMapsURL:  mapsURL.String,
				TripAdvisorURL: taURL.String,
				OfficialURL:    officialURL.String,
			}
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

func (r *TripRepository) loadBreakdown(tripID string) (*models.CostBreakdown, error) {
	var bd models.CostBreakdown
	var assumptionsJSON string
	err := r.db.QueryRow(
		`SELECT id, trip_id, total_sar, per_person_sar, assumptions
		 FROM cost_breakdowns WHERE trip_id = ?`, tripID,
	).Scan(&bd.ID, &bd.TripID, &bd.TotalSar, &bd.PerPersonSar, &assumptionsJSON)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get cost breakdown: %w", err)
	}
	if err := json.Unmarshal([]byte(assumptionsJSON), &bd.Assumptions); err != nil {
		return nil, fmt.Errorf("failed to decode assumptions: %w", err)
	}

	rows, err := r.db.Query(
		`SELECT id, breakdown_id, category, label_en, label_ar, amount_sar,
		 is_editable, notes FROM cost_items WHERE breakdown_id = ? ORDER BY id`, bd.ID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query cost items: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var ci models.CostItem
		if err := rows.Scan(&ci.ID, &ci.BreakdownID, &ci.Category, &ci.LabelEn, &ci.LabelAr,
			&ci.AmountSar, &ci.IsEditable, &ci.Notes); err != nil {
			return nil, fmt.Errorf("failed to scan cost item: %w", err)
		}
		bd.Items = append(bd.Items, ci)
	}
	return &bd, rows.Err()
}

// UpdateCostItemAmount sets a cost line's amount and returns the updated
// row, or nil if the line does not exist
func (r *TripRepository) UpdateCostItemAmount(costItemID int64, amountSar int) (*models.CostItem, error) {
	res, err := r.db.Exec("UPDATE cost_items SET amount_sar = ? WHERE id = ?", amountSar, costItemID)
	if err != nil {
		return nil, fmt.Errorf("failed to update cost item: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return nil, nil
	}

	var ci models.CostItem
	err = r.db.QueryRow(
		`SELECT id, breakdown_id, category, label_en, label_ar, amount_sar,
		 is_editable, notes FROM cost_items WHERE id = ?`, costItemID,
	).Scan(&ci.ID, &ci.BreakdownID, &ci.Category, &ci.LabelEn, &ci.LabelAr,
		&ci.AmountSar, &ci.IsEditable, &ci.Notes)
	if err != nil {
		return nil, fmt.Errorf("failed to reload cost item: %w", err)
	}
	return &ci, nil
}

// BreakdownTotals returns the current line-amount sum and the owning trip's
// party size for a breakdown
func (r *TripRepository) BreakdownTotals(breakdownID int64) (sum, partySize int, err error) {
	err = r.db.QueryRow(
		`SELECT COALESCE(SUM(ci.amount_sar), 0), t.party_size
		 FROM cost_breakdowns b
		 JOIN trips t ON t.id = b.trip_id
		 LEFT JOIN cost_items ci ON ci.breakdown_id = b.id
		 WHERE b.id = ?
		 GROUP BY t.party_size`, breakdownID,
	).Scan(&sum, &partySize)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to sum breakdown: %w", err)
	}
	return sum, partySize, nil
}

// UpdateBreakdownTotals writes recomputed totals back to a breakdown
func (r *TripRepository) UpdateBreakdownTotals(breakdownID int64, totalSar, perPersonSar int) error {
	_, err := r.db.Exec(
		"UPDATE cost_breakdowns SET total_sar = ?, per_person_sar = ? WHERE id = ?",
		totalSar, perPersonSar, breakdownID,
	)
	if err != nil {
		return fmt.Errorf("failed to update breakdown totals: %w", err)
	}
	return nil
}

// CreateSavedItinerary persists a share-token bookmark for a trip
func (r *TripRepository) CreateSavedItinerary(s *models.SavedItinerary) error {
	res, err := r.db.Exec(
		`INSERT INTO saved_itineraries (trip_id, title, share_token, saved_at)
		 VALUES (?, ?, ?, ?)`,
		s.TripID, s.Title, s.ShareToken, s.SavedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert saved itinerary: %w", err)
	}
	s.ID, err = res.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read saved itinerary id: %w", err)
	}
	return nil
}

// GetSavedByToken retrieves a saved itinerary by share token with its full
// trip attached, or nil if absent
func (r *TripRepository) GetSavedByToken(token string) (*models.SavedItinerary, error) {
	var s models.SavedItinerary
	err := r.db.QueryRow(
		`SELECT id, trip_id, title, share_token, saved_at
		 FROM saved_itineraries WHERE share_token = ?`, token,
	).Scan(&s.ID, &s.TripID, &s.Title, &s.ShareToken, &s.SavedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get saved itinerary: %w", err)
	}

	if s.Trip, err = r.GetTripByID(s.TripID); err != nil {
		return nil, err
	}
	return &s, nil
}
