package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/rihla/trip-planner-go/internal/models"
)

// DestinationRepository handles database operations for destinations
type DestinationRepository struct {
	db *sql.DB
}

// NewDestinationRepository creates a new destination repository
func NewDestinationRepository(db *sql.DB) *DestinationRepository {
	return &DestinationRepository{db: db}
}

const destinationColumns = `id, slug, region_slug, category, tags, avg_duration_mins,
	price_level, name_en, name_ar, desc_en, desc_ar, lat, lng, rating, review_count,
	google_maps_url, trip_advisor_url, official_url`

// ListDestinations retrieves destinations matching the filter. Region and
// category narrow the SQL query; tag and category-set matching happens in
// Go since tags are stored as a JSON array. Rows come back in insertion
// order so downstream stable sorts keep catalog order for ties.
func (r *DestinationRepository) ListDestinations(filter models.DestinationFilter) ([]models.Destination, error) {
	query := "SELECT " + destinationColumns + " FROM destinations"

	var conditions []string
	var args []interface{}

	if filter.RegionSlug != "" {
		conditions = append(conditions, "region_slug = ?")
		args = append(args, filter.RegionSlug)
	}
	if filter.Category != "" {
		conditions = append(conditions, "category = ?")
		args = append(args, filter.Category)
	}

	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY id"

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query destinations: %w", err)
	}
	defer rows.Close()

	var dests []models.Destination
	for rows.Next() {
		d, err := scanDestination(rows)
		if err != nil {
			return nil, err
		}
		if !matchesFilter(d, filter) {
			continue
		}
		dests = append(dests, d)
	}
	return dests, rows.Err()
}

// GetDestinationBySlug retrieves a single destination, or nil if absent
func (r *DestinationRepository) GetDestinationBySlug(slug string) (*models.Destination, error) {
	row := r.db.QueryRow("SELECT "+destinationColumns+" FROM destinations WHERE slug = ?", slug)
	d, err := scanDestination(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &d, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanDestination(row rowScanner) (models.Destination, error) {
	var d models.Destination
	var tagsJSON string
	err := row.Scan(
		&d.ID, &d.Slug, &d.RegionSlug, &d.Category, &tagsJSON, &d.AvgDurationMins,
		&d.PriceLevel, &d.NameEn, &d.NameAr, &d.DescEn, &d.DescAr, &d.Lat, &d.Lng,
		&d.Rating, &d.ReviewCount, &d.GoogleMapsURL, &d.TripAdvisorURL, &d.OfficialURL,
	)
	if err == sql.ErrNoRows {
		return d, err
	}
	if err != nil {
		return d, fmt.Errorf("failed to scan destination: %w", err)
	}
	if err := json.Unmarshal([]byte(tagsJSON), &d.Tags); err != nil {
		return d, fmt.Errorf("failed to decode tags for %s: %w", d.Slug, err)
	}
	return d, nil
}

// matchesFilter applies the tag / category-set part of the filter. A
// destination passes when it matches any requested tag OR any requested
// category; with neither set, everything passes.
func matchesFilter(d models.Destination, filter models.DestinationFilter) bool {
	if len(filter.TagsAny) == 0 && len(filter.CategoriesIn) == 0 {
		return true
	}
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
