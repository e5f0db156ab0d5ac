package repository

import (
	"database/sql"
	"fmt"

	"github.com/rihla/trip-planner-go/internal/models"
)

// RegionRepository handles database operations for regions
type RegionRepository struct {
	db *sql.DB
}

// NewRegionRepository creates a new region repository
func NewRegionRepository(db *sql.DB) *RegionRepository {
	return &RegionRepository{db: db}
}

const regionColumns = "slug, name_en, name_ar, desc_en, desc_ar, lat, lng"

// ListRegions returns all regions ordered by English name
func (r *RegionRepository) ListRegions() ([]models.Region, error) {
	rows, err := r.db.Query("SELECT " + regionColumns + " FROM regions ORDER BY name_en")
	if err != nil {
		return nil, fmt.Errorf("failed to query regions: %w", err)
	}
	defer rows.Close()

	var regions []models.Region
	for rows.Next() {
		var reg models.Region
		if err := rows.Scan(&reg.Slug, &reg.NameEn, &reg.NameAr, &reg.DescEn, &reg.DescAr, &reg.Lat, &reg.Lng); err != nil {
			return nil, fmt.Errorf("failed to scan region: %w", err)
		}
		regions = append(regions, reg)
	}
	return regions, rows.Err()
}

// GetRegionBySlug retrieves a single region, or nil if absent
func (r *RegionRepository) GetRegionBySlug(slug string) (*models.Region, error) {
	var reg models.Region
	err := r.db.QueryRow("SELECT "+regionColumns+" FROM regions WHERE slug = ?", slug).
		Scan(&reg.Slug, &reg.NameEn, &reg.NameAr, &reg.DescEn, &reg.DescAr, &reg.Lat, &reg.Lng)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get region: %w", err)
	}
	return &reg, nil
}
