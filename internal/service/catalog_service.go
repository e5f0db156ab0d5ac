package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/rihla/trip-planner-go/internal/cache"
	"github.com/rihla/trip-planner-go/internal/models"
	"github.com/rihla/trip-planner-go/internal/repository"
)

// CatalogService serves region and destination reads, with a Redis
// read-through cache in front of SQLite. It implements the itinerary
// engine's CatalogAccessor.
type CatalogService struct {
	regions *repository.RegionRepository
	dests   *repository.DestinationRepository
	cache   *cache.Cache
}

// NewCatalogService creates a new catalog service. cache may be nil.
func NewCatalogService(regions *repository.RegionRepository, dests *repository.DestinationRepository, c *cache.Cache) *CatalogService {
	return &CatalogService{regions: regions, dests: dests, cache: c}
}

// ListRegions returns all regions
func (s *CatalogService) ListRegions() ([]models.Region, error) {
	ctx := context.Background()
	var regions []models.Region
	if s.cache.GetJSON(ctx, "catalog:regions", &regions) {
		return regions, nil
	}

	regions, err := s.regions.ListRegions()
	if err != nil {
		return nil, err
	}
	s.cache.SetJSON(ctx, "catalog:regions", regions)
	return regions, nil
}

// GetRegionBySlug returns one region with its destinations, or nil
func (s *CatalogService) GetRegionBySlug(slug string) (*models.Region, error) {
	region, err := s.regions.GetRegionBySlug(slug)
	if err != nil || region == nil {
		return region, err
	}
	region.Destinations, err = s.dests.ListDestinations(models.DestinationFilter{RegionSlug: slug})
	if err != nil {
		return nil, err
	}
	return region, nil
}

// ListDestinationsByFilter returns destinations matching the filter, in
// stable catalog order
func (s *CatalogService) ListDestinationsByFilter(filter models.DestinationFilter) ([]models.Destination, error) {
	ctx := context.Background()
	key := destinationsCacheKey(filter)

	var dests []models.Destination
	if s.cache.GetJSON(ctx, key, &dests) {
		return dests, nil
	}

	dests, err := s.dests.ListDestinations(filter)
	if err != nil {
		return nil, err
	}
	s.cache.SetJSON(ctx, key, dests)
	return dests, nil
}

// GetDestinationBySlug returns one destination, or nil
func (s *CatalogService) GetDestinationBySlug(slug string) (*models.Destination, error) {
	return s.dests.GetDestinationBySlug(slug)
}

func destinationsCacheKey(filter models.DestinationFilter) string {
	return fmt.Sprintf("catalog:destinations:%s:%s:%s:%s",
		filter.RegionSlug,
		filter.Category,
		strings.Join(filter.TagsAny, ","),
		strings.Join(filter.CategoriesIn, ","),
	)
}
