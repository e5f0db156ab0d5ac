package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rihla/trip-planner-go/internal/models"
)

func TestListRegions(t *testing.T) {
	_, catalog := newTestServices(t)

	regions, err := catalog.ListRegions()
	require.NoError(t, err)
	assert.Len(t, regions, 6)
	for _, r := range regions {
		assert.NotEmpty(t, r.Slug)
		assert.NotZero(t, r.Lat)
	}
}

func TestGetRegionBySlug(t *testing.T) {
	_, catalog := newTestServices(t)

	region, err := catalog.GetRegionBySlug("riyadh")
	require.NoError(t, err)
	require.NotNil(t, region)
	assert.Equal(t, "Riyadh", region.NameEn)
	assert.NotEmpty(t, region.Destinations)
	for _, d := range region.Destinations {
		assert.Equal(t, "riyadh", d.RegionSlug)
	}

	missing, err := catalog.GetRegionBySlug("atlantis")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestListDestinationsByFilter(t *testing.T) {
	_, catalog := newTestServices(t)

	t.Run("by region", func(t *testing.T) {
		dests, err := catalog.ListDestinationsByFilter(models.DestinationFilter{RegionSlug: "tabuk"})
		require.NoError(t, err)
		assert.Len(t, dests, 2)
	})

	t.Run("by category", func(t *testing.T) {
		dests, err := catalog.ListDestinationsByFilter(models.DestinationFilter{Category: models.CategoryCafe})
		require.NoError(t, err)
		require.NotEmpty(t, dests)
		for _, d := range dests {
			assert.Equal(t, models.CategoryCafe, d.Category)
		}
	})

	t.Run("tags or always-eligible categories", func(t *testing.T) {
		dests, err := catalog.ListDestinationsByFilter(models.DestinationFilter{
			TagsAny:      []string{"diving"},
			CategoriesIn: []string{models.CategoryRestaurant},
		})
		require.NoError(t, err)
		slugs := make(map[string]bool)
		for _, d := range dests {
			slugs[d.Slug] = true
		}
		assert.True(t, slugs["red-sea-diving-jeddah"], "tag match included")
		assert.True(t, slugs["najd-village-restaurant"], "category match included")
		assert.False(t, slugs["quba-mosque"], "unrelated destination excluded")
	})

	t.Run("stable catalog order", func(t *testing.T) {
		first, err := catalog.ListDestinationsByFilter(models.DestinationFilter{RegionSlug: "riyadh"})
		require.NoError(t, err)
		second, err := catalog.ListDestinationsByFilter(models.DestinationFilter{RegionSlug: "riyadh"})
		require.NoError(t, err)
		assert.Equal(t, first, second)
		for i := 1; i < len(first); i++ {
			assert.Greater(t, first[i].ID, first[i-1].ID)
		}
	})
}

func TestGetDestinationBySlug(t *testing.T) {
	_, catalog := newTestServices(t)

	dest, err := catalog.GetDestinationBySlug("edge-of-the-world")
	require.NoError(t, err)
	require.NotNil(t, dest)
	assert.Equal(t, models.CategoryNature, dest.Category)
	assert.Contains(t, dest.Tags, "hiking")

	missing, err := catalog.GetDestinationBySlug("no-such-place")
	require.NoError(t, err)
	assert.Nil(t, missing)
}
