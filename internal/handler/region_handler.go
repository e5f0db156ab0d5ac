package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rihla/trip-planner-go/internal/service"
	"github.com/rihla/trip-planner-go/pkg/response"
)

// RegionHandler handles HTTP requests for regions
type RegionHandler struct {
	catalog *service.CatalogService
}

// NewRegionHandler creates a new region handler
func NewRegionHandler(catalog *service.CatalogService) *RegionHandler {
	return &RegionHandler{catalog: catalog}
}

// ListRegions handles GET /api/v1/regions
func (h *RegionHandler) ListRegions(c *gin.Context) {
	regions, err := h.catalog.ListRegions()
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to list regions", err)
		return
	}
	response.Success(c, regions)
}

// GetRegion handles GET /api/v1/regions/:slug
func (h *RegionHandler) GetRegion(c *gin.Context) {
	region, err := h.catalog.GetRegionBySlug(c.Param("slug"))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to get region", err)
		return
	}
	if region == nil {
		response.Error(c, http.StatusNotFound, "Region not found", nil)
		return
	}
	response.Success(c, region)
}
