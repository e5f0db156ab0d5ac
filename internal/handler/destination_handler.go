package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/rihla/trip-planner-go/internal/models"
	"github.com/rihla/trip-planner-go/internal/providers"
	"github.com/rihla/trip-planner-go/internal/service"
	"github.com/rihla/trip-planner-go/pkg/response"
)

// DestinationHandler handles HTTP requests for destinations
type DestinationHandler struct {
	catalog  *service.CatalogService
	registry *providers.Registry
}

// NewDestinationHandler creates a new destination handler
func NewDestinationHandler(catalog *service.CatalogService, registry *providers.Registry) *DestinationHandler {
	return &DestinationHandler{catalog: catalog, registry: registry}
}

// ListDestinations handles GET /api/v1/destinations?region=&category=&tags=
func (h *DestinationHandler) ListDestinations(c *gin.Context) {
	filter := models.DestinationFilter{
		RegionSlug: c.Query("region"),
		Category:   c.Query("category"),
	}
	if tags := c.Query("tags"); tags != "" {
		filter.TagsAny = strings.Split(tags, ",")
	}

	dests, err := h.catalog.ListDestinationsByFilter(filter)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to list destinations", err)
		return
	}
	response.Success(c, dests)
}

// GetDestination handles GET /api/v1/destinations/:slug. The payload
// includes outbound platform links built by the provider registry.
func (h *DestinationHandler) GetDestination(c *gin.Context) {
	dest, err := h.catalog.GetDestinationBySlug(c.Param("slug"))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to get destination", err)
		return
	}
	if dest == nil {
		response.Error(c, http.StatusNotFound, "Destination not found", nil)
		return
	}

	links := gin.H{
		"booking": h.registry.Get("booking").BuildURL(map[string]string{
			"city": dest.RegionSlug,
		}),
		"tripadvisor": h.registry.Get("tripadvisor").BuildURL(map[string]string{
			"url":   dest.TripAdvisorURL,
			"query": dest.NameEn,
		}),
	}

	response.Success(c, gin.H{"destination": dest, "links": links})
}
