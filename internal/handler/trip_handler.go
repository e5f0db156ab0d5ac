package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/rihla/trip-planner-go/internal/models"
	"github.com/rihla/trip-planner-go/internal/service"
	"github.com/rihla/trip-planner-go/pkg/response"
)

// TripHandler handles HTTP requests for trips
type TripHandler struct {
	service *service.TripService
}

// NewTripHandler creates a new trip handler
func NewTripHandler(service *service.TripService) *TripHandler {
	return &TripHandler{service: service}
}

// CreateTrip handles POST /api/v1/trips
func (h *TripHandler) CreateTrip(c *gin.Context) {
	var input models.TripInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, http.StatusBadRequest, "Validation failed", err)
		return
	}
	if input.BudgetMinSar > input.BudgetMaxSar {
		response.Error(c, http.StatusBadRequest, "budgetMinSar must not exceed budgetMaxSar", nil)
		return
	}

	trip, err := h.service.CreateTrip(c.GetHeader("X-Session-Id"), input)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to create trip", err)
		return
	}

	response.Created(c, trip)
}

// GetTrip handles GET /api/v1/trips/:id
func (h *TripHandler) GetTrip(c *gin.Context) {
	trip, err := h.service.GetTrip(c.Param("id"))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to get trip", err)
		return
	}
	if trip == nil {
		response.Error(c, http.StatusNotFound, "Trip not found", nil)
		return
	}

	response.Success(c, trip)
}

// UpdateCostItem handles PATCH /api/v1/trips/:id/costs/:costItemID
func (h *TripHandler) UpdateCostItem(c *gin.Context) {
	costItemID, err := strconv.ParseInt(c.Param("costItemID"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid cost item ID", err)
		return
	}

	var body struct {
		AmountSar *int `json:"amountSar" binding:"required,min=0"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		response.Error(c, http.StatusBadRequest, "Validation failed", err)
		return
	}

	updated, err := h.service.UpdateCostItem(costItemID, *body.AmountSar)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to update cost item", err)
		return
	}
	if updated == nil {
		response.Error(c, http.StatusNotFound, "Cost item not found", nil)
		return
	}

	response.Success(c, updated)
}

// SaveItinerary handles POST /api/v1/trips/:id/save
func (h *TripHandler) SaveItinerary(c *gin.Context) {
	var body struct {
		Title string `json:"title" binding:"omitempty,max=120"`
	}
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&body); err != nil {
			response.Error(c, http.StatusBadRequest, "Validation failed", err)
			return
		}
	}

	saved, err := h.service.SaveItinerary(c.Param("id"), body.Title)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to save itinerary", err)
		return
	}
	if saved == nil {
		response.Error(c, http.StatusNotFound, "Trip not found", nil)
		return
	}

	response.Created(c, saved)
}

// GetSavedItinerary handles GET /api/v1/saved/:token
func (h *TripHandler) GetSavedItinerary(c *gin.Context) {
	saved, err := h.service.GetSavedByToken(c.Param("token"))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to get saved itinerary", err)
		return
	}
	if saved == nil {
		response.Error(c, http.StatusNotFound, "Saved itinerary not found", nil)
		return
	}

	response.Success(c, saved)
}

// ExportGoogleMaps handles GET /api/v1/trips/:id/export/google-maps
func (h *TripHandler) ExportGoogleMaps(c *gin.Context) {
	export, err := h.service.BuildGoogleMapsExport(c.Param("id"))
	if errors.Is(err, service.ErrNotEnoughStops) {
		response.Error(c, http.StatusBadRequest, "Not enough mapped itinerary points to export", nil)
		return
	}
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to build export", err)
		return
	}
	if export == nil {
		response.Error(c, http.StatusNotFound, "Trip not found", nil)
		return
	}

	response.Success(c, export)
}
