package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/rihla/trip-planner-go/internal/handler"
	"github.com/rihla/trip-planner-go/internal/middleware"
)

// Handlers groups everything the router mounts
type Handlers struct {
	Trips        *handler.TripHandler
	Regions      *handler.RegionHandler
	Destinations *handler.DestinationHandler
}

// SetupRouter builds the Gin engine with middleware and all routes
func SetupRouter(h Handlers) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.Logger())
	r.Use(middleware.CORS())
	r.Use(middleware.RateLimit(120, time.Minute))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"message": "Trip Planner API is running",
		})
	})

	api := r.Group("/api/v1")
	{
		trips := api.Group("/trips")
		{
			trips.POST("", h.Trips.CreateTrip)
			trips.GET("/:id", h.Trips.GetTrip)
			trips.PATCH("/:id/costs/:costItemID", h.Trips.UpdateCostItem)
			trips.POST("/:id/save", h.Trips.SaveItinerary)
			trips.GET("/:id/export/google-maps", h.Trips.ExportGoogleMaps)
		}

		// Lives outside /trips because the share token is not a trip ID
		api.GET("/saved/:token", h.Trips.GetSavedItinerary)

		regions := api.Group("/regions")
		{
			regions.GET("", h.Regions.ListRegions)
			regions.GET("/:slug", h.Regions.GetRegion)
		}

		destinations := api.Group("/destinations")
		{
			destinations.GET("", h.Destinations.ListDestinations)
			destinations.GET("/:slug", h.Destinations.GetDestination)
		}
	}

	return r
}
