package main

import (
	"log"

	"github.com/rihla/trip-planner-go/internal/api"
	"github.com/rihla/trip-planner-go/internal/cache"
	"github.com/rihla/trip-planner-go/internal/config"
	"github.com/rihla/trip-planner-go/internal/database"
	"github.com/rihla/trip-planner-go/internal/handler"
	"github.com/rihla/trip-planner-go/internal/providers"
	"github.com/rihla/trip-planner-go/internal/repository"
	"github.com/rihla/trip-planner-go/internal/service"
)

func main() {
	cfg := config.Load()

	db, err := database.Open(cfg.DBPath)
	if err != nil {
		log.Fatal("Failed to open database:", err)
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}
	if err := database.Seed(db); err != nil {
		log.Fatal("Failed to seed catalog:", err)
	}

	catalogCache := cache.New(cfg.RedisAddr, cfg.CatalogCacheTTL)
	defer catalogCache.Close()

	regionRepo := repository.NewRegionRepository(db)
	destRepo := repository.NewDestinationRepository(db)
	tripRepo := repository.NewTripRepository(db)

	catalogService := service.NewCatalogService(regionRepo, destRepo, catalogCache)
	tripService := service.NewTripService(tripRepo, catalogService)

	registry := providers.NewRegistry(cfg.BookingAffiliateID)

	router := api.SetupRouter(api.Handlers{
		Trips:        handler.NewTripHandler(tripService),
		Regions:      handler.NewRegionHandler(catalogService),
		Destinations: handler.NewDestinationHandler(catalogService, registry),
	})

	log.Printf("Server starting on port %s", cfg.Port)
	if err := router.Run(cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
