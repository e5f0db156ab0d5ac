package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	Port               string
	DBPath             string
	RedisAddr          string
	CatalogCacheTTL    time.Duration
	BookingAffiliateID string
}

// Load reads configuration from the environment, with a .env file picked up
// when present
func Load() *Config {
	_ = godotenv.Load()

	port := os.Getenv("PORT")
	if port == "" {
		port = ":8080"
	}

	dbPath := os.Getenv("DB_PATH")
	if dbPath == "" {
		dbPath = "./data/planner.db"
	}

	catalogTTL := 3600
	if raw := os.Getenv("CACHE_TTL_CATALOG"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v > 0 {
			catalogTTL = v
		}
	}

	return &Config{
		Port:               port,
		DBPath:             dbPath,
		RedisAddr:          os.Getenv("REDIS_ADDR"),
		CatalogCacheTTL:    time.Duration(catalogTTL) * time.Second,
		BookingAffiliateID: os.Getenv("BOOKING_AFFILIATE_ID"),
	}
}
