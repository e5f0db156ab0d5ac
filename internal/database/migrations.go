package database

import (
	"database/sql"
	"fmt"
	"log"
)

// Migration represents a database migration
type Migration struct {
	Version int
	Name    string
	SQL     string
}

// Schema migrations, applied in version order. Compiled in rather than read
// from disk so the binary is self-contained.
var migrations = []Migration{
	{
		Version: 1,
		Name:    "catalog_tables",
		SQL: `
			CREATE TABLE IF NOT EXISTS regions (
				slug TEXT PRIMARY KEY,
				name_en TEXT NOT NULL,
				name_ar TEXT NOT NULL,
				desc_en TEXT NOT NULL DEFAULT '',
				desc_ar TEXT NOT NULL DEFAULT '',
				lat REAL NOT NULL,
				lng REAL NOT NULL
			);

			CREATE TABLE IF NOT EXISTS destinations (
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				slug TEXT NOT NULL UNIQUE,
				region_slug TEXT NOT NULL REFERENCES regions(slug),
				category TEXT NOT NULL,
				tags TEXT NOT NULL DEFAULT '[]',
				avg_duration_mins INTEGER NOT NULL DEFAULT 60,
				price_level INTEGER NOT NULL DEFAULT 1,
				name_en TEXT NOT NULL,
				name_ar TEXT NOT NULL,
				desc_en TEXT NOT NULL DEFAULT '',
				desc_ar TEXT NOT NULL DEFAULT '',
				lat REAL NOT NULL DEFAULT 0,
				lng REAL NOT NULL DEFAULT 0,
				rating REAL NOT NULL DEFAULT 0,
				review_count INTEGER NOT NULL DEFAULT 0,
				google_maps_url TEXT NOT NULL DEFAULT '',
				trip_advisor_url TEXT NOT NULL DEFAULT '',
				official_url TEXT NOT NULL DEFAULT ''
			);

			CREATE INDEX IF NOT EXISTS idx_destinations_region ON destinations(region_slug);
			CREATE INDEX IF NOT EXISTS idx_destinations_category ON destinations(category);
		`,
	},
	{
		Version: 2,
		Name:    "trip_tables",
		SQL: `
			CREATE TABLE IF NOT EXISTS trips (
				id TEXT PRIMARY KEY,
				session_id TEXT NOT NULL DEFAULT 'anonymous',
				start_date TEXT NOT NULL,
				end_date TEXT NOT NULL,
				starting_city TEXT NOT NULL,
				party_size INTEGER NOT NULL,
				pace TEXT NOT NULL,
				interests TEXT NOT NULL DEFAULT '[]',
				budget_min_sar INTEGER NOT NULL DEFAULT 0,
				budget_max_sar INTEGER NOT NULL DEFAULT 0,
				accommodation_tier TEXT NOT NULL,
				transport_pref TEXT NOT NULL,
				created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
			);

			CREATE TABLE IF NOT EXISTS itinerary_days (
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				trip_id TEXT NOT NULL REFERENCES trips(id) ON DELETE CASCADE,
				day_number INTEGER NOT NULL,
				date TEXT NOT NULL,
				region_slug TEXT NOT NULL
			);

			CREATE TABLE IF NOT EXISTS itinerary_items (
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				day_id INTEGER NOT NULL REFERENCES itinerary_days(id) ON DELETE CASCADE,
				sort_order INTEGER NOT NULL,
				destination_slug TEXT NOT NULL,
				start_time TEXT NOT NULL,
				end_time TEXT NOT NULL,
				title_en TEXT NOT NULL,
				title_ar TEXT NOT NULL,
				note_en TEXT NOT NULL DEFAULT '',
				note_ar TEXT NOT NULL DEFAULT '',
				category TEXT NOT NULL,
				estimated_cost_sar INTEGER NOT NULL DEFAULT 0
			);

			CREATE INDEX IF NOT EXISTS idx_days_trip ON itinerary_days(trip_id);
			CREATE INDEX IF NOT EXISTS idx_items_day ON itinerary_items(day_id);
		`,
	},
	{
		Version: 3,
		Name:    "cost_tables",
		SQL: `
			CREATE TABLE IF NOT EXISTS cost_breakdowns (
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				trip_id TEXT NOT NULL UNIQUE REFERENCES trips(id) ON DELETE CASCADE,
				total_sar INTEGER NOT NULL,
				per_person_sar INTEGER NOT NULL,
				assumptions TEXT NOT NULL DEFAULT '{}'
			);

			CREATE TABLE IF NOT EXISTS cost_items (
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				breakdown_id INTEGER NOT NULL REFERENCES cost_breakdowns(id) ON DELETE CASCADE,
				category TEXT NOT NULL,
				label_en TEXT NOT NULL,
				label_ar TEXT NOT NULL,
				amount_sar INTEGER NOT NULL,
				is_editable INTEGER NOT NULL DEFAULT 1,
				notes TEXT NOT NULL DEFAULT ''
			);

			CREATE INDEX IF NOT EXISTS idx_cost_items_breakdown ON cost_items(breakdown_id);
		`,
	},
	{
		Version: 4,
		Name:    "saved_itineraries",
		SQL: `
			CREATE TABLE IF NOT EXISTS saved_itineraries (
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				trip_id TEXT NOT NULL REFERENCES trips(id) ON DELETE CASCADE,
				title TEXT NOT NULL,
				share_token TEXT NOT NULL UNIQUE,
				saved_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
			);
		`,
	},
}

// Migrate applies all pending migrations
func Migrate(db *sql.DB) error {
	if err := initMigrationsTable(db); err != nil {
		return err
	}

	applied, err := appliedMigrations(db)
	if err != nil {
		return err
	}

	for _, m := range migrations {
		if applied[m.Version] {
			continue
		}
		if _, err := db.Exec(m.SQL); err != nil {
			return fmt.Errorf("failed to apply migration %d (%s): %w", m.Version, m.Name, err)
		}
		if _, err := db.Exec("INSERT INTO migrations (version, name) VALUES (?, ?)", m.Version, m.Name); err != nil {
			return fmt.Errorf("failed to record migration %d: %w", m.Version, err)
		}
		log.Printf("Applied migration %d: %s", m.Version, m.Name)
	}

	return nil
}

func initMigrationsTable(db *sql.DB) error {
	query := `
		CREATE TABLE IF NOT EXISTS migrations (
			version INTEGER PRIMARY KEY,
			name TEXT NOT NULL,
			applied_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`
	if _, err := db.Exec(query); err != nil {
		return fmt.Errorf("failed to create migrations table: %w", err)
	}
	return nil
}

func appliedMigrations(db *sql.DB) (map[int]bool, error) {
	rows, err := db.Query("SELECT version FROM migrations ORDER BY version")
	if err != nil {
		return nil, fmt.Errorf("failed to query migrations: %w", err)
	}
	defer rows.Close()

	applied := make(map[int]bool)
	for rows.Next() {
		var version int
		if err := rows.Scan(&version); err != nil {
			return nil, fmt.Errorf("failed to scan migration version: %w", err)
		}
		applied[version] = true
	}
	return applied, rows.Err()
}
