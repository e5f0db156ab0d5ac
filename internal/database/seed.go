package database

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"log"

	"github.com/rihla/trip-planner-go/internal/models"
)

var seedRegions = []models.Region{
	{Slug: "riyadh", NameEn: "Riyadh", NameAr: "الرياض", Lat: 24.7136, Lng: 46.6753},
	{Slug: "makkah", NameEn: "Makkah Province", NameAr: "منطقة مكة المكرمة", Lat: 21.4858, Lng: 39.1925},
	{Slug: "madinah", NameEn: "Madinah", NameAr: "المدينة المنورة", Lat: 24.5247, Lng: 39.5692},
	{Slug: "eastern-province", NameEn: "Eastern Province", NameAr: "المنطقة الشرقية", Lat: 26.4207, Lng: 50.0888},
	{Slug: "asir", NameEn: "Asir", NameAr: "عسير", Lat: 18.2164, Lng: 42.5053},
	{Slug: "tabuk", NameEn: "Tabuk", NameAr: "تبوك", Lat: 28.3835, Lng: 36.5662},
}

var seedDestinations = []models.Destination{
	// Riyadh
	{Slug: "diriyah-at-turaif", RegionSlug: "riyadh", Category: models.CategoryAttraction, Tags: []string{"culture", "history", "unesco", "architecture"}, AvgDurationMins: 180, PriceLevel: 2, NameEn: "Diriyah At-Turaif District", NameAr: "حي الطريف بالدرعية", Lat: 24.7340, Lng: 46.5766, Rating: 4.7, ReviewCount: 15200},
	{Slug: "edge-of-the-world", RegionSlug: "riyadh", Category: models.CategoryNature, Tags: []string{"nature", "hiking", "photo-spot", "adventure"}, AvgDurationMins: 300, PriceLevel: 2, NameEn: "Edge of the World", NameAr: "حافة العالم", Lat: 24.9404, Lng: 45.9902, Rating: 4.8, ReviewCount: 8900},
	{Slug: "national-museum-riyadh", RegionSlug: "riyadh", Category: models.CategoryAttraction, Tags: []string{"culture", "history", "museum", "family"}, AvgDurationMins: 120, PriceLevel: 1, NameEn: "National Museum of Saudi Arabia", NameAr: "المتحف الوطني السعودي", Lat: 24.6473, Lng: 46.7103, Rating: 4.6, ReviewCount: 11400},
	{Slug: "boulevard-riyadh-city", RegionSlug: "riyadh", Category: models.CategoryEvent, Tags: []string{"entertainment", "nightlife", "family", "shopping"}, AvgDurationMins: 240, PriceLevel: 3, NameEn: "Boulevard Riyadh City", NameAr: "بوليفارد رياض سيتي", Lat: 24.7689, Lng: 46.6100, Rating: 4.5, ReviewCount: 22100},
	{Slug: "najd-village-restaurant", RegionSlug: "riyadh", Category: models.CategoryRestaurant, Tags: []string{"food", "traditional", "local-cuisine"}, AvgDurationMins: 90, PriceLevel: 2, NameEn: "Najd Village Restaurant", NameAr: "مطعم قرية نجد", Lat: 24.6960, Lng: 46.6846, Rating: 4.4, ReviewCount: 9800},
	{Slug: "kingdom-centre-sky-bridge", RegionSlug: "riyadh", Category: models.CategoryAttraction, Tags: []string{"city", "photo-spot", "architecture", "shopping"}, AvgDurationMins: 90, PriceLevel: 2, NameEn: "Kingdom Centre Sky Bridge", NameAr: "جسر المملكة المعلق", Lat: 24.7113, Lng: 46.6744, Rating: 4.5, ReviewCount: 17600},

	// Makkah Province (Jeddah and surroundings)
	{Slug: "al-balad-historic-district", RegionSlug: "makkah", Category: models.CategoryAttraction, Tags: []string{"culture", "history", "unesco", "photo-spot", "shopping", "architecture"}, AvgDurationMins: 180, PriceLevel: 1, NameEn: "Al-Balad Historic District", NameAr: "حي البلد التاريخي", Lat: 21.4848, Lng: 39.1862, Rating: 4.5, ReviewCount: 12840},
	{Slug: "jeddah-corniche-waterfront", RegionSlug: "makkah", Category: models.CategoryAttraction, Tags: []string{"nature", "city", "sunset", "free", "family", "walking"}, AvgDurationMins: 120, PriceLevel: 1, NameEn: "Jeddah Corniche & Waterfront", NameAr: "كورنيش جدة والواجهة البحرية", Lat: 21.5227, Lng: 39.1460, Rating: 4.4, ReviewCount: 18320},
	{Slug: "floating-mosque-al-rahma", RegionSlug: "makkah", Category: models.CategoryAttraction, Tags: []string{"culture", "religion", "photo-spot", "architecture", "free"}, AvgDurationMins: 45, PriceLevel: 1, NameEn: "Floating Mosque (Al Rahma Mosque)", NameAr: "مسجد الرحمة العائم", Lat: 21.5108, Lng: 39.1467, Rating: 4.6, ReviewCount: 9750},
	{Slug: "red-sea-diving-jeddah", RegionSlug: "makkah", Category: models.CategoryAdventure, Tags: []string{"adventure", "diving", "nature", "sea"}, AvgDurationMins: 240, PriceLevel: 3, NameEn: "Red Sea Diving Experience", NameAr: "تجربة الغوص في البحر الأحمر", Lat: 21.6001, Lng: 39.1034, Rating: 4.7, ReviewCount: 3200},
	{Slug: "medd-cafe-jeddah", RegionSlug: "makkah", Category: models.CategoryCafe, Tags: []string{"coffee", "sea-view", "relaxed"}, AvgDurationMins: 60, PriceLevel: 2, NameEn: "Medd Café", NameAr: "مقهى مد", Lat: 21.5713, Lng: 39.1085, Rating: 4.3, ReviewCount: 4100},

	// Madinah
	{Slug: "quba-mosque", RegionSlug: "madinah", Category: models.CategoryAttraction, Tags: []string{"culture", "religion", "history", "architecture"}, AvgDurationMins: 90, PriceLevel: 1, NameEn: "Quba Mosque", NameAr: "مسجد قباء", Lat: 24.4393, Lng: 39.6173, Rating: 4.8, ReviewCount: 21000},
	{Slug: "mount-uhud", RegionSlug: "madinah", Category: models.CategoryNature, Tags: []string{"history", "nature", "hiking"}, AvgDurationMins: 120, PriceLevel: 1, NameEn: "Mount Uhud", NameAr: "جبل أحد", Lat: 24.5094, Lng: 39.6140, Rating: 4.6, ReviewCount: 7600},
	{Slug: "dates-market-madinah", RegionSlug: "madinah", Category: models.CategoryShopping, Tags: []string{"shopping", "food", "local-cuisine", "traditional"}, AvgDurationMins: 60, PriceLevel: 2, NameEn: "Madinah Dates Market", NameAr: "سوق التمور بالمدينة", Lat: 24.4672, Lng: 39.6111, Rating: 4.4, ReviewCount: 5300},
	{Slug: "al-baik-madinah", RegionSlug: "madinah", Category: models.CategoryRestaurant, Tags: []string{"food", "fast-food", "local-favorite"}, AvgDurationMins: 45, PriceLevel: 1, NameEn: "Al Baik", NameAr: "البيك", Lat: 24.4686, Lng: 39.6142, Rating: 4.5, ReviewCount: 30200},

	// Eastern Province
	{Slug: "qatif-heritage-souq", RegionSlug: "eastern-province", Category: models.CategoryShopping, Tags: []string{"culture", "shopping", "traditional", "history"}, AvgDurationMins: 90, PriceLevel: 1, NameEn: "Qatif Heritage Souq", NameAr: "سوق القطيف التراثي", Lat: 26.5196, Lng: 50.0115, Rating: 4.2, ReviewCount: 2800},
	{Slug: "half-moon-bay", RegionSlug: "eastern-province", Category: models.CategoryNature, Tags: []string{"nature", "beach", "family", "sea"}, AvgDurationMins: 240, PriceLevel: 1, NameEn: "Half Moon Bay", NameAr: "شاطئ نصف القمر", Lat: 26.1551, Lng: 50.0617, Rating: 4.3, ReviewCount: 6100},
	{Slug: "ithra-center", RegionSlug: "eastern-province", Category: models.CategoryAttraction, Tags: []string{"culture", "museum", "architecture", "family"}, AvgDurationMins: 180, PriceLevel: 2, NameEn: "King Abdulaziz Center for World Culture (Ithra)", NameAr: "مركز الملك عبدالعزيز الثقافي العالمي (إثراء)", Lat: 26.3270, Lng: 50.1307, Rating: 4.7, ReviewCount: 13900},

	// Asir
	{Slug: "abha-cable-car", RegionSlug: "asir", Category: models.CategoryAdventure, Tags: []string{"nature", "mountains", "photo-spot", "adventure"}, AvgDurationMins: 120, PriceLevel: 2, NameEn: "Abha Cable Car", NameAr: "تلفريك أبها", Lat: 18.2298, Lng: 42.4979, Rating: 4.5, ReviewCount: 7200},
	{Slug: "rijal-almaa-village", RegionSlug: "asir", Category: models.CategoryAttraction, Tags: []string{"culture", "history", "architecture", "photo-spot"}, AvgDurationMins: 150, PriceLevel: 1, NameEn: "Rijal Almaa Heritage Village", NameAr: "قرية رجال ألمع التراثية", Lat: 18.1986, Lng: 42.2875, Rating: 4.6, ReviewCount: 4900},

	// Tabuk
	{Slug: "hegra-alula", RegionSlug: "tabuk", Category: models.CategoryAttraction, Tags: []string{"culture", "history", "unesco", "desert", "photo-spot"}, AvgDurationMins: 240, PriceLevel: 3, NameEn: "Hegra (Mada'in Salih)", NameAr: "الحِجر (مدائن صالح)", Lat: 26.7917, Lng: 37.9542, Rating: 4.9, ReviewCount: 10100},
	{Slug: "wadi-disah", RegionSlug: "tabuk", Category: models.CategoryNature, Tags: []string{"nature", "hiking", "desert", "adventure"}, AvgDurationMins: 300, PriceLevel: 2, NameEn: "Wadi Al Disah", NameAr: "وادي الديسة", Lat: 27.6581, Lng: 36.5103, Rating: 4.8, ReviewCount: 3600},
}

// Seed loads the reference catalog if the regions table is empty
func Seed(db *sql.DB) error {
	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM regions").Scan(&count); err != nil {
		return fmt.Errorf("failed to count regions: %w", err)
	}
	if count > 0 {
		return nil
	}

	return Transaction(db, func(tx *sql.Tx) error {
		for _, r := range seedRegions {
			_, err := tx.Exec(
				`INSERT INTO regions (slug, name_en, name_ar, desc_en, desc_ar, lat, lng)
				 VALUES (?, ?, ?, ?, ?, ?, ?)`,
				r.Slug, r.NameEn, r.NameAr, r.DescEn, r.DescAr, r.Lat, r.Lng,
			)
			if err != nil {
				return fmt.Errorf("failed to seed region %s: %w", r.Slug, err)
			}
		}

		for _, d := range seedDestinations {
			tags, err := json.Marshal(d.Tags)
			if err != nil {
				return fmt.Errorf("failed to marshal tags for %s: %w", d.Slug, err)
			}
			_, err = tx.Exec(
				`INSERT INTO destinations
				 (slug, region_slug, category, tags, avg_duration_mins, price_level,
				  name_en, name_ar, desc_en, desc_ar, lat, lng, rating, review_count,
				  google_maps_url, trip_advisor_url, official_url)
				 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
				d.Slug, d.RegionSlug, d.Category, string(tags), d.AvgDurationMins, d.PriceLevel,
				d.NameEn, d.NameAr, d.DescEn, d.DescAr, d.Lat, d.Lng, d.Rating, d.ReviewCount,
				d.GoogleMapsURL, d.TripAdvisorURL, d.OfficialURL,
			)
			if err != nil {
				return fmt.Errorf("failed to seed destination %s: %w", d.Slug, err)
			}
		}

		log.Printf("Seeded catalog: %d regions, %d destinations", len(seedRegions), len(seedDestinations))
		return nil
	})
}
