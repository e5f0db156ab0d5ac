package spatial

import (
	"github.com/golang/geo/s2"
)

// Earth's mean radius
const (
	EarthRadiusMeters = 6371000.0
	EarthRadiusKm     = 6371.0
)

// HaversineKm calculates the great-circle distance between two points in
// kilometers using the Haversine formula
func HaversineKm(lat1, lng1, lat2, lng2 float64) float64 {
	p1 := s2.LatLngFromDegrees(lat1, lng1)
	p2 := s2.LatLngFromDegrees(lat2, lng2)
	return p1.Distance(p2).Radians() * EarthRadiusKm
}

// HaversineMeters calculates the great-circle distance between two points in meters
func HaversineMeters(lat1, lng1, lat2, lng2 float64) float64 {
	p1 := s2.LatLngFromDegrees(lat1, lng1)
	p2 := s2.LatLngFromDegrees(lat2, lng2)
	return p1.Distance(p2).Radians() * EarthRadiusMeters
}
