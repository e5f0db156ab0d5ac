package spatial

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHaversineKm(t *testing.T) {
	// Riyadh to Jeddah, roughly 850 km
	d := HaversineKm(24.7136, 46.6753, 21.4858, 39.1925)
	assert.InDelta(t, 850, d, 30)

	assert.InDelta(t, 0, HaversineKm(24.7136, 46.6753, 24.7136, 46.6753), 1e-9)

	// Symmetric
	assert.InDelta(t,
		HaversineKm(24.7136, 46.6753, 28.3835, 36.5662),
		HaversineKm(28.3835, 36.5662, 24.7136, 46.6753),
		1e-9)
}

func TestHaversineMeters(t *testing.T) {
	km := HaversineKm(24.7136, 46.6753, 26.4207, 50.0888)
	m := HaversineMeters(24.7136, 46.6753, 26.4207, 50.0888)
	assert.InDelta(t, km*1000, m, 1e-6)
}
