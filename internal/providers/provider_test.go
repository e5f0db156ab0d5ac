package providers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry(t *testing.T) {
	r := NewRegistry("aff-123")

	booking := r.Get("booking")
	require.NotNil(t, booking)
	assert.Equal(t, "booking", booking.Name())

	ta := r.Get("tripadvisor")
	require.NotNil(t, ta)
	assert.Equal(t, "tripadvisor", ta.Name())

	assert.Nil(t, r.Get("expedia"))
}

func TestBookingBuildURL(t *testing.T) {
	p := &BookingLinkProvider{AffiliateID: "aff-123"}

	t.Run("curated url wins", func(t *testing.T) {
		u := p.BuildURL(map[string]string{"url": "https://www.booking.com/hotel/sa/ritz.html"})
		assert.Equal(t, "https://www.booking.com/hotel/sa/ritz.html", u)
	})

	t.Run("city search with dates and affiliate", func(t *testing.T) {
		u := p.BuildURL(map[string]string{
			"city":     "Riyadh",
			"checkin":  "2025-03-01",
			"checkout": "2025-03-05",
		})
		assert.Contains(t, u, "https://www.booking.com/searchresults.html?")
		assert.Contains(t, u, "ss=Riyadh")
		assert.Contains(t, u, "checkin=2025-03-01")
		assert.Contains(t, u, "checkout=2025-03-05")
		assert.Contains(t, u, "aid=aff-123")
	})

	t.Run("no affiliate id omits aid", func(t *testing.T) {
		bare := &BookingLinkProvider{}
		u := bare.BuildURL(map[string]string{"city": "Jeddah"})
		assert.NotContains(t, u, "aid=")
	})

	t.Run("defaults to country-wide search", func(t *testing.T) {
		u := p.BuildURL(map[string]string{})
		assert.Contains(t, u, "ss=Saudi+Arabia")
	})
}

func TestTripAdvisorBuildURL(t *testing.T) {
	p := &TripAdvisorLinkProvider{}

	t.Run("curated url wins", func(t *testing.T) {
		u := p.BuildURL(map[string]string{"url": "https://www.tripadvisor.com/x", "locationId": "42"})
		assert.Equal(t, "https://www.tripadvisor.com/x", u)
	})

	t.Run("location ids build a review url", func(t *testing.T) {
		u := p.BuildURL(map[string]string{"geoId": "293995", "locationId": "317469"})
		assert.Equal(t, "https://www.tripadvisor.com/Attraction_Review-g293995-d317469", u)
	})

	t.Run("falls back to escaped search", func(t *testing.T) {
		u := p.BuildURL(map[string]string{"query": "Edge of the World"})
		assert.Equal(t, "https://www.tripadvisor.com/Search?q=Edge+of+the+World", u)
	})
}
