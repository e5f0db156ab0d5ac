package providers

import (
	"fmt"
	"net/url"
)

// TripAdvisorLinkProvider builds TripAdvisor review URLs from curated
// location metadata, falling back to a search URL
type TripAdvisorLinkProvider struct{}

// Name implements Provider
func (p *TripAdvisorLinkProvider) Name() string { return "tripadvisor" }

// BuildURL returns a curated URL when given, a direct attraction review URL
// when location IDs are present, otherwise a search URL
func (p *TripAdvisorLinkProvider) BuildURL(params map[string]string) string {
	if u := params["url"]; u != "" {
		return u
	}
	if locationID := params["locationId"]; locationID != "" {
		return fmt.Sprintf("https://www.tripadvisor.com/Attraction_Review-g%s-d%s",
			params["geoId"], locationID)
	}
	return "https://www.tripadvisor.com/Search?q=" + url.QueryEscape(params["query"])
}
