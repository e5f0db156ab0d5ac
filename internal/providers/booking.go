package providers

import "net/url"

// BookingLinkProvider builds accommodation search URLs. In production this
// would be replaced by the official Booking.com Affiliate Partner API.
type BookingLinkProvider struct {
	AffiliateID string
}

// Name implements Provider
func (p *BookingLinkProvider) Name() string { return "booking" }

// BuildURL returns a curated URL when given, otherwise a search URL for the
// city (or query) with optional check-in/check-out dates
func (p *BookingLinkProvider) BuildURL(params map[string]string) string {
	if u := params["url"]; u != "" {
		return u
	}

	query := params["city"]
	if query == "" {
		query = params["query"]
	}
	if query == "" {
		query = "Saudi Arabia"
	}

	qs := url.Values{}
	qs.Set("ss", query)
	qs.Set("checkin", params["checkin"])
	qs.Set("checkout", params["checkout"])
	if p.AffiliateID != "" {
		qs.Set("aid", p.AffiliateID)
	}
	return "https://www.booking.com/searchresults.html?" + qs.Encode()
}
