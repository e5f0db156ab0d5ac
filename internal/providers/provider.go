package providers

// Provider is a link-only adapter for an external travel platform. Adapters
// construct outbound URLs from destination metadata; they never scrape or
// call unofficial APIs.
type Provider interface {
	Name() string
	BuildURL(params map[string]string) string
}

// Registry holds the registered providers by name
type Registry struct {
	providers map[string]Provider
}

// NewRegistry creates a registry with the default providers registered
func NewRegistry(bookingAffiliateID string) *Registry {
	r := &Registry{providers: make(map[string]Provider)}
	r.Register(&BookingLinkProvider{AffiliateID: bookingAffiliateID})
	r.Register(&TripAdvisorLinkProvider{})
	return r
}

// Register adds a provider, replacing any with the same name
func (r *Registry) Register(p Provider) {
	r.providers[p.Name()] = p
}

// Get returns a provider by name, or nil
func (r *Registry) Get(name string) Provider {
	return r.providers[name]
}
