package usecase

import "context"

// Generation capabilities. Each maps to one narrow, schema-bound prompt on
// the generation gateway.
const (
	CapabilityDestinationIntelligence = "destination-intelligence"
	CapabilityActivityDiscovery       = "activity-discovery"
	CapabilityAccommodationSearch     = "accommodation-search"
	CapabilityCostEstimation          = "cost-estimation"
	CapabilityItinerarySynthesis      = "itinerary-synthesis"
)

// Generator is the structured-generation boundary. Given a capability name
// and an input payload it fills output with a schema-conforming object or
// returns an error. Implementations must never return a partially filled
// output alongside a nil error.
type Generator interface {
	Generate(ctx context.Context, capability string, input interface{}, output interface{}) error
}
