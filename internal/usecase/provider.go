package usecase

import (
	"context"

	"tripgenie-service/internal/domain/entity"
)

// Provider modes selectable via configuration.
const (
	ProviderModeLive    = "live"
	ProviderModeFixture = "fixture"
)

// ItineraryProvider produces the itinerary bundle for a trip request. The
// live implementation runs the multi-agent pipeline; the fixture
// implementation serves a static bundle for demos and offline work. The
// choice is made once at wiring time, never branched inline.
type ItineraryProvider interface {
	GenerateItineraries(ctx context.Context, req *entity.TripRequest) (*entity.ItineraryBundle, error)
}

// LiveProvider backs ItineraryProvider with the master orchestrator.
type LiveProvider struct {
	orchestrator *MasterOrchestrator
}

// NewLiveProvider creates a provider backed by live generation
func NewLiveProvider(orchestrator *MasterOrchestrator) *LiveProvider {
	return &LiveProvider{orchestrator: orchestrator}
}

// GenerateItineraries runs the full multi-agent pipeline.
func (p *LiveProvider) GenerateItineraries(ctx context.Context, req *entity.TripRequest) (*entity.ItineraryBundle, error) {
	return p.orchestrator.GenerateItineraries(ctx, req)
}
