package usecase

import (
	"context"
	"fmt"

	"tripgenie-service/internal/domain/entity"
	"tripgenie-service/pkg/logger"
)

// ActivityDiscoveryInput is the payload for the activity agent. It carries
// the slice of destination intelligence the agent depends on: climate,
// culture, and local cost bands.
type ActivityDiscoveryInput struct {
	Destination  string                  `json:"destination"`
	DurationDays int                     `json:"durationDays"`
	Preferences  []string                `json:"preferences"`
	BudgetINR    float64                 `json:"budgetInr"`
	PeopleCount  int                     `json:"peopleCount"`
	TravelDates  string                  `json:"travelDates"`
	Climate      entity.Climate          `json:"climate"`
	Culture      entity.Culture          `json:"culture"`
	Costs        entity.LocalCostProfile `json:"costs"`
}

// ActivityAgent discovers activities across categories, with per-activity
// costs, safety scores, and reviews.
type ActivityAgent struct {
	generator Generator
	logger    logger.Logger
}

// NewActivityAgent creates a new activity discovery agent
func NewActivityAgent(generator Generator, logger logger.Logger) *ActivityAgent {
	return &ActivityAgent{
		generator: generator,
		logger:    logger,
	}
}

// DiscoverActivities runs one schema-validated discovery call. Requires a
// destination profile from Phase 1; safe to run concurrently with the
// accommodation agent since neither reads the other's output.
func (a *ActivityAgent) DiscoverActivities(ctx context.Context, req *entity.TripRequest, profile *entity.DestinationProfile) (*entity.ActivityCatalog, error) {
	if profile == nil {
		return nil, fmt.Errorf("failed to discover activities for %s: destination profile is required", req.Destination)
	}

	input := ActivityDiscoveryInput{
		Destination:  req.Destination,
		DurationDays: req.DurationDays,
		Preferences:  req.Preferences,
		BudgetINR:    req.BudgetINR,
		PeopleCount:  req.PeopleCount,
		TravelDates:  req.TravelDates,
		Climate:      profile.Climate,
		Culture:      profile.Culture,
		Costs:        profile.Costs,
	}

	var catalog entity.ActivityCatalog
	if err := a.generator.Generate(ctx, CapabilityActivityDiscovery, input, &catalog); err != nil {
		return nil, fmt.Errorf("failed to discover activities for %s: %w", req.Destination, err)
	}
	if err := catalog.Validate(); err != nil {
		return nil, fmt.Errorf("failed to discover activities for %s: %w", req.Destination, err)
	}

	a.logger.Info("Activities discovered",
		"destination", req.Destination,
		"categories", len(catalog.Categories),
		"activities", len(catalog.Flatten()))

	return &catalog, nil
}
