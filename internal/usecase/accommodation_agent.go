package usecase

import (
	"context"
	"fmt"

	"tripgenie-service/internal/domain/entity"
	"tripgenie-service/pkg/logger"
)

// AccommodationSearchInput is the payload for the accommodation agent. It
// carries the lodging categories and currency from Phase 1.
type AccommodationSearchInput struct {
	Destination  string                         `json:"destination"`
	DurationDays int                            `json:"durationDays"`
	BudgetINR    float64                        `json:"budgetInr"`
	PeopleCount  int                            `json:"peopleCount"`
	TravelDates  string                         `json:"travelDates"`
	Preferences  []string                       `json:"preferences"`
	Categories   []entity.AccommodationCategory `json:"categories"`
	Currency     entity.Currency                `json:"currency"`
}

// AccommodationAgent finds concrete lodging options with nightly rates,
// booking links, and safety scores.
type AccommodationAgent struct {
	generator Generator
	logger    logger.Logger
}

// NewAccommodationAgent creates a new accommodation search agent
func NewAccommodationAgent(generator Generator, logger logger.Logger) *AccommodationAgent {
	return &AccommodationAgent{
		generator: generator,
		logger:    logger,
	}
}

// FindOptions runs one schema-validated accommodation search. Requires a
// destination profile from Phase 1; safe to run concurrently with the
// activity agent.
func (a *AccommodationAgent) FindOptions(ctx context.Context, req *entity.TripRequest, profile *entity.DestinationProfile) (*entity.AccommodationReport, error) {
	if profile == nil {
		return nil, fmt.Errorf("failed to find accommodation options for %s: destination profile is required", req.Destination)
	}

	input := AccommodationSearchInput{
		Destination:  req.Destination,
		DurationDays: req.DurationDays,
		BudgetINR:    req.BudgetINR,
		PeopleCount:  req.PeopleCount,
		TravelDates:  req.TravelDates,
		Preferences:  req.Preferences,
		Categories:   profile.Accommodation,
		Currency:     profile.Currency,
	}

	var report entity.AccommodationReport
	if err := a.generator.Generate(ctx, CapabilityAccommodationSearch, input, &report); err != nil {
		return nil, fmt.Errorf("failed to find accommodation options for %s: %w", req.Destination, err)
	}
	if err := report.Validate(); err != nil {
		return nil, fmt.Errorf("failed to find accommodation options for %s: %w", req.Destination, err)
	}

	a.logger.Info("Accommodation options found",
		"destination", req.Destination,
		"options", len(report.Options))

	return &report, nil
}
