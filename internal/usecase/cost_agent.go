package usecase

import (
	"context"
	"fmt"

	"tripgenie-service/internal/domain/entity"
	"tripgenie-service/pkg/logger"
)

// NightlyRate is a flattened accommodation option fed to cost estimation.
type NightlyRate struct {
	Category     string  `json:"category"`
	CostPerNight float64 `json:"costPerNight"`
}

// ActivityCost is a flattened activity fed to cost estimation.
type ActivityCost struct {
	Name     string  `json:"name"`
	Cost     float64 `json:"cost"`
	Category string  `json:"category"`
}

// CostEstimationInput is the payload for the cost agent. It consumes the
// Phase 1 currency and cost profile plus the flattened Phase 2 outputs.
type CostEstimationInput struct {
	Destination   string                  `json:"destination"`
	Origin        string                  `json:"origin"`
	DurationDays  int                     `json:"durationDays"`
	PeopleCount   int                     `json:"peopleCount"`
	TravelDates   string                  `json:"travelDates"`
	BudgetINR     float64                 `json:"budgetInr"`
	Preferences   []string                `json:"preferences"`
	Currency      entity.Currency         `json:"currency"`
	Costs         entity.LocalCostProfile `json:"costs"`
	NightlyRates  []NightlyRate           `json:"nightlyRates"`
	ActivityCosts []ActivityCost          `json:"activityCosts"`
}

// defaultOrigin is where flight estimates depart from when the request
// does not say otherwise.
const defaultOrigin = "India"

// CostAgent estimates realistic budget bands for the whole trip.
type CostAgent struct {
	generator Generator
	logger    logger.Logger
}

// NewCostAgent creates a new cost estimation agent
func NewCostAgent(generator Generator, logger logger.Logger) *CostAgent {
	return &CostAgent{
		generator: generator,
		logger:    logger,
	}
}

// EstimateCosts runs one schema-validated cost estimation call, consuming
// the Phase 1 and Phase 2 outputs.
func (a *CostAgent) EstimateCosts(ctx context.Context, req *entity.TripRequest, profile *entity.DestinationProfile, catalog *entity.ActivityCatalog, report *entity.AccommodationReport) (*entity.CostEstimate, error) {
	if profile == nil || catalog == nil || report == nil {
		return nil, fmt.Errorf("failed to estimate trip costs for %s: upstream agent outputs are required", req.Destination)
	}

	rates := make([]NightlyRate, 0, len(report.Options))
	for _, h := range report.Options {
		rates = append(rates, NightlyRate{Category: h.Category, CostPerNight: h.CostPerNight})
	}

	flat := catalog.Flatten()
	activityCosts := make([]ActivityCost, 0, len(flat))
	for _, act := range flat {
		activityCosts = append(activityCosts, ActivityCost{Name: act.Name, Cost: act.Cost, Category: act.Category})
	}

	input := CostEstimationInput{
		Destination:   req.Destination,
		Origin:        defaultOrigin,
		DurationDays:  req.DurationDays,
		PeopleCount:   req.PeopleCount,
		TravelDates:   req.TravelDates,
		BudgetINR:     req.BudgetINR,
		Preferences:   req.Preferences,
		Currency:      profile.Currency,
		Costs:         profile.Costs,
		NightlyRates:  rates,
		ActivityCosts: activityCosts,
	}

	var estimate entity.CostEstimate
	if err := a.generator.Generate(ctx, CapabilityCostEstimation, input, &estimate); err != nil {
		return nil, fmt.Errorf("failed to estimate trip costs for %s: %w", req.Destination, err)
	}
	if err := estimate.Validate(); err != nil {
		return nil, fmt.Errorf("failed to estimate trip costs for %s: %w", req.Destination, err)
	}

	a.logger.Info("Trip costs estimated",
		"destination", req.Destination,
		"budgetTier", estimate.TotalTripCost.Budget,
		"luxuryTier", estimate.TotalTripCost.Luxury)

	return &estimate, nil
}
