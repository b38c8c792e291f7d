package usecase

import (
	"context"
	"fmt"
	"strings"

	"tripgenie-service/internal/domain/entity"
	"tripgenie-service/internal/domain/repository"
	"tripgenie-service/pkg/logger"
)

// DestinationIntelligenceInput is the payload for the destination agent.
type DestinationIntelligenceInput struct {
	Destination  string  `json:"destination"`
	DurationDays int     `json:"durationDays"`
	BudgetINR    float64 `json:"budgetInr"`
	TravelDates  string  `json:"travelDates"`
	PeopleCount  int     `json:"peopleCount"`
}

// DestinationAgent gathers destination intelligence: transport, lodging
// categories, local costs, climate, culture, and safety. It is the first
// agent to run and its output feeds every other agent.
type DestinationAgent struct {
	generator  Generator
	currencies repository.CurrencyRepository
	logger     logger.Logger
}

// NewDestinationAgent creates a new destination intelligence agent. The
// currency repository is optional; when present it supplies a curated
// exchange rate for profiles generated without a usable one.
func NewDestinationAgent(generator Generator, currencies repository.CurrencyRepository, logger logger.Logger) *DestinationAgent {
	return &DestinationAgent{
		generator:  generator,
		currencies: currencies,
		logger:     logger,
	}
}

// GatherIntelligence validates the request, invokes the generation client,
// and validates the returned profile. No retries; that is the caller's call.
func (a *DestinationAgent) GatherIntelligence(ctx context.Context, req *entity.TripRequest) (*entity.DestinationProfile, error) {
	if strings.TrimSpace(req.Destination) == "" {
		return nil, fmt.Errorf("failed to gather destination intelligence: destination is empty")
	}
	if req.DurationDays < 1 {
		return nil, fmt.Errorf("failed to gather destination intelligence for %s: invalid duration %d", req.Destination, req.DurationDays)
	}

	input := DestinationIntelligenceInput{
		Destination:  req.Destination,
		DurationDays: req.DurationDays,
		BudgetINR:    req.BudgetINR,
		TravelDates:  req.TravelDates,
		PeopleCount:  req.PeopleCount,
	}

	a.logger.Debug("Gathering destination intelligence", "destination", req.Destination)

	var profile entity.DestinationProfile
	if err := a.generator.Generate(ctx, CapabilityDestinationIntelligence, input, &profile); err != nil {
		return nil, fmt.Errorf("failed to gather destination intelligence for %s: %w", req.Destination, err)
	}
	a.patchExchangeRate(ctx, &profile)
	if err := profile.Validate(); err != nil {
		return nil, fmt.Errorf("failed to gather destination intelligence for %s: %w", req.Destination, err)
	}

	a.logger.Info("Destination intelligence gathered",
		"destination", profile.Destination,
		"country", profile.Country,
		"transportOptions", len(profile.Transportation),
		"accommodationCategories", len(profile.Accommodation))

	return &profile, nil
}

// patchExchangeRate fills a missing or non-positive exchange rate from the
// curated currency table. Validation still rejects the profile when no
// curated rate exists either.
func (a *DestinationAgent) patchExchangeRate(ctx context.Context, profile *entity.DestinationProfile) {
	if profile.Currency.ExchangeRate > 0 || a.currencies == nil || profile.Currency.Local == "" {
		return
	}
	ref, err := a.currencies.GetByCode(ctx, profile.Currency.Local)
	if err != nil {
		a.logger.Warn("No curated exchange rate for currency", "currency", profile.Currency.Local, "error", err)
		return
	}
	a.logger.Info("Exchange rate filled from reference table",
		"currency", profile.Currency.Local,
		"rate", ref.RateToINR)
	profile.Currency.ExchangeRate = ref.RateToINR
}
