// internal/interface/fixture/provider.go
package fixture

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"

	"tripgenie-service/internal/domain/entity"
	"tripgenie-service/pkg/logger"
)

//go:embed bundle.json
var bundleJSON []byte

// Provider serves a static itinerary bundle adapted to the requested
// destination and duration. It exists for demos, offline development, and
// as a presentation-layer recovery strategy; it never mixes with the live
// generation path.
type Provider struct {
	logger logger.Logger
}

// NewProvider creates a static fixture provider
func NewProvider(logger logger.Logger) *Provider {
	return &Provider{logger: logger}
}

// GenerateItineraries returns a fresh copy of the embedded bundle with the
// destination renamed and daily plans stretched or trimmed to the
// requested duration.
func (p *Provider) GenerateItineraries(ctx context.Context, req *entity.TripRequest) (*entity.ItineraryBundle, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	// Decode per call so callers can never share or mutate the template.
	var bundle entity.ItineraryBundle
	if err := json.Unmarshal(bundleJSON, &bundle); err != nil {
		return nil, fmt.Errorf("fixture bundle is corrupt: %w", err)
	}

	bundle.DestinationOverview.Destination = req.Destination
	for i := range bundle.Itineraries {
		it := &bundle.Itineraries[i]
		it.Title = fmt.Sprintf("%s: %s", req.Destination, it.Title)
		it.DailyPlan = fitDuration(it.DailyPlan, req.DurationDays)
		it.Cost.ResetDerived()
	}

	if err := bundle.Validate(req.DurationDays); err != nil {
		return nil, fmt.Errorf("fixture bundle invalid for %d days: %w", req.DurationDays, err)
	}

	p.logger.Info("Served fixture itinerary bundle",
		"destination", req.Destination,
		"durationDays", req.DurationDays)

	return &bundle, nil
}

// fitDuration renumbers the template days to cover exactly durationDays,
// cycling through the template when the trip is longer than it. Cloned
// days get suffixed activity ids to keep ids unique per itinerary.
func fitDuration(template []entity.DailyPlan, durationDays int) []entity.DailyPlan {
	if len(template) == 0 {
		return nil
	}
	days := make([]entity.DailyPlan, 0, durationDays)
	for day := 1; day <= durationDays; day++ {
		src := template[(day-1)%len(template)]
		plan := entity.DailyPlan{
			Day:             day,
			Title:           src.Title,
			Theme:           src.Theme,
			LogisticalNotes: src.LogisticalNotes,
		}
		plan.Activities = make([]entity.Activity, len(src.Activities))
		copy(plan.Activities, src.Activities)
		if day > len(template) {
			for i := range plan.Activities {
				plan.Activities[i].ID = fmt.Sprintf("%s-d%d", plan.Activities[i].ID, day)
			}
		}
		days = append(days, plan)
	}
	return days
}
