package usecase_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tripgenie-service/internal/domain/entity"
	"tripgenie-service/internal/usecase"
	"tripgenie-service/pkg/logger"
	"tripgenie-service/pkg/metrics"
)

// fakeGenerator serves canned outputs per capability and records every
// call. Safe for concurrent use since Phase 2 calls it from two goroutines.
type fakeGenerator struct {
	mu      sync.Mutex
	outputs map[string]interface{}
	errs    map[string]error
	calls   []string
}

func (g *fakeGenerator) Generate(ctx context.Context, capability string, input, output interface{}) error {
	g.mu.Lock()
	g.calls = append(g.calls, capability)
	g.mu.Unlock()

	if err := g.errs[capability]; err != nil {
		return err
	}
	canned, ok := g.outputs[capability]
	if !ok {
		return fmt.Errorf("no canned output for capability %s", capability)
	}
	raw, err := json.Marshal(canned)
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, output)
}

func (g *fakeGenerator) called(capability string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	for _, c := range g.calls {
		if c == capability {
			return true
		}
	}
	return false
}

func testRequest() *entity.TripRequest {
	return &entity.TripRequest{
		Destination:  "Goa",
		DurationDays: 3,
		PeopleCount:  2,
		BudgetINR:    50000,
		TravelDates:  "2026-11-10",
	}
}

func testProfile() entity.DestinationProfile {
	return entity.DestinationProfile{
		Destination: "Goa",
		Country:     "India",
		Currency:    entity.Currency{Local: "INR", ExchangeRate: 1},
		Transportation: []entity.LocalTransportOption{
			{Type: "Scooter Rental", CostRange: entity.CostRange{Min: 300, Max: 500}, SafetyScore: 70},
		},
		Accommodation: []entity.AccommodationCategory{
			{Category: "Mid-range", AverageCostPerNight: 3500, SafetyScore: 85},
		},
		Safety: entity.SafetyOverview{OverallScore: 85},
	}
}

func testCatalog() entity.ActivityCatalog {
	return entity.ActivityCatalog{
		Destination: "Goa",
		Categories: []entity.ActivityCategory{
			{
				Category: "Watersports",
				Activities: []entity.Activity{
					{ID: "act-surf", Name: "Surf Lesson", Cost: 1500, SafetyScore: 78, Difficulty: entity.DifficultyModerate},
				},
			},
		},
	}
}

func testReport() entity.AccommodationReport {
	return entity.AccommodationReport{
		Destination: "Goa",
		Options: []entity.Hotel{
			{ID: "hotel-a", Name: "Hotel A", CostPerNight: 2000, SafetyScore: 80},
			{ID: "hotel-b", Name: "Hotel B", CostPerNight: 3500, SafetyScore: 85},
			{ID: "hotel-c", Name: "Hotel C", CostPerNight: 5000, SafetyScore: 95},
		},
	}
}

func testEstimate() entity.CostEstimate {
	return entity.CostEstimate{
		Destination:   "Goa",
		TotalTripCost: entity.CostBand{Budget: 25000, MidRange: 45000, Luxury: 90000},
		Flights:       entity.FlightEstimate{Route: "DEL-GOI", EconomyAvg: 12000},
		DailyFood:     entity.CostBand{Budget: 800, MidRange: 1500, Luxury: 3500},
	}
}

func testBundle() entity.ItineraryBundle {
	makeItinerary := func(id, vibe string) entity.Itinerary {
		it := entity.Itinerary{
			ID:   id,
			Vibe: vibe,
			HotelOptions: []entity.Hotel{
				{ID: id + "-h1", Name: "Hotel One", CostPerNight: 2000, SafetyScore: 80},
				{ID: id + "-h2", Name: "Hotel Two", CostPerNight: 3500, SafetyScore: 85},
				{ID: id + "-h3", Name: "Hotel Three", CostPerNight: 5000, SafetyScore: 95},
			},
			CommuteOptions: []entity.CommuteOption{
				{ID: id + "-c1", Type: "Scooter", Cost: 400, SafetyScore: 70},
				{ID: id + "-c2", Type: "Taxi", Cost: 1200, SafetyScore: 92},
				{ID: id + "-c3", Type: "Bus", Cost: 150, SafetyScore: 80},
			},
			// Synthesis sometimes emits stale derived totals; the
			// orchestrator must zero them.
			Cost:               entity.CostBreakdown{Flights: 12000, Food: 1500, Accommodation: 9999, Total: 12345},
			OverallSafetyScore: 85,
		}
		for day := 1; day <= 3; day++ {
			it.DailyPlan = append(it.DailyPlan, entity.DailyPlan{
				Day: day,
				Activities: []entity.Activity{
					{ID: fmt.Sprintf("%s-act-%d", id, day), Name: "Activity", Cost: 500, SafetyScore: 85, Difficulty: entity.DifficultyEasy},
				},
			})
		}
		return it
	}

	return entity.ItineraryBundle{
		Itineraries: []entity.Itinerary{
			makeItinerary("it-1", "Cultural Immersion"),
			makeItinerary("it-2", "Adventure & Leisure"),
			makeItinerary("it-3", "Hidden Gems"),
		},
	}
}

func happyGenerator() *fakeGenerator {
	return &fakeGenerator{
		outputs: map[string]interface{}{
			usecase.CapabilityDestinationIntelligence: testProfile(),
			usecase.CapabilityActivityDiscovery:       testCatalog(),
			usecase.CapabilityAccommodationSearch:     testReport(),
			usecase.CapabilityCostEstimation:          testEstimate(),
			usecase.CapabilityItinerarySynthesis:      testBundle(),
		},
		errs: map[string]error{},
	}
}

func newOrchestrator(gen usecase.Generator) *usecase.MasterOrchestrator {
	log := logger.NewNop()
	m := metrics.NewMetrics(fmt.Sprintf("test_orch_%d", metricsSeq()))
	return usecase.NewMasterOrchestrator(
		usecase.NewDestinationAgent(gen, nil, log),
		usecase.NewActivityAgent(gen, log),
		usecase.NewAccommodationAgent(gen, log),
		usecase.NewCostAgent(gen, log),
		gen,
		m,
		log,
	)
}

// metricsSeq keeps prometheus metric names unique per registration, since
// promauto registers into the default registry.
var metricsCounter int
var metricsMu sync.Mutex

func metricsSeq() int {
	metricsMu.Lock()
	defer metricsMu.Unlock()
	metricsCounter++
	return metricsCounter
}

func TestOrchestrator_HappyPath(t *testing.T) {
	gen := happyGenerator()
	orch := newOrchestrator(gen)

	bundle, err := orch.GenerateItineraries(context.Background(), testRequest())
	require.NoError(t, err)
	require.Len(t, bundle.Itineraries, 3)

	// All five capabilities ran, including both Phase 2 agents.
	for _, cap := range []string{
		usecase.CapabilityDestinationIntelligence,
		usecase.CapabilityActivityDiscovery,
		usecase.CapabilityAccommodationSearch,
		usecase.CapabilityCostEstimation,
		usecase.CapabilityItinerarySynthesis,
	} {
		assert.True(t, gen.called(cap), "capability %s was not invoked", cap)
	}

	// Vibes are pairwise distinct.
	vibes := map[string]bool{}
	for _, it := range bundle.Itineraries {
		vibes[it.Vibe] = true
	}
	assert.Len(t, vibes, 3)

	// Derived cost fields are zeroed; only the recalculation engine may
	// produce them.
	for _, it := range bundle.Itineraries {
		assert.Zero(t, it.Cost.Accommodation, "itinerary %s", it.ID)
		assert.Zero(t, it.Cost.Activities, "itinerary %s", it.ID)
		assert.Zero(t, it.Cost.Commute, "itinerary %s", it.ID)
		assert.Zero(t, it.Cost.Total, "itinerary %s", it.ID)
		assert.Equal(t, 12000.0, it.Cost.Flights, "itinerary %s", it.ID)
		assert.Equal(t, 1500.0, it.Cost.Food, "itinerary %s", it.ID)
	}
}

func TestOrchestrator_PhaseFailuresAreTagged(t *testing.T) {
	tests := []struct {
		name       string
		failingCap string
		wantPhase  string
	}{
		{"destination failure", usecase.CapabilityDestinationIntelligence, usecase.PhaseDestinationIntelligence},
		{"activity failure", usecase.CapabilityActivityDiscovery, usecase.PhaseParallelDiscovery},
		{"accommodation failure", usecase.CapabilityAccommodationSearch, usecase.PhaseParallelDiscovery},
		{"cost failure", usecase.CapabilityCostEstimation, usecase.PhaseCostEstimation},
		{"synthesis failure", usecase.CapabilityItinerarySynthesis, usecase.PhaseSynthesis},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gen := happyGenerator()
			gen.errs[tt.failingCap] = errors.New("gateway unavailable")
			orch := newOrchestrator(gen)

			bundle, err := orch.GenerateItineraries(context.Background(), testRequest())
			require.Error(t, err)
			assert.Nil(t, bundle, "failed runs must not return partial results")

			var phaseErr *usecase.PhaseError
			require.ErrorAs(t, err, &phaseErr)
			assert.Equal(t, tt.wantPhase, phaseErr.Phase)
			assert.Equal(t, "Goa", phaseErr.Destination)
		})
	}
}

func TestOrchestrator_RejectsInvalidRequest(t *testing.T) {
	gen := happyGenerator()
	orch := newOrchestrator(gen)

	req := testRequest()
	req.DurationDays = 0

	_, err := orch.GenerateItineraries(context.Background(), req)
	require.Error(t, err)
	assert.False(t, gen.called(usecase.CapabilityDestinationIntelligence),
		"no agent may run for an invalid request")
}

func TestOrchestrator_RejectsDuplicateVibes(t *testing.T) {
	gen := happyGenerator()
	bundle := testBundle()
	bundle.Itineraries[2].Vibe = bundle.Itineraries[0].Vibe
	gen.outputs[usecase.CapabilityItinerarySynthesis] = bundle
	orch := newOrchestrator(gen)

	_, err := orch.GenerateItineraries(context.Background(), testRequest())
	require.Error(t, err)

	var phaseErr *usecase.PhaseError
	require.ErrorAs(t, err, &phaseErr)
	assert.Equal(t, usecase.PhaseSynthesis, phaseErr.Phase)
}

func TestOrchestrator_RejectsWrongItineraryCount(t *testing.T) {
	gen := happyGenerator()
	bundle := testBundle()
	bundle.Itineraries = bundle.Itineraries[:2]
	gen.outputs[usecase.CapabilityItinerarySynthesis] = bundle
	orch := newOrchestrator(gen)

	_, err := orch.GenerateItineraries(context.Background(), testRequest())
	require.Error(t, err)

	var phaseErr *usecase.PhaseError
	require.ErrorAs(t, err, &phaseErr)
	assert.Equal(t, usecase.PhaseSynthesis, phaseErr.Phase)
}
