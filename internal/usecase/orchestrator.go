package usecase

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"tripgenie-service/internal/domain/entity"
	"tripgenie-service/pkg/logger"
	"tripgenie-service/pkg/metrics"
)

// SynthesisInput is the payload for the final synthesis call: the raw user
// request plus every prior phase's output.
type SynthesisInput struct {
	Request       entity.TripRequest         `json:"request"`
	Destination   entity.DestinationProfile  `json:"destination"`
	Activities    entity.ActivityCatalog     `json:"activities"`
	Accommodation entity.AccommodationReport `json:"accommodation"`
	Costs         entity.CostEstimate        `json:"costs"`
}

// MasterOrchestrator sequences the four specialized agents and the final
// synthesis call. Four ordered phases, one fork-join point, no loops:
//
//	1. destination intelligence (required by everything downstream)
//	2. activity discovery + accommodation search, concurrently
//	3. cost estimation
//	4. synthesis into exactly three itinerary variants
//
// Any phase failing aborts the whole run; there is no partial result.
type MasterOrchestrator struct {
	destinationAgent   *DestinationAgent
	activityAgent      *ActivityAgent
	accommodationAgent *AccommodationAgent
	costAgent          *CostAgent
	generator          Generator
	metrics            *metrics.Metrics
	logger             logger.Logger
}

// NewMasterOrchestrator creates a new master orchestrator
func NewMasterOrchestrator(
	destinationAgent *DestinationAgent,
	activityAgent *ActivityAgent,
	accommodationAgent *AccommodationAgent,
	costAgent *CostAgent,
	generator Generator,
	m *metrics.Metrics,
	logger logger.Logger,
) *MasterOrchestrator {
	return &MasterOrchestrator{
		destinationAgent:   destinationAgent,
		activityAgent:      activityAgent,
		accommodationAgent: accommodationAgent,
		costAgent:          costAgent,
		generator:          generator,
		metrics:            m,
		logger:             logger,
	}
}

// GenerateItineraries runs the full pipeline for one trip request and
// returns a validated bundle of three itineraries, or a PhaseError naming
// the phase that failed.
func (o *MasterOrchestrator) GenerateItineraries(ctx context.Context, req *entity.TripRequest) (*entity.ItineraryBundle, error) {
	if err := req.Validate(); err != nil {
		return nil, &PhaseError{Phase: PhaseDestinationIntelligence, Destination: req.Destination, Err: err}
	}

	o.logger.Info("Starting multi-agent itinerary generation",
		"destination", req.Destination,
		"durationDays", req.DurationDays,
		"peopleCount", req.PeopleCount)

	// Phase 1: destination intelligence
	phaseStart := time.Now()
	profile, err := o.destinationAgent.GatherIntelligence(ctx, req)
	if err != nil {
		o.metrics.AgentFailures.WithLabelValues("destination").Inc()
		return nil, &PhaseError{Phase: PhaseDestinationIntelligence, Destination: req.Destination, Err: err}
	}
	o.observePhase(PhaseDestinationIntelligence, phaseStart)

	// Phase 2: activity discovery and accommodation search in parallel.
	// Both consume only the Phase 1 profile and share no mutable state.
	phaseStart = time.Now()
	var (
		catalog *entity.ActivityCatalog
		report  *entity.AccommodationReport
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		catalog, err = o.activityAgent.DiscoverActivities(gctx, req, profile)
		if err != nil {
			o.metrics.AgentFailures.WithLabelValues("activity").Inc()
		}
		return err
	})
	g.Go(func() error {
		var err error
		report, err = o.accommodationAgent.FindOptions(gctx, req, profile)
		if err != nil {
			o.metrics.AgentFailures.WithLabelValues("accommodation").Inc()
		}
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, &PhaseError{Phase: PhaseParallelDiscovery, Destination: req.Destination, Err: err}
	}
	o.observePhase(PhaseParallelDiscovery, phaseStart)

	// Phase 3: cost estimation over the flattened discovery outputs
	phaseStart = time.Now()
	estimate, err := o.costAgent.EstimateCosts(ctx, req, profile, catalog, report)
	if err != nil {
		o.metrics.AgentFailures.WithLabelValues("cost").Inc()
		return nil, &PhaseError{Phase: PhaseCostEstimation, Destination: req.Destination, Err: err}
	}
	o.observePhase(PhaseCostEstimation, phaseStart)

	// Phase 4: synthesis into three complete itineraries
	phaseStart = time.Now()
	bundle, err := o.synthesize(ctx, req, profile, catalog, report, estimate)
	if err != nil {
		o.metrics.AgentFailures.WithLabelValues("synthesis").Inc()
		return nil, &PhaseError{Phase: PhaseSynthesis, Destination: req.Destination, Err: err}
	}
	o.observePhase(PhaseSynthesis, phaseStart)

	o.logger.Info("Multi-agent itinerary generation completed",
		"destination", req.Destination,
		"itineraries", len(bundle.Itineraries))

	return bundle, nil
}

// synthesize runs the final structured-generation call and validates the
// bundle. Derived cost fields are zeroed before the bundle leaves the
// orchestrator; only the recalculation engine may produce them.
func (o *MasterOrchestrator) synthesize(ctx context.Context, req *entity.TripRequest, profile *entity.DestinationProfile, catalog *entity.ActivityCatalog, report *entity.AccommodationReport, estimate *entity.CostEstimate) (*entity.ItineraryBundle, error) {
	input := SynthesisInput{
		Request:       *req,
		Destination:   *profile,
		Activities:    *catalog,
		Accommodation: *report,
		Costs:         *estimate,
	}

	var bundle entity.ItineraryBundle
	if err := o.generator.Generate(ctx, CapabilityItinerarySynthesis, input, &bundle); err != nil {
		return nil, err
	}
	if err := bundle.Validate(req.DurationDays); err != nil {
		return nil, err
	}

	for i := range bundle.Itineraries {
		bundle.Itineraries[i].Cost.ResetDerived()
	}

	return &bundle, nil
}

func (o *MasterOrchestrator) observePhase(phase string, start time.Time) {
	elapsed := time.Since(start)
	o.metrics.PhaseDuration.WithLabelValues(phase).Observe(elapsed.Seconds())
	o.logger.Debug("Orchestration phase completed", "phase", phase, "elapsed", elapsed)
}
