package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"tripgenie-service/internal/domain/entity"
	"tripgenie-service/internal/domain/repository"
	"tripgenie-service/pkg/logger"
	"tripgenie-service/pkg/metrics"
	"tripgenie-service/pkg/utils"
)

// Planner-level sentinel errors, mapped to HTTP statuses by the REST layer.
var (
	ErrUnknownItinerary = errors.New("itinerary not in this session")
	ErrUnknownOption    = errors.New("option not in this itinerary")
	ErrSessionFinalized = errors.New("planning session already finalized")
)

// TripPlanner owns the planning-session lifecycle: it runs the provider,
// holds selection state in the session store, recalculates costs on every
// selection change, and archives sessions and final summaries.
type TripPlanner struct {
	provider     ItineraryProvider
	sessions     repository.SessionStore
	plans        repository.PlanRepository
	destinations repository.DestinationRepository
	metrics      *metrics.Metrics
	logger       logger.Logger
	planTimeout  time.Duration
}

// NewTripPlanner creates a new trip planner
func NewTripPlanner(
	provider ItineraryProvider,
	sessions repository.SessionStore,
	plans repository.PlanRepository,
	destinations repository.DestinationRepository,
	m *metrics.Metrics,
	logger logger.Logger,
	planTimeout time.Duration,
) *TripPlanner {
	return &TripPlanner{
		provider:     provider,
		sessions:     sessions,
		plans:        plans,
		destinations: destinations,
		metrics:      m,
		logger:       logger,
		planTimeout:  planTimeout,
	}
}

// Plan runs the provider for a validated trip request and opens a new
// planning session. The whole generation run shares one deadline since it
// chains several dependent model calls.
func (p *TripPlanner) Plan(ctx context.Context, req *entity.TripRequest) (*entity.PlanningSession, error) {
	p.metrics.PlansRequested.Inc()

	if err := req.Validate(); err != nil {
		p.metrics.PlansFailed.Inc()
		return nil, err
	}
	p.normalizeDestination(ctx, req)

	genCtx := ctx
	if p.planTimeout > 0 {
		var cancel context.CancelFunc
		genCtx, cancel = context.WithTimeout(ctx, p.planTimeout)
		defer cancel()
	}

	bundle, err := p.provider.GenerateItineraries(genCtx, req)
	if err != nil {
		p.metrics.PlansFailed.Inc()
		return nil, err
	}
	if bundle == nil || len(bundle.Itineraries) == 0 {
		p.metrics.PlansFailed.Inc()
		return nil, fmt.Errorf("provider returned no itineraries for %s", req.Destination)
	}

	now := time.Now().UTC()
	session := &entity.PlanningSession{
		ID:                utils.NewSessionID(),
		Request:           *req,
		Bundle:            *bundle,
		ActiveItineraryID: bundle.Itineraries[0].ID,
		Selections:        defaultSelections(bundle),
		Status:            entity.SessionReady,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	if err := p.sessions.Put(ctx, session); err != nil {
		p.metrics.PlansFailed.Inc()
		return nil, fmt.Errorf("failed to store planning session: %w", err)
	}

	// The archive is best-effort; the live session is the source of truth.
	if err := p.plans.SaveSession(ctx, session); err != nil {
		p.logger.Error("Failed to archive planning session", "sessionID", session.ID, "error", err)
	}

	p.metrics.PlansCompleted.Inc()
	p.logger.Info("Planning session created",
		"sessionID", session.ID,
		"destination", req.Destination,
		"itineraries", len(bundle.Itineraries))

	return session, nil
}

// defaultSelections seeds per-itinerary selection state: activities keep
// their generated selected defaults, hotel and commute start unselected.
func defaultSelections(bundle *entity.ItineraryBundle) map[string]entity.Selection {
	selections := make(map[string]entity.Selection, len(bundle.Itineraries))
	for _, it := range bundle.Itineraries {
		sel := entity.Selection{ActivitySelections: make(map[string]bool)}
		for _, act := range it.Activities() {
			sel.ActivitySelections[act.ID] = act.Selected
		}
		selections[it.ID] = sel
	}
	return selections
}

// normalizeDestination resolves the free-text destination against the
// curated reference table. A miss keeps the user's input untouched.
func (p *TripPlanner) normalizeDestination(ctx context.Context, req *entity.TripRequest) {
	if p.destinations == nil {
		return
	}
	alias := strings.ToLower(strings.TrimSpace(req.Destination))
	ref, err := p.destinations.GetByAlias(ctx, alias)
	if err != nil {
		p.logger.Debug("Destination not in reference table", "destination", req.Destination, "error", err)
		return
	}
	if ref.Canonical != "" && ref.Canonical != req.Destination {
		p.logger.Info("Destination normalized", "from", req.Destination, "to", ref.Canonical)
		req.Destination = ref.Canonical
	}
}

// Get returns a consistent session snapshot.
func (p *TripPlanner) Get(ctx context.Context, sessionID string) (*entity.PlanningSession, error) {
	return p.sessions.Get(ctx, sessionID)
}

// SelectItinerary switches the active itinerary variant.
func (p *TripPlanner) SelectItinerary(ctx context.Context, sessionID, itineraryID string) (*entity.PlanningSession, error) {
	return p.mutate(ctx, sessionID, func(s *entity.PlanningSession) error {
		if s.Bundle.ItineraryByID(itineraryID) == nil {
			return ErrUnknownItinerary
		}
		s.ActiveItineraryID = itineraryID
		return nil
	})
}

// SelectHotel selects the stay for the active itinerary. At most one hotel
// is selected per itinerary at any time.
func (p *TripPlanner) SelectHotel(ctx context.Context, sessionID, hotelID string) (*entity.PlanningSession, error) {
	return p.mutate(ctx, sessionID, func(s *entity.PlanningSession) error {
		it := s.ActiveItinerary()
		if it == nil {
			return ErrUnknownItinerary
		}
		if it.HotelByID(hotelID) == nil {
			return ErrUnknownOption
		}
		sel := s.ActiveSelection()
		sel.HotelID = hotelID
		s.Selections[it.ID] = sel
		return nil
	})
}

// SelectCommute selects the commute option for the active itinerary.
func (p *TripPlanner) SelectCommute(ctx context.Context, sessionID, commuteID string) (*entity.PlanningSession, error) {
	return p.mutate(ctx, sessionID, func(s *entity.PlanningSession) error {
		it := s.ActiveItinerary()
		if it == nil {
			return ErrUnknownItinerary
		}
		if it.CommuteByID(commuteID) == nil {
			return ErrUnknownOption
		}
		sel := s.ActiveSelection()
		sel.CommuteID = commuteID
		s.Selections[it.ID] = sel
		return nil
	})
}

// ToggleActivity flips one activity's selected flag on the active
// itinerary. One toggle is one atomic state transition.
func (p *TripPlanner) ToggleActivity(ctx context.Context, sessionID, activityID string) (*entity.PlanningSession, error) {
	return p.mutate(ctx, sessionID, func(s *entity.PlanningSession) error {
		it := s.ActiveItinerary()
		if it == nil {
			return ErrUnknownItinerary
		}
		found := false
		for _, act := range it.Activities() {
			if act.ID == activityID {
				found = true
				break
			}
		}
		if !found {
			return ErrUnknownOption
		}
		sel := s.ActiveSelection()
		sel.ActivitySelections[activityID] = !sel.ActivitySelections[activityID]
		s.Selections[it.ID] = sel
		return nil
	})
}

// mutate applies one selection change atomically, refusing changes to a
// finalized session, and bumps the update timestamp.
func (p *TripPlanner) mutate(ctx context.Context, sessionID string, fn func(*entity.PlanningSession) error) (*entity.PlanningSession, error) {
	return p.sessions.Update(ctx, sessionID, func(s *entity.PlanningSession) error {
		if s.Status == entity.SessionFinalized {
			return ErrSessionFinalized
		}
		if err := fn(s); err != nil {
			return err
		}
		s.UpdatedAt = time.Now().UTC()
		return nil
	})
}

// Recent lists recently archived sessions, newest first.
func (p *TripPlanner) Recent(ctx context.Context, limit int) ([]*entity.PlanningSession, error) {
	if limit <= 0 || limit > 50 {
		limit = 20
	}
	return p.plans.FindRecentSessions(ctx, limit)
}

// Summary recalculates the live cost summary for the session's active
// itinerary under its current selections.
func (p *TripPlanner) Summary(ctx context.Context, sessionID string) (entity.CostSummary, error) {
	session, err := p.sessions.Get(ctx, sessionID)
	if err != nil {
		return entity.CostSummary{}, err
	}
	return p.Summarize(session), nil
}

// Summarize recalculates the live cost summary for a session snapshot's
// active itinerary under its current selections.
func (p *TripPlanner) Summarize(session *entity.PlanningSession) entity.CostSummary {
	it := session.ActiveItinerary()
	if it == nil {
		return entity.CostSummary{}
	}
	p.metrics.Recalculations.Inc()
	return Recalculate(it, session.ActiveSelection(), session.Request.DurationDays, session.Request.BudgetINR)
}

// Finalize freezes the session into a FinalTripSummary, archives it, and
// marks the session finalized. Further selection changes are rejected.
func (p *TripPlanner) Finalize(ctx context.Context, sessionID string) (*entity.FinalTripSummary, error) {
	session, err := p.mutate(ctx, sessionID, func(s *entity.PlanningSession) error {
		s.Status = entity.SessionFinalized
		return nil
	})
	if err != nil {
		return nil, err
	}

	it := session.ActiveItinerary()
	if it == nil {
		return nil, ErrUnknownItinerary
	}
	sel := session.ActiveSelection()

	summary := &entity.FinalTripSummary{
		SessionID:   session.ID,
		Request:     session.Request,
		Itinerary:   *it,
		Costs:       Recalculate(it, sel, session.Request.DurationDays, session.Request.BudgetINR),
		FinalizedAt: time.Now().UTC(),
	}
	if hotel := it.HotelByID(sel.HotelID); hotel != nil {
		summary.SelectedHotel = hotel
	}
	if commute := it.CommuteByID(sel.CommuteID); commute != nil {
		summary.SelectedCommute = commute
	}
	for _, act := range it.Activities() {
		if sel.ActivitySelections[act.ID] {
			summary.SelectedActivities = append(summary.SelectedActivities, act)
		}
	}

	if err := p.plans.SaveFinalSummary(ctx, summary); err != nil {
		p.logger.Error("Failed to archive final trip summary", "sessionID", sessionID, "error", err)
	}
	if err := p.plans.MarkFinalized(ctx, sessionID); err != nil {
		p.logger.Error("Failed to mark archived session finalized", "sessionID", sessionID, "error", err)
	}

	p.logger.Info("Planning session finalized",
		"sessionID", sessionID,
		"itinerary", it.Vibe,
		"totalCost", summary.Costs.TotalCost)

	return summary, nil
}
