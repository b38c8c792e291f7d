package usecase

import "fmt"

// Orchestration phase names, used in errors and metrics labels.
const (
	PhaseDestinationIntelligence = "destination_intelligence"
	PhaseParallelDiscovery       = "parallel_discovery"
	PhaseCostEstimation          = "cost_estimation"
	PhaseSynthesis               = "synthesis"
)

// PhaseError tags an orchestration failure with the failing phase and the
// destination, so callers can report something more useful than a bare
// error chain.
type PhaseError struct {
	Phase       string
	Destination string
	Err         error
}

func (e *PhaseError) Error() string {
	return fmt.Sprintf("orchestration phase %s failed for %s: %v", e.Phase, e.Destination, e.Err)
}

func (e *PhaseError) Unwrap() error {
	return e.Err
}
