package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all prometheus metrics
type Metrics struct {
	PlansRequested  prometheus.Counter
	PlansCompleted  prometheus.Counter
	PlansFailed     prometheus.Counter
	PhaseDuration   *prometheus.HistogramVec
	AgentFailures   *prometheus.CounterVec
	Recalculations  prometheus.Counter
	SessionsExpired prometheus.Counter
}

// NewMetrics creates new prometheus metrics
func NewMetrics(namespace string) *Metrics {
	return &Metrics{
		PlansRequested: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "plans_requested_total",
			Help:      "The total number of planning requests received",
		}),
		PlansCompleted: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "plans_completed_total",
			Help:      "The total number of planning requests that produced itineraries",
		}),
		PlansFailed: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "plans_failed_total",
			Help:      "The total number of planning requests that failed",
		}),
		PhaseDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "orchestration_phase_duration_seconds",
			Help:      "Time spent in each orchestration phase",
			Buckets:   []float64{0.5, 1, 2.5, 5, 10, 20, 40, 60, 120},
		}, []string{"phase"}),
		AgentFailures: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "agent_failures_total",
			Help:      "The total number of agent call failures",
		}, []string{"agent"}),
		Recalculations: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cost_recalculations_total",
			Help:      "The total number of cost summary recalculations",
		}),
		SessionsExpired: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sessions_expired_total",
			Help:      "The total number of planning sessions evicted by TTL",
		}),
	}
}
