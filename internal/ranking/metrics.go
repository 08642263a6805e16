package ranking

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics names as constants for consistency.
const (
	MetricRankTotal         = "rank_invocations_total"
	MetricRankCandidatesIn  = "rank_candidates_in_total"
	MetricRankCandidatesOut = "rank_candidates_out_total"
	MetricTrustGuardSwaps   = "rank_trust_guard_swaps_total"
	MetricFavoriteBoosts    = "rank_favorite_boosts_total"
)

// Metrics contains Prometheus metrics for ranking operations.
// All operations are thread-safe.
type Metrics struct {
	rankTotal       prometheus.Counter
	candidatesIn    prometheus.Counter
	candidatesOut   prometheus.Counter
	trustGuardSwaps prometheus.Counter
	favoriteBoosts  prometheus.Counter
}

// NewMetrics creates and returns a new Metrics instance with all collectors
// initialized. The metrics are not registered; call Register to register
// them with a registry.
func NewMetrics() *Metrics {
	return &Metrics{
		rankTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: MetricRankTotal,
			Help: "Total number of ranking invocations",
		}),
		candidatesIn: prometheus.NewCounter(prometheus.CounterOpts{
			Name: MetricRankCandidatesIn,
			Help: "Total number of candidate restaurants received for ranking",
		}),
		candidatesOut: prometheus.NewCounter(prometheus.CounterOpts{
			Name: MetricRankCandidatesOut,
			Help: "Total number of restaurants returned from ranking",
		}),
		trustGuardSwaps: prometheus.NewCounter(prometheus.CounterOpts{
			Name: MetricTrustGuardSwaps,
			Help: "Total number of trust guard swaps applied to the top slot",
		}),
		favoriteBoosts: prometheus.NewCounter(prometheus.CounterOpts{
			Name: MetricFavoriteBoosts,
			Help: "Total number of favorite boosts applied to composite scores",
		}),
	}
}

// Register registers all metrics with the given registry.
// Returns an error if registration fails.
func (m *Metrics) Register(reg prometheus.Registerer) error {
	collectors := []prometheus.Collector{
		m.rankTotal,
		m.candidatesIn,
		m.candidatesOut,
		m.trustGuardSwaps,
		m.favoriteBoosts,
	}

	for _, c := range collectors {
		if err := reg.Register(c); err != nil {
			return err
		}
	}
	return nil
}

// IncRankTotal increments the rank invocation counter.
func (m *Metrics) IncRankTotal() {
	m.rankTotal.Inc()
}

// AddCandidates records candidate counts for one ranking invocation.
func (m *Metrics) AddCandidates(in, out int) {
	m.candidatesIn.Add(float64(in))
	m.candidatesOut.Add(float64(out))
}

// IncTrustGuardSwaps increments the trust guard swap counter.
func (m *Metrics) IncTrustGuardSwaps() {
	m.trustGuardSwaps.Inc()
}

// IncFavoriteBoosts increments the favorite boost counter.
func (m *Metrics) IncFavoriteBoosts() {
	m.favoriteBoosts.Inc()
}
