package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the application
type Metrics struct {
	AccountsRegistered   prometheus.Counter
	NominationsSubmitted prometheus.Counter
	NominationsDecided   *prometheus.CounterVec
}

// New creates and registers all Prometheus metrics
func New() *Metrics {
	return &Metrics{
		AccountsRegistered: promauto.NewCounter(prometheus.CounterOpts{
			Name: "civix_accounts_registered_total",
			Help: "Total number of accounts registered",
		}),
		NominationsSubmitted: promauto.NewCounter(prometheus.CounterOpts{
			Name: "civix_nominations_submitted_total",
			Help: "Total number of nominations submitted by candidates",
		}),
		NominationsDecided: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "civix_nominations_decided_total",
			Help: "Total number of nomination adjudications by outcome",
		}, []string{"outcome"}),
	}
}

// IncrementAccountRegistered records a successful account registration.
func (m *Metrics) IncrementAccountRegistered() {
	if m == nil {
		return
	}
	m.AccountsRegistered.Inc()
}

// IncrementNominationSubmitted records a filed nomination.
func (m *Metrics) IncrementNominationSubmitted() {
	if m == nil {
		return
	}
	m.NominationsSubmitted.Inc()
}

// IncrementNominationDecided records an adjudication outcome, "approved" or
// "rejected".
func (m *Metrics) IncrementNominationDecided(outcome string) {
	if m == nil {
		return
	}
	m.NominationsDecided.WithLabelValues(outcome).Inc()
}
