package v1

import (
	"github.com/envelope-zero/onboarding/internal/wizard"
	"github.com/prometheus/client_golang/prometheus"
)

// sessions holds the onboardings in progress.
var sessions = wizard.NewRegistry()

// Metrics are the Prometheus collectors of the v1 API. They are
// registered by the router.
var Metrics = []prometheus.Collector{
	transitions,
	departmentsCommitted,
	sessionsGauge,
}

var transitions = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "onboarding_transitions_total",
		Help: "How many onboardings entered a phase, partitioned by phase.",
	},
	[]string{"phase"},
)

var departmentsCommitted = prometheus.NewCounter(
	prometheus.CounterOpts{
		Name: "onboarding_department_setups_total",
		Help: "How many department setups were submitted with their teams.",
	},
)

var sessionsGauge = prometheus.NewGaugeFunc(
	prometheus.GaugeOpts{
		Name: "onboarding_sessions",
		Help: "The number of onboardings currently held in memory.",
	},
	func() float64 {
		return float64(sessions.Len())
	},
)

// observe counts the phase the onboarding is in if it changed.
func observe(before, after wizard.State) {
	if before == after {
		return
	}

	transitions.WithLabelValues(after.Phase.String()).Inc()
}
