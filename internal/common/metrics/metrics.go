package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ContactSubmissionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "contact_submissions_total",
			Help: "Total number of contact form submissions received",
		},
		[]string{"outcome"},
	)

	ContactRelayDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "contact_relay_duration_seconds",
			Help: "Duration of outbound email relay calls in seconds",
		},
		[]string{"provider"},
	)

	PillarLookupsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pillar_lookups_total",
			Help: "Total number of pillar slug resolutions",
		},
		[]string{"result"},
	)

	WizardEstimatesComputed = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "wizard_estimates_computed_total",
			Help: "Total number of wizard estimate derivations",
		},
	)

	WizardSessionsActive = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "wizard_sessions_active",
			Help: "Number of live wizard sessions",
		},
	)
)
