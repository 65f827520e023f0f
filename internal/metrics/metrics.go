package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// SpinDuration tracks the latency of spin adjudication by outcome
	SpinDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "spin_adjudication_duration_seconds",
			Help: "Duration of spin adjudication requests in seconds",
			Buckets: []float64{
				0.001, // 1ms
				0.005, // 5ms
				0.01,  // 10ms
				0.025, // 25ms
				0.05,  // 50ms
				0.1,   // 100ms
				0.25,  // 250ms
				0.5,   // 500ms
				1.0,   // 1s
				2.5,   // 2.5s
			},
		},
		[]string{"outcome"},
	)

	// SpinOutcomes counts adjudication results by outcome
	SpinOutcomes = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "spin_outcomes_total",
			Help: "Total spin adjudication results by outcome",
		},
		[]string{"outcome"},
	)
)

// RecordSpinDuration records one adjudicated spin
func RecordSpinDuration(outcome string, duration float64) {
	SpinDuration.WithLabelValues(outcome).Observe(duration)
	SpinOutcomes.WithLabelValues(outcome).Inc()
}
