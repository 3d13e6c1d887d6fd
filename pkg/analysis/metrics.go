package analysis

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const metricsNamespace = "mmrplane"

// Metrics are the prometheus collectors of a Manager.
type Metrics struct {
	analyses            *prometheus.CounterVec
	analysisDuration    prometheus.Histogram
	distanceEvaluations *prometheus.CounterVec
	resonances          prometheus.Gauge
	nearResonant        prometheus.Counter
}

// NewMetrics registers the analysis collectors with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		analyses: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "analyses_total",
			Help:      "System analyses by final status.",
		}, []string{"status"}),
		analysisDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Name:      "analysis_duration_seconds",
			Help:      "Wall time of a system analysis.",
			Buckets:   prometheus.ExponentialBuckets(0.001, 4, 8),
		}),
		distanceEvaluations: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "distance_evaluations_total",
			Help:      "Point-to-curve distance evaluations by solver method.",
		}, []string{"method"}),
		resonances: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Name:      "resonances_enumerated",
			Help:      "Three-body resonances crossing the window of the last analysis.",
		}),
		nearResonant: factory.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "near_resonant_triplets_total",
			Help:      "Triplets found within the near-resonance threshold.",
		}),
	}
}
