package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all prometheus metrics
type Metrics struct {
	DetectionCycles  *prometheus.CounterVec
	SkippedCycles    *prometheus.CounterVec
	AlertsGenerated  *prometheus.CounterVec
	CycleDuration    *prometheus.HistogramVec
	PositionsWritten prometheus.Counter
	ErrorsCount      *prometheus.CounterVec
}

// NewMetrics creates new prometheus metrics
func NewMetrics(namespace string) *Metrics {
	return &Metrics{
		DetectionCycles: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "detection_cycles_total",
			Help:      "The total number of completed detection cycles",
		}, []string{"detector"}),
		SkippedCycles: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "detection_cycles_skipped_total",
			Help:      "Detection cycles skipped because the previous cycle was still running",
		}, []string{"detector"}),
		AlertsGenerated: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "alerts_generated_total",
			Help:      "The total number of generated alerts",
		}, []string{"category", "severity"}),
		CycleDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "detection_cycle_duration_seconds",
			Help:      "Time taken to run one detection cycle",
			Buckets:   prometheus.DefBuckets,
		}, []string{"detector"}),
		PositionsWritten: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "positions_written_total",
			Help:      "The total number of position upserts ingested",
		}),
		ErrorsCount: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "errors_total",
			Help:      "The total number of errors",
		}, []string{"operation"}),
	}
}
