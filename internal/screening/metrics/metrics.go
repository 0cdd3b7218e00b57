// Package metrics provides observability for the screening module.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the Prometheus instruments for screening runs. All
// observe methods are nil-safe so wiring metrics stays optional.
type Metrics struct {
	// Watchlist load latencies by source
	SourceLatency *prometheus.HistogramVec

	// Soft source failures by source
	SourceFailures *prometheus.CounterVec

	// Runs that produced at least one match, by source
	SourceHits *prometheus.CounterVec

	// Full screening run latency
	ScreenLatency prometheus.Histogram

	// Completed runs by outcome ("hit", "clear")
	Runs *prometheus.CounterVec
}

// New creates and registers all screening metrics.
func New() *Metrics {
	return &Metrics{
		SourceLatency: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "watchgate_screening_source_duration_seconds",
			Help:    "Duration of watchlist load operations by source",
			Buckets: []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		}, []string{"source"}),

		SourceFailures: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "watchgate_screening_source_failures_total",
			Help: "Total watchlist sources skipped due to load failures",
		}, []string{"source"}),

		SourceHits: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "watchgate_screening_source_hits_total",
			Help: "Total screening runs with at least one match, by source",
		}, []string{"source"}),

		ScreenLatency: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "watchgate_screening_screen_duration_seconds",
			Help:    "Duration of full screening runs including list loading",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30, 60},
		}),

		Runs: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "watchgate_screening_runs_total",
			Help: "Total completed screening runs by outcome",
		}, []string{"outcome"}),
	}
}

// ObserveSourceLatency records the duration of one watchlist load.
func (m *Metrics) ObserveSourceLatency(source string, d time.Duration) {
	if m != nil {
		m.SourceLatency.WithLabelValues(source).Observe(d.Seconds())
	}
}

// IncrementSourceFailure records a skipped source.
func (m *Metrics) IncrementSourceFailure(source string) {
	if m != nil {
		m.SourceFailures.WithLabelValues(source).Inc()
	}
}

// IncrementSourceHit records a run that matched on the given source.
func (m *Metrics) IncrementSourceHit(source string) {
	if m != nil {
		m.SourceHits.WithLabelValues(source).Inc()
	}
}

// ObserveScreenLatency records the total run duration.
func (m *Metrics) ObserveScreenLatency(d time.Duration) {
	if m != nil {
		m.ScreenLatency.Observe(d.Seconds())
	}
}

// IncrementRun records a completed run outcome.
func (m *Metrics) IncrementRun(outcome string) {
	if m != nil {
		m.Runs.WithLabelValues(outcome).Inc()
	}
}
