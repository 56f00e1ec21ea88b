package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the collectors exported on /metrics. A nil *Metrics is valid
// and records nothing.
type Metrics struct {
	searches        *prometheus.CounterVec
	searchDuration  prometheus.Histogram
	groundingChunks *prometheus.CounterVec
	droppedChunks   prometheus.Counter
}

// New creates the collectors and registers them with reg.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		searches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "food_finder",
			Name:      "searches_total",
			Help:      "Searches handled, by outcome.",
		}, []string{"outcome"}),
		searchDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "food_finder",
			Name:      "generation_duration_seconds",
			Help:      "Latency of the generateContent call.",
			Buckets:   []float64{0.5, 1, 2, 5, 10, 20, 40, 60},
		}),
		groundingChunks: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "food_finder",
			Name:      "grounding_chunks_total",
			Help:      "Grounding chunks received, by kind.",
		}, []string{"kind"}),
		droppedChunks: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "food_finder",
			Name:      "grounding_chunks_dropped_total",
			Help:      "Grounding chunks of an unrecognized kind that were not shown.",
		}),
	}
	reg.MustRegister(m.searches, m.searchDuration, m.groundingChunks, m.droppedChunks)
	return m
}

// ObserveSearch counts a finished search and its generation latency.
func (m *Metrics) ObserveSearch(outcome string, seconds float64) {
	if m == nil {
		return
	}
	m.searches.WithLabelValues(outcome).Inc()
	if seconds > 0 {
		m.searchDuration.Observe(seconds)
	}
}

// ObserveChunks counts grounding chunks of one kind.
func (m *Metrics) ObserveChunks(kind string, n int) {
	if m == nil || n <= 0 {
		return
	}
	m.groundingChunks.WithLabelValues(kind).Add(float64(n))
}

// ObserveDropped counts grounding chunks that were discarded.
func (m *Metrics) ObserveDropped(n int) {
	if m == nil || n <= 0 {
		return
	}
	m.droppedChunks.Add(float64(n))
}
