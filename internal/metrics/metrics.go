// Package metrics provides Prometheus metrics for the ingest pipeline.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "brainrot"

// Enrichment paths for IngestedTotal.
const (
	PathEnriched = "enriched"
	PathFallback = "fallback"
)

var (
	// IngestedTotal counts persisted articles.
	IngestedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "articles_ingested_total",
			Help:      "Total number of articles persisted by the ingest pipeline",
		},
		[]string{"category", "section", "path"},
	)

	// SkippedTotal counts candidates that were not persisted.
	SkippedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "candidates_skipped_total",
			Help:      "Total number of candidates skipped, by reason",
		},
		[]string{"category", "reason"},
	)

	SourceFailuresTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "source_failures_total",
			Help:      "Total number of failed upstream category fetches",
		},
		[]string{"category"},
	)

	EnrichmentFailuresTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "enrichment_failures_total",
			Help:      "Total number of enrichment calls that fell back to local stylizing",
		},
		[]string{"category"},
	)

	CycleDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "ingest_cycle_duration_seconds",
			Help:      "Duration of ingest cycles in seconds",
			Buckets:   []float64{1, 5, 15, 30, 60, 120, 300, 600},
		},
		[]string{"status"},
	)
)

func RecordIngested(category, section, path string) {
	IngestedTotal.WithLabelValues(category, section, path).Inc()
}

func RecordSkipped(category, reason string) {
	SkippedTotal.WithLabelValues(category, reason).Inc()
}

func RecordSourceFailure(category string) {
	SourceFailuresTotal.WithLabelValues(category).Inc()
}

func RecordEnrichmentFailure(category string) {
	EnrichmentFailuresTotal.WithLabelValues(category).Inc()
}

func RecordCycle(status string, seconds float64) {
	CycleDuration.WithLabelValues(status).Observe(seconds)
}
