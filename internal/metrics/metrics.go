// File: metrics.go
// Package metrics instruments Decompose calls: total count, a duration/
// input-size histogram, and a counter for internal invariant violations
// (which should stay at zero in production; its only job is to make a
// regression visible immediately).
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	decomposeTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "moddecomp_decompose_total",
		Help: "Total number of Decompose calls.",
	})

	decomposeDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "moddecomp_decompose_duration_seconds",
		Help:    "Wall-clock duration of a Decompose call.",
		Buckets: prometheus.DefBuckets,
	})

	decomposeVertexCount = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "moddecomp_decompose_vertex_count",
		Help:    "Input vertex count per Decompose call.",
		Buckets: []float64{1, 10, 100, 1000, 10000, 100000},
	})

	invariantViolations = promauto.NewCounter(prometheus.CounterOpts{
		Name: "moddecomp_invariant_violations_total",
		Help: "Count of InternalInvariant errors surfaced from Decompose. Should stay zero.",
	})
)

// ObserveDecompose records one Decompose call: its input size, duration,
// and whether it failed with an internal invariant violation.
func ObserveDecompose(n int, d time.Duration, invariantErr bool) {
	decomposeTotal.Inc()
	decomposeVertexCount.Observe(float64(n))
	decomposeDuration.Observe(d.Seconds())
	if invariantErr {
		invariantViolations.Inc()
	}
}
