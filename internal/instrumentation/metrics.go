// Package instrumentation exposes Prometheus counters for report
// generation and cache behavior.
package instrumentation

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Registry is the custom prometheus registry for the engine.
var Registry = prometheus.NewRegistry()

// factory registers metrics to the custom Registry directly
var factory = promauto.With(Registry)

// ReportsGenerated counts generated reports by kind (basic, full).
var ReportsGenerated = factory.NewCounterVec(prometheus.CounterOpts{
	Namespace: "deskpulse",
	Name:      "reports_generated_total",
	Help:      "Total number of reports generated, broken down by report kind",
}, []string{"kind"})

// CacheHits counts report cache hits by kind.
var CacheHits = factory.NewCounterVec(prometheus.CounterOpts{
	Namespace: "deskpulse",
	Name:      "report_cache_hits_total",
	Help:      "Total number of report cache hits, broken down by report kind",
}, []string{"kind"})

// CacheMisses counts report cache misses by kind.
var CacheMisses = factory.NewCounterVec(prometheus.CounterOpts{
	Namespace: "deskpulse",
	Name:      "report_cache_misses_total",
	Help:      "Total number of report cache misses, broken down by report kind",
}, []string{"kind"})

// ComputeDuration observes how long report computation takes.
var ComputeDuration = factory.NewHistogramVec(prometheus.HistogramOpts{
	Namespace: "deskpulse",
	Name:      "report_compute_duration_seconds",
	Help:      "Time spent computing a report, excluding cache lookups",
	Buckets:   prometheus.DefBuckets,
}, []string{"kind"})

// CacheErrors counts failures talking to the cache backend.
var CacheErrors = factory.NewCounter(prometheus.CounterOpts{
	Namespace: "deskpulse",
	Name:      "report_cache_errors_total",
	Help:      "Total number of cache backend errors",
})
