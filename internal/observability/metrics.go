// Package observability provides logging, metrics, and tracing.
package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// PredictionRequestsTotal counts calls to the upstream prediction
	// service by outcome (success, upstream_error, timeout, build_error).
	PredictionRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "nutriplan_prediction_requests_total",
		Help: "Total number of upstream prediction requests by outcome",
	}, []string{"outcome"})

	// PredictionLatency records upstream prediction call latency.
	PredictionLatency = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "nutriplan_prediction_latency_seconds",
		Help:    "Upstream prediction request latency in seconds",
		Buckets: prometheus.DefBuckets,
	})

	// PredictionCacheEvents counts prediction cache hits and misses.
	PredictionCacheEvents = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "nutriplan_prediction_cache_events_total",
		Help: "Prediction cache hits and misses",
	}, []string{"event"})

	// ProfileWritesTotal counts health-profile upserts by result.
	ProfileWritesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "nutriplan_profile_writes_total",
		Help: "Health profile upserts by result (created, updated)",
	}, []string{"result"})

	// DatabaseQueryLatency records database query latency by operation and table.
	DatabaseQueryLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "nutriplan_database_query_latency_seconds",
		Help:    "Database query latency in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"operation", "table"})
)

// TrackQuery returns a function that records query latency when called (e.g. defer).
func TrackQuery(operation, table string) func() {
	start := time.Now()
	return func() {
		DatabaseQueryLatency.WithLabelValues(operation, table).Observe(time.Since(start).Seconds())
	}
}

// ObservePrediction records the outcome and latency of one upstream call.
func ObservePrediction(outcome string, start time.Time) {
	PredictionRequestsTotal.WithLabelValues(outcome).Inc()
	PredictionLatency.Observe(time.Since(start).Seconds())
}
