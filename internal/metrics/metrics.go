// Package metrics holds the Prometheus instruments of the catalog engine.
// Instruments are registered on the default registry at package init and are
// served by the HTTP API under /metrics.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	OutcomeSuccess  = "success"
	OutcomeFailure  = "failure"
	OutcomeRejected = "rejected"
)

var (
	// Protocol transport
	ProtocolCallDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "wu_protocol_call_duration_seconds",
			Help:    "Duration of catalog protocol calls in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation", "outcome"},
	)

	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "wu_circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)

	CircuitBreakerTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "wu_circuit_breaker_transitions_total",
			Help: "Total number of circuit breaker state transitions",
		},
		[]string{"name", "from", "to"},
	)

	// Discovery
	SyncPages = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "wu_sync_pages_total",
			Help: "Total number of non-empty sync pages received",
		},
		[]string{"ring"},
	)

	ProfileFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "wu_profile_failures_total",
			Help: "Total number of ring profiles whose sync failed",
		},
		[]string{"ring"},
	)

	DiscoveredUpdates = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "wu_discovered_updates",
			Help: "Number of updates kept by the last discovery run",
		},
	)

	DiscoveryDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "wu_discovery_duration_seconds",
			Help:    "Duration of a full multi-ring discovery in seconds",
			Buckets: []float64{1, 5, 10, 30, 60, 120, 300, 600},
		},
	)

	// Snapshot refresh
	RefreshRuns = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "wu_refresh_runs_total",
			Help: "Total number of snapshot refresh runs",
		},
		[]string{"outcome"},
	)

	// HTTP API
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "wu_http_request_duration_seconds",
			Help:    "Duration of HTTP API requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route", "status"},
	)
)

// RecordProtocolCall observes one protocol call.
func RecordProtocolCall(operation string, duration time.Duration, err error) {
	outcome := OutcomeSuccess
	if err != nil {
		outcome = OutcomeFailure
	}
	ProtocolCallDuration.WithLabelValues(operation, outcome).Observe(duration.Seconds())
}

// RecordDiscovery observes a finished discovery run.
func RecordDiscovery(duration time.Duration, kept int) {
	DiscoveryDuration.Observe(duration.Seconds())
	DiscoveredUpdates.Set(float64(kept))
}

// RecordRefresh counts a snapshot refresh run.
func RecordRefresh(err error) {
	outcome := OutcomeSuccess
	if err != nil {
		outcome = OutcomeFailure
	}
	RefreshRuns.WithLabelValues(outcome).Inc()
}

// RecordHTTPRequest observes one served API request. route is the matched
// pattern, not the raw path, to keep label cardinality bounded.
func RecordHTTPRequest(method, route string, status int, duration time.Duration) {
	if route == "" {
		route = "unmatched"
	}
	HTTPRequestDuration.WithLabelValues(method, route, strconv.Itoa(status)).Observe(duration.Seconds())
}
