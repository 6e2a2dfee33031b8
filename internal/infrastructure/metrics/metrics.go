package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "eventxpert"

// HTTP metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency in seconds",
			Buckets:   []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
		},
		[]string{"method", "path"},
	)
)

// Event cache metrics
var (
	eventCacheHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "event_cache_hits_total",
			Help:      "Event cache hits by kind (list or detail)",
		},
		[]string{"kind"},
	)

	eventCacheMisses = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "event_cache_misses_total",
			Help:      "Event cache misses by kind (list or detail)",
		},
		[]string{"kind"},
	)

	eventCacheLookupSeconds = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "event_cache_lookup_seconds",
			Help:      "Latency of event cache lookups",
			Buckets:   prometheus.ExponentialBuckets(0.0005, 2, 12),
		},
	)
)

// Domain counters
var (
	registrationsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "event_registrations_total",
			Help:      "Successful event registrations",
		},
	)

	verificationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "registration_verifications_total",
			Help:      "Registration code verifications by result",
		},
		[]string{"result"},
	)

	approvalsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "event_approval_decisions_total",
			Help:      "Administrator approval decisions by outcome",
		},
		[]string{"decision"},
	)
)

func IncCacheHit(kind string)  { eventCacheHits.WithLabelValues(kind).Inc() }
func IncCacheMiss(kind string) { eventCacheMisses.WithLabelValues(kind).Inc() }

func ObserveCacheLookup(seconds float64) { eventCacheLookupSeconds.Observe(seconds) }

func IncRegistration() { registrationsTotal.Inc() }

// IncVerification records a verification outcome: "valid", "invalid" or "error".
func IncVerification(result string) { verificationsTotal.WithLabelValues(result).Inc() }

// IncApproval records "approved" or "rejected".
func IncApproval(decision string) { approvalsTotal.WithLabelValues(decision).Inc() }
