// Package metrics holds the Prometheus collectors shared across layers.
package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	HTTPRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests.",
		},
		[]string{"method", "path", "status"},
	)

	HTTPLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	HTTPInflight = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "http_requests_inflight",
			Help: "Current number of in-flight HTTP requests.",
		},
	)

	// ValidationFailures counts rejected writes by kind and rule code.
	ValidationFailures = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "validation_failures_total",
			Help: "Writes rejected by domain validation.",
		},
		[]string{"kind", "code"},
	)

	CityImportRecords = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "city_import_records_total",
			Help: "Cities processed by the registry import, by outcome.",
		},
		[]string{"outcome"},
	)

	AuditDropped = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "audit_events_dropped_total",
			Help: "Audit events dropped because the async queue was full.",
		},
	)
)

func init() {
	prometheus.MustRegister(
		HTTPRequests,
		HTTPLatency,
		HTTPInflight,
		ValidationFailures,
		CityImportRecords,
		AuditDropped,
	)
}
