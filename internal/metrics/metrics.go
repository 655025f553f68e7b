package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Catalog client metrics
var (
	CatalogRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalog_requests_total",
			Help: "Total number of requests sent to the show catalog.",
		},
		[]string{"endpoint", "status"},
	)

	CatalogRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "catalog_request_duration_seconds",
			Help:    "Latency of requests sent to the show catalog.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"endpoint"},
	)
)

// View metrics
var (
	FragmentsRenderedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fragments_rendered_total",
			Help: "Total number of fragments rendered into a display region.",
		},
		[]string{"region"},
	)
)

// HTTP front-end metrics
var (
	HTTPRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests served, by handler and status code.",
		},
		[]string{"handler", "code"},
	)
)

func init() {
	prometheus.MustRegister(
		CatalogRequestsTotal,
		CatalogRequestDuration,
		FragmentsRenderedTotal,
		HTTPRequestsTotal,
	)
}
