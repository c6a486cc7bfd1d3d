// Package metrics defines the Prometheus collectors exported on /metrics.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	HTTPRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	DBQueryDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "db_query_duration_seconds",
			Help:    "Query latency in seconds by store operation",
			Buckets: []float64{.001, .005, .01, .05, .1, .5, 1, 5},
		},
		[]string{"operation"},
	)

	DBQueryErrors = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "db_query_errors_total",
			Help: "Failed queries by store operation",
		},
		[]string{"operation"},
	)

	CatalogCacheRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalog_cache_requests_total",
			Help: "Event and event-date catalog lookups by result (hit, miss)",
		},
		[]string{"result"},
	)

	ReportsBuilt = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "reports_built_total",
			Help: "Event date statistics reports built",
		},
	)

	ReportRows = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "report_rows",
			Help:    "Registration rows aggregated per report",
			Buckets: prometheus.ExponentialBuckets(1, 4, 8),
		},
	)
)

func init() {
	prometheus.MustRegister(
		HTTPRequestsTotal,
		HTTPRequestDuration,
		DBQueryDuration,
		DBQueryErrors,
		CatalogCacheRequests,
		ReportsBuilt,
		ReportRows,
	)
}

// ObserveQuery records one store operation.
func ObserveQuery(operation string, elapsed time.Duration, failed bool) {
	DBQueryDuration.WithLabelValues(operation).Observe(elapsed.Seconds())
	if failed {
		DBQueryErrors.WithLabelValues(operation).Inc()
	}
}

// ObserveReport records the size of an aggregated row-set.
func ObserveReport(rows int) {
	ReportsBuilt.Inc()
	ReportRows.Observe(float64(rows))
}
