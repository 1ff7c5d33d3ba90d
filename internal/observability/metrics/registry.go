// Package metrics provides centralized Prometheus metrics for the application.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP metrics track HTTP request patterns and performance
var (
	// HTTPRequestsTotal counts total HTTP requests by method, path, and status
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	// HTTPRequestDuration tracks request latency with buckets tuned for API
	// response times, from 5ms up to 10s, so p95/p99 stay meaningful.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
		},
		[]string{"method", "path", "status"},
	)

	// HTTPRequestSize measures HTTP request body size in bytes
	HTTPRequestSize = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_size_bytes",
			Help:    "HTTP request size in bytes",
			Buckets: prometheus.ExponentialBuckets(100, 10, 8),
		},
		[]string{"method", "path"},
	)

	// HTTPResponseSize measures HTTP response body size in bytes
	HTTPResponseSize = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_response_size_bytes",
			Help:    "HTTP response size in bytes",
			Buckets: prometheus.ExponentialBuckets(100, 10, 8),
		},
		[]string{"method", "path"},
	)

	// HTTPRequestsInFlight tracks the number of requests currently being served
	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "http_requests_in_flight",
			Help: "Current number of HTTP requests being served",
		},
	)
)

// Business metrics track publishing activity
var (
	// ArticlesTotal tracks the total number of live articles
	ArticlesTotal = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "articles_total",
			Help: "Total number of live articles in the database",
		},
	)

	// ArticlesCreatedTotal counts articles created through the admin API
	ArticlesCreatedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "articles_created_total",
			Help: "Total number of articles created",
		},
	)

	// ArticlesPublishedTotal counts publish transitions by trigger
	ArticlesPublishedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "articles_published_total",
			Help: "Total number of articles published",
		},
		[]string{"trigger"}, // trigger: admin, scheduler
	)

	// ArticlesDeletedTotal counts hard-deleted articles
	ArticlesDeletedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "articles_deleted_total",
			Help: "Total number of articles deleted",
		},
	)

	// TagsReconciledTotal counts tag reconciliation outcomes
	TagsReconciledTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tags_reconciled_total",
			Help: "Total number of tags attached or created during article writes",
		},
		[]string{"outcome"}, // outcome: attached, created
	)

	// DeleteGuardRejectionsTotal counts soft deletes blocked by live references
	DeleteGuardRejectionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "delete_guard_rejections_total",
			Help: "Total number of deletes blocked by live article references",
		},
		[]string{"entity"}, // entity: category, tag
	)

	// CommentsReceivedTotal counts reader comment submissions
	CommentsReceivedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "comments_received_total",
			Help: "Total number of comments submitted by readers",
		},
	)

	// ContactMessagesReceivedTotal counts contact form submissions
	ContactMessagesReceivedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "contact_messages_received_total",
			Help: "Total number of contact form submissions",
		},
	)
)

// Database metrics track database performance
var (
	// DBQueryDuration measures database query duration
	DBQueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "db_query_duration_seconds",
			Help:    "Database query duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.001, 2, 10),
		},
		[]string{"operation"},
	)

	// DBConnectionsActive tracks active database connections
	DBConnectionsActive = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "db_connections_active",
			Help: "Number of active database connections",
		},
	)

	// DBConnectionsIdle tracks idle database connections
	DBConnectionsIdle = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "db_connections_idle",
			Help: "Number of idle database connections",
		},
	)
)

// RecordHTTPRequest records an HTTP request with its metadata
func RecordHTTPRequest(method, path, status string, duration time.Duration, requestSize, responseSize int) {
	HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
	HTTPRequestDuration.WithLabelValues(method, path, status).Observe(duration.Seconds())

	if requestSize > 0 {
		HTTPRequestSize.WithLabelValues(method, path).Observe(float64(requestSize))
	}
	if responseSize > 0 {
		HTTPResponseSize.WithLabelValues(method, path).Observe(float64(responseSize))
	}
}
