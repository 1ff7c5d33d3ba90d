package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"pressroom/internal/handler/http/pathutil"
	"pressroom/internal/handler/http/responsewriter"
	"pressroom/internal/observability/metrics"
)

// MetricsMiddleware records HTTP request metrics including duration, size,
// and status codes. Paths are normalized first so slug-carrying routes do
// not explode label cardinality (/articles/hello-world -> /articles/:slug).
func MetricsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		metrics.HTTPRequestsInFlight.Inc()
		defer metrics.HTTPRequestsInFlight.Dec()

		normalizedPath := pathutil.NormalizePath(r.URL.Path)

		wrapped := responsewriter.Wrap(w)

		start := time.Now()
		next.ServeHTTP(wrapped, r)
		duration := time.Since(start)

		requestSize := 0
		if r.ContentLength > 0 {
			requestSize = int(r.ContentLength)
		}

		metrics.RecordHTTPRequest(
			r.Method,
			normalizedPath,
			strconv.Itoa(wrapped.StatusCode()),
			duration,
			requestSize,
			wrapped.BytesWritten(),
		)
	})
}

// MetricsHandler returns an HTTP handler for the Prometheus metrics endpoint.
func MetricsHandler() http.Handler {
	return promhttp.Handler()
}
