// Package observability groups the logging, metrics and tracing
// infrastructure shared by the API server and the publisher worker.
//
// Subpackages:
//   - logging: slog logger construction and request ID propagation
//   - metrics: the single Prometheus registration point
//   - tracing: OpenTelemetry tracing middleware
//
// Example usage:
//
//	import (
//	    "pressroom/internal/observability/logging"
//	    "pressroom/internal/observability/metrics"
//	)
//
//	func main() {
//	    logger := logging.NewLogger("api")
//	    logger.Info("server started")
//
//	    metrics.RecordArticlePublished("manual")
//	}
package observability
