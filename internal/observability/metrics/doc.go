// Package metrics provides Prometheus metrics registry and recording utilities.
//
// This package centralizes all application metrics including:
//   - HTTP request metrics (duration, count, size)
//   - Business metrics (articles, tags, comments, contact messages)
//   - Database query metrics
//
// All metrics are automatically registered with the Prometheus default registry
// and exposed via the /metrics endpoint.
//
// Example usage:
//
//	import "pressroom/internal/observability/metrics"
//
//	func publishDue(arts []*entity.Article) {
//	    for range arts {
//	        metrics.RecordArticlePublished("scheduler")
//	    }
//	}
package metrics
