// Package metrics provides Prometheus metrics registry and recording utilities.
//
// This package centralizes all application metrics including:
//   - HTTP request metrics (duration, count, size, in-flight)
//   - Catalog metrics (article count, lookups by id)
//   - Recovered handler panics
//
// All metrics are registered with the Prometheus default registry
// and exposed via the /metrics endpoint.
//
// Example usage:
//
//	import "news-app/internal/observability/metrics"
//
//	metrics.SetArticlesTotal(len(articles))
//	metrics.RecordArticleLookup(article != nil)
package metrics
