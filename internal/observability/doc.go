// Package observability groups the logging, metrics, and tracing infrastructure.
//
// Subpackages:
//   - logging: Structured logging utilities with slog
//   - metrics: Prometheus metrics registry and recorders
//   - tracing: OpenTelemetry tracer provider and HTTP middleware
//
// Example usage:
//
//	import (
//	    "news-app/internal/observability/logging"
//	    "news-app/internal/observability/metrics"
//	)
//
//	func main() {
//	    logger := logging.New(os.Stdout, "info")
//	    logger.Info("application started")
//
//	    metrics.SetArticlesTotal(5)
//	}
package observability
