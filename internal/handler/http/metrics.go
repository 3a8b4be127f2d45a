package http

import (
	"net/http"
	"time"

	"news-app/internal/handler/http/pathutil"
	"news-app/internal/handler/http/responsewriter"
	"news-app/internal/observability/metrics"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// unmatchedPathLabel replaces the path label for requests that hit the
// route-not-found fallback, so scanners cannot inflate label cardinality.
const unmatchedPathLabel = "unmatched"

// otherMethodLabel replaces the method label for methods no route serves.
const otherMethodLabel = "other"

// MetricsMiddleware records HTTP request metrics including duration, size, and status codes.
// It uses path normalization to prevent label cardinality explosion from ID-containing paths.
func MetricsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		metrics.HTTPRequestsInFlight.Inc()
		defer metrics.HTTPRequestsInFlight.Dec()

		rw := responsewriter.Wrap(w)
		start := time.Now()
		defer func() {
			metrics.RecordHTTPRequest(metricsMethod(r.Method), metricsPath(r.URL.Path, rw.StatusCode()),
				rw.StatusCode(), time.Since(start), rw.BytesWritten())
		}()

		next.ServeHTTP(rw, r)
	})
}

// metricsMethod bounds the method label to the methods the service answers.
func metricsMethod(method string) string {
	switch method {
	case http.MethodGet, http.MethodHead, http.MethodOptions:
		return method
	default:
		return otherMethodLabel
	}
}

// metricsPath normalizes a path for use as a metric label.
func metricsPath(path string, status int) string {
	normalized := pathutil.NormalizePath(path)
	if status == http.StatusNotFound && normalized == path {
		return unmatchedPathLabel
	}
	return normalized
}

// MetricsHandler returns an HTTP handler for the Prometheus metrics endpoint.
func MetricsHandler() http.Handler {
	return promhttp.Handler()
}
