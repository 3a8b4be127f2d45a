package metrics

import (
	"strconv"
	"time"
)

// RecordHTTPRequest records an HTTP request with its metadata.
// path must already be normalized to keep label cardinality bounded.
func RecordHTTPRequest(method, path string, status int, duration time.Duration, responseSize int) {
	code := strconv.Itoa(status)
	HTTPRequestsTotal.WithLabelValues(method, path, code).Inc()
	HTTPRequestDuration.WithLabelValues(method, path, code).Observe(duration.Seconds())
	HTTPResponseSize.WithLabelValues(method, path).Observe(float64(responseSize))
}

// SetArticlesTotal updates the catalog size gauge.
func SetArticlesTotal(count int) {
	ArticlesTotal.Set(float64(count))
}

// RecordArticleLookup records the outcome of a lookup by id.
func RecordArticleLookup(found bool) {
	result := "found"
	if !found {
		result = "not_found"
	}
	ArticleLookupsTotal.WithLabelValues(result).Inc()
}

// RecordPanicRecovered counts a recovered handler panic.
func RecordPanicRecovered() {
	PanicsRecoveredTotal.Inc()
}
