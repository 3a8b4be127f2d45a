package http

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"news-app/internal/observability/metrics"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetricsMiddleware_PathLabels(t *testing.T) {
	tests := []struct {
		name       string
		method     string
		path       string
		status     int
		wantMethod string
		wantPath   string
	}{
		{name: "article by id", method: http.MethodGet, path: "/api/news/7", status: http.StatusOK, wantMethod: "GET", wantPath: "/api/news/:id"},
		{name: "missing article keeps template", method: http.MethodGet, path: "/api/news/999", status: http.StatusNotFound, wantMethod: "GET", wantPath: "/api/news/:id"},
		{name: "list", method: http.MethodGet, path: "/api/news", status: http.StatusOK, wantMethod: "GET", wantPath: "/api/news"},
		{name: "health", method: http.MethodHead, path: "/api/health", status: http.StatusOK, wantMethod: "HEAD", wantPath: "/api/health"},
		{name: "preflight", method: http.MethodOptions, path: "/api/news", status: http.StatusNoContent, wantMethod: "OPTIONS", wantPath: "/api/news"},
		{name: "unmatched route collapses", method: http.MethodPost, path: "/wp-admin/setup.php", status: http.StatusNotFound, wantMethod: "other", wantPath: "unmatched"},
		{name: "arbitrary method collapses", method: "FOOBAR", path: "/api/news", status: http.StatusNotFound, wantMethod: "other", wantPath: "unmatched"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status := tt.status
			h := MetricsMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(status)
			}))

			counter := metrics.HTTPRequestsTotal.WithLabelValues(tt.wantMethod, tt.wantPath, strconv.Itoa(tt.status))
			before := testutil.ToFloat64(counter)

			h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(tt.method, tt.path, nil))

			assert.Equal(t, before+1, testutil.ToFloat64(counter))
		})
	}
}

func TestMetricsMiddleware_CountsRecoveredPanics(t *testing.T) {
	h := Chain(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}), MetricsMiddleware, Recover(slog.New(slog.NewTextHandler(io.Discard, nil))))

	counter := metrics.HTTPRequestsTotal.WithLabelValues(http.MethodGet, "/api/news", "500")
	before := testutil.ToFloat64(counter)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/news", nil))

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, before+1, testutil.ToFloat64(counter))
}

func TestMetricsMiddleware_InFlightReturnsToBaseline(t *testing.T) {
	before := testutil.ToFloat64(metrics.HTTPRequestsInFlight)

	var during float64
	h := MetricsMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		during = testutil.ToFloat64(metrics.HTTPRequestsInFlight)
	}))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/health", nil))

	assert.Equal(t, before+1, during)
	assert.Equal(t, before, testutil.ToFloat64(metrics.HTTPRequestsInFlight))
}

func TestMetricsHandler_ExposesMetrics(t *testing.T) {
	metrics.SetArticlesTotal(5)

	srv := httptest.NewServer(MetricsHandler())
	defer srv.Close()

	resp, err := http.Get(srv.URL)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "news_articles_total 5")
}
