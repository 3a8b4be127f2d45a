// Package http provides HTTP handlers and middleware for the web application.
// It includes the health check endpoint, the landing page and static asset host,
// the route-not-found fallback, and logging, recovery, and metrics middleware.
package http

import (
	"net/http"
	"time"

	"news-app/internal/handler/http/respond"
)

// HealthResponse represents the JSON response for the health check endpoint.
type HealthResponse struct {
	Status    string  `json:"status" example:"healthy"`                     // always "healthy" while the process serves
	Timestamp string  `json:"timestamp" example:"2026-10-19T08:00:00.000Z"` // ISO 8601 format
	Uptime    float64 `json:"uptime" example:"42.5"`                        // seconds since process start
	Version   string  `json:"version" example:"1.0.0"`                      // application version
}

// HealthHandler handles health check endpoint requests.
// The catalog lives in memory, so there are no dependencies to probe:
// answering at all means the process is healthy.
type HealthHandler struct {
	Version   string
	StartedAt time.Time
	// Now overrides the clock in tests; nil means time.Now.
	Now func() time.Time
}

// ServeHTTP ヘルスチェック
// @Summary      ヘルスチェック
// @Description  プロセスの稼働状況、稼働時間（秒）、バージョンを返します。
// @Tags         health
// @Produce      json
// @Success      200 {object} HealthResponse
// @Router       /api/health [get]
func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	now := time.Now()
	if h.Now != nil {
		now = h.Now()
	}

	uptime := now.Sub(h.StartedAt).Seconds()
	if uptime < 0 {
		uptime = 0
	}

	w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
	respond.JSON(w, http.StatusOK, HealthResponse{
		Status:    "healthy",
		Timestamp: now.UTC().Format("2006-01-02T15:04:05.000Z07:00"),
		Uptime:    uptime,
		Version:   h.Version,
	})
}
