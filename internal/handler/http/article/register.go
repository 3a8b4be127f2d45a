package article

import (
	"log/slog"
	"net/http"

	artUC "news-app/internal/usecase/article"
)

// Register registers the article endpoints with the given mux.
// Both routes are read-only; the catalog has no mutating operations.
// Each route also answers with a single trailing slash.
func Register(mux *http.ServeMux, svc artUC.Service, logger *slog.Logger) {
	list := ListHandler{Svc: svc, Logger: logger}
	mux.Handle("GET /api/news", list)
	mux.Handle("GET /api/news/{$}", list)

	get := GetHandler{Svc: svc}
	mux.Handle("GET /api/news/{id}", get)
	mux.Handle("GET /api/news/{id}/{$}", get)
}
