// Package middleware provides the cross-origin resource sharing (CORS) middleware.
package middleware

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"news-app/internal/handler/http/respond"
)

// CORSConfig holds the configuration for CORS middleware.
type CORSConfig struct {
	// AllowedMethods is advertised on preflight responses.
	// Default: ["GET", "HEAD", "OPTIONS"]
	AllowedMethods []string

	// AllowedHeaders is advertised on preflight responses.
	// Default: ["Content-Type", "X-Request-ID"]
	AllowedHeaders []string

	// ExposedHeaders lets browser scripts read the correlation headers.
	ExposedHeaders []string

	// AllowCredentials indicates whether credentialed requests are supported.
	AllowCredentials bool

	// MaxAge specifies how long preflight results can be cached (in seconds).
	MaxAge int

	// Validator decides which origins receive CORS headers.
	Validator OriginValidator

	// Logger receives policy violations (warn) and preflights (debug). May be nil.
	Logger *slog.Logger
}

// CORS returns an HTTP middleware that handles CORS for cross-origin requests.
//
// Behavior:
//   - Empty Origin: same-origin request, passed through untouched
//   - Disallowed Origin: logged and passed through without CORS headers
//   - Allowed Origin, OPTIONS: preflight answered with 204, next is not called
//   - Allowed Origin, other methods: CORS headers set, passed to next
func CORS(config CORSConfig) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")
			if origin == "" {
				next.ServeHTTP(w, r)
				return
			}

			// レスポンスが Origin によって変わるのでキャッシュに伝える
			w.Header().Add("Vary", "Origin")

			if config.Validator == nil || !config.Validator.IsAllowed(origin) {
				if config.Logger != nil {
					config.Logger.Warn("CORS: origin not allowed",
						slog.String("origin", respond.SanitizeMessage(origin)),
						slog.String("path", respond.SanitizeMessage(r.URL.Path)),
						slog.String("method", r.Method),
						slog.String("remote_addr", r.RemoteAddr),
					)
				}
				next.ServeHTTP(w, r)
				return
			}

			// Echo the request origin; a wildcard is not allowed with credentials.
			w.Header().Set("Access-Control-Allow-Origin", origin)
			if config.AllowCredentials {
				w.Header().Set("Access-Control-Allow-Credentials", "true")
			}
			if len(config.ExposedHeaders) > 0 {
				w.Header().Set("Access-Control-Expose-Headers", strings.Join(config.ExposedHeaders, ", "))
			}

			if r.Method == http.MethodOptions {
				w.Header().Set("Access-Control-Allow-Methods", strings.Join(config.AllowedMethods, ", "))
				w.Header().Set("Access-Control-Allow-Headers", strings.Join(config.AllowedHeaders, ", "))
				w.Header().Set("Access-Control-Max-Age", strconv.Itoa(config.MaxAge))

				if config.Logger != nil {
					config.Logger.Debug("CORS: preflight request",
						slog.String("origin", origin),
						slog.String("requested_method", respond.SanitizeMessage(r.Header.Get("Access-Control-Request-Method"))),
						slog.String("requested_headers", respond.SanitizeMessage(r.Header.Get("Access-Control-Request-Headers"))),
					)
				}

				w.WriteHeader(http.StatusNoContent)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
