package middleware

import (
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
)

// Defaults applied by NewCORSConfig.
var (
	DefaultAllowedMethods = []string{"GET", "HEAD", "OPTIONS"}
	DefaultAllowedHeaders = []string{"Content-Type", "X-Request-ID"}
	DefaultExposedHeaders = []string{"X-Request-ID", "X-Trace-Id"}
)

// DefaultMaxAge is the preflight cache duration in seconds (24 hours).
const DefaultMaxAge = 86400

// ErrNoOrigins is returned when the allow list is empty after trimming.
var ErrNoOrigins = errors.New("at least one allowed origin must be configured")

// ValidateOrigins trims and validates an origin allow list.
//
// Validation (fail-closed):
//   - Each origin must be an absolute http:// or https:// URL with a host
//   - Origins must not include a path, query string, fragment, or trailing slash
//   - Blank entries are skipped; at least one origin must remain
func ValidateOrigins(origins []string) ([]string, error) {
	out := make([]string, 0, len(origins))
	for _, origin := range origins {
		origin = strings.TrimSpace(origin)
		if origin == "" {
			continue
		}
		if err := validateOrigin(origin); err != nil {
			return nil, err
		}
		out = append(out, origin)
	}
	if len(out) == 0 {
		return nil, ErrNoOrigins
	}
	return out, nil
}

func validateOrigin(origin string) error {
	u, err := url.Parse(origin)
	if err != nil {
		return fmt.Errorf("invalid origin URL '%s': %w", origin, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("origin must use http or https scheme: %s", origin)
	}
	if u.Host == "" {
		return fmt.Errorf("origin must include a host: %s", origin)
	}
	if strings.HasSuffix(origin, "/") {
		return fmt.Errorf("origin must not have trailing slash: %s", origin)
	}
	if u.Path != "" {
		return fmt.Errorf("origin must not include path: %s", origin)
	}
	if u.RawQuery != "" || u.ForceQuery {
		return fmt.Errorf("origin must not include query string: %s", origin)
	}
	if u.Fragment != "" {
		return fmt.Errorf("origin must not include fragment: %s", origin)
	}
	return nil
}

// NewCORSConfig builds the application's CORS policy for the given origins.
// Credentials are allowed; the validator is an exact-match whitelist.
//
// Usage:
//
//	config, err := middleware.NewCORSConfig(cfg.AllowedOrigins, logger)
//	if err != nil {
//	    return err
//	}
//	handler = middleware.CORS(*config)(handler)
func NewCORSConfig(origins []string, logger *slog.Logger) (*CORSConfig, error) {
	valid, err := ValidateOrigins(origins)
	if err != nil {
		return nil, fmt.Errorf("failed to load allowed origins: %w", err)
	}

	return &CORSConfig{
		AllowedMethods:   append([]string(nil), DefaultAllowedMethods...),
		AllowedHeaders:   append([]string(nil), DefaultAllowedHeaders...),
		ExposedHeaders:   append([]string(nil), DefaultExposedHeaders...),
		AllowCredentials: true,
		MaxAge:           DefaultMaxAge,
		Validator:        NewWhitelistValidator(valid),
		Logger:           logger,
	}, nil
}
