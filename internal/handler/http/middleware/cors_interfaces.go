package middleware

// OriginValidator decides whether an Origin header value may receive CORS headers.
type OriginValidator interface {
	// IsAllowed reports whether origin is permitted. Empty origins are never allowed.
	IsAllowed(origin string) bool

	// GetAllowedOrigins returns a copy of the configured origins for logging.
	GetAllowedOrigins() []string
}
