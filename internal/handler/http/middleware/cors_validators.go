package middleware

import (
	"slices"
	"strings"
)

// WhitelistValidator implements exact-match origin validation.
// Comparison ignores case and a trailing slash.
//
//	validator := NewWhitelistValidator([]string{"http://localhost:3000"})
//	validator.IsAllowed("http://localhost:3000") // true
//	validator.IsAllowed("http://malicious.com")  // false
type WhitelistValidator struct {
	allowedOrigins []string
}

// NewWhitelistValidator creates a WhitelistValidator. Blank entries are dropped.
func NewWhitelistValidator(origins []string) *WhitelistValidator {
	normalized := make([]string, 0, len(origins))
	for _, origin := range origins {
		origin = normalizeOrigin(origin)
		if origin == "" {
			continue
		}
		normalized = append(normalized, origin)
	}

	return &WhitelistValidator{
		allowedOrigins: normalized,
	}
}

// IsAllowed checks if the given origin is in the whitelist.
func (v *WhitelistValidator) IsAllowed(origin string) bool {
	origin = normalizeOrigin(origin)
	if origin == "" {
		return false
	}
	return slices.Contains(v.allowedOrigins, origin)
}

// GetAllowedOrigins returns a copy of the normalized allow list.
func (v *WhitelistValidator) GetAllowedOrigins() []string {
	return slices.Clone(v.allowedOrigins)
}

func normalizeOrigin(origin string) string {
	return strings.TrimSuffix(strings.ToLower(strings.TrimSpace(origin)), "/")
}
