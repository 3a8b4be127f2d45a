package pathutil

import (
	"regexp"
	"strings"
)

// PathPattern represents a regex pattern and its corresponding normalized template.
type PathPattern struct {
	Pattern  *regexp.Regexp
	Template string
}

// pathPatterns defines the list of patterns for dynamic routes.
// Patterns are evaluated in order from most specific to least specific.
var pathPatterns = []*PathPattern{
	{Pattern: regexp.MustCompile(`^/api/news/[^/]+$`), Template: "/api/news/:id"},
	{Pattern: regexp.MustCompile(`^/swagger/.+$`), Template: "/swagger/*"},
}

// NormalizePath normalizes dynamic URL paths to prevent metrics label cardinality explosion.
// It converts paths with IDs (e.g., /api/news/3) to template format (e.g., /api/news/:id).
// Static paths remain unchanged.
//
// Examples:
//
//	NormalizePath("/api/news/3")            // "/api/news/:id"
//	NormalizePath("/api/news/abc")          // "/api/news/:id"
//	NormalizePath("/api/news")              // "/api/news" (unchanged)
//	NormalizePath("/api/health")            // "/api/health" (unchanged)
//	NormalizePath("/swagger/index.html")    // "/swagger/*"
//
// Query parameters and trailing slashes are handled:
//
//	NormalizePath("/api/news/3?x=1")        // "/api/news/:id"
//	NormalizePath("/api/news/3/")           // "/api/news/:id"
func NormalizePath(path string) string {
	// Strip query parameters if present
	if idx := strings.IndexByte(path, '?'); idx != -1 {
		path = path[:idx]
	}

	// Strip trailing slash if present (except for root path)
	if len(path) > 1 && path[len(path)-1] == '/' {
		path = path[:len(path)-1]
	}

	for _, p := range pathPatterns {
		if p.Pattern.MatchString(path) {
			return p.Template
		}
	}

	return path
}
