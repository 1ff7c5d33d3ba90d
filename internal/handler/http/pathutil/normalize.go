// Package pathutil provides URL path helpers shared by the HTTP handlers:
// slug extraction and path normalization for metrics labels.
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
// Pre-compiled at initialization so normalization stays cheap per request.
var pathPatterns = []*PathPattern{
	// Public article routes addressed by slug
	{Pattern: regexp.MustCompile(`^/articles/[A-Za-z0-9-]+/comments$`), Template: "/articles/:slug/comments"},
	{Pattern: regexp.MustCompile(`^/articles/[A-Za-z0-9-]+$`), Template: "/articles/:slug"},
}

// NormalizePath normalizes dynamic URL paths to prevent metrics label
// cardinality explosion. Slug-addressed paths (e.g. /articles/go-generics)
// collapse to a template (/articles/:slug). Static paths, including every
// /admin/... verb path, remain unchanged.
//
// Examples:
//
//	NormalizePath("/articles/go-generics")          // "/articles/:slug"
//	NormalizePath("/articles/go-generics/comments") // "/articles/:slug/comments"
//	NormalizePath("/admin/articles/create")         // unchanged
//	NormalizePath("/categories")                    // unchanged
//	NormalizePath("/health")                        // unchanged
//
// Query parameters and trailing slashes are handled:
//
//	NormalizePath("/articles/go-generics?ref=home") // "/articles/:slug"
//	NormalizePath("/articles/go-generics/")         // "/articles/:slug"
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

	// No match found, return original path. Static paths like /health,
	// /metrics and the /admin verb paths pass through unchanged.
	return path
}
