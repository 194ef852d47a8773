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
// Pre-compiled at initialization for optimal performance (<1μs per operation).
var pathPatterns = []*PathPattern{
	{Pattern: regexp.MustCompile(`^/authors/\d+$`), Template: "/authors/:id"},
	{Pattern: regexp.MustCompile(`^/posts/\d+$`), Template: "/posts/:id"},
}

// NormalizePath normalizes dynamic URL paths to prevent metrics label cardinality explosion.
// It converts paths with IDs (e.g., /authors/123) to template format (e.g., /authors/:id).
// Static paths remain unchanged.
//
// Examples:
//
//	NormalizePath("/authors/123")       // "/authors/:id"
//	NormalizePath("/posts/7")           // "/posts/:id"
//	NormalizePath("/health")            // "/health" (unchanged)
//	NormalizePath("/unknown/path/123")  // "/unknown/path/123" (no match, return original)
//
// Query parameters and trailing slashes are handled:
//
//	NormalizePath("/posts/123?page=1")  // "/posts/:id"
//	NormalizePath("/posts/123/")        // "/posts/:id"
func NormalizePath(path string) string {
	// Strip query parameters if present
	if idx := strings.IndexByte(path, '?'); idx != -1 {
		path = path[:idx]
	}

	// Strip trailing slash if present (except for root path)
	if len(path) > 1 && path[len(path)-1] == '/' {
		path = path[:len(path)-1]
	}

	// Try to match against known patterns
	for _, p := range pathPatterns {
		if p.Pattern.MatchString(path) {
			return p.Template
		}
	}

	// No match found, return original path
	return path
}

// GetExpectedCardinality returns the expected number of unique path labels
// after normalization. This is useful for capacity planning and monitoring.
//
// Static endpoints are /health, /ready, /live, /metrics, /authors and /posts.
func GetExpectedCardinality() int {
	// Count template patterns
	templateCount := len(pathPatterns)

	staticCount := 6

	// Total expected cardinality
	return templateCount + staticCount
}
