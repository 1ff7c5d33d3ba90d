package pathutil

import (
	"errors"
	"strings"
)

// ErrInvalidSlug is returned when the slug segment of a URL path is missing
// or malformed.
var ErrInvalidSlug = errors.New("invalid slug")

// ExtractSlug extracts a URL slug from a path after removing the prefix.
// The remainder must be a single non-empty path segment made of letters,
// digits and hyphens; anything else is rejected.
//
// Example:
//
//	slug, err := ExtractSlug("/articles/go-generics-in-practice", "/articles/")
//	// Returns: "go-generics-in-practice", nil
func ExtractSlug(path, prefix string) (string, error) {
	slug := strings.TrimPrefix(path, prefix)
	slug = strings.TrimSuffix(slug, "/")
	if slug == "" || slug == path {
		return "", ErrInvalidSlug
	}
	for _, ch := range slug {
		switch {
		case ch >= 'a' && ch <= 'z':
		case ch >= 'A' && ch <= 'Z':
		case ch >= '0' && ch <= '9':
		case ch == '-':
		default:
			return "", ErrInvalidSlug
		}
	}
	return slug, nil
}
