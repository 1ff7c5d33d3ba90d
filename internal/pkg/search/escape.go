// Package search provides shared helpers for SQL text search.
package search

import (
	"strings"
	"time"
)

// DefaultSearchTimeout bounds list/search queries so a pathological term
// cannot hold a connection indefinitely.
const DefaultSearchTimeout = 5 * time.Second

// EscapeILIKE escapes ILIKE wildcard characters in a user-supplied term and
// wraps it in wildcards for substring matching.
func EscapeILIKE(term string) string {
	escaped := strings.NewReplacer(
		`\`, `\\`,
		`%`, `\%`,
		`_`, `\_`,
	).Replace(term)
	return "%" + escaped + "%"
}
