package auth

import "strings"

// Role constants used in JWT claims and permission checks.
const (
	// RoleAdmin has full access to the admin API.
	RoleAdmin = "admin"
	// RoleEditor can manage articles, tags and comment moderation, but not
	// users, categories or contact messages.
	RoleEditor = "editor"
)

// Permission defines the allowed operations for a role.
type Permission struct {
	// AllowedMethods specifies which HTTP methods this role can use.
	AllowedMethods []string

	// AllowedPaths specifies which URL paths this role can access.
	// Supports wildcards: "/*" matches all paths, "/admin/articles/*"
	// matches every article admin endpoint.
	AllowedPaths []string
}

// RolePermissions maps each role to its allowed permissions.
//
// OPTIONS is allowed for both roles so CORS preflight requests pass.
var RolePermissions = map[string]Permission{
	RoleAdmin: {
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
		AllowedPaths:   []string{"/*"},
	},
	RoleEditor: {
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedPaths: []string{
			"/admin/articles/*",
			"/admin/tags/*",
			"/admin/comments/*",
		},
	},
}

// checkRolePermission checks if a role may call the given method and path.
// Returns false for unknown or empty roles.
func checkRolePermission(role, method, path string) bool {
	if role == "" {
		return false
	}

	perm, exists := RolePermissions[role]
	if !exists {
		return false
	}

	methodAllowed := false
	for _, allowedMethod := range perm.AllowedMethods {
		if allowedMethod == method {
			methodAllowed = true
			break
		}
	}
	if !methodAllowed {
		return false
	}

	return matchesPathPattern(path, perm.AllowedPaths)
}

// matchesPathPattern checks if a path matches any of the allowed patterns.
//
// Rules:
//   - "/*" matches all paths
//   - "/admin/articles/*" matches "/admin/articles" and every subpath
//   - patterns without a wildcard require an exact match
func matchesPathPattern(path string, patterns []string) bool {
	for _, pattern := range patterns {
		if pattern == "/*" {
			return true
		}

		if strings.HasSuffix(pattern, "/*") {
			prefix := strings.TrimSuffix(pattern, "/*")
			if path == prefix || strings.HasPrefix(path, prefix+"/") {
				return true
			}
			continue
		}

		if path == pattern {
			return true
		}
	}
	return false
}
