// Package category provides use cases for managing article categories,
// including the delete guard that keeps a category alive while articles
// still reference it.
package category

import "errors"

// Sentinel errors for category use case operations.
var (
	// ErrCategoryNotFound indicates that the requested category was not found.
	ErrCategoryNotFound = errors.New("category not found")

	// ErrDuplicateSlug indicates that another live category already owns the slug.
	ErrDuplicateSlug = errors.New("category with this slug already exists")

	// ErrCategoryInUse indicates that the category still owns live articles
	// and therefore cannot be deleted.
	ErrCategoryInUse = errors.New("category is referenced by existing articles")
)
