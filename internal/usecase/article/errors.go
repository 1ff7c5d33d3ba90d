// Package article provides use cases for managing articles.
// It implements business logic for authoring, publishing, searching and
// deleting articles, including validation, slug management and tag
// reconciliation.
package article

import "errors"

// Sentinel errors for article use case operations.
var (
	// ErrArticleNotFound indicates that the requested article was not found.
	ErrArticleNotFound = errors.New("article not found")

	// ErrInvalidArticleID indicates that the provided article ID is not positive.
	ErrInvalidArticleID = errors.New("invalid article ID")

	// ErrDuplicateSlug indicates that another live article already owns the slug.
	// Soft-deleted articles do not hold their slug.
	ErrDuplicateSlug = errors.New("article with this slug already exists")
)
