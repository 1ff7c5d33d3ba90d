// Package comment provides use cases for reader comments: public
// submission against published articles and back-office moderation.
package comment

import "errors"

// Sentinel errors for comment use case operations.
var (
	// ErrCommentNotFound indicates that the requested comment was not found.
	ErrCommentNotFound = errors.New("comment not found")

	// ErrArticleNotFound indicates that the target article does not exist
	// or is not published.
	ErrArticleNotFound = errors.New("article not found")
)
