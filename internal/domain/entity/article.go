// Package entity defines the core domain entities and validation logic for the application.
// It contains the fundamental business objects such as Article, Category and Tag, along with
// their validation rules and domain-specific errors.
package entity

import "time"

// ArticleStatus represents the editorial state of an article.
// The enum exists for filtering and display; transitions are not
// enforced as a workflow by the server.
type ArticleStatus string

const (
	StatusDraft     ArticleStatus = "DRAFT"
	StatusPublished ArticleStatus = "PUBLISHED"
	StatusArchived  ArticleStatus = "ARCHIVED"
)

// Valid reports whether the status is a member of the enum.
func (s ArticleStatus) Valid() bool {
	switch s {
	case StatusDraft, StatusPublished, StatusArchived:
		return true
	}
	return false
}

// ArticleStatuses lists every valid article status, used for
// search-term matching and validation messages.
var ArticleStatuses = []ArticleStatus{StatusDraft, StatusPublished, StatusArchived}

// Article represents a publishable article in the system.
// Content holds rendered HTML; MarkdownContent holds the source it was
// rendered from. Slug is unique among non-deleted articles.
type Article struct {
	ID              int64
	Title           string
	Slug            string
	Summary         string
	Content         string
	MarkdownContent string
	ThumbnailURL    string
	Status          ArticleStatus
	AuthorID        int64
	CategoryID      int64
	PublishAt       *time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
	DeletedAt       *time.Time
}
