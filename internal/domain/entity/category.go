package entity

import "time"

// Category groups articles. Slug is unique among non-deleted categories.
// A category cannot be soft-deleted while it still owns a non-deleted article.
type Category struct {
	ID          int64
	Name        string
	Slug        string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   *time.Time
}
