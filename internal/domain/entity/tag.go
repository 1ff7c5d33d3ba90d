package entity

import "time"

// Tag labels articles through the article_tags join table.
// Name is unique among non-deleted tags and is matched exactly as
// supplied by clients (case-sensitive, no trimming).
// A tag cannot be soft-deleted while a non-deleted article references it.
type Tag struct {
	ID        int64
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt *time.Time
}
