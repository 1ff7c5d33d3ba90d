package repository

import (
	"context"

	"pressroom/internal/domain/entity"
)

// CommentListFilters contains optional filters for the admin comment listing.
type CommentListFilters struct {
	ArticleID *int64
	Status    *entity.CommentStatus
	Search    string // matched against author_name, email and content
}

type CommentRepository interface {
	// Get retrieves a non-deleted comment by ID. Returns (nil, nil) if absent.
	Get(ctx context.Context, id int64) (*entity.Comment, error)
	// ListApproved returns APPROVED, non-deleted comments for an article,
	// oldest first (the public read path).
	ListApproved(ctx context.Context, articleID int64) ([]*entity.Comment, error)
	// List retrieves a page of non-deleted comments, newest first.
	List(ctx context.Context, filters CommentListFilters, offset, limit int) ([]*entity.Comment, error)
	// Count returns the number of non-deleted comments matching the filters.
	Count(ctx context.Context, filters CommentListFilters) (int64, error)
	// Create inserts the comment and sets comment.ID.
	Create(ctx context.Context, comment *entity.Comment) error
	// UpdateStatus moves a comment to another moderation state.
	UpdateStatus(ctx context.Context, id int64, status entity.CommentStatus) error
	// SoftDelete marks the comment deleted.
	SoftDelete(ctx context.Context, id int64) error
}
