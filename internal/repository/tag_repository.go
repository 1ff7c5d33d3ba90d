package repository

import (
	"context"

	"pressroom/internal/domain/entity"
)

type TagRepository interface {
	// Get retrieves a non-deleted tag by ID. Returns (nil, nil) if absent.
	Get(ctx context.Context, id int64) (*entity.Tag, error)
	// List retrieves a page of non-deleted tags ordered by name.
	List(ctx context.Context, search string, offset, limit int) ([]*entity.Tag, error)
	// Count returns the number of non-deleted tags matching search.
	Count(ctx context.Context, search string) (int64, error)
	// FindByNames returns the non-deleted tags whose name is in names,
	// matched exactly (case-sensitive). Missing names are simply absent
	// from the result.
	FindByNames(ctx context.Context, names []string) ([]*entity.Tag, error)
	// Create inserts the tag and sets tag.ID.
	// Returns ErrDuplicate when the name is already taken by a live tag.
	Create(ctx context.Context, tag *entity.Tag) error
	// Update rewrites the tag row. Returns ErrDuplicate on a name collision.
	Update(ctx context.Context, tag *entity.Tag) error
	// SoftDelete marks the tag deleted. The in-use guard is the caller's
	// job (CountArticles).
	SoftDelete(ctx context.Context, id int64) error
	// CountByName counts live tags using name, excluding excludeID.
	CountByName(ctx context.Context, name string, excludeID int64) (int64, error)
	// CountArticles returns the number of non-deleted articles referencing
	// the tag through the join table. Non-zero blocks a soft delete.
	CountArticles(ctx context.Context, tagID int64) (int64, error)
}
