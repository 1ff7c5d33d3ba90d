package repository

import (
	"context"

	"pressroom/internal/domain/entity"
)

// CategoryWithCount pairs a category with the number of non-deleted articles
// it owns, for the public category listing.
type CategoryWithCount struct {
	Category     *entity.Category
	ArticleCount int64
}

type CategoryRepository interface {
	// Get retrieves a non-deleted category by ID. Returns (nil, nil) if absent.
	Get(ctx context.Context, id int64) (*entity.Category, error)
	// List retrieves a page of non-deleted categories ordered by name.
	// search, when non-empty, is matched case-insensitively against name,
	// slug and description.
	List(ctx context.Context, search string, offset, limit int) ([]*entity.Category, error)
	// Count returns the number of non-deleted categories matching search.
	Count(ctx context.Context, search string) (int64, error)
	// ListWithCounts returns every non-deleted category with its live
	// article count, for the public API.
	ListWithCounts(ctx context.Context) ([]CategoryWithCount, error)
	// Create inserts the category and sets category.ID.
	// Returns ErrDuplicate on a slug collision.
	Create(ctx context.Context, category *entity.Category) error
	// Update rewrites the category row. Returns ErrDuplicate on a slug collision.
	Update(ctx context.Context, category *entity.Category) error
	// SoftDelete marks the category deleted. The in-use guard is the
	// caller's job (CountArticles).
	SoftDelete(ctx context.Context, id int64) error
	// CountBySlug counts live categories using slug, excluding excludeID.
	CountBySlug(ctx context.Context, slug string, excludeID int64) (int64, error)
	// CountArticles returns the number of non-deleted articles owned by the
	// category. Non-zero blocks a soft delete.
	CountArticles(ctx context.Context, categoryID int64) (int64, error)
}
