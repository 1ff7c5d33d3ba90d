package repository

import (
	"context"
	"time"

	"pressroom/internal/domain/entity"
)

// ArticleWithRelations carries an article together with the display names of
// the rows it references and the names of its tags.
type ArticleWithRelations struct {
	Article      *entity.Article
	CategoryName string
	CategorySlug string
	AuthorName   string
	TagNames     []string
}

// ArticleListFilters contains optional filters for article listing.
type ArticleListFilters struct {
	// Search is matched case-insensitively against title, slug, summary and
	// content, OR-combined; when the uppercased term equals a status enum
	// value an exact status clause is added as well.
	Search string
	// PublishedOnly restricts results to non-deleted PUBLISHED articles
	// (the public read path).
	PublishedOnly bool
	// CategorySlug / TagName narrow results to one category or tag.
	CategorySlug string
	TagName      string
}

type ArticleRepository interface {
	// Get retrieves a non-deleted article by ID.
	// Returns (nil, nil) if the article is absent or soft-deleted.
	Get(ctx context.Context, id int64) (*entity.Article, error)
	// GetBySlug retrieves a non-deleted article with its relations.
	// Returns (nil, nil) if the slug does not match a live row.
	GetBySlug(ctx context.Context, slug string) (*ArticleWithRelations, error)
	// List retrieves a page of non-deleted articles with relations,
	// newest first. Uses LIMIT and OFFSET.
	List(ctx context.Context, filters ArticleListFilters, offset, limit int) ([]ArticleWithRelations, error)
	// Count returns the number of non-deleted articles matching the filters,
	// used for pagination metadata.
	Count(ctx context.Context, filters ArticleListFilters) (int64, error)
	// Create inserts the article and sets article.ID.
	// Returns ErrDuplicate when the slug collides with a live article.
	Create(ctx context.Context, article *entity.Article) error
	// Update rewrites every column of the article row.
	// Returns ErrDuplicate on a slug collision.
	Update(ctx context.Context, article *entity.Article) error
	// DeleteBulk hard-deletes the given ids and reports how many rows went away.
	DeleteBulk(ctx context.Context, ids []int64) (int64, error)
	// CountBySlug counts live articles using slug, excluding excludeID
	// (pass 0 to exclude nothing). Pre-check for the uniqueness invariant;
	// the partial unique index is the authoritative guard.
	CountBySlug(ctx context.Context, slug string, excludeID int64) (int64, error)

	// TagNames returns the names of tags attached to the article.
	TagNames(ctx context.Context, articleID int64) ([]string, error)
	// AddTags inserts join rows for the given tag ids, skipping pairs that
	// already exist.
	AddTags(ctx context.Context, articleID int64, tagIDs []int64) error
	// ReplaceTags atomically rewrites the article's join rows so they match
	// exactly the given tag id set. An empty set clears all associations.
	ReplaceTags(ctx context.Context, articleID int64, tagIDs []int64) error

	// ListDuePublish returns DRAFT articles whose publish_at is at or before
	// now, oldest first, for the scheduled-publishing worker.
	ListDuePublish(ctx context.Context, now time.Time, limit int) ([]*entity.Article, error)
	// CountAll returns the total number of non-deleted articles.
	CountAll(ctx context.Context) (int64, error)
}
