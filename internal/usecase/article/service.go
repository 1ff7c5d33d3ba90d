package article

import (
	"context"
	"errors"
	"fmt"
	"time"

	goslug "github.com/gosimple/slug"

	"pressroom/internal/common/pagination"
	"pressroom/internal/domain/entity"
	"pressroom/internal/pkg/markdown"
	"pressroom/internal/repository"
)

// CreateInput represents the input parameters for creating a new article.
// Slug is generated from the title when omitted; Content is rendered from
// MarkdownContent when omitted.
type CreateInput struct {
	Title           string
	Slug            string
	Summary         string
	Content         string
	MarkdownContent string
	ThumbnailURL    string
	Status          string
	AuthorID        int64
	CategoryID      int64
	PublishAt       *time.Time
	Tags            []string
}

// UpdateInput represents the input parameters for updating an existing article.
// Fields with nil values will not be updated. A non-nil Tags slice replaces
// the article's tag set; an empty one clears it. ClearPublishAt removes the
// schedule; it takes precedence over PublishAt.
type UpdateInput struct {
	ID              int64
	Title           *string
	Slug            *string
	Summary         *string
	Content         *string
	MarkdownContent *string
	ThumbnailURL    *string
	Status          *string
	AuthorID        *int64
	CategoryID      *int64
	PublishAt       *time.Time
	ClearPublishAt  bool
	Tags            *[]string
}

// Service provides article management use cases.
// It handles business logic for article operations and delegates persistence
// to the repositories.
type Service struct {
	Repo repository.ArticleRepository
	Tags repository.TagRepository
}

// PaginatedResult represents the result of a paginated query.
// It contains both the data and pagination metadata.
type PaginatedResult struct {
	Data       []repository.ArticleWithRelations
	Pagination pagination.Metadata
}

// List retrieves one page of articles matching the filters, with category,
// author and tag names resolved.
func (s *Service) List(ctx context.Context, filters repository.ArticleListFilters, params pagination.Params) (*PaginatedResult, error) {
	total, err := s.Repo.Count(ctx, filters)
	if err != nil {
		return nil, fmt.Errorf("count articles: %w", err)
	}

	offset := pagination.CalculateOffset(params.Page, params.Limit)
	articles, err := s.Repo.List(ctx, filters, offset, params.Limit)
	if err != nil {
		return nil, fmt.Errorf("list articles: %w", err)
	}

	return &PaginatedResult{
		Data:       articles,
		Pagination: pagination.NewMetadata(params, len(articles), total),
	}, nil
}

// Get retrieves a single article by its ID, with its tag names.
// Returns ErrInvalidArticleID if the ID is not positive.
// Returns ErrArticleNotFound if the article does not exist.
func (s *Service) Get(ctx context.Context, id int64) (*entity.Article, []string, error) {
	if id <= 0 {
		return nil, nil, ErrInvalidArticleID
	}

	article, err := s.Repo.Get(ctx, id)
	if err != nil {
		return nil, nil, fmt.Errorf("get article: %w", err)
	}
	if article == nil {
		return nil, nil, ErrArticleNotFound
	}

	tags, err := s.Repo.TagNames(ctx, id)
	if err != nil {
		return nil, nil, fmt.Errorf("get article tags: %w", err)
	}
	return article, tags, nil
}

// GetPublishedBySlug retrieves a published article by its slug for the
// public read path. Drafts and archived articles are treated as absent.
// Returns ErrArticleNotFound if no published article owns the slug.
func (s *Service) GetPublishedBySlug(ctx context.Context, slug string) (*repository.ArticleWithRelations, error) {
	if slug == "" {
		return nil, ErrArticleNotFound
	}

	article, err := s.Repo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, fmt.Errorf("get article by slug: %w", err)
	}
	if article == nil || article.Article.Status != entity.StatusPublished {
		return nil, ErrArticleNotFound
	}
	return article, nil
}

// Create creates a new article with the provided input.
// All field violations are collected and returned together as
// entity.ValidationErrors. A slug collision with another live article
// returns ErrDuplicateSlug.
func (s *Service) Create(ctx context.Context, in CreateInput) (*entity.Article, error) {
	status := entity.ArticleStatus(in.Status)
	if in.Status == "" {
		status = entity.StatusDraft
	}
	if in.Slug == "" {
		in.Slug = goslug.Make(in.Title)
	}

	var ve entity.ValidationErrors
	ve.AddErr("title", entity.ValidateRequired("title", in.Title))
	ve.AddErr("title", entity.ValidateMaxLength("title", in.Title, entity.MaxTitleLength))
	ve.AddErr("slug", entity.ValidateSlug("slug", in.Slug))
	ve.AddErr("summary", entity.ValidateMaxLength("summary", in.Summary, entity.MaxSummaryLength))
	ve.AddErr("thumbnailUrl", entity.ValidateURL("thumbnailUrl", in.ThumbnailURL))
	if !status.Valid() {
		ve.Add("status", "must be one of DRAFT, PUBLISHED, ARCHIVED")
	}
	if in.AuthorID <= 0 {
		ve.Add("authorId", "must be positive")
	}
	if in.CategoryID <= 0 {
		ve.Add("categoryId", "must be positive")
	}
	tagNames := normalizeTagNames(in.Tags)
	validateTagNames(&ve, tagNames)
	if err := ve.Err(); err != nil {
		return nil, err
	}

	if in.Content == "" && in.MarkdownContent != "" {
		html, err := markdown.Render(in.MarkdownContent)
		if err != nil {
			return nil, fmt.Errorf("render content: %w", err)
		}
		in.Content = html
	}

	if err := s.checkSlugFree(ctx, in.Slug, 0); err != nil {
		return nil, err
	}

	now := time.Now()
	art := &entity.Article{
		Title:           in.Title,
		Slug:            in.Slug,
		Summary:         in.Summary,
		Content:         in.Content,
		MarkdownContent: in.MarkdownContent,
		ThumbnailURL:    in.ThumbnailURL,
		Status:          status,
		AuthorID:        in.AuthorID,
		CategoryID:      in.CategoryID,
		PublishAt:       in.PublishAt,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := s.Repo.Create(ctx, art); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrDuplicateSlug
		}
		return nil, fmt.Errorf("create article: %w", err)
	}

	tagIDs, err := s.resolveTags(ctx, tagNames)
	if err != nil {
		return nil, fmt.Errorf("resolve tags: %w", err)
	}
	if err := s.Repo.AddTags(ctx, art.ID, tagIDs); err != nil {
		return nil, fmt.Errorf("attach tags: %w", err)
	}
	return art, nil
}

// Update modifies an existing article with the provided input.
// Only non-nil fields in the input will be updated; status transitions are
// not constrained. Returns ErrArticleNotFound if the article does not exist
// and ErrDuplicateSlug if a changed slug collides with another live article.
func (s *Service) Update(ctx context.Context, in UpdateInput) (*entity.Article, error) {
	if in.ID <= 0 {
		return nil, ErrInvalidArticleID
	}

	art, err := s.Repo.Get(ctx, in.ID)
	if err != nil {
		return nil, fmt.Errorf("get article: %w", err)
	}
	if art == nil {
		return nil, ErrArticleNotFound
	}

	var ve entity.ValidationErrors
	if in.Title != nil {
		ve.AddErr("title", entity.ValidateRequired("title", *in.Title))
		ve.AddErr("title", entity.ValidateMaxLength("title", *in.Title, entity.MaxTitleLength))
	}
	if in.Slug != nil {
		ve.AddErr("slug", entity.ValidateSlug("slug", *in.Slug))
	}
	if in.Summary != nil {
		ve.AddErr("summary", entity.ValidateMaxLength("summary", *in.Summary, entity.MaxSummaryLength))
	}
	if in.ThumbnailURL != nil {
		ve.AddErr("thumbnailUrl", entity.ValidateURL("thumbnailUrl", *in.ThumbnailURL))
	}
	if in.Status != nil && !entity.ArticleStatus(*in.Status).Valid() {
		ve.Add("status", "must be one of DRAFT, PUBLISHED, ARCHIVED")
	}
	if in.AuthorID != nil && *in.AuthorID <= 0 {
		ve.Add("authorId", "must be positive")
	}
	if in.CategoryID != nil && *in.CategoryID <= 0 {
		ve.Add("categoryId", "must be positive")
	}
	var tagNames []string
	if in.Tags != nil {
		tagNames = normalizeTagNames(*in.Tags)
		validateTagNames(&ve, tagNames)
	}
	if err := ve.Err(); err != nil {
		return nil, err
	}

	if in.Slug != nil && *in.Slug != art.Slug {
		if err := s.checkSlugFree(ctx, *in.Slug, art.ID); err != nil {
			return nil, err
		}
		art.Slug = *in.Slug
	}
	if in.Title != nil {
		art.Title = *in.Title
	}
	if in.Summary != nil {
		art.Summary = *in.Summary
	}
	if in.Content != nil {
		art.Content = *in.Content
	}
	if in.MarkdownContent != nil {
		art.MarkdownContent = *in.MarkdownContent
		// Re-render unless the caller supplied HTML explicitly.
		if in.Content == nil {
			html, err := markdown.Render(*in.MarkdownContent)
			if err != nil {
				return nil, fmt.Errorf("render content: %w", err)
			}
			art.Content = html
		}
	}
	if in.ThumbnailURL != nil {
		art.ThumbnailURL = *in.ThumbnailURL
	}
	if in.Status != nil {
		art.Status = entity.ArticleStatus(*in.Status)
	}
	if in.AuthorID != nil {
		art.AuthorID = *in.AuthorID
	}
	if in.CategoryID != nil {
		art.CategoryID = *in.CategoryID
	}
	switch {
	case in.ClearPublishAt:
		art.PublishAt = nil
	case in.PublishAt != nil:
		art.PublishAt = in.PublishAt
	}
	art.UpdatedAt = time.Now()

	if err := s.Repo.Update(ctx, art); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrDuplicateSlug
		}
		return nil, fmt.Errorf("update article: %w", err)
	}

	if in.Tags != nil {
		tagIDs, err := s.resolveTags(ctx, tagNames)
		if err != nil {
			return nil, fmt.Errorf("resolve tags: %w", err)
		}
		if err := s.Repo.ReplaceTags(ctx, art.ID, tagIDs); err != nil {
			return nil, fmt.Errorf("replace tags: %w", err)
		}
	}
	return art, nil
}

// Delete permanently removes the articles with the given IDs, join rows
// included. Missing IDs are skipped; the returned count is the number of
// rows actually deleted.
func (s *Service) Delete(ctx context.Context, ids []int64) (int64, error) {
	var ve entity.ValidationErrors
	if len(ids) == 0 {
		ve.Add("ids", "is required")
	}
	for _, id := range ids {
		if id <= 0 {
			ve.Add("ids", "must contain only positive integers")
			break
		}
	}
	if err := ve.Err(); err != nil {
		return 0, err
	}

	count, err := s.Repo.DeleteBulk(ctx, ids)
	if err != nil {
		return 0, fmt.Errorf("delete articles: %w", err)
	}
	return count, nil
}

// checkSlugFree returns ErrDuplicateSlug when another live article owns slug.
func (s *Service) checkSlugFree(ctx context.Context, slug string, excludeID int64) error {
	count, err := s.Repo.CountBySlug(ctx, slug, excludeID)
	if err != nil {
		return fmt.Errorf("check slug: %w", err)
	}
	if count > 0 {
		return ErrDuplicateSlug
	}
	return nil
}
