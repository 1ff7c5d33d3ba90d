package category

import (
	"context"
	"errors"
	"fmt"
	"time"

	goslug "github.com/gosimple/slug"

	"pressroom/internal/common/pagination"
	"pressroom/internal/domain/entity"
	"pressroom/internal/repository"
)

// CreateInput represents the input parameters for creating a new category.
// Slug is generated from the name when omitted.
type CreateInput struct {
	Name        string
	Slug        string
	Description string
}

// UpdateInput represents the input parameters for updating an existing
// category. Fields with nil values will not be updated.
type UpdateInput struct {
	ID          int64
	Name        *string
	Slug        *string
	Description *string
}

// Service provides category management use cases.
type Service struct {
	Repo repository.CategoryRepository
}

// PaginatedResult represents the result of a paginated query.
type PaginatedResult struct {
	Data       []*entity.Category
	Pagination pagination.Metadata
}

// List retrieves one page of categories matching the search term.
func (s *Service) List(ctx context.Context, search string, params pagination.Params) (*PaginatedResult, error) {
	total, err := s.Repo.Count(ctx, search)
	if err != nil {
		return nil, fmt.Errorf("count categories: %w", err)
	}

	offset := pagination.CalculateOffset(params.Page, params.Limit)
	categories, err := s.Repo.List(ctx, search, offset, params.Limit)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}

	return &PaginatedResult{
		Data:       categories,
		Pagination: pagination.NewMetadata(params, len(categories), total),
	}, nil
}

// ListWithCounts retrieves all categories with their published-article
// counts, for the public navigation surface.
func (s *Service) ListWithCounts(ctx context.Context) ([]repository.CategoryWithCount, error) {
	categories, err := s.Repo.ListWithCounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("list categories with counts: %w", err)
	}
	return categories, nil
}

// Create creates a new category with the provided input.
// All field violations are collected and returned together.
func (s *Service) Create(ctx context.Context, in CreateInput) (*entity.Category, error) {
	if in.Slug == "" {
		in.Slug = goslug.Make(in.Name)
	}

	var ve entity.ValidationErrors
	ve.AddErr("name", entity.ValidateRequired("name", in.Name))
	ve.AddErr("name", entity.ValidateMaxLength("name", in.Name, entity.MaxNameLength))
	ve.AddErr("slug", entity.ValidateSlug("slug", in.Slug))
	ve.AddErr("description", entity.ValidateMaxLength("description", in.Description, entity.MaxDescriptionLength))
	if err := ve.Err(); err != nil {
		return nil, err
	}

	if err := s.checkSlugFree(ctx, in.Slug, 0); err != nil {
		return nil, err
	}

	now := time.Now()
	category := &entity.Category{
		Name:        in.Name,
		Slug:        in.Slug,
		Description: in.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.Repo.Create(ctx, category); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrDuplicateSlug
		}
		return nil, fmt.Errorf("create category: %w", err)
	}
	return category, nil
}

// Update modifies an existing category with the provided input.
// Returns ErrCategoryNotFound if the category does not exist and
// ErrDuplicateSlug if a changed slug collides with another live category.
func (s *Service) Update(ctx context.Context, in UpdateInput) (*entity.Category, error) {
	if in.ID <= 0 {
		return nil, &entity.ValidationError{Field: "id", Message: "must be positive"}
	}

	category, err := s.Repo.Get(ctx, in.ID)
	if err != nil {
		return nil, fmt.Errorf("get category: %w", err)
	}
	if category == nil {
		return nil, ErrCategoryNotFound
	}

	var ve entity.ValidationErrors
	if in.Name != nil {
		ve.AddErr("name", entity.ValidateRequired("name", *in.Name))
		ve.AddErr("name", entity.ValidateMaxLength("name", *in.Name, entity.MaxNameLength))
	}
	if in.Slug != nil {
		ve.AddErr("slug", entity.ValidateSlug("slug", *in.Slug))
	}
	if in.Description != nil {
		ve.AddErr("description", entity.ValidateMaxLength("description", *in.Description, entity.MaxDescriptionLength))
	}
	if err := ve.Err(); err != nil {
		return nil, err
	}

	if in.Slug != nil && *in.Slug != category.Slug {
		if err := s.checkSlugFree(ctx, *in.Slug, category.ID); err != nil {
			return nil, err
		}
		category.Slug = *in.Slug
	}
	if in.Name != nil {
		category.Name = *in.Name
	}
	if in.Description != nil {
		category.Description = *in.Description
	}
	category.UpdatedAt = time.Now()

	if err := s.Repo.Update(ctx, category); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrDuplicateSlug
		}
		return nil, fmt.Errorf("update category: %w", err)
	}
	return category, nil
}

// Delete soft-deletes a category.
// Returns ErrCategoryInUse while non-deleted articles still reference it;
// the slug is released for reuse once the delete succeeds.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return &entity.ValidationError{Field: "id", Message: "must be positive"}
	}

	category, err := s.Repo.Get(ctx, id)
	if err != nil {
		return fmt.Errorf("get category: %w", err)
	}
	if category == nil {
		return ErrCategoryNotFound
	}

	inUse, err := s.Repo.CountArticles(ctx, id)
	if err != nil {
		return fmt.Errorf("count category articles: %w", err)
	}
	if inUse > 0 {
		return fmt.Errorf("%w: %d articles", ErrCategoryInUse, inUse)
	}

	if err := s.Repo.SoftDelete(ctx, id); err != nil {
		return fmt.Errorf("delete category: %w", err)
	}
	return nil
}

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
