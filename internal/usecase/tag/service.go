package tag

import (
	"context"
	"errors"
	"fmt"
	"time"

	"pressroom/internal/common/pagination"
	"pressroom/internal/domain/entity"
	"pressroom/internal/repository"
)

// CreateInput represents the input parameters for creating a new tag.
type CreateInput struct {
	Name string
}

// UpdateInput represents the input parameters for renaming a tag.
type UpdateInput struct {
	ID   int64
	Name string
}

// Service provides tag management use cases.
type Service struct {
	Repo repository.TagRepository
}

// PaginatedResult represents the result of a paginated query.
type PaginatedResult struct {
	Data       []*entity.Tag
	Pagination pagination.Metadata
}

// List retrieves one page of tags matching the search term.
func (s *Service) List(ctx context.Context, search string, params pagination.Params) (*PaginatedResult, error) {
	total, err := s.Repo.Count(ctx, search)
	if err != nil {
		return nil, fmt.Errorf("count tags: %w", err)
	}

	offset := pagination.CalculateOffset(params.Page, params.Limit)
	tags, err := s.Repo.List(ctx, search, offset, params.Limit)
	if err != nil {
		return nil, fmt.Errorf("list tags: %w", err)
	}

	return &PaginatedResult{
		Data:       tags,
		Pagination: pagination.NewMetadata(params, len(tags), total),
	}, nil
}

// Create creates a new tag. The name is stored exactly as supplied; names
// differing only in case or surrounding whitespace are distinct tags.
func (s *Service) Create(ctx context.Context, in CreateInput) (*entity.Tag, error) {
	name := in.Name

	var ve entity.ValidationErrors
	ve.AddErr("name", entity.ValidateRequired("name", name))
	ve.AddErr("name", entity.ValidateMaxLength("name", name, entity.MaxTagNameLength))
	if err := ve.Err(); err != nil {
		return nil, err
	}

	if err := s.checkNameFree(ctx, name, 0); err != nil {
		return nil, err
	}

	now := time.Now()
	tag := &entity.Tag{Name: name, CreatedAt: now, UpdatedAt: now}
	if err := s.Repo.Create(ctx, tag); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrDuplicateName
		}
		return nil, fmt.Errorf("create tag: %w", err)
	}
	return tag, nil
}

// Update renames an existing tag.
// Returns ErrTagNotFound if the tag does not exist and ErrDuplicateName
// when the new name belongs to another live tag.
func (s *Service) Update(ctx context.Context, in UpdateInput) (*entity.Tag, error) {
	if in.ID <= 0 {
		return nil, &entity.ValidationError{Field: "id", Message: "must be positive"}
	}
	name := in.Name

	var ve entity.ValidationErrors
	ve.AddErr("name", entity.ValidateRequired("name", name))
	ve.AddErr("name", entity.ValidateMaxLength("name", name, entity.MaxTagNameLength))
	if err := ve.Err(); err != nil {
		return nil, err
	}

	tag, err := s.Repo.Get(ctx, in.ID)
	if err != nil {
		return nil, fmt.Errorf("get tag: %w", err)
	}
	if tag == nil {
		return nil, ErrTagNotFound
	}

	if name != tag.Name {
		if err := s.checkNameFree(ctx, name, tag.ID); err != nil {
			return nil, err
		}
	}
	tag.Name = name
	tag.UpdatedAt = time.Now()

	if err := s.Repo.Update(ctx, tag); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrDuplicateName
		}
		return nil, fmt.Errorf("update tag: %w", err)
	}
	return tag, nil
}

// Delete soft-deletes a tag.
// Returns ErrTagInUse while non-deleted articles still reference it.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return &entity.ValidationError{Field: "id", Message: "must be positive"}
	}

	tag, err := s.Repo.Get(ctx, id)
	if err != nil {
		return fmt.Errorf("get tag: %w", err)
	}
	if tag == nil {
		return ErrTagNotFound
	}

	inUse, err := s.Repo.CountArticles(ctx, id)
	if err != nil {
		return fmt.Errorf("count tag articles: %w", err)
	}
	if inUse > 0 {
		return fmt.Errorf("%w: %d articles", ErrTagInUse, inUse)
	}

	if err := s.Repo.SoftDelete(ctx, id); err != nil {
		return fmt.Errorf("delete tag: %w", err)
	}
	return nil
}

func (s *Service) checkNameFree(ctx context.Context, name string, excludeID int64) error {
	count, err := s.Repo.CountByName(ctx, name, excludeID)
	if err != nil {
		return fmt.Errorf("check name: %w", err)
	}
	if count > 0 {
		return ErrDuplicateName
	}
	return nil
}
