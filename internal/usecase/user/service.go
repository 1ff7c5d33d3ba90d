package user

import (
	"context"
	"errors"
	"fmt"
	"time"

	"pressroom/internal/common/pagination"
	"pressroom/internal/domain/entity"
	"pressroom/internal/repository"
)

// CreateInput represents the input parameters for creating a new user.
type CreateInput struct {
	Name      string
	Email     string
	Role      string
	Gender    string
	Bio       string
	AvatarURL string
}

// UpdateInput represents the input parameters for updating an existing user.
// Fields with nil values will not be updated.
type UpdateInput struct {
	ID        int64
	Name      *string
	Email     *string
	Role      *string
	Gender    *string
	Bio       *string
	AvatarURL *string
}

// Service provides user management use cases.
type Service struct {
	Repo repository.UserRepository
}

// PaginatedResult represents the result of a paginated query.
type PaginatedResult struct {
	Data       []*entity.User
	Pagination pagination.Metadata
}

// List retrieves one page of users matching the search term.
func (s *Service) List(ctx context.Context, search string, params pagination.Params) (*PaginatedResult, error) {
	total, err := s.Repo.Count(ctx, search)
	if err != nil {
		return nil, fmt.Errorf("count users: %w", err)
	}

	offset := pagination.CalculateOffset(params.Page, params.Limit)
	users, err := s.Repo.List(ctx, search, offset, params.Limit)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}

	return &PaginatedResult{
		Data:       users,
		Pagination: pagination.NewMetadata(params, len(users), total),
	}, nil
}

// Get retrieves a single user by ID.
// Returns ErrUserNotFound if the user does not exist.
func (s *Service) Get(ctx context.Context, id int64) (*entity.User, error) {
	if id <= 0 {
		return nil, &entity.ValidationError{Field: "id", Message: "must be positive"}
	}
	user, err := s.Repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// Create creates a new user with the provided input.
// Role defaults to AUTHOR; all field violations are reported together.
func (s *Service) Create(ctx context.Context, in CreateInput) (*entity.User, error) {
	role := entity.UserRole(in.Role)
	if in.Role == "" {
		role = entity.RoleAuthor
	}

	var ve entity.ValidationErrors
	ve.AddErr("name", entity.ValidateRequired("name", in.Name))
	ve.AddErr("name", entity.ValidateMaxLength("name", in.Name, entity.MaxNameLength))
	ve.AddErr("email", entity.ValidateEmail("email", in.Email))
	ve.AddErr("avatarUrl", entity.ValidateURL("avatarUrl", in.AvatarURL))
	ve.AddErr("bio", entity.ValidateMaxLength("bio", in.Bio, entity.MaxDescriptionLength))
	if !role.Valid() {
		ve.Add("role", "must be one of ADMIN, EDITOR, AUTHOR")
	}
	if !entity.Gender(in.Gender).Valid() {
		ve.Add("gender", "must be one of MALE, FEMALE, OTHER")
	}
	if err := ve.Err(); err != nil {
		return nil, err
	}

	if err := s.checkEmailFree(ctx, in.Email, 0); err != nil {
		return nil, err
	}

	now := time.Now()
	user := &entity.User{
		Name:      in.Name,
		Email:     in.Email,
		Role:      role,
		Gender:    entity.Gender(in.Gender),
		Bio:       in.Bio,
		AvatarURL: in.AvatarURL,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.Repo.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrDuplicateEmail
		}
		return nil, fmt.Errorf("create user: %w", err)
	}
	return user, nil
}

// Update modifies an existing user with the provided input.
// Returns ErrUserNotFound if the user does not exist and ErrDuplicateEmail
// when a changed email belongs to another live user.
func (s *Service) Update(ctx context.Context, in UpdateInput) (*entity.User, error) {
	if in.ID <= 0 {
		return nil, &entity.ValidationError{Field: "id", Message: "must be positive"}
	}

	user, err := s.Repo.Get(ctx, in.ID)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	var ve entity.ValidationErrors
	if in.Name != nil {
		ve.AddErr("name", entity.ValidateRequired("name", *in.Name))
		ve.AddErr("name", entity.ValidateMaxLength("name", *in.Name, entity.MaxNameLength))
	}
	if in.Email != nil {
		ve.AddErr("email", entity.ValidateEmail("email", *in.Email))
	}
	if in.Role != nil && !entity.UserRole(*in.Role).Valid() {
		ve.Add("role", "must be one of ADMIN, EDITOR, AUTHOR")
	}
	if in.Gender != nil && !entity.Gender(*in.Gender).Valid() {
		ve.Add("gender", "must be one of MALE, FEMALE, OTHER")
	}
	if in.Bio != nil {
		ve.AddErr("bio", entity.ValidateMaxLength("bio", *in.Bio, entity.MaxDescriptionLength))
	}
	if in.AvatarURL != nil {
		ve.AddErr("avatarUrl", entity.ValidateURL("avatarUrl", *in.AvatarURL))
	}
	if err := ve.Err(); err != nil {
		return nil, err
	}

	if in.Email != nil && *in.Email != user.Email {
		if err := s.checkEmailFree(ctx, *in.Email, user.ID); err != nil {
			return nil, err
		}
		user.Email = *in.Email
	}
	if in.Name != nil {
		user.Name = *in.Name
	}
	if in.Role != nil {
		user.Role = entity.UserRole(*in.Role)
	}
	if in.Gender != nil {
		user.Gender = entity.Gender(*in.Gender)
	}
	if in.Bio != nil {
		user.Bio = *in.Bio
	}
	if in.AvatarURL != nil {
		user.AvatarURL = *in.AvatarURL
	}
	user.UpdatedAt = time.Now()

	if err := s.Repo.Update(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrDuplicateEmail
		}
		return nil, fmt.Errorf("update user: %w", err)
	}
	return user, nil
}

func (s *Service) checkEmailFree(ctx context.Context, email string, excludeID int64) error {
	count, err := s.Repo.CountByEmail(ctx, email, excludeID)
	if err != nil {
		return fmt.Errorf("check email: %w", err)
	}
	if count > 0 {
		return ErrDuplicateEmail
	}
	return nil
}
