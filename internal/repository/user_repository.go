package repository

import (
	"context"

	"pressroom/internal/domain/entity"
)

type UserRepository interface {
	// Get retrieves a non-deleted user by ID. Returns (nil, nil) if absent.
	Get(ctx context.Context, id int64) (*entity.User, error)
	// List retrieves a page of non-deleted users ordered by name.
	List(ctx context.Context, search string, offset, limit int) ([]*entity.User, error)
	// Count returns the number of non-deleted users matching search.
	Count(ctx context.Context, search string) (int64, error)
	// Create inserts the user and sets user.ID.
	// Returns ErrDuplicate when the email is already registered.
	Create(ctx context.Context, user *entity.User) error
	// Update rewrites the user row. Returns ErrDuplicate on an email collision.
	Update(ctx context.Context, user *entity.User) error
	// CountByEmail counts live users with the email, excluding excludeID.
	CountByEmail(ctx context.Context, email string, excludeID int64) (int64, error)
}
