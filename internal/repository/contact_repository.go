package repository

import (
	"context"

	"pressroom/internal/domain/entity"
)

type ContactRepository interface {
	// Get retrieves a contact message by ID. Returns (nil, nil) if absent.
	Get(ctx context.Context, id int64) (*entity.ContactMessage, error)
	// List retrieves a page of contact messages, newest first, optionally
	// filtered by status.
	List(ctx context.Context, status *entity.ContactStatus, offset, limit int) ([]*entity.ContactMessage, error)
	// Count returns the number of contact messages matching the status filter.
	Count(ctx context.Context, status *entity.ContactStatus) (int64, error)
	// Create inserts the message and sets message.ID.
	Create(ctx context.Context, msg *entity.ContactMessage) error
	// UpdateStatus moves a message to another handling state.
	UpdateStatus(ctx context.Context, id int64, status entity.ContactStatus) error
}
