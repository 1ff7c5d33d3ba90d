package contact

import (
	"context"
	"fmt"
	"time"

	"pressroom/internal/common/pagination"
	"pressroom/internal/domain/entity"
	"pressroom/internal/repository"
)

// SubmitInput represents a message submitted through the public contact form.
type SubmitInput struct {
	Name    string
	Email   string
	Subject string
	Message string
}

// Service provides contact-form use cases.
type Service struct {
	Repo repository.ContactRepository
}

// PaginatedResult represents the result of a paginated query.
type PaginatedResult struct {
	Data       []*entity.ContactMessage
	Pagination pagination.Metadata
}

// Submit stores a new contact message in NEW state.
// All field violations are reported together.
func (s *Service) Submit(ctx context.Context, in SubmitInput) (*entity.ContactMessage, error) {
	var ve entity.ValidationErrors
	ve.AddErr("name", entity.ValidateRequired("name", in.Name))
	ve.AddErr("name", entity.ValidateMaxLength("name", in.Name, entity.MaxNameLength))
	ve.AddErr("email", entity.ValidateEmail("email", in.Email))
	ve.AddErr("subject", entity.ValidateRequired("subject", in.Subject))
	ve.AddErr("subject", entity.ValidateMaxLength("subject", in.Subject, entity.MaxSubjectLength))
	ve.AddErr("message", entity.ValidateRequired("message", in.Message))
	ve.AddErr("message", entity.ValidateMaxLength("message", in.Message, entity.MaxBodyLength))
	if err := ve.Err(); err != nil {
		return nil, err
	}

	now := time.Now()
	msg := &entity.ContactMessage{
		Name:      in.Name,
		Email:     in.Email,
		Subject:   in.Subject,
		Message:   in.Message,
		Status:    entity.ContactNew,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.Repo.Create(ctx, msg); err != nil {
		return nil, fmt.Errorf("create contact message: %w", err)
	}
	return msg, nil
}

// List retrieves one page of contact messages, newest first, optionally
// filtered by handling status.
func (s *Service) List(ctx context.Context, status string, params pagination.Params) (*PaginatedResult, error) {
	var filter *entity.ContactStatus
	if status != "" {
		st := entity.ContactStatus(status)
		if !st.Valid() {
			return nil, &entity.ValidationError{Field: "status", Message: "must be one of NEW, READ, ARCHIVED"}
		}
		filter = &st
	}

	total, err := s.Repo.Count(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("count contact messages: %w", err)
	}

	offset := pagination.CalculateOffset(params.Page, params.Limit)
	messages, err := s.Repo.List(ctx, filter, offset, params.Limit)
	if err != nil {
		return nil, fmt.Errorf("list contact messages: %w", err)
	}

	return &PaginatedResult{
		Data:       messages,
		Pagination: pagination.NewMetadata(params, len(messages), total),
	}, nil
}

// UpdateStatus moves a message to another handling state.
// Returns ErrMessageNotFound if the message does not exist.
func (s *Service) UpdateStatus(ctx context.Context, id int64, status string) (*entity.ContactMessage, error) {
	if id <= 0 {
		return nil, &entity.ValidationError{Field: "id", Message: "must be positive"}
	}
	newStatus := entity.ContactStatus(status)
	if !newStatus.Valid() {
		return nil, &entity.ValidationError{Field: "status", Message: "must be one of NEW, READ, ARCHIVED"}
	}

	msg, err := s.Repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get contact message: %w", err)
	}
	if msg == nil {
		return nil, ErrMessageNotFound
	}

	if err := s.Repo.UpdateStatus(ctx, id, newStatus); err != nil {
		return nil, fmt.Errorf("update contact message status: %w", err)
	}
	msg.Status = newStatus
	return msg, nil
}
