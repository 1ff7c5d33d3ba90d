package comment

import (
	"context"
	"fmt"
	"time"

	"pressroom/internal/common/pagination"
	"pressroom/internal/domain/entity"
	"pressroom/internal/repository"
)

// SubmitInput represents a reader comment submitted on a published article,
// addressed by the article's slug.
type SubmitInput struct {
	ArticleSlug string
	AuthorName  string
	Email       string
	Content     string
}

// Service provides comment use cases.
type Service struct {
	Repo     repository.CommentRepository
	Articles repository.ArticleRepository
}

// PaginatedResult represents the result of a paginated query.
type PaginatedResult struct {
	Data       []*entity.Comment
	Pagination pagination.Metadata
}

// ListApproved returns the approved comments for a published article,
// oldest first. Returns ErrArticleNotFound when the slug does not resolve
// to a published article.
func (s *Service) ListApproved(ctx context.Context, articleSlug string) ([]*entity.Comment, error) {
	article, err := s.publishedArticle(ctx, articleSlug)
	if err != nil {
		return nil, err
	}

	comments, err := s.Repo.ListApproved(ctx, article.ID)
	if err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}
	return comments, nil
}

// Submit stores a new comment in PENDING state.
// All field violations are reported together; commenting on a draft or
// archived article returns ErrArticleNotFound.
func (s *Service) Submit(ctx context.Context, in SubmitInput) (*entity.Comment, error) {
	var ve entity.ValidationErrors
	ve.AddErr("authorName", entity.ValidateRequired("authorName", in.AuthorName))
	ve.AddErr("authorName", entity.ValidateMaxLength("authorName", in.AuthorName, entity.MaxNameLength))
	ve.AddErr("email", entity.ValidateEmail("email", in.Email))
	ve.AddErr("content", entity.ValidateRequired("content", in.Content))
	ve.AddErr("content", entity.ValidateMaxLength("content", in.Content, entity.MaxBodyLength))
	if err := ve.Err(); err != nil {
		return nil, err
	}

	article, err := s.publishedArticle(ctx, in.ArticleSlug)
	if err != nil {
		return nil, err
	}

	comment := &entity.Comment{
		ArticleID:  article.ID,
		AuthorName: in.AuthorName,
		Email:      in.Email,
		Content:    in.Content,
		Status:     entity.CommentPending,
		CreatedAt:  time.Now(),
	}
	if err := s.Repo.Create(ctx, comment); err != nil {
		return nil, fmt.Errorf("create comment: %w", err)
	}
	return comment, nil
}

// List retrieves one page of comments for moderation, newest first.
func (s *Service) List(ctx context.Context, filters repository.CommentListFilters, params pagination.Params) (*PaginatedResult, error) {
	total, err := s.Repo.Count(ctx, filters)
	if err != nil {
		return nil, fmt.Errorf("count comments: %w", err)
	}

	offset := pagination.CalculateOffset(params.Page, params.Limit)
	comments, err := s.Repo.List(ctx, filters, offset, params.Limit)
	if err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}

	return &PaginatedResult{
		Data:       comments,
		Pagination: pagination.NewMetadata(params, len(comments), total),
	}, nil
}

// UpdateStatus moves a comment to another moderation state.
// Returns ErrCommentNotFound if the comment does not exist.
func (s *Service) UpdateStatus(ctx context.Context, id int64, status string) (*entity.Comment, error) {
	if id <= 0 {
		return nil, &entity.ValidationError{Field: "id", Message: "must be positive"}
	}
	newStatus := entity.CommentStatus(status)
	if !newStatus.Valid() {
		return nil, &entity.ValidationError{Field: "status", Message: "must be one of PENDING, APPROVED, SPAM"}
	}

	comment, err := s.Repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get comment: %w", err)
	}
	if comment == nil {
		return nil, ErrCommentNotFound
	}

	if err := s.Repo.UpdateStatus(ctx, id, newStatus); err != nil {
		return nil, fmt.Errorf("update comment status: %w", err)
	}
	comment.Status = newStatus
	return comment, nil
}

// Delete soft-deletes a comment.
// Returns ErrCommentNotFound if the comment does not exist.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return &entity.ValidationError{Field: "id", Message: "must be positive"}
	}

	comment, err := s.Repo.Get(ctx, id)
	if err != nil {
		return fmt.Errorf("get comment: %w", err)
	}
	if comment == nil {
		return ErrCommentNotFound
	}

	if err := s.Repo.SoftDelete(ctx, id); err != nil {
		return fmt.Errorf("delete comment: %w", err)
	}
	return nil
}

func (s *Service) publishedArticle(ctx context.Context, slug string) (*entity.Article, error) {
	if slug == "" {
		return nil, ErrArticleNotFound
	}
	article, err := s.Articles.GetBySlug(ctx, slug)
	if err != nil {
		return nil, fmt.Errorf("get article: %w", err)
	}
	if article == nil || article.Article.Status != entity.StatusPublished {
		return nil, ErrArticleNotFound
	}
	return article.Article, nil
}
