// Package comment provides HTTP handlers for reader comments: the public
// submission and listing surface under /articles/{slug}/comments and the
// moderation surface under /admin/comments.
package comment

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"pressroom/internal/common/pagination"
	"pressroom/internal/domain/entity"
	"pressroom/internal/handler/http/respond"
	"pressroom/internal/observability/logging"
	"pressroom/internal/repository"
	commentUC "pressroom/internal/usecase/comment"
)

// DTO is the moderation-side JSON representation of a comment.
type DTO struct {
	ID         int64     `json:"id"`
	ArticleID  int64     `json:"articleId"`
	AuthorName string    `json:"authorName"`
	Email      string    `json:"email"`
	Content    string    `json:"content"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"createdAt"`
}

// PublicDTO is what readers see. Email stays private.
type PublicDTO struct {
	ID         int64     `json:"id"`
	AuthorName string    `json:"authorName"`
	Content    string    `json:"content"`
	CreatedAt  time.Time `json:"createdAt"`
}

func toDTO(c *entity.Comment) DTO {
	return DTO{
		ID:         c.ID,
		ArticleID:  c.ArticleID,
		AuthorName: c.AuthorName,
		Email:      c.Email,
		Content:    c.Content,
		Status:     string(c.Status),
		CreatedAt:  c.CreatedAt,
	}
}

func toPublicDTO(c *entity.Comment) PublicDTO {
	return PublicDTO{
		ID:         c.ID,
		AuthorName: c.AuthorName,
		Content:    c.Content,
		CreatedAt:  c.CreatedAt,
	}
}

// writeCommentError maps usecase errors onto the error taxonomy.
func writeCommentError(w http.ResponseWriter, err error) {
	var ve entity.ValidationErrors
	var fe *entity.ValidationError
	switch {
	case errors.As(err, &ve):
		respond.ValidationFailed(w, ve)
	case errors.As(err, &fe):
		respond.ValidationFailed(w, entity.ValidationErrors{fe})
	case errors.Is(err, commentUC.ErrCommentNotFound), errors.Is(err, commentUC.ErrArticleNotFound):
		respond.SafeError(w, http.StatusNotFound, err)
	default:
		respond.SafeError(w, http.StatusInternalServerError, err)
	}
}

type ListHandler struct {
	Svc           *commentUC.Service
	PaginationCfg pagination.Config
	Logger        *slog.Logger
}

// ServeHTTP lists comments for moderation.
// @Summary      List comments (admin)
// @Description  Returns one page of comments, newest first. Optional filters: articleId, status, and a search term matched against author name, email and content.
// @Tags         admin-comments
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        query body object true "Body with page, limit and optional filters"
// @Success      200 {object} pagination.Response[DTO] "Paginated comment page"
// @Failure      400 {object} map[string]string "Invalid pagination parameters"
// @Failure      401 {string} string "Authentication required - missing or invalid JWT token"
// @Failure      500 {string} string "Server error"
// @Router       /admin/comments/get [post]
func (h ListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := logging.WithRequestID(ctx, h.Logger)

	var req struct {
		Page      int    `json:"page"`
		Limit     int    `json:"limit"`
		ArticleID *int64 `json:"articleId"`
		Status    string `json:"status"`
		Search    string `json:"search"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	params, err := pagination.FromBody(req.Page, req.Limit, h.PaginationCfg)
	if err != nil {
		pagination.RecordError("validation")
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	filters := repository.CommentListFilters{
		ArticleID: req.ArticleID,
		Search:    req.Search,
	}
	if req.Status != "" {
		status := entity.CommentStatus(req.Status)
		if !status.Valid() {
			respond.ValidationFailed(w, entity.ValidationErrors{
				{Field: "status", Message: "must be one of PENDING, APPROVED, SPAM"},
			})
			return
		}
		filters.Status = &status
	}

	result, err := h.Svc.List(ctx, filters, params)
	if err != nil {
		logger.Error("Failed to list comments",
			"error", err.Error(),
			"page", params.Page,
			"limit", params.Limit)
		pagination.RecordError("database")
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}

	dtos := make([]DTO, 0, len(result.Data))
	for _, c := range result.Data {
		dtos = append(dtos, toDTO(c))
	}

	pagination.RecordRequest(http.StatusOK, params.Page)
	respond.JSON(w, http.StatusOK, pagination.NewResponse(dtos, result.Pagination))
}

type UpdateHandler struct{ Svc *commentUC.Service }

// ServeHTTP moves a comment to another moderation state.
// @Summary      Moderate comment
// @Tags         admin-comments
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        body body object true "Body with id and status"
// @Success      200 {object} map[string]any "Updated comment summary"
// @Failure      400 {object} map[string]any "Validation failed"
// @Failure      401 {string} string "Authentication required - missing or invalid JWT token"
// @Failure      404 {object} map[string]string "Comment not found"
// @Router       /admin/comments/update [put]
func (h UpdateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ID     int64  `json:"id"`
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	comment, err := h.Svc.UpdateStatus(r.Context(), req.ID, req.Status)
	if err != nil {
		writeCommentError(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, map[string]any{
		"message": "comment updated",
		"comment": map[string]any{"id": comment.ID, "status": string(comment.Status)},
	})
}

type DeleteHandler struct{ Svc *commentUC.Service }

// ServeHTTP soft-deletes a comment.
// @Summary      Delete comment
// @Tags         admin-comments
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        body body object true "Body with id"
// @Success      200 {object} map[string]string "Deleted"
// @Failure      400 {object} map[string]any "Validation failed"
// @Failure      401 {string} string "Authentication required - missing or invalid JWT token"
// @Failure      404 {object} map[string]string "Comment not found"
// @Router       /admin/comments/delete [delete]
func (h DeleteHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ID int64 `json:"id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	if err := h.Svc.Delete(r.Context(), req.ID); err != nil {
		writeCommentError(w, err)
		return
	}

	respond.Message(w, http.StatusOK, "comment deleted")
}
