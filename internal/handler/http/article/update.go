package article

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"pressroom/internal/domain/entity"
	"pressroom/internal/handler/http/respond"
	"pressroom/internal/observability/metrics"
	artUC "pressroom/internal/usecase/article"
)

type UpdateHandler struct{ Svc *artUC.Service }

// ServeHTTP updates an article.
// @Summary      Update article
// @Description  Partially updates an existing article. Omitted fields are left untouched; a present tags array replaces the article's tag set; an empty publishAt string clears the schedule.
// @Tags         admin-articles
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        article body object true "Partial article payload with id"
// @Success      200 {object} map[string]any "Updated article summary"
// @Failure      400 {object} map[string]any "Validation failed or slug conflict"
// @Failure      401 {string} string "Authentication required - missing or invalid JWT token"
// @Failure      404 {string} string "Article not found"
// @Router       /admin/articles/update [put]
func (h UpdateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ID              int64     `json:"id"`
		Title           *string   `json:"title"`
		Slug            *string   `json:"slug"`
		Summary         *string   `json:"summary"`
		Content         *string   `json:"content"`
		MarkdownContent *string   `json:"markdownContent"`
		ThumbnailURL    *string   `json:"thumbnailUrl"`
		Status          *string   `json:"status"`
		AuthorID        *int64    `json:"authorId"`
		CategoryID      *int64    `json:"categoryId"`
		PublishAt       *string   `json:"publishAt"`
		Tags            *[]string `json:"tags"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	// An empty publishAt string clears the schedule. JSON null is
	// indistinguishable from an absent field after decoding, so the empty
	// string is the explicit "unschedule" signal.
	var publishAt *time.Time
	var clearPublishAt bool
	if req.PublishAt != nil {
		if *req.PublishAt == "" {
			clearPublishAt = true
		} else {
			t, err := time.Parse(time.RFC3339, *req.PublishAt)
			if err != nil {
				respond.SafeError(w, http.StatusBadRequest,
					errors.New("publishAt must be in RFC3339 format or empty to clear"))
				return
			}
			publishAt = &t
		}
	}

	updated, err := h.Svc.Update(r.Context(), artUC.UpdateInput{
		ID:              req.ID,
		Title:           req.Title,
		Slug:            req.Slug,
		Summary:         req.Summary,
		Content:         req.Content,
		MarkdownContent: req.MarkdownContent,
		ThumbnailURL:    req.ThumbnailURL,
		Status:          req.Status,
		AuthorID:        req.AuthorID,
		CategoryID:      req.CategoryID,
		PublishAt:       publishAt,
		ClearPublishAt:  clearPublishAt,
		Tags:            req.Tags,
	})
	if err != nil {
		var ve entity.ValidationErrors
		switch {
		case errors.As(err, &ve):
			respond.ValidationFailed(w, ve)
		case errors.Is(err, artUC.ErrArticleNotFound):
			respond.SafeError(w, http.StatusNotFound, err)
		case errors.Is(err, artUC.ErrInvalidArticleID), errors.Is(err, artUC.ErrDuplicateSlug):
			respond.SafeError(w, http.StatusBadRequest, err)
		default:
			respond.SafeError(w, http.StatusInternalServerError, err)
		}
		return
	}

	if req.Status != nil && updated.Status == entity.StatusPublished {
		metrics.RecordArticlePublished("admin")
	}
	respond.JSON(w, http.StatusOK, map[string]any{
		"message": "article updated",
		"article": map[string]any{
			"id":     updated.ID,
			"title":  updated.Title,
			"slug":   updated.Slug,
			"status": string(updated.Status),
		},
	})
}
