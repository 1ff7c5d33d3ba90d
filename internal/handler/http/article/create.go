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

type CreateHandler struct{ Svc *artUC.Service }

// ServeHTTP creates an article.
// @Summary      Create article
// @Description  Creates a new article. Slug is generated from the title when omitted; content is rendered from markdownContent when omitted.
// @Tags         admin-articles
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        article body object true "Article payload"
// @Success      201 {object} map[string]string "Created"
// @Failure      400 {object} map[string]any "Validation failed or slug conflict"
// @Failure      401 {string} string "Authentication required - missing or invalid JWT token"
// @Failure      403 {string} string "Forbidden - insufficient role"
// @Router       /admin/articles/create [post]
func (h CreateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Title           string   `json:"title"`
		Slug            string   `json:"slug"`
		Summary         string   `json:"summary"`
		Content         string   `json:"content"`
		MarkdownContent string   `json:"markdownContent"`
		ThumbnailURL    string   `json:"thumbnailUrl"`
		Status          string   `json:"status"`
		AuthorID        int64    `json:"authorId"`
		CategoryID      int64    `json:"categoryId"`
		PublishAt       string   `json:"publishAt"`
		Tags            []string `json:"tags"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	var publishAt *time.Time
	if req.PublishAt != "" {
		t, err := time.Parse(time.RFC3339, req.PublishAt)
		if err != nil {
			respond.SafeError(w, http.StatusBadRequest,
				errors.New("publishAt must be in RFC3339 format"))
			return
		}
		publishAt = &t
	}

	created, err := h.Svc.Create(r.Context(), artUC.CreateInput{
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
		Tags:            req.Tags,
	})
	if err != nil {
		var ve entity.ValidationErrors
		switch {
		case errors.As(err, &ve):
			respond.ValidationFailed(w, ve)
		case errors.Is(err, artUC.ErrDuplicateSlug):
			respond.SafeError(w, http.StatusBadRequest, err)
		default:
			respond.SafeError(w, http.StatusInternalServerError, err)
		}
		return
	}

	metrics.RecordArticleCreated()
	if created.Status == entity.StatusPublished {
		metrics.RecordArticlePublished("admin")
	}
	respond.Message(w, http.StatusCreated, "article created")
}
