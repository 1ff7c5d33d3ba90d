package comment

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"pressroom/internal/handler/http/pathutil"
	"pressroom/internal/handler/http/respond"
	"pressroom/internal/observability/metrics"
	commentUC "pressroom/internal/usecase/comment"
)

// articleSlug pulls the slug out of /articles/{slug}/comments.
func articleSlug(path string) (string, error) {
	trimmed := strings.TrimSuffix(path, "/comments")
	if trimmed == path {
		return "", pathutil.ErrInvalidSlug
	}
	return pathutil.ExtractSlug(trimmed, "/articles/")
}

type PublicListHandler struct{ Svc *commentUC.Service }

// ServeHTTP lists the approved comments of a published article, oldest first.
// @Summary      List article comments
// @Tags         comments
// @Produce      json
// @Param        slug path string true "Article slug"
// @Success      200 {array} PublicDTO "Approved comments"
// @Failure      400 {object} map[string]string "Invalid slug"
// @Failure      404 {object} map[string]string "Article not found"
// @Failure      500 {string} string "Server error"
// @Router       /articles/{slug}/comments [get]
func (h PublicListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	slug, err := articleSlug(r.URL.Path)
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	comments, err := h.Svc.ListApproved(r.Context(), slug)
	if err != nil {
		code := http.StatusInternalServerError
		if errors.Is(err, commentUC.ErrArticleNotFound) {
			code = http.StatusNotFound
		}
		respond.SafeError(w, code, err)
		return
	}

	dtos := make([]PublicDTO, 0, len(comments))
	for _, c := range comments {
		dtos = append(dtos, toPublicDTO(c))
	}

	respond.JSON(w, http.StatusOK, dtos)
}

type SubmitHandler struct{ Svc *commentUC.Service }

// ServeHTTP accepts a reader comment on a published article. The comment
// enters moderation as PENDING and is not visible until approved.
// @Summary      Submit comment
// @Tags         comments
// @Accept       json
// @Produce      json
// @Param        slug path string true "Article slug"
// @Param        comment body object true "Comment payload"
// @Success      202 {object} map[string]string "Accepted for moderation"
// @Failure      400 {object} map[string]any "Validation failed"
// @Failure      404 {object} map[string]string "Article not found"
// @Failure      429 {object} map[string]string "Rate limit exceeded"
// @Router       /articles/{slug}/comments [post]
func (h SubmitHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	slug, err := articleSlug(r.URL.Path)
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	var req struct {
		AuthorName string `json:"authorName"`
		Email      string `json:"email"`
		Content    string `json:"content"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	if _, err := h.Svc.Submit(r.Context(), commentUC.SubmitInput{
		ArticleSlug: slug,
		AuthorName:  req.AuthorName,
		Email:       req.Email,
		Content:     req.Content,
	}); err != nil {
		writeCommentError(w, err)
		return
	}

	metrics.RecordCommentReceived()
	respond.Message(w, http.StatusAccepted, "comment received, awaiting moderation")
}
