// Package tag provides HTTP handlers for tag management. Tags are created
// implicitly through article writes as well; these handlers cover the
// explicit admin surface.
package tag

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
	"pressroom/internal/observability/metrics"
	tagUC "pressroom/internal/usecase/tag"
)

// DTO is the JSON representation of a tag.
type DTO struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func toDTO(t *entity.Tag) DTO {
	return DTO{ID: t.ID, Name: t.Name, CreatedAt: t.CreatedAt, UpdatedAt: t.UpdatedAt}
}

// writeTagError maps usecase errors onto the admin error taxonomy.
func writeTagError(w http.ResponseWriter, err error) {
	var ve entity.ValidationErrors
	var fe *entity.ValidationError
	switch {
	case errors.As(err, &ve):
		respond.ValidationFailed(w, ve)
	case errors.As(err, &fe):
		respond.ValidationFailed(w, entity.ValidationErrors{fe})
	case errors.Is(err, tagUC.ErrTagNotFound):
		respond.SafeError(w, http.StatusNotFound, err)
	case errors.Is(err, tagUC.ErrTagInUse):
		metrics.RecordDeleteGuardRejection("tag")
		respond.SafeError(w, http.StatusBadRequest, err)
	case errors.Is(err, tagUC.ErrDuplicateName):
		respond.SafeError(w, http.StatusBadRequest, err)
	default:
		respond.SafeError(w, http.StatusInternalServerError, err)
	}
}

type CreateHandler struct{ Svc *tagUC.Service }

// ServeHTTP creates a tag.
// @Summary      Create tag
// @Tags         admin-tags
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        tag body object true "Tag payload"
// @Success      201 {object} map[string]string "Created"
// @Failure      400 {object} map[string]any "Validation failed or name conflict"
// @Failure      401 {string} string "Authentication required - missing or invalid JWT token"
// @Router       /admin/tags/create [post]
func (h CreateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name string `json:"name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	if _, err := h.Svc.Create(r.Context(), tagUC.CreateInput{Name: req.Name}); err != nil {
		writeTagError(w, err)
		return
	}

	respond.Message(w, http.StatusCreated, "tag created")
}

type UpdateHandler struct{ Svc *tagUC.Service }

// ServeHTTP renames a tag.
// @Summary      Rename tag
// @Tags         admin-tags
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        tag body object true "Tag payload with id"
// @Success      200 {object} map[string]any "Updated tag summary"
// @Failure      400 {object} map[string]any "Validation failed or name conflict"
// @Failure      401 {string} string "Authentication required - missing or invalid JWT token"
// @Failure      404 {object} map[string]string "Tag not found"
// @Router       /admin/tags/update [put]
func (h UpdateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ID   int64  `json:"id"`
		Name string `json:"name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	tag, err := h.Svc.Update(r.Context(), tagUC.UpdateInput{ID: req.ID, Name: req.Name})
	if err != nil {
		writeTagError(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, map[string]any{
		"message": "tag updated",
		"tag":     map[string]any{"id": tag.ID, "name": tag.Name},
	})
}

type DeleteHandler struct{ Svc *tagUC.Service }

// ServeHTTP soft-deletes a tag.
// @Summary      Delete tag
// @Description  Soft-deletes a tag. Rejected while non-deleted articles still reference it.
// @Tags         admin-tags
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        body body object true "Body with id"
// @Success      200 {object} map[string]string "Deleted"
// @Failure      400 {object} map[string]any "Validation failed or tag still in use"
// @Failure      401 {string} string "Authentication required - missing or invalid JWT token"
// @Failure      404 {object} map[string]string "Tag not found"
// @Router       /admin/tags/delete [delete]
func (h DeleteHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ID int64 `json:"id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	if err := h.Svc.Delete(r.Context(), req.ID); err != nil {
		writeTagError(w, err)
		return
	}

	respond.Message(w, http.StatusOK, "tag deleted")
}

type ListHandler struct {
	Svc           *tagUC.Service
	PaginationCfg pagination.Config
	Logger        *slog.Logger
}

// ServeHTTP lists tags for the back office.
// @Summary      List tags (admin)
// @Tags         admin-tags
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        query body object true "Body with page, limit and optional search"
// @Success      200 {object} pagination.Response[DTO] "Paginated tag page"
// @Failure      400 {object} map[string]string "Invalid pagination parameters"
// @Failure      401 {string} string "Authentication required - missing or invalid JWT token"
// @Failure      500 {string} string "Server error"
// @Router       /admin/tags/get [post]
func (h ListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := logging.WithRequestID(ctx, h.Logger)

	var req struct {
		Page   int    `json:"page"`
		Limit  int    `json:"limit"`
		Search string `json:"search"`
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

	result, err := h.Svc.List(ctx, req.Search, params)
	if err != nil {
		logger.Error("Failed to list tags",
			"error", err.Error(),
			"page", params.Page,
			"limit", params.Limit)
		pagination.RecordError("database")
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}

	dtos := make([]DTO, 0, len(result.Data))
	for _, tag := range result.Data {
		dtos = append(dtos, toDTO(tag))
	}

	pagination.RecordRequest(http.StatusOK, params.Page)
	respond.JSON(w, http.StatusOK, pagination.NewResponse(dtos, result.Pagination))
}
