package category

import (
	"encoding/json"
	"errors"
	"net/http"

	"pressroom/internal/domain/entity"
	"pressroom/internal/handler/http/respond"
	"pressroom/internal/observability/metrics"
	catUC "pressroom/internal/usecase/category"
)

type UpdateHandler struct{ Svc *catUC.Service }

// ServeHTTP updates a category. Only the fields present in the body change.
// @Summary      Update category
// @Description  Applies a partial update to a category. Omitted fields keep their value.
// @Tags         admin-categories
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        category body object true "Category payload with id"
// @Success      200 {object} map[string]any "Updated category summary"
// @Failure      400 {object} map[string]any "Validation failed or slug conflict"
// @Failure      401 {string} string "Authentication required - missing or invalid JWT token"
// @Failure      403 {string} string "Forbidden - insufficient role"
// @Failure      404 {object} map[string]string "Category not found"
// @Router       /admin/categories/update [put]
func (h UpdateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ID          int64   `json:"id"`
		Name        *string `json:"name"`
		Slug        *string `json:"slug"`
		Description *string `json:"description"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	category, err := h.Svc.Update(r.Context(), catUC.UpdateInput{
		ID:          req.ID,
		Name:        req.Name,
		Slug:        req.Slug,
		Description: req.Description,
	})
	if err != nil {
		writeCategoryError(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, map[string]any{
		"message": "category updated",
		"category": map[string]any{
			"id":   category.ID,
			"name": category.Name,
			"slug": category.Slug,
		},
	})
}

// writeCategoryError maps usecase errors onto the admin error taxonomy.
func writeCategoryError(w http.ResponseWriter, err error) {
	var ve entity.ValidationErrors
	var fe *entity.ValidationError
	switch {
	case errors.As(err, &ve):
		respond.ValidationFailed(w, ve)
	case errors.As(err, &fe):
		respond.ValidationFailed(w, entity.ValidationErrors{fe})
	case errors.Is(err, catUC.ErrCategoryNotFound):
		respond.SafeError(w, http.StatusNotFound, err)
	case errors.Is(err, catUC.ErrCategoryInUse):
		metrics.RecordDeleteGuardRejection("category")
		respond.SafeError(w, http.StatusBadRequest, err)
	case errors.Is(err, catUC.ErrDuplicateSlug):
		respond.SafeError(w, http.StatusBadRequest, err)
	default:
		respond.SafeError(w, http.StatusInternalServerError, err)
	}
}
