package category

import (
	"encoding/json"
	"errors"
	"net/http"

	"pressroom/internal/domain/entity"
	"pressroom/internal/handler/http/respond"
	catUC "pressroom/internal/usecase/category"
)

type CreateHandler struct{ Svc *catUC.Service }

// ServeHTTP creates a category.
// @Summary      Create category
// @Description  Creates a new category. Slug is generated from the name when omitted.
// @Tags         admin-categories
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        category body object true "Category payload"
// @Success      201 {object} map[string]string "Created"
// @Failure      400 {object} map[string]any "Validation failed or slug conflict"
// @Failure      401 {string} string "Authentication required - missing or invalid JWT token"
// @Failure      403 {string} string "Forbidden - insufficient role"
// @Router       /admin/categories/create [post]
func (h CreateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name        string `json:"name"`
		Slug        string `json:"slug"`
		Description string `json:"description"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	_, err := h.Svc.Create(r.Context(), catUC.CreateInput{
		Name:        req.Name,
		Slug:        req.Slug,
		Description: req.Description,
	})
	if err != nil {
		var ve entity.ValidationErrors
		switch {
		case errors.As(err, &ve):
			respond.ValidationFailed(w, ve)
		case errors.Is(err, catUC.ErrDuplicateSlug):
			respond.SafeError(w, http.StatusBadRequest, err)
		default:
			respond.SafeError(w, http.StatusInternalServerError, err)
		}
		return
	}

	respond.Message(w, http.StatusCreated, "category created")
}
