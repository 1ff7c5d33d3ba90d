package category

import (
	"encoding/json"
	"net/http"

	"pressroom/internal/handler/http/respond"
	catUC "pressroom/internal/usecase/category"
)

type DeleteHandler struct{ Svc *catUC.Service }

// ServeHTTP soft-deletes a category.
// @Summary      Delete category
// @Description  Soft-deletes a category. Rejected while non-deleted articles still reference it.
// @Tags         admin-categories
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        body body object true "Body with id"
// @Success      200 {object} map[string]string "Deleted"
// @Failure      400 {object} map[string]any "Validation failed or category still in use"
// @Failure      401 {string} string "Authentication required - missing or invalid JWT token"
// @Failure      403 {string} string "Forbidden - insufficient role"
// @Failure      404 {object} map[string]string "Category not found"
// @Router       /admin/categories/delete [delete]
func (h DeleteHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ID int64 `json:"id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	if err := h.Svc.Delete(r.Context(), req.ID); err != nil {
		writeCategoryError(w, err)
		return
	}

	respond.Message(w, http.StatusOK, "category deleted")
}
