package article

import (
	"encoding/json"
	"errors"
	"net/http"

	"pressroom/internal/domain/entity"
	"pressroom/internal/handler/http/respond"
	"pressroom/internal/observability/metrics"
	artUC "pressroom/internal/usecase/article"
)

type DeleteHandler struct{ Svc *artUC.Service }

// ServeHTTP bulk-deletes articles.
// @Summary      Delete articles
// @Description  Hard-deletes the articles with the given ids and reports how many rows were removed. Ids missing from the database are skipped, not errors.
// @Tags         admin-articles
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        ids body object true "Body with a non-empty ids array"
// @Success      200 {object} map[string]any "Deleted count"
// @Failure      400 {object} map[string]any "Invalid id list"
// @Failure      401 {string} string "Authentication required - missing or invalid JWT token"
// @Router       /admin/articles/delete [delete]
func (h DeleteHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req struct {
		IDs []int64 `json:"ids"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	count, err := h.Svc.Delete(r.Context(), req.IDs)
	if err != nil {
		var ve entity.ValidationErrors
		if errors.As(err, &ve) {
			respond.ValidationFailed(w, ve)
			return
		}
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}

	metrics.RecordArticlesDeleted(count)
	respond.JSON(w, http.StatusOK, map[string]any{
		"message": "articles deleted",
		"count":   count,
	})
}
