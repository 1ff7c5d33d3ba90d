package category

import (
	"log/slog"
	"net/http"

	"pressroom/internal/handler/http/respond"
	"pressroom/internal/observability/logging"
	catUC "pressroom/internal/usecase/category"
)

type PublicListHandler struct {
	Svc    *catUC.Service
	Logger *slog.Logger
}

// ServeHTTP lists categories for readers, with live article counts.
// @Summary      List categories
// @Description  Returns every category with the number of non-deleted articles it owns.
// @Tags         categories
// @Produce      json
// @Success      200 {array} DTO "Categories with article counts"
// @Failure      500 {string} string "Server error"
// @Router       /categories [get]
func (h PublicListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	categories, err := h.Svc.ListWithCounts(ctx)
	if err != nil {
		logging.WithRequestID(ctx, h.Logger).Error("Failed to list categories",
			"error", err.Error())
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}

	dtos := make([]DTO, 0, len(categories))
	for _, c := range categories {
		dtos = append(dtos, toDTOWithCount(c))
	}

	respond.JSON(w, http.StatusOK, dtos)
}
