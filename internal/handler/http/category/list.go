package category

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"pressroom/internal/common/pagination"
	"pressroom/internal/handler/http/respond"
	"pressroom/internal/observability/logging"
	catUC "pressroom/internal/usecase/category"
)

type ListHandler struct {
	Svc           *catUC.Service
	PaginationCfg pagination.Config
	Logger        *slog.Logger
}

// ServeHTTP lists categories for the back office.
// @Summary      List categories (admin)
// @Description  Returns one page of categories ordered by name. The optional search term is matched against name, slug and description.
// @Tags         admin-categories
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        query body object true "Body with page, limit and optional search"
// @Success      200 {object} pagination.Response[DTO] "Paginated category page"
// @Failure      400 {object} map[string]string "Invalid pagination parameters"
// @Failure      401 {string} string "Authentication required - missing or invalid JWT token"
// @Failure      500 {string} string "Server error"
// @Router       /admin/categories/get [post]
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
		logger.Error("Failed to list categories",
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
