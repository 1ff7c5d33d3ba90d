package article

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"pressroom/internal/common/pagination"
	"pressroom/internal/handler/http/requestid"
	"pressroom/internal/handler/http/respond"
	"pressroom/internal/observability/logging"
	"pressroom/internal/repository"
	artUC "pressroom/internal/usecase/article"
)

type ListHandler struct {
	Svc           *artUC.Service
	PaginationCfg pagination.Config
	Logger        *slog.Logger
}

// ServeHTTP lists articles for the back office.
// @Summary      List articles (admin)
// @Description  Returns one page of articles with category, author and tag names. The optional search term is matched against title, slug, summary and content, and against the status when it names one.
// @Tags         admin-articles
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        query body object true "Body with page, limit and optional search"
// @Success      200 {object} pagination.Response[DTO] "Paginated article page"
// @Failure      400 {object} map[string]string "Invalid pagination parameters"
// @Failure      401 {string} string "Authentication required - missing or invalid JWT token"
// @Failure      500 {string} string "Server error"
// @Router       /admin/articles/get [post]
func (h ListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	startTime := time.Now()

	reqID := requestid.FromContext(ctx)
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
		logger.Warn("Invalid pagination parameters",
			"error", err.Error(),
			"request_id", reqID)
		pagination.RecordError("validation")
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	logger.Info("Admin article list request",
		"page", params.Page,
		"limit", params.Limit,
		"search", req.Search,
		"request_id", reqID)

	result, err := h.Svc.List(ctx, repository.ArticleListFilters{Search: req.Search}, params)
	if err != nil {
		logger.Error("Failed to list articles",
			"error", err.Error(),
			"page", params.Page,
			"limit", params.Limit,
			"request_id", reqID)
		pagination.RecordError("database")
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}

	dtos := make([]DTO, 0, len(result.Data))
	for _, item := range result.Data {
		dtos = append(dtos, toDTO(item, false))
	}

	response := pagination.NewResponse(dtos, result.Pagination)

	duration := time.Since(startTime)
	pagination.RecordRequest(http.StatusOK, params.Page)
	pagination.RecordDuration("handler", duration.Seconds())
	pagination.UpdateTotalCount(result.Pagination.Total)

	logger.Info("Paginated response",
		"page", params.Page,
		"limit", params.Limit,
		"returned_count", len(dtos),
		"duration_ms", duration.Milliseconds(),
		"status", http.StatusOK,
		"request_id", reqID)

	respond.JSON(w, http.StatusOK, response)
}
