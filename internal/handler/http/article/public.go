package article

import (
	"errors"
	"log/slog"
	"net/http"

	"pressroom/internal/common/pagination"
	"pressroom/internal/handler/http/pathutil"
	"pressroom/internal/handler/http/respond"
	"pressroom/internal/observability/logging"
	"pressroom/internal/repository"
	artUC "pressroom/internal/usecase/article"
)

type PublicListHandler struct {
	Svc           *artUC.Service
	PaginationCfg pagination.Config
	Logger        *slog.Logger
}

// ServeHTTP lists published articles for readers.
// @Summary      List published articles
// @Description  Returns one page of published articles, newest first. Supports search plus category and tag slug filters.
// @Tags         articles
// @Produce      json
// @Param        page      query int    false "Page number (1-based)" default(1) minimum(1)
// @Param        limit     query int    false "Items per page" default(20) minimum(1) maximum(100)
// @Param        search    query string false "Free text search"
// @Param        category  query string false "Category slug filter"
// @Param        tag       query string false "Tag name filter"
// @Success      200 {object} pagination.Response[DTO] "Paginated article page"
// @Failure      400 {object} map[string]string "Invalid query parameters"
// @Failure      500 {string} string "Server error"
// @Router       /articles [get]
func (h PublicListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := logging.WithRequestID(ctx, h.Logger)

	params, err := pagination.ParseQueryParams(r, h.PaginationCfg)
	if err != nil {
		pagination.RecordError("validation")
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	filters := repository.ArticleListFilters{
		Search:        r.URL.Query().Get("search"),
		PublishedOnly: true,
		CategorySlug:  r.URL.Query().Get("category"),
		TagName:       r.URL.Query().Get("tag"),
	}

	result, err := h.Svc.List(ctx, filters, params)
	if err != nil {
		logger.Error("Failed to list published articles",
			"error", err.Error(),
			"page", params.Page,
			"limit", params.Limit)
		pagination.RecordError("database")
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}

	dtos := make([]DTO, 0, len(result.Data))
	for _, item := range result.Data {
		dtos = append(dtos, toDTO(item, false))
	}

	pagination.RecordRequest(http.StatusOK, params.Page)
	respond.JSON(w, http.StatusOK, pagination.NewResponse(dtos, result.Pagination))
}

type PublicGetHandler struct{ Svc *artUC.Service }

// ServeHTTP fetches one published article by slug.
// @Summary      Get published article
// @Description  Returns a single published article with its rendered content, category, author and tags. Drafts and archived articles answer 404.
// @Tags         articles
// @Produce      json
// @Param        slug path string true "Article slug"
// @Success      200 {object} DTO "Article detail"
// @Failure      400 {object} map[string]string "Invalid slug"
// @Failure      404 {object} map[string]string "Article not found"
// @Failure      500 {string} string "Server error"
// @Router       /articles/{slug} [get]
func (h PublicGetHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	slug, err := pathutil.ExtractSlug(r.URL.Path, "/articles/")
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	item, err := h.Svc.GetPublishedBySlug(r.Context(), slug)
	if err != nil {
		code := http.StatusInternalServerError
		if errors.Is(err, artUC.ErrArticleNotFound) {
			code = http.StatusNotFound
		}
		respond.SafeError(w, code, err)
		return
	}

	respond.JSON(w, http.StatusOK, toDTO(*item, true))
}
