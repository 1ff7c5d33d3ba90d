package article

import (
	"log/slog"
	"net/http"

	"pressroom/internal/common/pagination"
	"pressroom/internal/handler/http/auth"
	artUC "pressroom/internal/usecase/article"
)

// Register registers the article HTTP handlers with the given mux.
// Admin verb paths go through the auth middleware; the public read API is
// open.
func Register(mux *http.ServeMux, svc *artUC.Service, paginationCfg pagination.Config, logger *slog.Logger) {
	mux.Handle("POST   /admin/articles/create", auth.Authz(CreateHandler{svc}))
	mux.Handle("PUT    /admin/articles/update", auth.Authz(UpdateHandler{svc}))
	mux.Handle("DELETE /admin/articles/delete", auth.Authz(DeleteHandler{svc}))
	mux.Handle("POST   /admin/articles/get", auth.Authz(ListHandler{
		Svc:           svc,
		PaginationCfg: paginationCfg,
		Logger:        logger,
	}))

	mux.Handle("GET    /articles", PublicListHandler{
		Svc:           svc,
		PaginationCfg: paginationCfg,
		Logger:        logger,
	})
	mux.Handle("GET    /articles/{slug}", PublicGetHandler{svc})
}
