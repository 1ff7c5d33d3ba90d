package category

import (
	"log/slog"
	"net/http"

	"pressroom/internal/common/pagination"
	"pressroom/internal/handler/http/auth"
	catUC "pressroom/internal/usecase/category"
)

// Register mounts the category routes on mux. Admin routes go through the
// JWT gate; the public listing does not.
func Register(mux *http.ServeMux, svc *catUC.Service, paginationCfg pagination.Config, logger *slog.Logger) {
	mux.Handle("POST   /admin/categories/create", auth.Authz(CreateHandler{svc}))
	mux.Handle("PUT    /admin/categories/update", auth.Authz(UpdateHandler{svc}))
	mux.Handle("DELETE /admin/categories/delete", auth.Authz(DeleteHandler{svc}))
	mux.Handle("POST   /admin/categories/get", auth.Authz(ListHandler{Svc: svc, PaginationCfg: paginationCfg, Logger: logger}))

	mux.Handle("GET    /categories", PublicListHandler{Svc: svc, Logger: logger})
}
