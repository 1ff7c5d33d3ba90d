package tag

import (
	"log/slog"
	"net/http"

	"pressroom/internal/common/pagination"
	"pressroom/internal/handler/http/auth"
	tagUC "pressroom/internal/usecase/tag"
)

// Register mounts the tag admin routes on mux, all behind the JWT gate.
func Register(mux *http.ServeMux, svc *tagUC.Service, paginationCfg pagination.Config, logger *slog.Logger) {
	mux.Handle("POST   /admin/tags/create", auth.Authz(CreateHandler{svc}))
	mux.Handle("PUT    /admin/tags/update", auth.Authz(UpdateHandler{svc}))
	mux.Handle("DELETE /admin/tags/delete", auth.Authz(DeleteHandler{svc}))
	mux.Handle("POST   /admin/tags/get", auth.Authz(ListHandler{Svc: svc, PaginationCfg: paginationCfg, Logger: logger}))
}
