package user

import (
	"log/slog"
	"net/http"

	"pressroom/internal/common/pagination"
	"pressroom/internal/handler/http/auth"
	userUC "pressroom/internal/usecase/user"
)

// Register mounts the user admin routes on mux, all behind the JWT gate.
// Role permissions keep these admin-only; editors never reach them.
func Register(mux *http.ServeMux, svc *userUC.Service, paginationCfg pagination.Config, logger *slog.Logger) {
	mux.Handle("POST   /admin/users/create", auth.Authz(CreateHandler{svc}))
	mux.Handle("PUT    /admin/users/update", auth.Authz(UpdateHandler{svc}))
	mux.Handle("POST   /admin/users/get", auth.Authz(ListHandler{Svc: svc, PaginationCfg: paginationCfg, Logger: logger}))
}
