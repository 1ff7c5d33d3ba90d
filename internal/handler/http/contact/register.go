package contact

import (
	"log/slog"
	"net/http"

	"pressroom/internal/common/pagination"
	"pressroom/internal/handler/http/auth"
	"pressroom/internal/handler/http/ratelimit"
	contactUC "pressroom/internal/usecase/contact"
)

// Register mounts the contact routes on mux. The public form goes through
// the per-IP token bucket; the inbox goes through the JWT gate.
func Register(mux *http.ServeMux, svc *contactUC.Service, paginationCfg pagination.Config, logger *slog.Logger, limiter *ratelimit.PerIP) {
	mux.Handle("POST   /admin/contacts/get", auth.Authz(ListHandler{Svc: svc, PaginationCfg: paginationCfg, Logger: logger}))
	mux.Handle("PUT    /admin/contacts/update", auth.Authz(UpdateHandler{svc}))

	mux.Handle("POST   /contact", limiter.Middleware(SubmitHandler{svc}))
}
