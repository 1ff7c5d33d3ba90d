package comment

import (
	"log/slog"
	"net/http"

	"pressroom/internal/common/pagination"
	"pressroom/internal/handler/http/auth"
	"pressroom/internal/handler/http/ratelimit"
	commentUC "pressroom/internal/usecase/comment"
)

// Register mounts the comment routes on mux. Submissions go through the
// per-IP token bucket; moderation goes through the JWT gate.
func Register(mux *http.ServeMux, svc *commentUC.Service, paginationCfg pagination.Config, logger *slog.Logger, limiter *ratelimit.PerIP) {
	mux.Handle("POST   /admin/comments/get", auth.Authz(ListHandler{Svc: svc, PaginationCfg: paginationCfg, Logger: logger}))
	mux.Handle("PUT    /admin/comments/update", auth.Authz(UpdateHandler{svc}))
	mux.Handle("DELETE /admin/comments/delete", auth.Authz(DeleteHandler{svc}))

	mux.Handle("GET    /articles/{slug}/comments", PublicListHandler{svc})
	mux.Handle("POST   /articles/{slug}/comments", limiter.Middleware(SubmitHandler{svc}))
}
