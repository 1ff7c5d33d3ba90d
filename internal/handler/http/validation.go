package http

import (
	"errors"
	"net/http"

	"pressroom/internal/handler/http/respond"
)

const (
	// Bearer tokens issued by /auth/token stay well under 1KB; anything
	// near this bound is not a token we minted.
	maxAuthHeaderLen = 8192
	// Admin verb paths and public slugs are short; slugs cap at 150 chars.
	maxPathLen = 2048
)

// InputValidation rejects requests whose Authorization header or URI path
// exceed sane bounds before any routing or body handling happens. Body size
// is owned by LimitRequestBody further down the chain.
func InputValidation() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if len(r.Header.Get("Authorization")) > maxAuthHeaderLen {
				respond.Error(w, http.StatusBadRequest, errors.New("authorization header too large"))
				return
			}

			if len(r.URL.Path) > maxPathLen {
				respond.Error(w, http.StatusRequestURITooLong, errors.New("URI too long"))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
