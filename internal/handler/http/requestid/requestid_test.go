package requestid

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestContextRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		ctx  context.Context
		want string
	}{
		{"stored ID comes back", WithRequestID(context.Background(), "req-7"), "req-7"},
		{"empty context yields empty ID", context.Background(), ""},
		{"wrong value type yields empty ID", context.WithValue(context.Background(), RequestIDKey, 12345), ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FromContext(tt.ctx))
		})
	}
}

func TestMiddleware_PropagatesClientID(t *testing.T) {
	// A client retrying a comment submission sends its own correlation ID;
	// the server must keep it rather than minting a new one.
	clientID := "retry-4f2a"
	var seen string

	handler := Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = FromContext(r.Context())
		w.WriteHeader(http.StatusAccepted)
	}))

	req := httptest.NewRequest(http.MethodPost, "/articles/go-1-25/comments", nil)
	req.Header.Set(RequestIDHeader, clientID)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, clientID, seen)
	assert.Equal(t, clientID, rec.Header().Get(RequestIDHeader))
}

func TestMiddleware_MintsUUIDWhenAbsent(t *testing.T) {
	var seen string

	handler := Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = FromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/articles", nil))

	assert.NotEmpty(t, seen)
	if _, err := uuid.Parse(seen); err != nil {
		t.Fatalf("minted ID %q is not a UUID: %v", seen, err)
	}
	// Echoed back so the client can quote it in bug reports.
	assert.Equal(t, seen, rec.Header().Get(RequestIDHeader))
}

func TestMiddleware_UniquePerRequest(t *testing.T) {
	ids := make(map[string]bool)

	handler := Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ids[FromContext(r.Context())] = true
		w.WriteHeader(http.StatusOK)
	}))

	for i := 0; i < 10; i++ {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/categories", nil))
	}

	assert.Len(t, ids, 10)
}
