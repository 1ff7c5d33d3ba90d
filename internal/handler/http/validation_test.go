package http

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestInputValidation_PassesNormalRequest(t *testing.T) {
	reached := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reached = true
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodPost, "/admin/articles/create", strings.NewReader(`{"title":"x"}`))
	req.Header.Set("Authorization", "Bearer "+strings.Repeat("t", 600))
	rec := httptest.NewRecorder()

	InputValidation()(next).ServeHTTP(rec, req)

	if !reached {
		t.Fatal("handler was not reached")
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status=%d", rec.Code)
	}
}

func TestInputValidation_AuthHeaderBounds(t *testing.T) {
	tests := []struct {
		name       string
		headerLen  int
		wantStatus int
	}{
		{"at limit", maxAuthHeaderLen, http.StatusOK},
		{"over limit", maxAuthHeaderLen + 1, http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
			})
			req := httptest.NewRequest(http.MethodGet, "/articles", nil)
			req.Header.Set("Authorization", strings.Repeat("a", tt.headerLen))
			rec := httptest.NewRecorder()

			InputValidation()(next).ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Fatalf("status=%d, want %d", rec.Code, tt.wantStatus)
			}
			if tt.wantStatus == http.StatusBadRequest {
				if !strings.Contains(rec.Body.String(), "authorization header too large") {
					t.Fatalf("body=%q", rec.Body.String())
				}
				if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
					t.Fatalf("Content-Type=%q", ct)
				}
			}
		})
	}
}

func TestInputValidation_PathTooLong(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not be reached")
	})

	slug := strings.Repeat("a", maxPathLen)
	req := httptest.NewRequest(http.MethodGet, "/articles/"+slug, nil)
	rec := httptest.NewRecorder()

	InputValidation()(next).ServeHTTP(rec, req)

	if rec.Code != http.StatusRequestURITooLong {
		t.Fatalf("status=%d, want 414", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "URI too long") {
		t.Fatalf("body=%q", rec.Body.String())
	}
}

func TestInputValidation_LongestRealPathFits(t *testing.T) {
	// The longest legitimate public path: a 150-char slug under
	// /articles/{slug}/comments.
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusAccepted)
	})

	slug := strings.Repeat("s", 150)
	req := httptest.NewRequest(http.MethodPost, "/articles/"+slug+"/comments", strings.NewReader("{}"))
	rec := httptest.NewRecorder()

	InputValidation()(next).ServeHTTP(rec, req)

	if rec.Code != http.StatusAccepted {
		t.Fatalf("status=%d, want 202", rec.Code)
	}
}
