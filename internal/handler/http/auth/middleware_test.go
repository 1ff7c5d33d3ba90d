package auth

import (
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// testSetupEnv sets up environment variables for testing and returns a cleanup function
func testSetupEnv(t *testing.T) func() {
	t.Helper()
	if err := os.Setenv("JWT_SECRET", "test-secret-key-at-least-32-characters-long-for-testing"); err != nil {
		t.Fatalf("Failed to set JWT_SECRET: %v", err)
	}
	return func() {
		if err := os.Unsetenv("JWT_SECRET"); err != nil {
			t.Errorf("Failed to unset JWT_SECRET: %v", err)
		}
	}
}

// testSuccessHandler returns a simple test handler that writes "success"
func testSuccessHandler(t *testing.T) http.HandlerFunc {
	t.Helper()
	return func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("success")); err != nil {
			t.Errorf("Failed to write response: %v", err)
		}
	}
}

// generateTestToken creates a signed JWT for tests.
func generateTestToken(t *testing.T, sub, role string, expiresIn time.Duration) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  sub,
		"role": role,
		"exp":  time.Now().Add(expiresIn).Unix(),
	})
	signed, err := token.SignedString([]byte(os.Getenv("JWT_SECRET")))
	if err != nil {
		t.Fatalf("Failed to sign test token: %v", err)
	}
	return signed
}

// TestAuthz_WithoutToken verifies that admin endpoints return 401 when no
// JWT token is provided.
func TestAuthz_WithoutToken(t *testing.T) {
	cleanup := testSetupEnv(t)
	defer cleanup()

	endpoints := []struct {
		name   string
		method string
		path   string
	}{
		{"article create", "POST", "/admin/articles/create"},
		{"article update", "PUT", "/admin/articles/update"},
		{"article delete", "DELETE", "/admin/articles/delete"},
		{"article list", "POST", "/admin/articles/get"},
		{"category create", "POST", "/admin/categories/create"},
		{"tag delete", "DELETE", "/admin/tags/delete"},
		{"user list", "POST", "/admin/users/get"},
	}

	middleware := Authz(testSuccessHandler(t))

	for _, tt := range endpoints {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			rec := httptest.NewRecorder()

			middleware.ServeHTTP(rec, req)

			if rec.Code != http.StatusUnauthorized {
				t.Errorf("Expected status %d for %s %s without token, got %d",
					http.StatusUnauthorized, tt.method, tt.path, rec.Code)
			}
		})
	}
}

// TestAuthz_WithInvalidToken verifies 401 responses for malformed tokens.
func TestAuthz_WithInvalidToken(t *testing.T) {
	cleanup := testSetupEnv(t)
	defer cleanup()

	invalidTokens := []struct {
		name  string
		token string
	}{
		{"missing bearer prefix", "invalid-token"},
		{"bearer without token", "Bearer "},
		{"malformed token", "Bearer not.a.valid.token"},
		{"empty bearer", "Bearer"},
	}

	middleware := Authz(testSuccessHandler(t))

	for _, tt := range invalidTokens {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("POST", "/admin/articles/create", nil)
			req.Header.Set("Authorization", tt.token)
			rec := httptest.NewRecorder()

			middleware.ServeHTTP(rec, req)

			if rec.Code != http.StatusUnauthorized {
				t.Errorf("Expected status %d for token %q, got %d",
					http.StatusUnauthorized, tt.token, rec.Code)
			}
		})
	}
}

// TestAuthz_WithValidAdminToken verifies that a valid admin token passes and
// the user lands in the request context.
func TestAuthz_WithValidAdminToken(t *testing.T) {
	cleanup := testSetupEnv(t)
	defer cleanup()

	token := generateTestToken(t, "admin@pressroom.dev", RoleAdmin, time.Hour)

	var gotUser, gotRole string
	middleware := Authz(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUser = UserFromContext(r.Context())
		gotRole = RoleFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest("DELETE", "/admin/categories/delete", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()

	middleware.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected status %d, got %d (body: %s)", http.StatusOK, rec.Code, rec.Body.String())
	}
	if gotUser != "admin@pressroom.dev" {
		t.Errorf("UserFromContext = %q, want %q", gotUser, "admin@pressroom.dev")
	}
	if gotRole != RoleAdmin {
		t.Errorf("RoleFromContext = %q, want %q", gotRole, RoleAdmin)
	}
}

// TestAuthz_EditorRestrictions verifies the editor role is confined to its
// allowed admin paths.
func TestAuthz_EditorRestrictions(t *testing.T) {
	cleanup := testSetupEnv(t)
	defer cleanup()

	token := generateTestToken(t, "editor@pressroom.dev", RoleEditor, time.Hour)
	middleware := Authz(testSuccessHandler(t))

	tests := []struct {
		name     string
		method   string
		path     string
		wantCode int
	}{
		{"editor can create articles", "POST", "/admin/articles/create", http.StatusOK},
		{"editor can manage tags", "POST", "/admin/tags/create", http.StatusOK},
		{"editor can moderate comments", "PUT", "/admin/comments/update", http.StatusOK},
		{"editor cannot manage users", "POST", "/admin/users/create", http.StatusForbidden},
		{"editor cannot manage categories", "DELETE", "/admin/categories/delete", http.StatusForbidden},
		{"editor cannot read contacts", "POST", "/admin/contacts/get", http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			req.Header.Set("Authorization", "Bearer "+token)
			rec := httptest.NewRecorder()

			middleware.ServeHTTP(rec, req)

			if rec.Code != tt.wantCode {
				t.Errorf("%s %s: status = %d, want %d", tt.method, tt.path, rec.Code, tt.wantCode)
			}
		})
	}
}

// TestAuthz_ExpiredToken verifies expired tokens are rejected.
func TestAuthz_ExpiredToken(t *testing.T) {
	cleanup := testSetupEnv(t)
	defer cleanup()

	token := generateTestToken(t, "admin@pressroom.dev", RoleAdmin, -time.Hour)
	middleware := Authz(testSuccessHandler(t))

	req := httptest.NewRequest("POST", "/admin/articles/create", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()

	middleware.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("Expected status %d for expired token, got %d", http.StatusUnauthorized, rec.Code)
	}
}

// TestAuthz_WrongSigningMethod verifies tokens signed with an unexpected
// algorithm are rejected.
func TestAuthz_WrongSigningMethod(t *testing.T) {
	cleanup := testSetupEnv(t)
	defer cleanup()

	// alg=none token, manually assembled
	noneToken := "eyJhbGciOiJub25lIiwidHlwIjoiSldUIn0.eyJzdWIiOiJhZG1pbiIsInJvbGUiOiJhZG1pbiJ9."
	middleware := Authz(testSuccessHandler(t))

	req := httptest.NewRequest("POST", "/admin/articles/create", nil)
	req.Header.Set("Authorization", "Bearer "+noneToken)
	rec := httptest.NewRecorder()

	middleware.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("Expected status %d for alg=none token, got %d", http.StatusUnauthorized, rec.Code)
	}
}

// TestAuthz_UnknownRole verifies that a valid token with an unknown role is
// denied with 403.
func TestAuthz_UnknownRole(t *testing.T) {
	cleanup := testSetupEnv(t)
	defer cleanup()

	token := generateTestToken(t, "ghost@pressroom.dev", "ghost", time.Hour)
	middleware := Authz(testSuccessHandler(t))

	req := httptest.NewRequest("POST", "/admin/articles/create", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()

	middleware.ServeHTTP(rec, req)

	if rec.Code != http.StatusForbidden {
		t.Errorf("Expected status %d for unknown role, got %d", http.StatusForbidden, rec.Code)
	}
}
