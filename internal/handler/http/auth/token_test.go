package auth

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang-jwt/jwt/v5"
)

// stubProvider lets tests control credential validation outcomes.
type stubProvider struct {
	validateErr error
	role        string
	roleErr     error
}

func (p *stubProvider) ValidateCredentials(ctx context.Context, creds Credentials) error {
	return p.validateErr
}

func (p *stubProvider) IdentifyRole(ctx context.Context, email string) (string, error) {
	return p.role, p.roleErr
}

func (p *stubProvider) Name() string { return "stub" }

func TestTokenHandler_Success(t *testing.T) {
	cleanup := testSetupEnv(t)
	defer cleanup()

	handler := TokenHandler(&stubProvider{role: RoleAdmin})

	body := `{"email":"admin@pressroom.dev","password":"xK9#mP2$vL5nQ8wR"}`
	req := httptest.NewRequest("POST", "/auth/token", strings.NewReader(body))
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d (body: %s)", rec.Code, http.StatusOK, rec.Body.String())
	}

	var resp tokenResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if resp.Token == "" {
		t.Fatal("expected a token in the response")
	}

	// The issued token must carry the sub and role claims.
	tok, err := jwt.Parse(resp.Token, func(t *jwt.Token) (interface{}, error) {
		return []byte("test-secret-key-at-least-32-characters-long-for-testing"), nil
	})
	if err != nil || !tok.Valid {
		t.Fatalf("issued token does not validate: %v", err)
	}
	claims := tok.Claims.(jwt.MapClaims)
	if claims["sub"] != "admin@pressroom.dev" {
		t.Errorf("sub = %v, want admin@pressroom.dev", claims["sub"])
	}
	if claims["role"] != RoleAdmin {
		t.Errorf("role = %v, want %v", claims["role"], RoleAdmin)
	}
}

func TestTokenHandler_InvalidBody(t *testing.T) {
	cleanup := testSetupEnv(t)
	defer cleanup()

	handler := TokenHandler(&stubProvider{role: RoleAdmin})

	req := httptest.NewRequest("POST", "/auth/token", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
}

func TestTokenHandler_InvalidCredentials(t *testing.T) {
	cleanup := testSetupEnv(t)
	defer cleanup()

	handler := TokenHandler(&stubProvider{validateErr: errors.New("invalid credentials")})

	body := `{"email":"admin@pressroom.dev","password":"wrong"}`
	req := httptest.NewRequest("POST", "/auth/token", strings.NewReader(body))
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusUnauthorized)
	}
}

func TestTokenHandler_RoleIdentificationFails(t *testing.T) {
	cleanup := testSetupEnv(t)
	defer cleanup()

	handler := TokenHandler(&stubProvider{roleErr: errors.New("user not found")})

	body := `{"email":"ghost@pressroom.dev","password":"xK9#mP2$vL5nQ8wR"}`
	req := httptest.NewRequest("POST", "/auth/token", strings.NewReader(body))
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusUnauthorized)
	}
}

func TestTokenHandler_IssuedTokenPassesAuthz(t *testing.T) {
	cleanup := testSetupEnv(t)
	defer cleanup()

	handler := TokenHandler(&stubProvider{role: RoleEditor})

	body := `{"email":"editor@pressroom.dev","password":"eD7!tR4@wQ9zX2cV"}`
	req := httptest.NewRequest("POST", "/auth/token", strings.NewReader(body))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	var resp tokenResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}

	middleware := Authz(testSuccessHandler(t))

	adminReq := httptest.NewRequest("POST", "/admin/articles/create", nil)
	adminReq.Header.Set("Authorization", "Bearer "+resp.Token)
	adminRec := httptest.NewRecorder()

	middleware.ServeHTTP(adminRec, adminReq)

	if adminRec.Code != http.StatusOK {
		t.Errorf("round trip status = %d, want %d", adminRec.Code, http.StatusOK)
	}
}
