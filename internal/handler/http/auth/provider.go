package auth

import (
	"context"
	"crypto/subtle"
	"fmt"
	"os"
	"strings"
)

// Credentials represents a login attempt.
type Credentials struct {
	Email    string
	Password string
}

// Provider validates credentials and maps identities to roles.
type Provider interface {
	// ValidateCredentials checks a login attempt.
	ValidateCredentials(ctx context.Context, creds Credentials) error

	// IdentifyRole returns the role for a known email.
	IdentifyRole(ctx context.Context, email string) (string, error)

	// Name returns the name of this provider.
	Name() string
}

// EnvProvider authenticates the admin and the optional editor account
// against environment variables (ADMIN_USER / ADMIN_USER_PASSWORD,
// EDITOR_USER / EDITOR_USER_PASSWORD).
type EnvProvider struct {
	minPasswordLength int
	weakPasswords     []string
}

// NewEnvProvider creates an environment-backed credentials provider.
func NewEnvProvider(minPasswordLength int, weakPasswords []string) *EnvProvider {
	return &EnvProvider{
		minPasswordLength: minPasswordLength,
		weakPasswords:     weakPasswords,
	}
}

// ValidateCredentials validates a login attempt against the configured
// accounts. All secret comparisons are constant-time.
func (p *EnvProvider) ValidateCredentials(ctx context.Context, creds Credentials) error {
	if creds.Email == "" || creds.Password == "" {
		return fmt.Errorf("credentials must not be empty")
	}

	if len(creds.Password) < p.minPasswordLength {
		return fmt.Errorf("password must be at least %d characters", p.minPasswordLength)
	}

	for _, weak := range p.weakPasswords {
		if creds.Password == weak || strings.HasPrefix(creds.Password, weak) {
			return fmt.Errorf("weak password detected")
		}
	}

	adminUser := os.Getenv("ADMIN_USER")
	adminPass := os.Getenv("ADMIN_USER_PASSWORD")

	adminUserMatch := subtle.ConstantTimeCompare([]byte(creds.Email), []byte(adminUser)) == 1
	adminPassMatch := subtle.ConstantTimeCompare([]byte(creds.Password), []byte(adminPass)) == 1

	if adminUserMatch && adminPassMatch {
		return nil
	}

	editorUser := os.Getenv("EDITOR_USER")
	editorPass := os.Getenv("EDITOR_USER_PASSWORD")

	// Only checked when the editor account is configured.
	if editorUser != "" {
		editorUserMatch := subtle.ConstantTimeCompare([]byte(creds.Email), []byte(editorUser)) == 1
		editorPassMatch := subtle.ConstantTimeCompare([]byte(creds.Password), []byte(editorPass)) == 1

		if editorUserMatch && editorPassMatch {
			return nil
		}
	}

	return fmt.Errorf("invalid credentials")
}

// IdentifyRole returns the role for a given email address.
// Returns "admin", "editor", or an error if the email is not recognized.
func (p *EnvProvider) IdentifyRole(ctx context.Context, email string) (string, error) {
	if email == "" {
		return "", fmt.Errorf("email must not be empty")
	}

	adminUser := os.Getenv("ADMIN_USER")
	editorUser := os.Getenv("EDITOR_USER")

	if subtle.ConstantTimeCompare([]byte(email), []byte(adminUser)) == 1 {
		return RoleAdmin, nil
	}

	if editorUser != "" && subtle.ConstantTimeCompare([]byte(email), []byte(editorUser)) == 1 {
		return RoleEditor, nil
	}

	return "", fmt.Errorf("user not found")
}

// Name returns the provider name.
func (p *EnvProvider) Name() string {
	return "env"
}
