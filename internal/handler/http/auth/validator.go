package auth

import (
	"fmt"
	"os"
	"strings"
)

// weakPasswordList contains common weak passwords that must be rejected.
var weakPasswordList = []string{
	"admin",
	"password",
	"123456",
	"secret",
	"admin123",
	"password123",
	"123456789",
	"12345678",
	"qwerty",
	"abc123",
	"letmein",
	"welcome",
	"monkey",
	"1234567890",
	"password1",
	"admin1",
	"test",
	"test123",
	"default",
	"root",
}

const (
	// minPasswordLength is the minimum required password length for back-office accounts.
	minPasswordLength = 12
)

// ValidateAdminCredentials validates admin credentials from environment
// variables at application startup. It must run before the server starts so
// an empty or weak admin password never reaches production.
//
// Requirements:
//   - ADMIN_USER must not be empty
//   - ADMIN_USER_PASSWORD must not be empty
//   - Password must be at least 12 characters
//   - Password must not match any weak password pattern
//
// The returned error is safe to log; it never contains the password itself.
func ValidateAdminCredentials() error {
	user := os.Getenv("ADMIN_USER")
	pass := os.Getenv("ADMIN_USER_PASSWORD")

	if user == "" {
		return fmt.Errorf("admin credentials validation failed: ADMIN_USER must not be empty")
	}

	if pass == "" {
		return fmt.Errorf("admin credentials validation failed: ADMIN_USER_PASSWORD must not be empty")
	}

	if len(pass) < minPasswordLength {
		return fmt.Errorf("admin credentials validation failed: ADMIN_USER_PASSWORD must be at least %d characters (current length: %d)", minPasswordLength, len(pass))
	}

	// Numeric and keyboard patterns are checked before the blacklist so
	// sequences are not misreported as blacklist prefix matches.
	if isSimpleNumericPattern(pass) {
		return fmt.Errorf("admin credentials validation failed: ADMIN_USER_PASSWORD must not be a simple numeric pattern")
	}

	if isKeyboardPattern(pass) {
		return fmt.Errorf("admin credentials validation failed: ADMIN_USER_PASSWORD must not be a keyboard pattern")
	}

	lowerPass := strings.ToLower(pass)
	for _, weak := range weakPasswordList {
		if lowerPass == weak {
			return fmt.Errorf("admin credentials validation failed: ADMIN_USER_PASSWORD must not be a weak password")
		}

		// Catches variations like "admin1234567890".
		if strings.HasPrefix(lowerPass, weak) && len(pass) < minPasswordLength+5 {
			return fmt.Errorf("admin credentials validation failed: ADMIN_USER_PASSWORD must not be based on common weak passwords")
		}
	}

	return nil
}

// isSimpleNumericPattern checks if the password is a simple numeric sequence.
// Examples: "111111111111", "123456789012"
func isSimpleNumericPattern(pass string) bool {
	if len(pass) < minPasswordLength {
		return false
	}

	if isRepeatedChar(pass) {
		return true
	}

	hasOnlyDigits := true
	for _, ch := range pass {
		if ch < '0' || ch > '9' {
			hasOnlyDigits = false
			break
		}
	}

	if !hasOnlyDigits {
		return false
	}

	isAscending := true
	isDescending := true
	for i := 1; i < len(pass); i++ {
		diff := int(pass[i]) - int(pass[i-1])
		// Ascending: diff is 1 or -9 (wraps 9->0)
		if diff != 1 && diff != -9 {
			isAscending = false
		}
		// Descending: diff is -1 or 9 (wraps 0->9)
		if diff != -1 && diff != 9 {
			isDescending = false
		}
	}

	return isAscending || isDescending
}

// isRepeatedChar checks if the password consists of a single repeated character.
func isRepeatedChar(pass string) bool {
	if len(pass) == 0 {
		return false
	}

	first := pass[0]
	for i := 1; i < len(pass); i++ {
		if pass[i] != first {
			return false
		}
	}
	return true
}

var keyboardPatterns = []string{
	"qwertyuiop",
	"asdfghjkl",
	"zxcvbnm",
	"qwerty",
	"asdfgh",
	"zxcvb",
}

// isKeyboardPattern checks if the password contains a keyboard walk,
// forward or reversed.
func isKeyboardPattern(pass string) bool {
	lowerPass := strings.ToLower(pass)

	for _, pattern := range keyboardPatterns {
		if strings.Contains(lowerPass, pattern) {
			return true
		}
		if strings.Contains(lowerPass, reverse(pattern)) {
			return true
		}
	}

	return false
}

func reverse(s string) string {
	runes := []rune(s)
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}
	return string(runes)
}

// ValidateEditorCredentials validates the optional editor account at startup.
// It degrades gracefully: a misconfigured editor account disables the editor
// role but never fails startup, so the back office keeps running admin-only.
//
// Cases:
//  1. EDITOR_USER empty → INFO "editor role not configured", return nil
//  2. EDITOR_USER set but EDITOR_USER_PASSWORD empty → WARN, unset, return nil
//  3. EDITOR_USER equals ADMIN_USER → WARN, unset, return nil
//  4. Password shorter than 12 characters → WARN, unset both, return nil
//  5. Weak password → WARN, unset both, return nil
//  6. Otherwise → INFO "editor role configured", return nil
func ValidateEditorCredentials(logger interface {
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
}) error {
	editorUser := os.Getenv("EDITOR_USER")
	editorPass := os.Getenv("EDITOR_USER_PASSWORD")
	adminUser := os.Getenv("ADMIN_USER")

	if editorUser == "" {
		logger.Info("editor role not configured - running in admin-only mode")
		return nil
	}

	if editorPass == "" {
		logger.Warn("EDITOR_USER_PASSWORD is empty - disabling editor role")
		_ = os.Unsetenv("EDITOR_USER")
		return nil
	}

	if editorUser == adminUser {
		logger.Warn("EDITOR_USER cannot be the same as ADMIN_USER - disabling editor role")
		_ = os.Unsetenv("EDITOR_USER")
		_ = os.Unsetenv("EDITOR_USER_PASSWORD")
		return nil
	}

	if len(editorPass) < minPasswordLength {
		logger.Warn("EDITOR_USER_PASSWORD must be at least 12 characters - disabling editor role")
		_ = os.Unsetenv("EDITOR_USER")
		_ = os.Unsetenv("EDITOR_USER_PASSWORD")
		return nil
	}

	lowerPass := strings.ToLower(editorPass)
	for _, weak := range weakPasswordList {
		if lowerPass == weak || strings.HasPrefix(lowerPass, weak) {
			logger.Warn("EDITOR_USER_PASSWORD is a weak password - disabling editor role",
				"hint", "avoid common passwords")
			_ = os.Unsetenv("EDITOR_USER")
			_ = os.Unsetenv("EDITOR_USER_PASSWORD")
			return nil
		}
	}

	logger.Info("editor role configured successfully", "user", editorUser)
	return nil
}
