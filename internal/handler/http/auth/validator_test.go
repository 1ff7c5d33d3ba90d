package auth

import (
	"os"
	"testing"
)

func TestValidateAdminCredentials(t *testing.T) {
	tests := []struct {
		name    string
		user    string
		pass    string
		wantErr bool
	}{
		{"valid credentials", "admin@pressroom.dev", "xK9#mP2$vL5nQ8wR", false},
		{"empty user", "", "xK9#mP2$vL5nQ8wR", true},
		{"empty password", "admin@pressroom.dev", "", true},
		{"too short", "admin@pressroom.dev", "short1!", true},
		{"exact weak password", "admin@pressroom.dev", "password", true},
		{"weak prefix short tail", "admin@pressroom.dev", "admin1234567890", true},
		{"repeated characters", "admin@pressroom.dev", "aaaaaaaaaaaa", true},
		{"ascending numeric", "admin@pressroom.dev", "123456789012", true},
		{"descending numeric", "admin@pressroom.dev", "210987654321", true},
		{"keyboard walk", "admin@pressroom.dev", "qwertyuiop12", true},
		{"reversed keyboard walk", "admin@pressroom.dev", "99poiuytrewq", true},
		{"long password with weak prefix", "admin@pressroom.dev", "testXq72!LmNop#Rv", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("ADMIN_USER", tt.user)
			t.Setenv("ADMIN_USER_PASSWORD", tt.pass)

			err := ValidateAdminCredentials()
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateAdminCredentials() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

// recordingLogger captures Info/Warn calls for assertions.
type recordingLogger struct {
	infos []string
	warns []string
}

func (l *recordingLogger) Info(msg string, args ...any) { l.infos = append(l.infos, msg) }
func (l *recordingLogger) Warn(msg string, args ...any) { l.warns = append(l.warns, msg) }

func TestValidateEditorCredentials(t *testing.T) {
	tests := []struct {
		name           string
		editorUser     string
		editorPass     string
		adminUser      string
		wantWarn       bool
		wantEditorUser bool // EDITOR_USER still set afterwards
	}{
		{"not configured", "", "", "admin@x.dev", false, false},
		{"password empty", "editor@x.dev", "", "admin@x.dev", true, false},
		{"same as admin", "admin@x.dev", "eD7!tR4@wQ9zX2cV", "admin@x.dev", true, false},
		{"too short", "editor@x.dev", "short", "admin@x.dev", true, false},
		{"weak password", "editor@x.dev", "password12345678", "admin@x.dev", true, false},
		{"valid", "editor@x.dev", "eD7!tR4@wQ9zX2cV", "admin@x.dev", false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("EDITOR_USER", tt.editorUser)
			t.Setenv("EDITOR_USER_PASSWORD", tt.editorPass)
			t.Setenv("ADMIN_USER", tt.adminUser)
			if tt.editorUser == "" {
				_ = os.Unsetenv("EDITOR_USER")
				_ = os.Unsetenv("EDITOR_USER_PASSWORD")
			}

			logger := &recordingLogger{}

			// Never fails startup, whatever the configuration.
			if err := ValidateEditorCredentials(logger); err != nil {
				t.Fatalf("ValidateEditorCredentials() error = %v, want nil", err)
			}

			if tt.wantWarn && len(logger.warns) == 0 {
				t.Error("expected a warning, got none")
			}
			if !tt.wantWarn && len(logger.warns) > 0 {
				t.Errorf("unexpected warnings: %v", logger.warns)
			}

			_, stillSet := os.LookupEnv("EDITOR_USER")
			if stillSet != tt.wantEditorUser {
				t.Errorf("EDITOR_USER set = %v, want %v", stillSet, tt.wantEditorUser)
			}
		})
	}
}
