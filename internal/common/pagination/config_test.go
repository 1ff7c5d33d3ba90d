package pagination

import "testing"

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.DefaultPage != 1 || cfg.DefaultLimit != 20 || cfg.MaxLimit != 100 {
		t.Fatalf("cfg=%+v", cfg)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Run("unset falls back to defaults", func(t *testing.T) {
		cfg := LoadFromEnv()
		if cfg != DefaultConfig() {
			t.Fatalf("cfg=%+v", cfg)
		}
	})

	t.Run("overrides apply", func(t *testing.T) {
		t.Setenv("PAGINATION_DEFAULT_LIMIT", "50")
		t.Setenv("PAGINATION_MAX_LIMIT", "200")
		cfg := LoadFromEnv()
		if cfg.DefaultLimit != 50 || cfg.MaxLimit != 200 {
			t.Fatalf("cfg=%+v", cfg)
		}
		if cfg.DefaultPage != 1 {
			t.Fatalf("DefaultPage=%d", cfg.DefaultPage)
		}
	})

	t.Run("garbage keeps defaults", func(t *testing.T) {
		t.Setenv("PAGINATION_MAX_LIMIT", "unbounded")
		if cfg := LoadFromEnv(); cfg.MaxLimit != 100 {
			t.Fatalf("MaxLimit=%d", cfg.MaxLimit)
		}
	})
}
