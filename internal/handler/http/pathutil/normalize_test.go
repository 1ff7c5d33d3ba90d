package pathutil

import "testing"

func TestNormalizePath(t *testing.T) {
	tests := []struct {
		name string
		path string
		want string
	}{
		{"article slug", "/articles/go-generics", "/articles/:slug"},
		{"article slug with digits", "/articles/go-1-25-released", "/articles/:slug"},
		{"article comments", "/articles/go-generics/comments", "/articles/:slug/comments"},
		{"article list", "/articles", "/articles"},
		{"category list", "/categories", "/categories"},
		{"admin verb path", "/admin/articles/create", "/admin/articles/create"},
		{"admin list path", "/admin/articles/get", "/admin/articles/get"},
		{"health", "/health", "/health"},
		{"metrics", "/metrics", "/metrics"},
		{"auth token", "/auth/token", "/auth/token"},
		{"query stripped", "/articles/go-generics?ref=home", "/articles/:slug"},
		{"trailing slash stripped", "/articles/go-generics/", "/articles/:slug"},
		{"root", "/", "/"},
		{"unknown path untouched", "/unknown/path/123", "/unknown/path/123"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizePath(tt.path)
			if got != tt.want {
				t.Errorf("NormalizePath(%q) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}

func BenchmarkNormalizePath(b *testing.B) {
	paths := []string{
		"/articles/go-generics",
		"/articles/go-generics/comments",
		"/admin/articles/get",
		"/health",
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		NormalizePath(paths[i%len(paths)])
	}
}
