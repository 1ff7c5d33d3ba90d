package pathutil

import "testing"

func TestExtractSlug(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		prefix  string
		want    string
		wantErr bool
	}{
		{"simple slug", "/articles/go-generics", "/articles/", "go-generics", false},
		{"numeric slug", "/articles/go-1-25-released", "/articles/", "go-1-25-released", false},
		{"trailing slash", "/articles/go-generics/", "/articles/", "go-generics", false},
		{"empty slug", "/articles/", "/articles/", "", true},
		{"prefix missing", "/categories/tech", "/articles/", "", true},
		{"nested path", "/articles/a/comments", "/articles/", "", true},
		{"query-ish characters", "/articles/a?b", "/articles/", "", true},
		{"underscore rejected", "/articles/a_b", "/articles/", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractSlug(tt.path, tt.prefix)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ExtractSlug(%q) error = %v, wantErr %v", tt.path, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ExtractSlug(%q) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}
