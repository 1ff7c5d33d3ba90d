package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"pressroom/internal/handler/http/requestid"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  slog.Level
	}{
		{"", slog.LevelInfo},
		{"debug", slog.LevelDebug},
		{"DEBUG", slog.LevelDebug},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"verbose", slog.LevelInfo},
	}
	for _, tt := range tests {
		if got := parseLevel(tt.input); got != tt.want {
			t.Errorf("parseLevel(%q)=%v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestNewLogger_ServiceTag(t *testing.T) {
	t.Setenv("LOG_LEVEL", "debug")
	logger := NewLogger("worker")
	require.NotNil(t, logger)
	assert.True(t, logger.Enabled(context.Background(), slog.LevelDebug))

	t.Setenv("LOG_LEVEL", "error")
	logger = NewLogger("api")
	assert.False(t, logger.Enabled(context.Background(), slog.LevelInfo))
}

func TestNewLogger_TextFormat(t *testing.T) {
	t.Setenv("LOG_FORMAT", "text")
	require.NotNil(t, NewLogger("api"))

	t.Setenv("LOG_FORMAT", "TEXT")
	require.NotNil(t, NewLogger("api"))
}

func TestWithRequestID(t *testing.T) {
	var buf bytes.Buffer
	base := slog.New(slog.NewJSONHandler(&buf, nil))

	ctx := requestid.WithRequestID(context.Background(), "550e8400-e29b-41d4-a716-446655440000")
	WithRequestID(ctx, base).Info("article created", slog.Int64("article_id", 7))

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "550e8400-e29b-41d4-a716-446655440000", record["request_id"])
	assert.Equal(t, "article created", record["msg"])
	assert.Equal(t, float64(7), record["article_id"])
}

func TestWithRequestID_NoIDInContext(t *testing.T) {
	var buf bytes.Buffer
	base := slog.New(slog.NewJSONHandler(&buf, nil))

	WithRequestID(context.Background(), base).Info("startup check")

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.NotContains(t, record, "request_id")
	assert.Equal(t, "startup check", record["msg"])
}
