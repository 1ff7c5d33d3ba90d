// Package logging builds the slog loggers used by the API server and the
// publisher worker, and carries the request ID into per-request log lines.
package logging

import (
	"context"
	"log/slog"
	"os"
	"strings"

	"pressroom/internal/handler/http/requestid"
)

// NewLogger returns a structured logger tagged with the service name.
// LOG_LEVEL selects the minimum level (debug, info, warn, error; default
// info). LOG_FORMAT=text switches to the human-readable handler for local
// development; everything else gets JSON. Source locations are attached
// when the level is warn or lower so error lines are greppable to code.
func NewLogger(service string) *slog.Logger {
	level := parseLevel(os.Getenv("LOG_LEVEL"))

	opts := &slog.HandlerOptions{
		Level:     level,
		AddSource: level <= slog.LevelWarn,
	}

	var handler slog.Handler
	if strings.EqualFold(os.Getenv("LOG_FORMAT"), "text") {
		handler = slog.NewTextHandler(os.Stdout, opts)
	} else {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	}

	return slog.New(handler).With(slog.String("service", service))
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// WithRequestID returns a logger that includes the request ID from the
// context, so all lines for one request can be correlated.
func WithRequestID(ctx context.Context, logger *slog.Logger) *slog.Logger {
	reqID := requestid.FromContext(ctx)
	if reqID == "" {
		return logger
	}
	return logger.With("request_id", reqID)
}
