// Package logging defines the structured-logging interface used across
// sprintpilot. The only implementation wraps log/slog.
package logging

import "context"

// Logger takes a context on every call so request-scoped values can reach
// the handler. Trailing args are alternating keys and values:
//
//	log.Debug(ctx, "request done", "method", "GET", "path", "/api/v1/projects", "status", 200)
type Logger interface {
	// Debug is for per-request detail; hidden at the default "warn" level.
	Debug(ctx context.Context, msg string, args ...any)
	Info(ctx context.Context, msg string, args ...any)
	Warn(ctx context.Context, msg string, args ...any)
	Error(ctx context.Context, msg string, args ...any)

	// With returns a logger that adds args to every record.
	With(args ...any) Logger
}
