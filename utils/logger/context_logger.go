package logger

import (
	"context"
	"log/slog"
)

type ContextKey string

// Keys set by the HTTP middleware chain: the request-id middleware tags
// every request, the auth middleware adds the caller once a bearer token
// verifies.
const (
	RequestIDKey ContextKey = "request_id"
	UserIDKey    ContextKey = "user_id"
)

// ContextLogger decorates log entries with the request-scoped identifiers
// carried in the context.
type ContextLogger struct {
	logger *slog.Logger
}

func NewContextLogger(logger *slog.Logger) *ContextLogger {
	return &ContextLogger{logger: logger}
}

// WithContext returns a logger carrying the request id and, for
// authenticated requests, the user id. Anonymous requests log without a
// user_id attribute.
func (cl *ContextLogger) WithContext(ctx context.Context) *slog.Logger {
	args := make([]any, 0, 4)

	if requestID, ok := ctx.Value(RequestIDKey).(string); ok && requestID != "" {
		args = append(args, "request_id", requestID)
	}
	if userID, ok := ctx.Value(UserIDKey).(string); ok && userID != "" {
		args = append(args, "user_id", userID)
	}

	return cl.logger.With(args...)
}
