package logger

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContextLogger_WithContext(t *testing.T) {
	var buf bytes.Buffer
	cl := NewContextLogger(slog.New(slog.NewTextHandler(&buf, nil)))

	ctx := context.WithValue(context.Background(), RequestIDKey, "req-1")
	ctx = context.WithValue(ctx, UserIDKey, "user-1")

	cl.WithContext(ctx).Info("hello")

	out := buf.String()
	assert.Contains(t, out, "request_id=req-1")
	assert.Contains(t, out, "user_id=user-1")
}

func TestContextLogger_AnonymousRequestOmitsUserID(t *testing.T) {
	var buf bytes.Buffer
	cl := NewContextLogger(slog.New(slog.NewTextHandler(&buf, nil)))

	ctx := context.WithValue(context.Background(), RequestIDKey, "req-2")

	cl.WithContext(ctx).Info("hello")

	out := buf.String()
	assert.Contains(t, out, "request_id=req-2")
	assert.NotContains(t, out, "user_id")
}

func TestContextLogger_NonStringValueIgnored(t *testing.T) {
	var buf bytes.Buffer
	cl := NewContextLogger(slog.New(slog.NewTextHandler(&buf, nil)))

	ctx := context.WithValue(context.Background(), RequestIDKey, 42)

	assert.NotPanics(t, func() { cl.WithContext(ctx).Info("hello") })
	assert.NotContains(t, buf.String(), "request_id")
}
