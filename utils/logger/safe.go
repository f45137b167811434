package logger

import (
	"context"
	"log/slog"
)

// Safe logging helpers tolerate an uninitialized global Logger so that
// drivers and usecases can log unconditionally, including from tests that
// never call InitLogger.

func safeLogger() *slog.Logger {
	if Logger != nil {
		return Logger
	}
	return slog.Default()
}

func SafeDebugContext(ctx context.Context, msg string, args ...any) {
	safeLogger().DebugContext(ctx, msg, args...)
}

func SafeInfoContext(ctx context.Context, msg string, args ...any) {
	safeLogger().InfoContext(ctx, msg, args...)
}

func SafeWarnContext(ctx context.Context, msg string, args ...any) {
	safeLogger().WarnContext(ctx, msg, args...)
}

func SafeErrorContext(ctx context.Context, msg string, args ...any) {
	safeLogger().ErrorContext(ctx, msg, args...)
}
