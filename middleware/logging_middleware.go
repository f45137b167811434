package middleware

import (
	"log/slog"
	"time"

	"github.com/labstack/echo/v4"

	"fursan/utils/logger"
)

// Probe endpoints would drown out the content traffic.
var unloggedPaths = map[string]bool{
	"/v1/health": true,
	"/metrics":   true,
}

// LoggingMiddleware emits one structured line per completed request, tiered
// by status. It sits outside the auth middleware in the chain, so the
// caller's user id is read from the request context after the handlers
// finish.
func LoggingMiddleware(baseLogger *slog.Logger) echo.MiddlewareFunc {
	contextLogger := logger.NewContextLogger(baseLogger)

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			if unloggedPaths[req.URL.Path] {
				return next(c)
			}

			start := time.Now()
			err := next(c)

			// Re-read the context: the auth middleware attaches the user id
			// downstream of this one.
			ctx := c.Request().Context()
			res := c.Response()

			attrs := []any{
				"method", req.Method,
				"route", c.Path(),
				"path", req.URL.Path,
				"status", res.Status,
				"remote_addr", c.RealIP(),
				"duration_ms", time.Since(start).Milliseconds(),
				"response_size", res.Size,
			}
			if err != nil {
				attrs = append(attrs, "error", err)
			}

			entry := contextLogger.WithContext(ctx)
			switch {
			case res.Status >= 500:
				entry.ErrorContext(ctx, "request completed", attrs...)
			case res.Status >= 400:
				entry.WarnContext(ctx, "request completed", attrs...)
			default:
				entry.InfoContext(ctx, "request completed", attrs...)
			}

			return err
		}
	}
}
