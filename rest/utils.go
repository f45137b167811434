package rest

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"fursan/utils/errors"
	"fursan/utils/logger"
)

// handleError maps domain and store errors to HTTP responses. Sentinel
// errors carry their own status; AppErrors map through their code; anything
// else is a 500.
func handleError(c echo.Context, err error, operation string) error {
	ctx := c.Request().Context()

	status := http.StatusInternalServerError
	code := string(errors.ErrCodeUnknown)
	message := "internal server error"

	switch {
	case errors.IsNotFound(err):
		status = http.StatusNotFound
		code = string(errors.ErrCodeNotFound)
		message = err.Error()
	case errors.Is(err, errors.ErrAlreadyLiked), errors.Is(err, errors.ErrNotLiked):
		status = http.StatusBadRequest
		code = string(errors.ErrCodeConflict)
		message = err.Error()
	case errors.Is(err, errors.ErrCommentForbidden):
		status = http.StatusForbidden
		code = string(errors.ErrCodeForbidden)
		message = err.Error()
	default:
		var appErr *errors.AppError
		if errors.As(err, &appErr) {
			status = appErr.HTTPStatusCode()
			code = string(appErr.Code)
			message = appErr.Message
		}
	}

	if status >= 500 {
		logger.SafeErrorContext(ctx, "request failed", "operation", operation, "error", err)
	} else {
		logger.SafeWarnContext(ctx, "request rejected", "operation", operation, "status", status, "error", err)
	}

	return c.JSON(status, ErrorResponse{Error: message, Code: code})
}
