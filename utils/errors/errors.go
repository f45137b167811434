// Package errors provides structured error handling for the backend.
// It defines error types with codes, messages, causes, and contextual
// information so failures can be traced across the application layers.
package errors

import (
	"fmt"
	"log/slog"
	"net/http"
)

// ErrorCode represents a categorized error type for structured error handling.
type ErrorCode string

// Error code constants for categorizing application errors.
const (
	ErrCodeDatabase   ErrorCode = "DATABASE_ERROR"
	ErrCodeValidation ErrorCode = "VALIDATION_ERROR"
	ErrCodeNotFound   ErrorCode = "NOT_FOUND"
	ErrCodeConflict   ErrorCode = "CONFLICT"
	ErrCodeForbidden  ErrorCode = "FORBIDDEN"
	ErrCodeAuth       ErrorCode = "AUTH_ERROR"
	ErrCodeRateLimit  ErrorCode = "RATE_LIMIT_ERROR"
	ErrCodeTimeout    ErrorCode = "TIMEOUT_ERROR"
	ErrCodeUnknown    ErrorCode = "UNKNOWN_ERROR"
)

// AppError represents a structured application error with code, message,
// cause, and context. It implements the error interface and supports
// error unwrapping.
type AppError struct {
	Code    ErrorCode
	Message string
	Cause   error
	Context map[string]interface{}
}

// Error returns a string representation of the AppError.
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause error for use with errors.Is and errors.As.
func (e *AppError) Unwrap() error {
	return e.Cause
}

// HTTPStatusCode maps the error code to an HTTP status code.
func (e *AppError) HTTPStatusCode() int {
	switch e.Code {
	case ErrCodeValidation:
		return http.StatusBadRequest
	case ErrCodeNotFound:
		return http.StatusNotFound
	case ErrCodeConflict:
		return http.StatusBadRequest
	case ErrCodeForbidden:
		return http.StatusForbidden
	case ErrCodeAuth:
		return http.StatusUnauthorized
	case ErrCodeRateLimit:
		return http.StatusTooManyRequests
	case ErrCodeTimeout:
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}

// Log writes the error to the given slog logger with its context attached.
func (e *AppError) Log(logger *slog.Logger) {
	args := []any{"code", string(e.Code), "message", e.Message}
	if e.Cause != nil {
		args = append(args, "cause", e.Cause.Error())
	}
	for k, v := range e.Context {
		args = append(args, k, v)
	}
	logger.Error("application error", args...)
}

// DatabaseError creates an AppError for document store failures.
func DatabaseError(message string, cause error, context map[string]interface{}) *AppError {
	return &AppError{
		Code:    ErrCodeDatabase,
		Message: message,
		Cause:   cause,
		Context: context,
	}
}

// ValidationError creates an AppError for input validation failures.
func ValidationError(message string, context map[string]interface{}) *AppError {
	return &AppError{
		Code:    ErrCodeValidation,
		Message: message,
		Context: context,
	}
}

// NotFoundError creates an AppError for missing entities.
func NotFoundError(message string, cause error, context map[string]interface{}) *AppError {
	return &AppError{
		Code:    ErrCodeNotFound,
		Message: message,
		Cause:   cause,
		Context: context,
	}
}

// ConflictError creates an AppError for state conflicts such as duplicate likes.
func ConflictError(message string, cause error, context map[string]interface{}) *AppError {
	return &AppError{
		Code:    ErrCodeConflict,
		Message: message,
		Cause:   cause,
		Context: context,
	}
}

// ForbiddenError creates an AppError for ownership violations.
func ForbiddenError(message string, cause error, context map[string]interface{}) *AppError {
	return &AppError{
		Code:    ErrCodeForbidden,
		Message: message,
		Cause:   cause,
		Context: context,
	}
}

// AuthError creates an AppError for authentication failures.
func AuthError(message string, cause error, context map[string]interface{}) *AppError {
	return &AppError{
		Code:    ErrCodeAuth,
		Message: message,
		Cause:   cause,
		Context: context,
	}
}

// TimeoutError creates an AppError for store call timeouts.
func TimeoutError(message string, cause error, context map[string]interface{}) *AppError {
	return &AppError{
		Code:    ErrCodeTimeout,
		Message: message,
		Cause:   cause,
		Context: context,
	}
}

// UnknownError creates an AppError for unclassified failures.
func UnknownError(message string, cause error, context map[string]interface{}) *AppError {
	return &AppError{
		Code:    ErrCodeUnknown,
		Message: message,
		Cause:   cause,
		Context: context,
	}
}
