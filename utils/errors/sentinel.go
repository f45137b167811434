package errors

import (
	"errors"
)

// Sentinel errors shared across layers. These are base errors that can be
// checked with errors.Is() and wrapped with additional context.
var (
	ErrArticleNotFound     = errors.New("article not found")
	ErrSectionNotFound     = errors.New("section not found")
	ErrCommentNotFound     = errors.New("comment not found")
	ErrSettingsNotFound    = errors.New("site settings not found")
	ErrAlreadyLiked        = errors.New("article already liked")
	ErrNotLiked            = errors.New("article not liked yet")
	ErrCommentForbidden    = errors.New("comment belongs to another user")
	ErrDatabaseUnavailable = errors.New("database unavailable")
	ErrOperationTimeout    = errors.New("operation timeout")
	ErrInvalidInput        = errors.New("invalid input")
)

// Is and As re-export the standard helpers so callers do not need a second
// errors import alongside this package.
func Is(err, target error) bool { return errors.Is(err, target) }

func As(err error, target interface{}) bool { return errors.As(err, target) }

func hasCode(err error, code ErrorCode) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Code == code
}

// IsNotFound checks if an error represents a missing entity.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrArticleNotFound) ||
		errors.Is(err, ErrSectionNotFound) ||
		errors.Is(err, ErrCommentNotFound) ||
		errors.Is(err, ErrSettingsNotFound) ||
		hasCode(err, ErrCodeNotFound)
}

// IsDatabaseError checks if an error represents a store-level problem.
func IsDatabaseError(err error) bool {
	return errors.Is(err, ErrDatabaseUnavailable) || hasCode(err, ErrCodeDatabase)
}

// IsTimeoutError checks if an error represents a timeout condition.
func IsTimeoutError(err error) bool {
	return errors.Is(err, ErrOperationTimeout) || hasCode(err, ErrCodeTimeout)
}

// IsValidationError checks if an error represents invalid input.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidInput) || hasCode(err, ErrCodeValidation)
}

// IsRetryableError determines if an error represents a condition the client
// may safely retry. Search is read-only and idempotent, so timeouts qualify.
func IsRetryableError(err error) bool {
	return IsTimeoutError(err)
}
