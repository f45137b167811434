package domain

import (
	"context"
	"fmt"
	"time"
)

// UserContext represents the authenticated user for a request. Identity is
// established by the auth collaborator; this service only verifies and
// threads it through explicitly.
type UserContext struct {
	UserID    string    `json:"user_id"`
	FullName  string    `json:"full_name"`
	SessionID string    `json:"session_id"`
	ExpiresAt time.Time `json:"expires_at"`
}

// IsValid checks that the context carries an identity and has not expired.
func (uc *UserContext) IsValid() bool {
	return uc.UserID != "" && uc.ExpiresAt.After(time.Now())
}

type contextKey string

const UserContextKey contextKey = "user_context"

// GetUserFromContext returns the authenticated user or an error when the
// request is anonymous.
func GetUserFromContext(ctx context.Context) (*UserContext, error) {
	user, ok := ctx.Value(UserContextKey).(*UserContext)
	if !ok || user == nil {
		return nil, fmt.Errorf("user context not found")
	}

	if !user.IsValid() {
		return nil, fmt.Errorf("invalid user context")
	}

	return user, nil
}

// OptionalUserFromContext returns the authenticated user when present and
// valid, or nil for anonymous requests. Public read paths use this to
// resolve per-user state without requiring authentication.
func OptionalUserFromContext(ctx context.Context) *UserContext {
	user, err := GetUserFromContext(ctx)
	if err != nil {
		return nil
	}
	return user
}

// SetUserContext attaches the authenticated user to the request context.
func SetUserContext(ctx context.Context, user *UserContext) context.Context {
	return context.WithValue(ctx, UserContextKey, user)
}
