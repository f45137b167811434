package domain

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validUser() *UserContext {
	return &UserContext{
		UserID:    "user-1",
		FullName:  "محمد أحمد",
		SessionID: "sess-1",
		ExpiresAt: time.Now().Add(time.Hour),
	}
}

func TestGetUserFromContext_Success(t *testing.T) {
	ctx := SetUserContext(context.Background(), validUser())

	user, err := GetUserFromContext(ctx)
	require.NoError(t, err)
	assert.Equal(t, "user-1", user.UserID)
}

func TestGetUserFromContext_Missing(t *testing.T) {
	_, err := GetUserFromContext(context.Background())
	assert.Error(t, err)
}

func TestGetUserFromContext_Expired(t *testing.T) {
	expired := validUser()
	expired.ExpiresAt = time.Now().Add(-time.Minute)
	ctx := SetUserContext(context.Background(), expired)

	_, err := GetUserFromContext(ctx)
	assert.Error(t, err)
}

func TestOptionalUserFromContext(t *testing.T) {
	assert.Nil(t, OptionalUserFromContext(context.Background()))

	ctx := SetUserContext(context.Background(), validUser())
	user := OptionalUserFromContext(ctx)
	require.NotNil(t, user)
	assert.Equal(t, "user-1", user.UserID)
}
