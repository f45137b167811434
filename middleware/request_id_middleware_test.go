package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fursan/utils/logger"
)

func runWithRequestID(t *testing.T, inbound string) (string, string) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if inbound != "" {
		req.Header.Set(echo.HeaderXRequestID, inbound)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var fromContext string
	handler := RequestIDMiddleware()(func(c echo.Context) error {
		fromContext, _ = c.Request().Context().Value(logger.RequestIDKey).(string)
		return c.NoContent(http.StatusOK)
	})
	require.NoError(t, handler(c))

	return rec.Header().Get(echo.HeaderXRequestID), fromContext
}

func TestRequestIDMiddleware_GeneratesID(t *testing.T) {
	echoed, fromContext := runWithRequestID(t, "")

	_, err := uuid.Parse(echoed)
	assert.NoError(t, err)
	assert.Equal(t, echoed, fromContext)
}

func TestRequestIDMiddleware_HonorsValidInboundID(t *testing.T) {
	inbound := uuid.NewString()
	echoed, fromContext := runWithRequestID(t, inbound)

	assert.Equal(t, inbound, echoed)
	assert.Equal(t, inbound, fromContext)
}

func TestRequestIDMiddleware_ReplacesNonUUID(t *testing.T) {
	echoed, fromContext := runWithRequestID(t, "not-a-uuid")

	assert.NotEqual(t, "not-a-uuid", echoed)
	_, err := uuid.Parse(echoed)
	assert.NoError(t, err)
	assert.Equal(t, echoed, fromContext)
}
