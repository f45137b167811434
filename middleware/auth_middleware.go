package middleware

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"fursan/config"
	"fursan/domain"
	"fursan/utils/logger"
)

var (
	errMissingToken  = errors.New("missing bearer token")
	errInvalidToken  = errors.New("invalid bearer token")
	errInvalidClaims = errors.New("invalid claims")
	errInvalidIssuer = errors.New("invalid issuer")
)

// UserClaims are the JWT claims issued by the auth collaborator. This
// service only verifies tokens; it never issues them.
type UserClaims struct {
	FullName  string `json:"full_name"`
	SessionID string `json:"sid"`
	jwt.RegisteredClaims
}

// AuthMiddleware validates bearer tokens and attaches the resulting user
// context to the request.
type AuthMiddleware struct {
	logger *slog.Logger
	secret []byte
	issuer string
}

// NewAuthMiddleware creates a new authentication middleware.
func NewAuthMiddleware(baseLogger *slog.Logger, cfg *config.Config) *AuthMiddleware {
	secret := []byte(cfg.Auth.TokenSecret)
	if len(secret) == 0 && baseLogger != nil {
		baseLogger.Warn("AUTH_TOKEN_SECRET not set, authenticated endpoints will deny all requests")
	}

	return &AuthMiddleware{
		logger: baseLogger,
		secret: secret,
		issuer: cfg.Auth.TokenIssuer,
	}
}

// RequireAuth rejects requests without a valid bearer token.
func (m *AuthMiddleware) RequireAuth() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user, err := m.validateRequest(c)
			if err != nil {
				switch {
				case errors.Is(err, errMissingToken):
					return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
				default:
					return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
				}
			}

			m.attachUser(c, user)
			return next(c)
		}
	}
}

// OptionalAuth attaches the user context when a valid token is present and
// lets anonymous requests through untouched. Invalid tokens are treated as
// anonymous rather than rejected; public reads must not break when a stale
// token is sent.
func (m *AuthMiddleware) OptionalAuth() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user, err := m.validateRequest(c)
			if err == nil {
				m.attachUser(c, user)
			}
			return next(c)
		}
	}
}

func (m *AuthMiddleware) attachUser(c echo.Context, user *domain.UserContext) {
	ctx := domain.SetUserContext(c.Request().Context(), user)
	ctx = context.WithValue(ctx, logger.UserIDKey, user.UserID)
	c.SetRequest(c.Request().WithContext(ctx))
}

func (m *AuthMiddleware) validateRequest(c echo.Context) (*domain.UserContext, error) {
	header := c.Request().Header.Get(echo.HeaderAuthorization)
	if header == "" {
		return nil, errMissingToken
	}

	raw, ok := strings.CutPrefix(header, "Bearer ")
	if !ok || raw == "" {
		return nil, errMissingToken
	}

	claims := &UserClaims{}
	token, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, errInvalidToken
	}

	if claims.Subject == "" {
		return nil, errInvalidClaims
	}
	if m.issuer != "" && claims.Issuer != m.issuer {
		return nil, errInvalidIssuer
	}

	expiresAt := time.Now().Add(time.Hour)
	if claims.ExpiresAt != nil {
		expiresAt = claims.ExpiresAt.Time
	}

	return &domain.UserContext{
		UserID:    claims.Subject,
		FullName:  claims.FullName,
		SessionID: claims.SessionID,
		ExpiresAt: expiresAt,
	}, nil
}
