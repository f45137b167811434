package middleware

import (
	"net/http"
	"sync"

	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"

	"fursan/config"
)

// RateLimitMiddleware applies a per-client token bucket keyed by real IP.
type RateLimitMiddleware struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	rps      rate.Limit
	burst    int
}

// NewRateLimitMiddleware creates a new rate limit middleware from config.
func NewRateLimitMiddleware(cfg *config.Config) *RateLimitMiddleware {
	return &RateLimitMiddleware{
		limiters: make(map[string]*rate.Limiter),
		rps:      rate.Limit(cfg.RateLimit.RequestsPerSecond),
		burst:    cfg.RateLimit.Burst,
	}
}

func (m *RateLimitMiddleware) limiterFor(key string) *rate.Limiter {
	m.mu.Lock()
	defer m.mu.Unlock()

	limiter, ok := m.limiters[key]
	if !ok {
		limiter = rate.NewLimiter(m.rps, m.burst)
		m.limiters[key] = limiter
	}
	return limiter
}

// Limit rejects requests that exceed the client's token bucket.
func (m *RateLimitMiddleware) Limit() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !m.limiterFor(c.RealIP()).Allow() {
				return echo.NewHTTPError(http.StatusTooManyRequests, "rate limit exceeded")
			}
			return next(c)
		}
	}
}
