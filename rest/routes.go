package rest

import (
	"net/http"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"fursan/config"
	"fursan/di"
	custommiddleware "fursan/middleware"
	"fursan/utils/logger"
)

// RegisterRoutes sets up the middleware chain and all route groups.
func RegisterRoutes(e *echo.Echo, container *di.ApplicationComponents, cfg *config.Config) {
	e.Validator = NewPayloadValidator()

	e.Use(custommiddleware.RequestIDMiddleware())
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{echo.GET, echo.POST, echo.PUT, echo.DELETE, echo.OPTIONS},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
	}))

	rateLimiter := custommiddleware.NewRateLimitMiddleware(cfg)
	e.Use(rateLimiter.Limit())

	registry := prometheus.NewRegistry()
	metrics := custommiddleware.NewMetricsMiddleware(registry)
	e.Use(metrics.Collect())

	e.Use(custommiddleware.LoggingMiddleware(logger.Logger))

	auth := custommiddleware.NewAuthMiddleware(logger.Logger, cfg)

	e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))

	v1 := e.Group("/v1")
	v1.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "healthy"})
	})

	// Search and suggestions are public but honor an optional token for
	// per-user like flags.
	search := v1.Group("", auth.OptionalAuth())
	registerSearchRoutes(search, container)
	registerTagRoutes(search, container)

	registerSectionRoutes(v1, container, auth)
	registerArticleRoutes(v1, container, auth)
	registerLikeRoutes(v1, container, auth)
	registerCommentRoutes(v1, container, auth)
	registerSettingsRoutes(v1, container, auth)
}
