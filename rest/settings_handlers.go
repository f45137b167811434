package rest

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"fursan/di"
	"fursan/domain"
	"fursan/middleware"
)

func registerSettingsRoutes(g *echo.Group, container *di.ApplicationComponents, auth *middleware.AuthMiddleware) {
	g.GET("/settings/logo", func(c echo.Context) error {
		settings, err := container.SettingsUsecase.Get(c.Request().Context())
		if err != nil {
			return handleError(c, err, "get_settings")
		}
		return c.JSON(http.StatusOK, settings)
	})

	g.PUT("/settings/logo", func(c echo.Context) error {
		var req UpdateLogoRequest
		if err := c.Bind(&req); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
		}
		if err := c.Validate(&req); err != nil {
			return err
		}

		settings, err := container.SettingsUsecase.UpdateLogo(c.Request().Context(), domain.LogoPatch{
			LogoData: req.LogoData,
			LogoName: req.LogoName,
		})
		if err != nil {
			return handleError(c, err, "update_logo")
		}
		return c.JSON(http.StatusOK, settings)
	}, auth.RequireAuth())
}
