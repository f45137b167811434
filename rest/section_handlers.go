package rest

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"fursan/di"
	"fursan/middleware"
)

func registerSectionRoutes(g *echo.Group, container *di.ApplicationComponents, auth *middleware.AuthMiddleware) {
	g.GET("/sections", func(c echo.Context) error {
		sections, err := container.SectionUsecase.List(c.Request().Context())
		if err != nil {
			return handleError(c, err, "list_sections")
		}
		return c.JSON(http.StatusOK, map[string]interface{}{"sections": sections})
	})

	g.POST("/sections", func(c echo.Context) error {
		var req CreateSectionRequest
		if err := c.Bind(&req); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
		}
		if err := c.Validate(&req); err != nil {
			return err
		}

		section, err := container.SectionUsecase.Create(c.Request().Context(), req.Name, req.Description)
		if err != nil {
			return handleError(c, err, "create_section")
		}
		return c.JSON(http.StatusCreated, section)
	}, auth.RequireAuth())

	g.DELETE("/sections/:section_id", func(c echo.Context) error {
		if err := container.SectionUsecase.Delete(c.Request().Context(), c.Param("section_id")); err != nil {
			return handleError(c, err, "delete_section")
		}
		return c.JSON(http.StatusOK, MessageResponse{Message: "section deleted"})
	}, auth.RequireAuth())
}
