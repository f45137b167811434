package rest

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"fursan/di"
	"fursan/middleware"
)

func registerLikeRoutes(g *echo.Group, container *di.ApplicationComponents, auth *middleware.AuthMiddleware) {
	g.POST("/articles/:article_id/like", func(c echo.Context) error {
		if err := container.LikeUsecase.Like(c.Request().Context(), c.Param("article_id")); err != nil {
			return handleError(c, err, "like_article")
		}
		return c.JSON(http.StatusOK, MessageResponse{Message: "article liked"})
	}, auth.RequireAuth())

	g.DELETE("/articles/:article_id/like", func(c echo.Context) error {
		if err := container.LikeUsecase.Unlike(c.Request().Context(), c.Param("article_id")); err != nil {
			return handleError(c, err, "unlike_article")
		}
		return c.JSON(http.StatusOK, MessageResponse{Message: "like removed"})
	}, auth.RequireAuth())
}
