package rest

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"fursan/di"
)

func registerTagRoutes(g *echo.Group, container *di.ApplicationComponents) {
	g.GET("/tags", func(c echo.Context) error {
		tags, err := container.ListTagsUsecase.Execute(c.Request().Context())
		if err != nil {
			return handleError(c, err, "list_tags")
		}
		return c.JSON(http.StatusOK, map[string]interface{}{"tags": tags})
	})

	g.GET("/tags/:tag_name/articles", func(c echo.Context) error {
		articles, err := container.FetchArticlesByTagUsecase.Execute(c.Request().Context(), c.Param("tag_name"))
		if err != nil {
			return handleError(c, err, "fetch_articles_by_tag")
		}
		return c.JSON(http.StatusOK, articles)
	})
}
