package rest

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"fursan/di"
	"fursan/domain"
)

// registerSearchRoutes wires the search and suggestion endpoints. Both are
// public; an optional bearer token enables per-user is_liked resolution.
func registerSearchRoutes(g *echo.Group, container *di.ApplicationComponents) {
	g.GET("/search", func(c echo.Context) error {
		query := domain.NewSearchQuery(
			c.QueryParam("q"),
			c.QueryParam("section_id"),
			c.QueryParam("author"),
			c.QueryParam("tags"),
			c.QueryParam("from_date"),
			c.QueryParam("to_date"),
			c.QueryParam("sort_by"),
		)

		results, err := container.SearchContentUsecase.Execute(c.Request().Context(), query)
		if err != nil {
			return handleError(c, err, "search")
		}
		return c.JSON(http.StatusOK, results)
	})

	g.GET("/search/suggestions", func(c echo.Context) error {
		results, err := container.SuggestionUsecase.Execute(c.Request().Context(), c.QueryParam("q"))
		if err != nil {
			return handleError(c, err, "search_suggestions")
		}
		return c.JSON(http.StatusOK, results)
	})
}
