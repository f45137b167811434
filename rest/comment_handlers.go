package rest

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"fursan/di"
	"fursan/middleware"
)

func registerCommentRoutes(g *echo.Group, container *di.ApplicationComponents, auth *middleware.AuthMiddleware) {
	g.GET("/articles/:article_id/comments", func(c echo.Context) error {
		comments, err := container.CommentUsecase.ListByArticle(c.Request().Context(), c.Param("article_id"))
		if err != nil {
			return handleError(c, err, "list_comments")
		}
		return c.JSON(http.StatusOK, map[string]interface{}{"comments": comments})
	})

	g.POST("/articles/:article_id/comments", func(c echo.Context) error {
		var req CreateCommentRequest
		if err := c.Bind(&req); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
		}
		if err := c.Validate(&req); err != nil {
			return err
		}

		comment, err := container.CommentUsecase.Create(c.Request().Context(), c.Param("article_id"), req.Content)
		if err != nil {
			return handleError(c, err, "create_comment")
		}
		return c.JSON(http.StatusCreated, comment)
	}, auth.RequireAuth())

	g.PUT("/comments/:comment_id", func(c echo.Context) error {
		var req UpdateCommentRequest
		if err := c.Bind(&req); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
		}
		if err := c.Validate(&req); err != nil {
			return err
		}

		comment, err := container.CommentUsecase.Update(c.Request().Context(), c.Param("comment_id"), req.Content)
		if err != nil {
			return handleError(c, err, "update_comment")
		}
		return c.JSON(http.StatusOK, comment)
	}, auth.RequireAuth())

	g.DELETE("/comments/:comment_id", func(c echo.Context) error {
		if err := container.CommentUsecase.Delete(c.Request().Context(), c.Param("comment_id")); err != nil {
			return handleError(c, err, "delete_comment")
		}
		return c.JSON(http.StatusOK, MessageResponse{Message: "comment deleted"})
	}, auth.RequireAuth())
}
