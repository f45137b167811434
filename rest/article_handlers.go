package rest

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"fursan/di"
	"fursan/domain"
	"fursan/middleware"
)

func registerArticleRoutes(g *echo.Group, container *di.ApplicationComponents, auth *middleware.AuthMiddleware) {
	g.GET("/articles", func(c echo.Context) error {
		articles, err := container.ArticleUsecase.List(c.Request().Context())
		if err != nil {
			return handleError(c, err, "list_articles")
		}
		return c.JSON(http.StatusOK, map[string]interface{}{"articles": articles})
	}, auth.OptionalAuth())

	g.GET("/articles/section/:section_id", func(c echo.Context) error {
		articles, err := container.ArticleUsecase.ListBySection(c.Request().Context(), c.Param("section_id"))
		if err != nil {
			return handleError(c, err, "list_section_articles")
		}
		return c.JSON(http.StatusOK, map[string]interface{}{"articles": articles})
	}, auth.OptionalAuth())

	g.GET("/articles/:article_id", func(c echo.Context) error {
		article, err := container.ArticleUsecase.Get(c.Request().Context(), c.Param("article_id"))
		if err != nil {
			return handleError(c, err, "get_article")
		}
		return c.JSON(http.StatusOK, article)
	}, auth.OptionalAuth())

	g.POST("/articles", func(c echo.Context) error {
		var req CreateArticleRequest
		if err := c.Bind(&req); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
		}
		if err := c.Validate(&req); err != nil {
			return err
		}

		article, err := container.ArticleUsecase.Create(c.Request().Context(), domain.ArticleDraft{
			Title:     req.Title,
			Content:   req.Content,
			Author:    req.Author,
			SectionID: req.SectionID,
			ImageData: req.ImageData,
			ImageName: req.ImageName,
			Tags:      req.Tags,
		})
		if err != nil {
			return handleError(c, err, "create_article")
		}
		return c.JSON(http.StatusCreated, article)
	}, auth.RequireAuth())

	g.PUT("/articles/:article_id", func(c echo.Context) error {
		var req UpdateArticleRequest
		if err := c.Bind(&req); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
		}
		if err := c.Validate(&req); err != nil {
			return err
		}

		article, err := container.ArticleUsecase.Update(c.Request().Context(), c.Param("article_id"), domain.ArticlePatch{
			Title:     req.Title,
			Content:   req.Content,
			Author:    req.Author,
			SectionID: req.SectionID,
			ImageData: req.ImageData,
			ImageName: req.ImageName,
			Tags:      req.Tags,
		})
		if err != nil {
			return handleError(c, err, "update_article")
		}
		return c.JSON(http.StatusOK, article)
	}, auth.RequireAuth())

	g.DELETE("/articles/:article_id", func(c echo.Context) error {
		if err := container.ArticleUsecase.Delete(c.Request().Context(), c.Param("article_id")); err != nil {
			return handleError(c, err, "delete_article")
		}
		return c.JSON(http.StatusOK, MessageResponse{Message: "article deleted"})
	}, auth.RequireAuth())
}
