package article_port

import (
	"context"
	"fursan/domain"
)

// ArticlePort covers article persistence for the publishing surface.
type ArticlePort interface {
	CreateArticle(ctx context.Context, draft domain.ArticleDraft) (*domain.Article, error)
	FetchArticles(ctx context.Context) ([]domain.Article, error)
	FetchArticleByID(ctx context.Context, id string) (*domain.Article, error)
	FetchArticlesBySection(ctx context.Context, sectionID string) ([]domain.Article, error)
	UpdateArticle(ctx context.Context, id string, patch domain.ArticlePatch) (*domain.Article, error)
	DeleteArticle(ctx context.Context, id string) error
}
