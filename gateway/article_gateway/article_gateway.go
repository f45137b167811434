package article_gateway

import (
	"context"
	"fursan/domain"
	"fursan/driver/fursan_db"
)

// ArticleGateway adapts the content store to the article port.
type ArticleGateway struct {
	fursanDB *fursan_db.Repository
}

// NewArticleGateway creates a new gateway instance.
func NewArticleGateway(fursanDB *fursan_db.Repository) *ArticleGateway {
	return &ArticleGateway{
		fursanDB: fursanDB,
	}
}

func (g *ArticleGateway) CreateArticle(ctx context.Context, draft domain.ArticleDraft) (*domain.Article, error) {
	return g.fursanDB.CreateArticle(ctx, draft)
}

func (g *ArticleGateway) FetchArticles(ctx context.Context) ([]domain.Article, error) {
	return g.fursanDB.FetchArticles(ctx)
}

func (g *ArticleGateway) FetchArticleByID(ctx context.Context, id string) (*domain.Article, error) {
	return g.fursanDB.FetchArticleByID(ctx, id)
}

func (g *ArticleGateway) FetchArticlesBySection(ctx context.Context, sectionID string) ([]domain.Article, error) {
	return g.fursanDB.FetchArticlesBySection(ctx, sectionID)
}

func (g *ArticleGateway) UpdateArticle(ctx context.Context, id string, patch domain.ArticlePatch) (*domain.Article, error) {
	return g.fursanDB.UpdateArticle(ctx, id, patch)
}

func (g *ArticleGateway) DeleteArticle(ctx context.Context, id string) error {
	return g.fursanDB.DeleteArticle(ctx, id)
}
