package tag_gateway

import (
	"context"
	"fursan/domain"
	"fursan/driver/fursan_db"
)

// TagGateway adapts the content store to the tag ports.
type TagGateway struct {
	fursanDB *fursan_db.Repository
}

// NewTagGateway creates a new gateway instance.
func NewTagGateway(fursanDB *fursan_db.Repository) *TagGateway {
	return &TagGateway{
		fursanDB: fursanDB,
	}
}

// FetchTagCounts returns the tag vocabulary with per-tag article counts.
func (g *TagGateway) FetchTagCounts(ctx context.Context) ([]domain.TagCount, error) {
	return g.fursanDB.FetchTagCounts(ctx)
}

// FetchArticlesByTag returns every article carrying the given tag.
func (g *TagGateway) FetchArticlesByTag(ctx context.Context, tagName string) ([]domain.Article, error) {
	return g.fursanDB.FetchArticlesByTag(ctx, tagName)
}
