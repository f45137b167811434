package search_gateway

import (
	"context"
	"fursan/domain"
	"fursan/driver/fursan_db"
)

// SearchGateway adapts the content store to the search ports.
type SearchGateway struct {
	fursanDB *fursan_db.Repository
}

// NewSearchGateway creates a new gateway instance.
func NewSearchGateway(fursanDB *fursan_db.Repository) *SearchGateway {
	return &SearchGateway{
		fursanDB: fursanDB,
	}
}

// SearchArticles runs the compiled article query against the store.
func (g *SearchGateway) SearchArticles(ctx context.Context, query domain.SearchQuery) ([]domain.Article, error) {
	return g.fursanDB.SearchArticles(ctx, query)
}

// SearchSections matches sections by normalized term pattern.
func (g *SearchGateway) SearchSections(ctx context.Context, pattern string) ([]domain.Section, error) {
	return g.fursanDB.SearchSections(ctx, pattern)
}
