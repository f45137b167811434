package search_port

import (
	"context"
	"fursan/domain"
)

// SearchArticlesPort executes compiled search queries against the article store.
type SearchArticlesPort interface {
	SearchArticles(ctx context.Context, query domain.SearchQuery) ([]domain.Article, error)
}

// SearchSectionsPort matches sections by normalized term pattern.
type SearchSectionsPort interface {
	SearchSections(ctx context.Context, pattern string) ([]domain.Section, error)
}
