package suggestion_gateway

import (
	"context"
	"fursan/domain"
	"fursan/driver/fursan_db"
)

// SuggestionGateway adapts the content store to the suggestion port.
type SuggestionGateway struct {
	fursanDB *fursan_db.Repository
}

// NewSuggestionGateway creates a new gateway instance.
func NewSuggestionGateway(fursanDB *fursan_db.Repository) *SuggestionGateway {
	return &SuggestionGateway{
		fursanDB: fursanDB,
	}
}

// FetchSuggestionArticles returns title/author pairs whose title or author
// matches the normalized pattern.
func (g *SuggestionGateway) FetchSuggestionArticles(ctx context.Context, pattern string) ([]domain.SuggestionCandidate, error) {
	rows, err := g.fursanDB.FetchSuggestionArticles(ctx, pattern)
	if err != nil {
		return nil, err
	}
	candidates := make([]domain.SuggestionCandidate, 0, len(rows))
	for _, row := range rows {
		candidates = append(candidates, domain.SuggestionCandidate{
			Title:  row.Title,
			Author: row.Author,
		})
	}
	return candidates, nil
}

// FetchSuggestionSectionNames returns section names matching the pattern.
func (g *SuggestionGateway) FetchSuggestionSectionNames(ctx context.Context, pattern string) ([]string, error) {
	return g.fursanDB.FetchSuggestionSectionNames(ctx, pattern)
}
