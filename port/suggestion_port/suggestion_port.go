package suggestion_port

import (
	"context"
	"fursan/domain"
)

// SuggestionPort fetches candidate rows for search-as-you-type suggestions.
type SuggestionPort interface {
	FetchSuggestionArticles(ctx context.Context, pattern string) ([]domain.SuggestionCandidate, error)
	FetchSuggestionSectionNames(ctx context.Context, pattern string) ([]string, error)
}
