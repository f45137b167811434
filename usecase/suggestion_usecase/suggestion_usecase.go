package suggestion_usecase

import (
	"context"
	"strings"
	"time"

	"fursan/domain"
	"fursan/port/suggestion_port"
	"fursan/utils/arabic"
	"fursan/utils/errors"
	"fursan/utils/logger"
)

// SuggestionUsecase produces search-as-you-type suggestions from article
// titles, author names, and section names.
type SuggestionUsecase struct {
	suggestionPort suggestion_port.SuggestionPort
	queryTimeout   time.Duration
}

// NewSuggestionUsecase creates a new usecase instance.
func NewSuggestionUsecase(suggestionPort suggestion_port.SuggestionPort, queryTimeout time.Duration) *SuggestionUsecase {
	return &SuggestionUsecase{
		suggestionPort: suggestionPort,
		queryTimeout:   queryTimeout,
	}
}

// Execute returns up to domain.SuggestionCap suggestions for the given
// partial term. Terms shorter than two characters yield an empty list.
// Matching titles rank before matching authors, which rank before matching
// section names; duplicates are dropped case-insensitively, keeping the
// first-seen casing.
func (u *SuggestionUsecase) Execute(ctx context.Context, term string) (domain.SuggestionResults, error) {
	term = strings.TrimSpace(term)
	if len([]rune(term)) < domain.SuggestionMinPrefixLen {
		return domain.SuggestionResults{Suggestions: []string{}}, nil
	}

	ctx, cancel := context.WithTimeout(ctx, u.queryTimeout)
	defer cancel()

	pattern := arabic.NormalizePattern(term)

	candidates, err := u.suggestionPort.FetchSuggestionArticles(ctx, pattern)
	if err != nil {
		logger.SafeErrorContext(ctx, "failed to fetch article suggestions", "error", err, "term", term)
		return domain.SuggestionResults{}, errors.DatabaseError("failed to fetch suggestions", err, map[string]interface{}{
			"term": term,
		})
	}

	sectionNames, err := u.suggestionPort.FetchSuggestionSectionNames(ctx, pattern)
	if err != nil {
		logger.SafeErrorContext(ctx, "failed to fetch section suggestions", "error", err, "term", term)
		return domain.SuggestionResults{}, errors.DatabaseError("failed to fetch suggestions", err, map[string]interface{}{
			"term": term,
		})
	}

	suggestions := make([]string, 0, domain.SuggestionCap)
	seen := make(map[string]bool)

	add := func(s string) {
		if len(suggestions) >= domain.SuggestionCap {
			return
		}
		key := strings.ToLower(s)
		if s == "" || seen[key] {
			return
		}
		seen[key] = true
		suggestions = append(suggestions, s)
	}

	// Titles rank first, then authors, then section names.
	for _, c := range candidates {
		if arabic.Matches(term, c.Title) {
			add(c.Title)
		}
	}
	for _, c := range candidates {
		if arabic.Matches(term, c.Author) {
			add(c.Author)
		}
	}
	for _, name := range sectionNames {
		add(name)
	}

	logger.SafeInfoContext(ctx, "suggestions assembled", "term", term, "count", len(suggestions))

	return domain.SuggestionResults{Suggestions: suggestions}, nil
}
