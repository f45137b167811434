package fursan_db

import (
	"context"
	"errors"
	"fmt"

	"fursan/domain"
	"fursan/utils/logger"
)

// TitleAuthorRow is one article's suggestion source fields.
type TitleAuthorRow struct {
	Title  string
	Author string
}

// FetchSuggestionArticles returns title/author pairs from articles whose
// title or author matches the pattern. The fetch is capped before any
// deduplication; a pattern matching many titles crowds out later
// suggestion categories by design of the contract.
func (r *Repository) FetchSuggestionArticles(ctx context.Context, pattern string) ([]TitleAuthorRow, error) {
	if r == nil || r.pool == nil {
		return nil, errors.New("database connection not available")
	}

	query := fmt.Sprintf(`
		SELECT title, author
		FROM articles
		WHERE title ~* $1 OR author ~* $1
		ORDER BY created_at
		LIMIT %d
	`, domain.SuggestionArticleFetchCap)

	rows, err := r.pool.Query(ctx, query, pattern)
	if err != nil {
		logger.Logger.ErrorContext(ctx, "error fetching suggestion articles", "error", err)
		return nil, errors.New("error fetching suggestion articles")
	}
	defer rows.Close()

	results := []TitleAuthorRow{}
	for rows.Next() {
		var row TitleAuthorRow
		if err := rows.Scan(&row.Title, &row.Author); err != nil {
			logger.Logger.ErrorContext(ctx, "error scanning suggestion article", "error", err)
			return nil, errors.New("error scanning suggestion articles")
		}
		results = append(results, row)
	}

	if err := rows.Err(); err != nil {
		logger.Logger.ErrorContext(ctx, "row iteration error", "error", err)
		return nil, errors.New("error iterating suggestion articles")
	}

	return results, nil
}

// FetchSuggestionSectionNames returns names of sections matching the
// pattern, capped at domain.SuggestionSectionFetchCap.
func (r *Repository) FetchSuggestionSectionNames(ctx context.Context, pattern string) ([]string, error) {
	if r == nil || r.pool == nil {
		return nil, errors.New("database connection not available")
	}

	query := fmt.Sprintf(`
		SELECT name
		FROM sections
		WHERE name ~* $1
		ORDER BY created_at
		LIMIT %d
	`, domain.SuggestionSectionFetchCap)

	rows, err := r.pool.Query(ctx, query, pattern)
	if err != nil {
		logger.Logger.ErrorContext(ctx, "error fetching suggestion sections", "error", err)
		return nil, errors.New("error fetching suggestion sections")
	}
	defer rows.Close()

	names := []string{}
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			logger.Logger.ErrorContext(ctx, "error scanning suggestion section", "error", err)
			return nil, errors.New("error scanning suggestion sections")
		}
		names = append(names, name)
	}

	if err := rows.Err(); err != nil {
		logger.Logger.ErrorContext(ctx, "row iteration error", "error", err)
		return nil, errors.New("error iterating suggestion sections")
	}

	return names, nil
}
