package fursan_db

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"fursan/domain"
	"fursan/utils/logger"
)

// escapeLikePattern neutralizes LIKE metacharacters in user input so the
// filter matches them literally. Without it an author of "%" matches every
// row.
func escapeLikePattern(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `%`, `\%`)
	return strings.ReplaceAll(s, `_`, `\_`)
}

// SearchArticles executes the compiled article predicate. The pattern is a
// hamza-normalized regex fragment evaluated case-insensitively by the
// store; remaining filters narrow the match. Results are capped at
// domain.ArticleResultCap.
func (r *Repository) SearchArticles(ctx context.Context, q domain.SearchQuery) ([]domain.Article, error) {
	if r == nil || r.pool == nil {
		return nil, errors.New("database connection not available")
	}

	conds := []string{}
	args := []interface{}{}
	arg := 1

	if q.Pattern != "" {
		conds = append(conds, fmt.Sprintf("(title ~* $%d OR content ~* $%d OR author ~* $%d)", arg, arg, arg))
		args = append(args, q.Pattern)
		arg++
	}
	if q.SectionID != "" {
		conds = append(conds, fmt.Sprintf("section_id = $%d", arg))
		args = append(args, q.SectionID)
		arg++
	}
	if q.Author != "" {
		conds = append(conds, fmt.Sprintf("author ILIKE '%%' || $%d || '%%' ESCAPE '\\'", arg))
		args = append(args, escapeLikePattern(q.Author))
		arg++
	}
	if len(q.Tags) > 0 {
		// AND semantics: the article's tag set must contain every listed tag.
		conds = append(conds, fmt.Sprintf("tags @> $%d", arg))
		args = append(args, q.Tags)
		arg++
	}
	if q.From != nil {
		conds = append(conds, fmt.Sprintf("created_at >= $%d", arg))
		args = append(args, *q.From)
		arg++
	}
	if q.To != nil {
		conds = append(conds, fmt.Sprintf("created_at < $%d", arg))
		args = append(args, *q.To)
		arg++
	}

	where := ""
	if len(conds) > 0 {
		where = "WHERE " + strings.Join(conds, " AND ")
	}

	// Relevance is the store's insertion order; there is no scoring.
	order := "ORDER BY created_at"
	switch q.Sort {
	case domain.SortDateDesc:
		order = "ORDER BY created_at DESC"
	case domain.SortDateAsc:
		order = "ORDER BY created_at ASC"
	}

	query := fmt.Sprintf(
		`SELECT %s FROM articles %s %s LIMIT %d`,
		articleColumns, where, order, domain.ArticleResultCap,
	)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		logger.Logger.ErrorContext(ctx, "error searching articles", "error", err, "term", q.Term)
		return nil, errors.New("error searching articles")
	}
	defer rows.Close()

	articles, err := scanArticles(rows)
	if err != nil {
		logger.Logger.ErrorContext(ctx, "error scanning search results", "error", err)
		return nil, errors.New("error scanning search results")
	}

	logger.Logger.InfoContext(ctx, "article search executed", "term", q.Term, "count", len(articles))
	return articles, nil
}

// SearchSections matches section names and descriptions against the
// normalized pattern, capped at domain.SectionResultCap.
func (r *Repository) SearchSections(ctx context.Context, pattern string) ([]domain.Section, error) {
	if r == nil || r.pool == nil {
		return nil, errors.New("database connection not available")
	}

	query := fmt.Sprintf(`
		SELECT id, name, description, created_at
		FROM sections
		WHERE name ~* $1 OR COALESCE(description, '') ~* $1
		ORDER BY created_at
		LIMIT %d
	`, domain.SectionResultCap)

	rows, err := r.pool.Query(ctx, query, pattern)
	if err != nil {
		logger.Logger.ErrorContext(ctx, "error searching sections", "error", err)
		return nil, errors.New("error searching sections")
	}
	defer rows.Close()

	sections := []domain.Section{}
	for rows.Next() {
		var section domain.Section
		if err := rows.Scan(&section.ID, &section.Name, &section.Description, &section.CreatedAt); err != nil {
			logger.Logger.ErrorContext(ctx, "error scanning section match", "error", err)
			return nil, errors.New("error scanning section matches")
		}
		sections = append(sections, section)
	}

	if err := rows.Err(); err != nil {
		logger.Logger.ErrorContext(ctx, "row iteration error", "error", err)
		return nil, errors.New("error iterating section matches")
	}

	return sections, nil
}
