package fursan_db

import (
	"context"
	"errors"

	"fursan/domain"
	"fursan/utils/logger"
)

// FetchTagCounts derives the distinct tag vocabulary from the article
// collection with, for each tag, the number of articles carrying it. No
// ordering is guaranteed; callers sort if they need to.
func (r *Repository) FetchTagCounts(ctx context.Context) ([]domain.TagCount, error) {
	if r == nil || r.pool == nil {
		return nil, errors.New("database connection not available")
	}

	query := `
		SELECT t.tag, COUNT(DISTINCT a.id)
		FROM articles a
		CROSS JOIN LATERAL unnest(a.tags) AS t(tag)
		GROUP BY t.tag
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		logger.Logger.ErrorContext(ctx, "error fetching tag counts", "error", err)
		return nil, errors.New("error fetching tag counts")
	}
	defer rows.Close()

	tags := []domain.TagCount{}
	for rows.Next() {
		var tag domain.TagCount
		if err := rows.Scan(&tag.Name, &tag.Count); err != nil {
			logger.Logger.ErrorContext(ctx, "error scanning tag count", "error", err)
			return nil, errors.New("error scanning tag counts")
		}
		tags = append(tags, tag)
	}

	if err := rows.Err(); err != nil {
		logger.Logger.ErrorContext(ctx, "row iteration error", "error", err)
		return nil, errors.New("error iterating tag counts")
	}

	return tags, nil
}

// FetchArticlesByTag returns all articles whose tag set contains the given
// tag, exact string match, in insertion order.
func (r *Repository) FetchArticlesByTag(ctx context.Context, tag string) ([]domain.Article, error) {
	if r == nil || r.pool == nil {
		return nil, errors.New("database connection not available")
	}

	query := `SELECT ` + articleColumns + ` FROM articles WHERE $1 = ANY(tags) ORDER BY created_at`

	rows, err := r.pool.Query(ctx, query, tag)
	if err != nil {
		logger.Logger.ErrorContext(ctx, "error fetching articles by tag", "error", err, "tag", tag)
		return nil, errors.New("error fetching articles by tag")
	}
	defer rows.Close()

	articles, err := scanArticles(rows)
	if err != nil {
		logger.Logger.ErrorContext(ctx, "error scanning articles by tag", "error", err)
		return nil, errors.New("error scanning articles by tag")
	}

	logger.Logger.InfoContext(ctx, "fetched articles by tag", "tag", tag, "count", len(articles))
	return articles, nil
}
