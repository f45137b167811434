package fursan_db

import (
	"context"
	"errors"
	"fmt"
	"time"

	apperrors "fursan/utils/errors"
	"fursan/utils/logger"
)

// LikeArticle records a like and increments the article's denormalized
// counter in the same transaction. At most one like per (user, article)
// pair; a second like fails with ErrAlreadyLiked.
func (r *Repository) LikeArticle(ctx context.Context, userID, articleID string) error {
	if r == nil || r.pool == nil {
		return errors.New("database connection not available")
	}

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		logger.Logger.ErrorContext(ctx, "error starting transaction", "error", err)
		return errors.New("error liking article")
	}
	defer func() { _ = tx.Rollback(ctx) }()

	insert := `
		INSERT INTO likes (user_id, article_id, created_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id, article_id) DO NOTHING
	`
	tag, err := tx.Exec(ctx, insert, userID, articleID, time.Now().UTC())
	if err != nil {
		logger.Logger.ErrorContext(ctx, "error inserting like", "error", err, "articleID", articleID)
		return errors.New("error liking article")
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("article %s: %w", articleID, apperrors.ErrAlreadyLiked)
	}

	// Counter update is atomic at the store level; concurrent likes cannot
	// lose an increment.
	if _, err := tx.Exec(ctx, `UPDATE articles SET likes_count = likes_count + 1 WHERE id = $1`, articleID); err != nil {
		logger.Logger.ErrorContext(ctx, "error incrementing likes_count", "error", err, "articleID", articleID)
		return errors.New("error liking article")
	}

	if err := tx.Commit(ctx); err != nil {
		logger.Logger.ErrorContext(ctx, "error committing like", "error", err, "articleID", articleID)
		return errors.New("error liking article")
	}

	return nil
}

// UnlikeArticle removes a like and decrements the counter. Unliking an
// article that was never liked fails with ErrNotLiked.
func (r *Repository) UnlikeArticle(ctx context.Context, userID, articleID string) error {
	if r == nil || r.pool == nil {
		return errors.New("database connection not available")
	}

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		logger.Logger.ErrorContext(ctx, "error starting transaction", "error", err)
		return errors.New("error unliking article")
	}
	defer func() { _ = tx.Rollback(ctx) }()

	tag, err := tx.Exec(ctx, `DELETE FROM likes WHERE user_id = $1 AND article_id = $2`, userID, articleID)
	if err != nil {
		logger.Logger.ErrorContext(ctx, "error deleting like", "error", err, "articleID", articleID)
		return errors.New("error unliking article")
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("article %s: %w", articleID, apperrors.ErrNotLiked)
	}

	if _, err := tx.Exec(ctx, `UPDATE articles SET likes_count = likes_count - 1 WHERE id = $1`, articleID); err != nil {
		logger.Logger.ErrorContext(ctx, "error decrementing likes_count", "error", err, "articleID", articleID)
		return errors.New("error unliking article")
	}

	if err := tx.Commit(ctx); err != nil {
		logger.Logger.ErrorContext(ctx, "error committing unlike", "error", err, "articleID", articleID)
		return errors.New("error unliking article")
	}

	return nil
}

// FetchLikedArticleIDs returns which of the given articles the user has
// liked. Used to resolve per-result like state in a single round trip.
func (r *Repository) FetchLikedArticleIDs(ctx context.Context, userID string, articleIDs []string) (map[string]bool, error) {
	if r == nil || r.pool == nil {
		return nil, errors.New("database connection not available")
	}

	liked := map[string]bool{}
	if len(articleIDs) == 0 {
		return liked, nil
	}

	query := `SELECT article_id FROM likes WHERE user_id = $1 AND article_id = ANY($2)`

	rows, err := r.pool.Query(ctx, query, userID, articleIDs)
	if err != nil {
		logger.Logger.ErrorContext(ctx, "error fetching like status", "error", err, "userID", userID)
		return nil, errors.New("error fetching like status")
	}
	defer rows.Close()

	for rows.Next() {
		var articleID string
		if err := rows.Scan(&articleID); err != nil {
			logger.Logger.ErrorContext(ctx, "error scanning like status", "error", err)
			return nil, errors.New("error scanning like status")
		}
		liked[articleID] = true
	}

	if err := rows.Err(); err != nil {
		logger.Logger.ErrorContext(ctx, "row iteration error", "error", err)
		return nil, errors.New("error iterating like status")
	}

	return liked, nil
}
