package fursan_db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"fursan/domain"
	apperrors "fursan/utils/errors"
	"fursan/utils/logger"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// CreateComment inserts a comment on an article.
func (r *Repository) CreateComment(ctx context.Context, userID, articleID, content string) (*domain.Comment, error) {
	if r == nil || r.pool == nil {
		return nil, errors.New("database connection not available")
	}

	now := time.Now().UTC()
	comment := domain.Comment{
		ID:        uuid.New().String(),
		UserID:    userID,
		ArticleID: articleID,
		Content:   content,
		CreatedAt: now,
		UpdatedAt: now,
	}

	query := `
		INSERT INTO comments (id, user_id, article_id, content, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.pool.Exec(ctx, query,
		comment.ID, comment.UserID, comment.ArticleID, comment.Content,
		comment.CreatedAt, comment.UpdatedAt,
	)
	if err != nil {
		logger.Logger.ErrorContext(ctx, "error creating comment", "error", err, "articleID", articleID)
		return nil, errors.New("error creating comment")
	}

	return &comment, nil
}

// FetchCommentsByArticle returns an article's comments oldest first, joined
// with each commenter's display data.
func (r *Repository) FetchCommentsByArticle(ctx context.Context, articleID string) ([]domain.CommentWithUser, error) {
	if r == nil || r.pool == nil {
		return nil, errors.New("database connection not available")
	}

	query := `
		SELECT c.id, c.user_id, c.article_id, c.content, c.created_at, c.updated_at,
		       u.full_name, u.profile_picture
		FROM comments c
		INNER JOIN users u ON c.user_id = u.id
		WHERE c.article_id = $1
		ORDER BY c.created_at
	`

	rows, err := r.pool.Query(ctx, query, articleID)
	if err != nil {
		logger.Logger.ErrorContext(ctx, "error fetching comments", "error", err, "articleID", articleID)
		return nil, errors.New("error fetching comments")
	}
	defer rows.Close()

	comments := []domain.CommentWithUser{}
	for rows.Next() {
		var comment domain.CommentWithUser
		err := rows.Scan(
			&comment.ID, &comment.UserID, &comment.ArticleID, &comment.Content,
			&comment.CreatedAt, &comment.UpdatedAt,
			&comment.UserFullName, &comment.UserProfilePicture,
		)
		if err != nil {
			logger.Logger.ErrorContext(ctx, "error scanning comment", "error", err)
			return nil, errors.New("error scanning comments")
		}
		comments = append(comments, comment)
	}

	if err := rows.Err(); err != nil {
		logger.Logger.ErrorContext(ctx, "row iteration error", "error", err)
		return nil, errors.New("error iterating comments")
	}

	return comments, nil
}

// FetchCommentByID returns a single comment or ErrCommentNotFound.
func (r *Repository) FetchCommentByID(ctx context.Context, commentID string) (*domain.Comment, error) {
	if r == nil || r.pool == nil {
		return nil, errors.New("database connection not available")
	}

	query := `
		SELECT id, user_id, article_id, content, created_at, updated_at
		FROM comments
		WHERE id = $1
	`

	var comment domain.Comment
	err := r.pool.QueryRow(ctx, query, commentID).Scan(
		&comment.ID, &comment.UserID, &comment.ArticleID, &comment.Content,
		&comment.CreatedAt, &comment.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("comment %s: %w", commentID, apperrors.ErrCommentNotFound)
		}
		logger.Logger.ErrorContext(ctx, "error fetching comment", "error", err, "commentID", commentID)
		return nil, errors.New("error fetching comment")
	}

	return &comment, nil
}

// UpdateComment replaces a comment's content and bumps updated_at.
func (r *Repository) UpdateComment(ctx context.Context, commentID, content string) (*domain.Comment, error) {
	if r == nil || r.pool == nil {
		return nil, errors.New("database connection not available")
	}

	query := `
		UPDATE comments SET content = $1, updated_at = $2
		WHERE id = $3
		RETURNING id, user_id, article_id, content, created_at, updated_at
	`

	var comment domain.Comment
	err := r.pool.QueryRow(ctx, query, content, time.Now().UTC(), commentID).Scan(
		&comment.ID, &comment.UserID, &comment.ArticleID, &comment.Content,
		&comment.CreatedAt, &comment.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("comment %s: %w", commentID, apperrors.ErrCommentNotFound)
		}
		logger.Logger.ErrorContext(ctx, "error updating comment", "error", err, "commentID", commentID)
		return nil, errors.New("error updating comment")
	}

	return &comment, nil
}

// DeleteComment removes a comment.
func (r *Repository) DeleteComment(ctx context.Context, commentID string) error {
	if r == nil || r.pool == nil {
		return errors.New("database connection not available")
	}

	tag, err := r.pool.Exec(ctx, `DELETE FROM comments WHERE id = $1`, commentID)
	if err != nil {
		logger.Logger.ErrorContext(ctx, "error deleting comment", "error", err, "commentID", commentID)
		return errors.New("error deleting comment")
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("comment %s: %w", commentID, apperrors.ErrCommentNotFound)
	}

	return nil
}

// FetchUserDisplay returns the display name and picture for a user from the
// collaborator-owned users table. Read-only.
func (r *Repository) FetchUserDisplay(ctx context.Context, userID string) (string, *string, error) {
	if r == nil || r.pool == nil {
		return "", nil, errors.New("database connection not available")
	}

	var fullName string
	var picture *string
	err := r.pool.QueryRow(ctx, `SELECT full_name, profile_picture FROM users WHERE id = $1`, userID).
		Scan(&fullName, &picture)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", nil, nil
		}
		logger.Logger.ErrorContext(ctx, "error fetching user display", "error", err, "userID", userID)
		return "", nil, errors.New("error fetching user display")
	}

	return fullName, picture, nil
}
