package comment_usecase

import (
	"context"
	"strings"
	"time"

	"fursan/domain"
	"fursan/port/article_port"
	"fursan/port/comment_port"
	"fursan/utils/errors"
	"fursan/utils/logger"
)

// CommentUsecase covers comment creation, listing, editing, and deletion.
// Edits and deletions are restricted to the comment's owner.
type CommentUsecase struct {
	commentPort  comment_port.CommentPort
	articlePort  article_port.ArticlePort
	queryTimeout time.Duration
}

// NewCommentUsecase creates a new usecase instance.
func NewCommentUsecase(
	commentPort comment_port.CommentPort,
	articlePort article_port.ArticlePort,
	queryTimeout time.Duration,
) *CommentUsecase {
	return &CommentUsecase{
		commentPort:  commentPort,
		articlePort:  articlePort,
		queryTimeout: queryTimeout,
	}
}

// Create adds a comment by the authenticated user on an existing article.
func (u *CommentUsecase) Create(ctx context.Context, articleID string, content string) (*domain.Comment, error) {
	user, err := domain.GetUserFromContext(ctx)
	if err != nil {
		return nil, errors.AuthError("authentication required", err, nil)
	}

	content = strings.TrimSpace(content)
	if content == "" {
		return nil, errors.ValidationError("comment content must not be empty", nil)
	}

	ctx, cancel := context.WithTimeout(ctx, u.queryTimeout)
	defer cancel()

	if _, err := u.articlePort.FetchArticleByID(ctx, articleID); err != nil {
		return nil, err
	}

	comment, err := u.commentPort.CreateComment(ctx, user.UserID, articleID, content)
	if err != nil {
		logger.SafeErrorContext(ctx, "failed to create comment", "error", err, "article_id", articleID)
		return nil, errors.DatabaseError("failed to create comment", err, map[string]interface{}{
			"article_id": articleID,
		})
	}

	logger.SafeInfoContext(ctx, "comment created", "comment_id", comment.ID, "article_id", articleID)
	return comment, nil
}

// ListByArticle returns the comments on an article, oldest first, joined
// with each commenter's display data.
func (u *CommentUsecase) ListByArticle(ctx context.Context, articleID string) ([]domain.CommentWithUser, error) {
	if strings.TrimSpace(articleID) == "" {
		return nil, errors.ValidationError("article id must not be empty", nil)
	}

	ctx, cancel := context.WithTimeout(ctx, u.queryTimeout)
	defer cancel()

	comments, err := u.commentPort.FetchCommentsByArticle(ctx, articleID)
	if err != nil {
		logger.SafeErrorContext(ctx, "failed to fetch comments", "error", err, "article_id", articleID)
		return nil, errors.DatabaseError("failed to fetch comments", err, map[string]interface{}{
			"article_id": articleID,
		})
	}

	if comments == nil {
		comments = []domain.CommentWithUser{}
	}
	return comments, nil
}

// Update edits a comment's content. Only the owner may edit; anyone else
// gets ErrCommentForbidden.
func (u *CommentUsecase) Update(ctx context.Context, commentID string, content string) (*domain.Comment, error) {
	user, err := domain.GetUserFromContext(ctx)
	if err != nil {
		return nil, errors.AuthError("authentication required", err, nil)
	}

	content = strings.TrimSpace(content)
	if content == "" {
		return nil, errors.ValidationError("comment content must not be empty", nil)
	}

	ctx, cancel := context.WithTimeout(ctx, u.queryTimeout)
	defer cancel()

	existing, err := u.commentPort.FetchCommentByID(ctx, commentID)
	if err != nil {
		return nil, err
	}
	if !existing.OwnedBy(user.UserID) {
		return nil, errors.ErrCommentForbidden
	}

	comment, err := u.commentPort.UpdateComment(ctx, commentID, content)
	if err != nil {
		logger.SafeErrorContext(ctx, "failed to update comment", "error", err, "comment_id", commentID)
		return nil, errors.DatabaseError("failed to update comment", err, map[string]interface{}{
			"comment_id": commentID,
		})
	}

	logger.SafeInfoContext(ctx, "comment updated", "comment_id", commentID)
	return comment, nil
}

// Delete removes a comment. Only the owner may delete; anyone else gets
// ErrCommentForbidden.
func (u *CommentUsecase) Delete(ctx context.Context, commentID string) error {
	user, err := domain.GetUserFromContext(ctx)
	if err != nil {
		return errors.AuthError("authentication required", err, nil)
	}

	ctx, cancel := context.WithTimeout(ctx, u.queryTimeout)
	defer cancel()

	existing, err := u.commentPort.FetchCommentByID(ctx, commentID)
	if err != nil {
		return err
	}
	if !existing.OwnedBy(user.UserID) {
		return errors.ErrCommentForbidden
	}

	if err := u.commentPort.DeleteComment(ctx, commentID); err != nil {
		logger.SafeErrorContext(ctx, "failed to delete comment", "error", err, "comment_id", commentID)
		return errors.DatabaseError("failed to delete comment", err, map[string]interface{}{
			"comment_id": commentID,
		})
	}

	logger.SafeInfoContext(ctx, "comment deleted", "comment_id", commentID)
	return nil
}
