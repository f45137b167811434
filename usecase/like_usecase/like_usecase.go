package like_usecase

import (
	"context"
	"strings"
	"time"

	"fursan/domain"
	"fursan/port/article_port"
	"fursan/port/like_port"
	"fursan/utils/errors"
	"fursan/utils/logger"
)

// LikeUsecase records and removes likes. The denormalized likes_count on
// the article moves in the same transaction as the like row.
type LikeUsecase struct {
	likePort     like_port.LikePort
	articlePort  article_port.ArticlePort
	queryTimeout time.Duration
}

// NewLikeUsecase creates a new usecase instance.
func NewLikeUsecase(
	likePort like_port.LikePort,
	articlePort article_port.ArticlePort,
	queryTimeout time.Duration,
) *LikeUsecase {
	return &LikeUsecase{
		likePort:     likePort,
		articlePort:  articlePort,
		queryTimeout: queryTimeout,
	}
}

// Like records a like for the authenticated user. Liking an already-liked
// article returns ErrAlreadyLiked; liking a missing article returns
// ErrArticleNotFound.
func (u *LikeUsecase) Like(ctx context.Context, articleID string) error {
	user, err := domain.GetUserFromContext(ctx)
	if err != nil {
		return errors.AuthError("authentication required", err, nil)
	}
	if strings.TrimSpace(articleID) == "" {
		return errors.ValidationError("article id must not be empty", nil)
	}

	ctx, cancel := context.WithTimeout(ctx, u.queryTimeout)
	defer cancel()

	if _, err := u.articlePort.FetchArticleByID(ctx, articleID); err != nil {
		return err
	}

	if err := u.likePort.LikeArticle(ctx, user.UserID, articleID); err != nil {
		if errors.Is(err, errors.ErrAlreadyLiked) {
			return err
		}
		logger.SafeErrorContext(ctx, "failed to like article", "error", err, "article_id", articleID)
		return errors.DatabaseError("failed to like article", err, map[string]interface{}{
			"article_id": articleID,
		})
	}

	logger.SafeInfoContext(ctx, "article liked", "article_id", articleID, "user_id", user.UserID)
	return nil
}

// Unlike removes the authenticated user's like. Removing a like that does
// not exist returns ErrNotLiked.
func (u *LikeUsecase) Unlike(ctx context.Context, articleID string) error {
	user, err := domain.GetUserFromContext(ctx)
	if err != nil {
		return errors.AuthError("authentication required", err, nil)
	}
	if strings.TrimSpace(articleID) == "" {
		return errors.ValidationError("article id must not be empty", nil)
	}

	ctx, cancel := context.WithTimeout(ctx, u.queryTimeout)
	defer cancel()

	if _, err := u.articlePort.FetchArticleByID(ctx, articleID); err != nil {
		return err
	}

	if err := u.likePort.UnlikeArticle(ctx, user.UserID, articleID); err != nil {
		if errors.Is(err, errors.ErrNotLiked) {
			return err
		}
		logger.SafeErrorContext(ctx, "failed to unlike article", "error", err, "article_id", articleID)
		return errors.DatabaseError("failed to unlike article", err, map[string]interface{}{
			"article_id": articleID,
		})
	}

	logger.SafeInfoContext(ctx, "article unliked", "article_id", articleID, "user_id", user.UserID)
	return nil
}
