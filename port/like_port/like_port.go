package like_port

import (
	"context"
)

// LikePort records and removes likes, keeping the denormalized count in step.
type LikePort interface {
	LikeArticle(ctx context.Context, userID string, articleID string) error
	UnlikeArticle(ctx context.Context, userID string, articleID string) error
	FetchLikedArticleIDs(ctx context.Context, userID string, articleIDs []string) (map[string]bool, error)
}
