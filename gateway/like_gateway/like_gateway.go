package like_gateway

import (
	"context"
	"fursan/driver/fursan_db"
)

// LikeGateway adapts the content store to the like port.
type LikeGateway struct {
	fursanDB *fursan_db.Repository
}

// NewLikeGateway creates a new gateway instance.
func NewLikeGateway(fursanDB *fursan_db.Repository) *LikeGateway {
	return &LikeGateway{
		fursanDB: fursanDB,
	}
}

func (g *LikeGateway) LikeArticle(ctx context.Context, userID string, articleID string) error {
	return g.fursanDB.LikeArticle(ctx, userID, articleID)
}

func (g *LikeGateway) UnlikeArticle(ctx context.Context, userID string, articleID string) error {
	return g.fursanDB.UnlikeArticle(ctx, userID, articleID)
}

func (g *LikeGateway) FetchLikedArticleIDs(ctx context.Context, userID string, articleIDs []string) (map[string]bool, error) {
	return g.fursanDB.FetchLikedArticleIDs(ctx, userID, articleIDs)
}
