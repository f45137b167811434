package comment_gateway

import (
	"context"
	"fursan/domain"
	"fursan/driver/fursan_db"
)

// CommentGateway adapts the content store to the comment port.
type CommentGateway struct {
	fursanDB *fursan_db.Repository
}

// NewCommentGateway creates a new gateway instance.
func NewCommentGateway(fursanDB *fursan_db.Repository) *CommentGateway {
	return &CommentGateway{
		fursanDB: fursanDB,
	}
}

func (g *CommentGateway) CreateComment(ctx context.Context, userID string, articleID string, content string) (*domain.Comment, error) {
	return g.fursanDB.CreateComment(ctx, userID, articleID, content)
}

func (g *CommentGateway) FetchCommentsByArticle(ctx context.Context, articleID string) ([]domain.CommentWithUser, error) {
	return g.fursanDB.FetchCommentsByArticle(ctx, articleID)
}

func (g *CommentGateway) FetchCommentByID(ctx context.Context, id string) (*domain.Comment, error) {
	return g.fursanDB.FetchCommentByID(ctx, id)
}

func (g *CommentGateway) UpdateComment(ctx context.Context, id string, content string) (*domain.Comment, error) {
	return g.fursanDB.UpdateComment(ctx, id, content)
}

func (g *CommentGateway) DeleteComment(ctx context.Context, id string) error {
	return g.fursanDB.DeleteComment(ctx, id)
}
