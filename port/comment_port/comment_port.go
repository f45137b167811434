package comment_port

import (
	"context"
	"fursan/domain"
)

// CommentPort covers comment persistence and user display lookups.
type CommentPort interface {
	CreateComment(ctx context.Context, userID string, articleID string, content string) (*domain.Comment, error)
	FetchCommentsByArticle(ctx context.Context, articleID string) ([]domain.CommentWithUser, error)
	FetchCommentByID(ctx context.Context, id string) (*domain.Comment, error)
	UpdateComment(ctx context.Context, id string, content string) (*domain.Comment, error)
	DeleteComment(ctx context.Context, id string) error
}
