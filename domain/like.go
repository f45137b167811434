package domain

import (
	"time"
)

// Like records that a user liked an article. The (UserID, ArticleID) pair is
// unique; existence is the whole fact.
type Like struct {
	UserID    string    `json:"user_id"`
	ArticleID string    `json:"article_id"`
	CreatedAt time.Time `json:"created_at"`
}
