package domain

import (
	"time"
)

// Comment is a user comment on an article. Only the owning user may edit or
// delete it.
type Comment struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	ArticleID string    `json:"article_id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CommentWithUser is the read model returned to clients: the comment joined
// with the commenting user's display data.
type CommentWithUser struct {
	Comment
	UserFullName       string  `json:"user_full_name"`
	UserProfilePicture *string `json:"user_profile_picture"`
}

// OwnedBy reports whether the comment belongs to the given user.
func (c Comment) OwnedBy(userID string) bool {
	return c.UserID == userID
}
