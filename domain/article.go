package domain

import (
	"time"
)

// Article is the stored article entity. Tags keep their insertion order;
// LikesCount is denormalized and maintained atomically by the like
// operations.
type Article struct {
	ID         string    `json:"id"`
	Title      string    `json:"title"`
	Content    string    `json:"content"`
	Author     string    `json:"author"`
	SectionID  string    `json:"section_id"`
	ImageData  *string   `json:"image_data"`
	ImageName  *string   `json:"image_name"`
	Tags       []string  `json:"tags"`
	LikesCount int       `json:"likes_count"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`

	// IsLiked is resolved per request: true/false when a user context is
	// present, null for anonymous reads.
	IsLiked *bool `json:"is_liked"`
}

// ArticleDraft carries the writable fields for article creation.
type ArticleDraft struct {
	Title     string
	Content   string
	Author    string
	SectionID string
	ImageData *string
	ImageName *string
	Tags      []string
}

// ArticlePatch carries optional fields for partial updates. Nil fields are
// left untouched; UpdatedAt is always bumped.
type ArticlePatch struct {
	Title     *string
	Content   *string
	Author    *string
	SectionID *string
	ImageData *string
	ImageName *string
	Tags      []string
}

// HasChanges reports whether the patch would modify anything besides
// updated_at.
func (p ArticlePatch) HasChanges() bool {
	return p.Title != nil || p.Content != nil || p.Author != nil ||
		p.SectionID != nil || p.ImageData != nil || p.ImageName != nil ||
		p.Tags != nil
}
