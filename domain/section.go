package domain

import (
	"time"
)

// Section is a named category grouping articles. Deleting a section removes
// all of its articles and, transitively, their likes and comments.
type Section struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

// SectionDraft carries the writable fields for section creation.
type SectionDraft struct {
	Name        string
	Description *string
}
