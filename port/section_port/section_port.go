package section_port

import (
	"context"
	"fursan/domain"
)

// SectionPort covers section persistence, including the cascading delete.
type SectionPort interface {
	CreateSection(ctx context.Context, draft domain.SectionDraft) (*domain.Section, error)
	FetchSections(ctx context.Context) ([]domain.Section, error)
	DeleteSection(ctx context.Context, id string) error
}
