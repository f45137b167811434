package section_gateway

import (
	"context"
	"fursan/domain"
	"fursan/driver/fursan_db"
)

// SectionGateway adapts the content store to the section port.
type SectionGateway struct {
	fursanDB *fursan_db.Repository
}

// NewSectionGateway creates a new gateway instance.
func NewSectionGateway(fursanDB *fursan_db.Repository) *SectionGateway {
	return &SectionGateway{
		fursanDB: fursanDB,
	}
}

func (g *SectionGateway) CreateSection(ctx context.Context, draft domain.SectionDraft) (*domain.Section, error) {
	return g.fursanDB.CreateSection(ctx, draft)
}

func (g *SectionGateway) FetchSections(ctx context.Context) ([]domain.Section, error) {
	return g.fursanDB.FetchSections(ctx)
}

// DeleteSection removes the section together with its articles and their
// likes and comments.
func (g *SectionGateway) DeleteSection(ctx context.Context, id string) error {
	return g.fursanDB.DeleteSection(ctx, id)
}
