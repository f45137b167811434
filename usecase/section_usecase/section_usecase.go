package section_usecase

import (
	"context"
	"strings"
	"time"

	"fursan/domain"
	"fursan/port/section_port"
	"fursan/utils/errors"
	"fursan/utils/logger"
)

// SectionUsecase covers section creation, listing, and cascading deletion.
type SectionUsecase struct {
	sectionPort  section_port.SectionPort
	queryTimeout time.Duration
}

// NewSectionUsecase creates a new usecase instance.
func NewSectionUsecase(sectionPort section_port.SectionPort, queryTimeout time.Duration) *SectionUsecase {
	return &SectionUsecase{
		sectionPort:  sectionPort,
		queryTimeout: queryTimeout,
	}
}

// Create adds a new section.
func (u *SectionUsecase) Create(ctx context.Context, name string, description *string) (*domain.Section, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errors.ValidationError("section name must not be empty", nil)
	}

	ctx, cancel := context.WithTimeout(ctx, u.queryTimeout)
	defer cancel()

	section, err := u.sectionPort.CreateSection(ctx, domain.SectionDraft{
		Name:        name,
		Description: description,
	})
	if err != nil {
		logger.SafeErrorContext(ctx, "failed to create section", "error", err, "name", name)
		return nil, errors.DatabaseError("failed to create section", err, map[string]interface{}{
			"name": name,
		})
	}

	logger.SafeInfoContext(ctx, "section created", "section_id", section.ID, "name", section.Name)
	return section, nil
}

// List returns all sections, oldest first.
func (u *SectionUsecase) List(ctx context.Context) ([]domain.Section, error) {
	ctx, cancel := context.WithTimeout(ctx, u.queryTimeout)
	defer cancel()

	sections, err := u.sectionPort.FetchSections(ctx)
	if err != nil {
		logger.SafeErrorContext(ctx, "failed to fetch sections", "error", err)
		return nil, errors.DatabaseError("failed to fetch sections", err, nil)
	}

	if sections == nil {
		sections = []domain.Section{}
	}
	return sections, nil
}

// Delete removes the section together with its articles and their likes and
// comments. The cascade runs in a single transaction.
func (u *SectionUsecase) Delete(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return errors.ValidationError("section id must not be empty", nil)
	}

	ctx, cancel := context.WithTimeout(ctx, u.queryTimeout)
	defer cancel()

	if err := u.sectionPort.DeleteSection(ctx, id); err != nil {
		if errors.IsNotFound(err) {
			return err
		}
		logger.SafeErrorContext(ctx, "failed to delete section", "error", err, "section_id", id)
		return errors.DatabaseError("failed to delete section", err, map[string]interface{}{
			"section_id": id,
		})
	}

	logger.SafeInfoContext(ctx, "section deleted", "section_id", id)
	return nil
}
