package fursan_db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"fursan/domain"
	apperrors "fursan/utils/errors"
	"fursan/utils/logger"

	"github.com/google/uuid"
)

// CreateSection inserts a new section and returns it.
func (r *Repository) CreateSection(ctx context.Context, draft domain.SectionDraft) (*domain.Section, error) {
	if r == nil || r.pool == nil {
		return nil, errors.New("database connection not available")
	}

	section := domain.Section{
		ID:          uuid.New().String(),
		Name:        draft.Name,
		Description: draft.Description,
		CreatedAt:   time.Now().UTC(),
	}

	query := `
		INSERT INTO sections (id, name, description, created_at)
		VALUES ($1, $2, $3, $4)
	`

	_, err := r.pool.Exec(ctx, query, section.ID, section.Name, section.Description, section.CreatedAt)
	if err != nil {
		logger.Logger.ErrorContext(ctx, "error creating section", "error", err, "name", draft.Name)
		return nil, errors.New("error creating section")
	}

	return &section, nil
}

// FetchSections returns every section in insertion order.
func (r *Repository) FetchSections(ctx context.Context) ([]domain.Section, error) {
	if r == nil || r.pool == nil {
		return nil, errors.New("database connection not available")
	}

	query := `
		SELECT id, name, description, created_at
		FROM sections
		ORDER BY created_at
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		logger.Logger.ErrorContext(ctx, "error fetching sections", "error", err)
		return nil, errors.New("error fetching sections")
	}
	defer rows.Close()

	sections := []domain.Section{}
	for rows.Next() {
		var section domain.Section
		if err := rows.Scan(&section.ID, &section.Name, &section.Description, &section.CreatedAt); err != nil {
			logger.Logger.ErrorContext(ctx, "error scanning section", "error", err)
			return nil, errors.New("error scanning sections")
		}
		sections = append(sections, section)
	}

	if err := rows.Err(); err != nil {
		logger.Logger.ErrorContext(ctx, "row iteration error", "error", err)
		return nil, errors.New("error iterating sections")
	}

	return sections, nil
}

// DeleteSection removes a section and cascades to its articles and their
// likes and comments in a single transaction.
func (r *Repository) DeleteSection(ctx context.Context, sectionID string) error {
	if r == nil || r.pool == nil {
		return errors.New("database connection not available")
	}

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		logger.Logger.ErrorContext(ctx, "error starting transaction", "error", err)
		return errors.New("error deleting section")
	}
	defer func() { _ = tx.Rollback(ctx) }()

	tag, err := tx.Exec(ctx, `DELETE FROM sections WHERE id = $1`, sectionID)
	if err != nil {
		logger.Logger.ErrorContext(ctx, "error deleting section", "error", err, "sectionID", sectionID)
		return errors.New("error deleting section")
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("section %s: %w", sectionID, apperrors.ErrSectionNotFound)
	}

	cascade := []string{
		`DELETE FROM likes WHERE article_id IN (SELECT id FROM articles WHERE section_id = $1)`,
		`DELETE FROM comments WHERE article_id IN (SELECT id FROM articles WHERE section_id = $1)`,
		`DELETE FROM articles WHERE section_id = $1`,
	}
	for _, query := range cascade {
		if _, err := tx.Exec(ctx, query, sectionID); err != nil {
			logger.Logger.ErrorContext(ctx, "error cascading section delete", "error", err, "sectionID", sectionID)
			return errors.New("error deleting section")
		}
	}

	if err := tx.Commit(ctx); err != nil {
		logger.Logger.ErrorContext(ctx, "error committing section delete", "error", err, "sectionID", sectionID)
		return errors.New("error deleting section")
	}

	logger.Logger.InfoContext(ctx, "section deleted with cascade", "sectionID", sectionID)
	return nil
}
