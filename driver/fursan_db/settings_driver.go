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
	"github.com/jackc/pgx/v5"
)

// FetchSiteSettings returns the single settings row, or ErrSettingsNotFound
// when none has been written yet.
func (r *Repository) FetchSiteSettings(ctx context.Context) (*domain.SiteSettings, error) {
	if r == nil || r.pool == nil {
		return nil, errors.New("database connection not available")
	}

	query := `
		SELECT id, logo_data, logo_name, site_name, updated_at
		FROM site_settings
		LIMIT 1
	`

	var settings domain.SiteSettings
	err := r.pool.QueryRow(ctx, query).Scan(
		&settings.ID, &settings.LogoData, &settings.LogoName,
		&settings.SiteName, &settings.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("site settings: %w", apperrors.ErrSettingsNotFound)
		}
		logger.Logger.ErrorContext(ctx, "error fetching site settings", "error", err)
		return nil, errors.New("error fetching site settings")
	}

	return &settings, nil
}

// UpsertSiteSettings applies a logo patch to the settings row, creating it
// when absent, and returns the stored state.
func (r *Repository) UpsertSiteSettings(ctx context.Context, patch domain.LogoPatch) (*domain.SiteSettings, error) {
	if r == nil || r.pool == nil {
		return nil, errors.New("database connection not available")
	}

	existing, err := r.FetchSiteSettings(ctx)
	if err != nil && !errors.Is(err, apperrors.ErrSettingsNotFound) {
		return nil, err
	}

	now := time.Now().UTC()

	if existing == nil {
		settings := domain.SiteSettings{
			ID:        uuid.New().String(),
			LogoData:  patch.LogoData,
			LogoName:  patch.LogoName,
			SiteName:  domain.DefaultSiteName,
			UpdatedAt: now,
		}

		insert := `
			INSERT INTO site_settings (id, logo_data, logo_name, site_name, updated_at)
			VALUES ($1, $2, $3, $4, $5)
		`
		if _, err := r.pool.Exec(ctx, insert,
			settings.ID, settings.LogoData, settings.LogoName, settings.SiteName, settings.UpdatedAt,
		); err != nil {
			logger.Logger.ErrorContext(ctx, "error inserting site settings", "error", err)
			return nil, errors.New("error updating site settings")
		}

		return &settings, nil
	}

	if patch.LogoData != nil {
		existing.LogoData = patch.LogoData
	}
	if patch.LogoName != nil {
		existing.LogoName = patch.LogoName
	}
	existing.UpdatedAt = now

	update := `
		UPDATE site_settings SET logo_data = $1, logo_name = $2, updated_at = $3
		WHERE id = $4
	`
	if _, err := r.pool.Exec(ctx, update,
		existing.LogoData, existing.LogoName, existing.UpdatedAt, existing.ID,
	); err != nil {
		logger.Logger.ErrorContext(ctx, "error updating site settings", "error", err)
		return nil, errors.New("error updating site settings")
	}

	return existing, nil
}
