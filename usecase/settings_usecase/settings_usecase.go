package settings_usecase

import (
	"context"
	"time"

	"fursan/domain"
	"fursan/port/settings_port"
	"fursan/utils/errors"
	"fursan/utils/logger"
)

// SettingsUsecase reads and updates the single-row site settings.
type SettingsUsecase struct {
	settingsPort settings_port.SettingsPort
	queryTimeout time.Duration
}

// NewSettingsUsecase creates a new usecase instance.
func NewSettingsUsecase(settingsPort settings_port.SettingsPort, queryTimeout time.Duration) *SettingsUsecase {
	return &SettingsUsecase{
		settingsPort: settingsPort,
		queryTimeout: queryTimeout,
	}
}

// Get returns the current site settings. When no row exists yet, defaults
// are returned instead of an error.
func (u *SettingsUsecase) Get(ctx context.Context) (*domain.SiteSettings, error) {
	ctx, cancel := context.WithTimeout(ctx, u.queryTimeout)
	defer cancel()

	settings, err := u.settingsPort.FetchSiteSettings(ctx)
	if err != nil {
		if errors.Is(err, errors.ErrSettingsNotFound) {
			return &domain.SiteSettings{SiteName: domain.DefaultSiteName}, nil
		}
		logger.SafeErrorContext(ctx, "failed to fetch site settings", "error", err)
		return nil, errors.DatabaseError("failed to fetch site settings", err, nil)
	}
	return settings, nil
}

// UpdateLogo upserts the site logo.
func (u *SettingsUsecase) UpdateLogo(ctx context.Context, patch domain.LogoPatch) (*domain.SiteSettings, error) {
	if patch.LogoData == nil && patch.LogoName == nil {
		return nil, errors.ValidationError("logo patch must set at least one field", nil)
	}

	ctx, cancel := context.WithTimeout(ctx, u.queryTimeout)
	defer cancel()

	settings, err := u.settingsPort.UpsertSiteSettings(ctx, patch)
	if err != nil {
		logger.SafeErrorContext(ctx, "failed to update site logo", "error", err)
		return nil, errors.DatabaseError("failed to update site logo", err, nil)
	}

	logger.SafeInfoContext(ctx, "site logo updated")
	return settings, nil
}
