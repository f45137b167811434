package settings_port

import (
	"context"
	"fursan/domain"
)

// SettingsPort covers the single-row site settings store.
type SettingsPort interface {
	FetchSiteSettings(ctx context.Context) (*domain.SiteSettings, error)
	UpsertSiteSettings(ctx context.Context, patch domain.LogoPatch) (*domain.SiteSettings, error)
}
