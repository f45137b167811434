package settings_gateway

import (
	"context"
	"fursan/domain"
	"fursan/driver/fursan_db"
)

// SettingsGateway adapts the content store to the settings port.
type SettingsGateway struct {
	fursanDB *fursan_db.Repository
}

// NewSettingsGateway creates a new gateway instance.
func NewSettingsGateway(fursanDB *fursan_db.Repository) *SettingsGateway {
	return &SettingsGateway{
		fursanDB: fursanDB,
	}
}

func (g *SettingsGateway) FetchSiteSettings(ctx context.Context) (*domain.SiteSettings, error) {
	return g.fursanDB.FetchSiteSettings(ctx)
}

func (g *SettingsGateway) UpsertSiteSettings(ctx context.Context, patch domain.LogoPatch) (*domain.SiteSettings, error) {
	return g.fursanDB.UpsertSiteSettings(ctx, patch)
}
