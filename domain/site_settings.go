package domain

import (
	"time"
)

const DefaultSiteName = "فرسان العقيدة"

// SiteSettings holds the site logo and display name. A single row, upserted
// on update.
type SiteSettings struct {
	ID        string    `json:"id"`
	LogoData  *string   `json:"logo_data"`
	LogoName  *string   `json:"logo_name"`
	SiteName  string    `json:"site_name"`
	UpdatedAt time.Time `json:"updated_at"`
}

// LogoPatch carries the writable logo fields. Nil fields are left untouched.
type LogoPatch struct {
	LogoData *string
	LogoName *string
}
