package models

import "time"

// Setting is a single key/value row of site configuration. The key is the
// natural identity; writes are per-key upserts.
type Setting struct {
	Key       string    `gorm:"primaryKey;type:text" json:"key"`
	Value     string    `gorm:"type:text;not null" json:"value"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Setting) TableName() string {
	return "site_settings"
}
