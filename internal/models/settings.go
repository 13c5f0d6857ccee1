package models

import "time"

// Settings is a single-row table holding the company logo as a data URL,
// plus a derived thumbnail. No versioning.
type Settings struct {
	ID            uint      `gorm:"primaryKey" json:"-"`
	Logo          string    `json:"logo"`
	LogoThumbnail string    `json:"logoThumbnail,omitempty"`
	UpdatedAt     time.Time `json:"-"`
}
