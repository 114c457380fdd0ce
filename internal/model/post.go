package model

import (
	"time"

	"gorm.io/gorm"
)

// Post is an announcement written by a site's admins, readable by every
// signed-in participant of that site.
type Post struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	SiteID    uint           `json:"site_id" gorm:"not null;index"`
	Title     string         `json:"title" gorm:"not null"`
	Content   string         `json:"content" gorm:"not null;type:text"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
