package model

import (
	"time"

	"gorm.io/gorm"
)

// Site is the tenant boundary. Every quiz, exam, participant and attempt
// belongs to exactly one site.
type Site struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	Name      string         `json:"name" gorm:"not null"`
	Code      string         `json:"code" gorm:"not null;uniqueIndex"` // join code students register with
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
