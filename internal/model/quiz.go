package model

import (
	"time"

	"gorm.io/gorm"
)

// Quiz is a self-paced assessment: always open, retakes allowed.
type Quiz struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	SiteID    uint           `json:"site_id" gorm:"not null;index"`
	Title     string         `json:"title" gorm:"not null"`
	Questions []Question     `json:"questions,omitempty" gorm:"foreignKey:QuizID"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
