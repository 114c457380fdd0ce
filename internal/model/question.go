package model

import (
	"time"

	"gorm.io/gorm"
)

// Question belongs to exactly one quiz or one exam. Options keep their
// upload order; CorrectIndex is the zero-based position of the right one.
// Questions are immutable once live; content updates replace the whole set.
type Question struct {
	ID           uint           `gorm:"primarykey" json:"id"`
	QuizID       *uint          `json:"quiz_id,omitempty" gorm:"index"`
	ExamID       *uint          `json:"exam_id,omitempty" gorm:"index"`
	Position     int            `json:"position" gorm:"not null"` // display order within the assessment
	Text         string         `json:"text" gorm:"type:text;not null"`
	Options      []string       `json:"options" gorm:"serializer:json;not null"`
	CorrectIndex int            `json:"correct_index" gorm:"not null"`
	Hint         *string        `json:"hint,omitempty" gorm:"type:text"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}
