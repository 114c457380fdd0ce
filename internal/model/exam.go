package model

import (
	"time"

	"gorm.io/gorm"
)

// Exam is a scheduled assessment. Scored attempts may start only inside the
// active window; after it closes the questions stay available for unscored
// practice replay.
type Exam struct {
	ID              uint           `gorm:"primarykey" json:"id"`
	SiteID          uint           `json:"site_id" gorm:"not null;index"`
	Title           string         `json:"title" gorm:"not null"`
	ScheduledAt     time.Time      `json:"scheduled_at" gorm:"not null"`
	DurationMinutes int            `json:"duration_minutes" gorm:"not null"`
	Questions       []Question     `json:"questions,omitempty" gorm:"foreignKey:ExamID"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-"`
}

func (e *Exam) WindowEnd() time.Time {
	return e.ScheduledAt.Add(time.Duration(e.DurationMinutes) * time.Minute)
}

// InWindow reports whether a scored attempt may start at t. The window is
// half-open: [ScheduledAt, ScheduledAt+Duration).
func (e *Exam) InWindow(t time.Time) bool {
	return !t.Before(e.ScheduledAt) && t.Before(e.WindowEnd())
}

// Finished reports whether the window has closed at t, which unlocks
// practice replay.
func (e *Exam) Finished(t time.Time) bool {
	return !t.Before(e.WindowEnd())
}
