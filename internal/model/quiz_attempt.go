package model

import "time"

// QuizAttempt records one completed practice run. Kept for analytics only;
// retakes are allowed, so there is no uniqueness constraint. Rows are never
// updated after creation and carry no soft-delete column.
type QuizAttempt struct {
	ID               uint      `gorm:"primarykey" json:"id"`
	QuizID           uint      `json:"quiz_id" gorm:"not null;index"`
	UserID           uint      `json:"user_id" gorm:"not null;index"`
	StudentName      string    `json:"student_name" gorm:"not null"`
	TotalQuestions   int       `json:"total_questions" gorm:"not null"`
	CorrectAnswers   int       `json:"correct_answers" gorm:"not null"`
	WrongAnswers     int       `json:"wrong_answers" gorm:"not null"`
	SkippedQuestions int       `json:"skipped_questions" gorm:"not null"`
	StartTime        time.Time `json:"start_time" gorm:"not null"`
	EndTime          time.Time `json:"end_time" gorm:"not null"`
	TotalTimeSeconds int       `json:"total_time_seconds" gorm:"not null"`
	CreatedAt        time.Time `json:"created_at"`
}
