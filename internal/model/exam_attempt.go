package model

import "time"

// ExamAttempt records one scored exam run. The composite unique index on
// (exam_id, user_id) is the authority for single-attempt enforcement: two
// concurrent submissions race at the insert, and the loser gets a
// duplicated-key error the service translates to "already attempted".
// Rows are immutable after creation; deletion is an explicit admin action,
// so there is no soft-delete column that would defeat the index.
type ExamAttempt struct {
	ID               uint      `gorm:"primarykey" json:"id"`
	ExamID           uint      `json:"exam_id" gorm:"not null;uniqueIndex:idx_exam_attempts_exam_user"`
	UserID           uint      `json:"user_id" gorm:"not null;uniqueIndex:idx_exam_attempts_exam_user"`
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
