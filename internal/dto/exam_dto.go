package dto

import "time"

type ExamCreateRequest struct {
	Title           string         `json:"title" binding:"required"`
	ScheduledAt     time.Time      `json:"scheduled_at" binding:"required"`
	DurationMinutes int            `json:"duration_minutes" binding:"required,min=1"`
	Content         ContentRequest `json:"content" binding:"required"`
}

type ExamUpdateRequest struct {
	Title           string    `json:"title" binding:"required"`
	ScheduledAt     time.Time `json:"scheduled_at" binding:"required"`
	DurationMinutes int       `json:"duration_minutes" binding:"required,min=1"`
}

// Exam lifecycle phases relative to the request time.
const (
	ExamStatusUpcoming = "upcoming"
	ExamStatusActive   = "active"
	ExamStatusFinished = "finished"
)

type ExamResponse struct {
	ID              uint               `json:"id"`
	Title           string             `json:"title"`
	ScheduledAt     time.Time          `json:"scheduled_at"`
	DurationMinutes int                `json:"duration_minutes"`
	QuestionCount   int                `json:"question_count"`
	Status          string             `json:"status"`
	Attempted       bool               `json:"attempted"`
	Questions       []QuestionResponse `json:"questions,omitempty"`
}

type ExamAdminResponse struct {
	ID              uint                    `json:"id"`
	Title           string                  `json:"title"`
	ScheduledAt     time.Time               `json:"scheduled_at"`
	DurationMinutes int                     `json:"duration_minutes"`
	QuestionCount   int                     `json:"question_count"`
	Status          string                  `json:"status"`
	Questions       []QuestionAdminResponse `json:"questions,omitempty"`
}
