package dto

import "time"

type QuizCreateRequest struct {
	Title   string         `json:"title" binding:"required"`
	Content ContentRequest `json:"content" binding:"required"`
}

type QuizUpdateRequest struct {
	Title string `json:"title" binding:"required"`
}

type QuizResponse struct {
	ID            uint               `json:"id"`
	Title         string             `json:"title"`
	QuestionCount int                `json:"question_count"`
	CreatedAt     time.Time          `json:"created_at"`
	Questions     []QuestionResponse `json:"questions,omitempty"`
}

type QuizAdminResponse struct {
	ID            uint      `json:"id"`
	Title         string    `json:"title"`
	QuestionCount int       `json:"question_count"`
	CreatedAt     time.Time `json:"created_at"`
	// TimeLimitSeconds is the countdown budget for a practice session.
	TimeLimitSeconds int                     `json:"time_limit_seconds"`
	Questions        []QuestionAdminResponse `json:"questions,omitempty"`
}
