package dto

import "time"

// AnswerSubmission pairs a question with the chosen option. SelectedIndex
// of -1 means the question was left unanswered.
type AnswerSubmission struct {
	QuestionID    uint `json:"question_id" binding:"required"`
	SelectedIndex int  `json:"selected_index"`
}

// AttemptSubmitRequest carries the full answer sheet. Answers may be empty
// or omitted entirely; every question without an entry scores as skipped.
type AttemptSubmitRequest struct {
	Answers        []AnswerSubmission `json:"answers"`
	StartTime      time.Time          `json:"start_time" binding:"required"`
	ElapsedSeconds int                `json:"elapsed_seconds" binding:"min=0"`
}

type AttemptResponse struct {
	ID               uint      `json:"id"`
	StudentName      string    `json:"student_name"`
	TotalQuestions   int       `json:"total_questions"`
	CorrectAnswers   int       `json:"correct_answers"`
	WrongAnswers     int       `json:"wrong_answers"`
	SkippedQuestions int       `json:"skipped_questions"`
	TotalTimeSeconds int       `json:"total_time_seconds"`
	Percentage       int       `json:"percentage"`
	CreatedAt        time.Time `json:"created_at"`
}

// ExamResultResponse is one leaderboard row.
type ExamResultResponse struct {
	AttemptResponse
	Rank int `json:"rank"`
}

type StudentSummaryResponse struct {
	UserID        uint              `json:"user_id"`
	StudentName   string            `json:"student_name"`
	AttemptCount  int               `json:"attempt_count"`
	AverageScore  int               `json:"average_score"`
	RecentResults []AttemptResponse `json:"recent_results"`
}
