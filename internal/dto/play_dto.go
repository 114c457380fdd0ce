package dto

type PlayAnswerRequest struct {
	SelectedIndex int `json:"selected_index" binding:"min=0"`
}

type PlayResultResponse struct {
	TotalQuestions   int `json:"total_questions"`
	CorrectAnswers   int `json:"correct_answers"`
	WrongAnswers     int `json:"wrong_answers"`
	SkippedQuestions int `json:"skipped_questions"`
	TotalTimeSeconds int `json:"total_time_seconds"`
	Percentage       int `json:"percentage"`
}

// PlayStateResponse is one snapshot of a server-driven practice session.
// Question is present while the session runs, Result once it is completed.
type PlayStateResponse struct {
	SessionID        string              `json:"session_id"`
	QuizID           uint                `json:"quiz_id"`
	State            string              `json:"state"`
	QuestionIndex    int                 `json:"question_index"`
	TotalQuestions   int                 `json:"total_questions"`
	RemainingSeconds int                 `json:"remaining_seconds"`
	Question         *QuestionResponse   `json:"question,omitempty"`
	Result           *PlayResultResponse `json:"result,omitempty"`
}
