package dto

// QuestionResponse is the participant-facing view: no correct answer.
type QuestionResponse struct {
	ID       uint     `json:"id"`
	Position int      `json:"position"`
	Text     string   `json:"text"`
	Options  []string `json:"options"`
	Hint     *string  `json:"hint,omitempty"`
}

// QuestionAdminResponse includes the answer key for admin screens and
// for post-attempt review.
type QuestionAdminResponse struct {
	ID           uint     `json:"id"`
	Position     int      `json:"position"`
	Text         string   `json:"text"`
	Options      []string `json:"options"`
	CorrectIndex int      `json:"correct_index"`
	Hint         *string  `json:"hint,omitempty"`
}

type HintResponse struct {
	QuestionID uint   `json:"question_id"`
	Hint       string `json:"hint"`
}
