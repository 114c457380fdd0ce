package dto

// ManualQuestionRequest is one row of the manual entry form. Exactly four
// options and a letter answer, matching the form layout.
type ManualQuestionRequest struct {
	Question string `json:"question" binding:"required"`
	OptionA  string `json:"option_a" binding:"required"`
	OptionB  string `json:"option_b" binding:"required"`
	OptionC  string `json:"option_c" binding:"required"`
	OptionD  string `json:"option_d" binding:"required"`
	Answer   string `json:"answer" binding:"required"`
}

// ContentRequest is the question-content half of a create or replace call.
// InputType selects the normalizer format; Text carries csv/text/json
// payloads and Manual carries form rows. Spreadsheet uploads arrive as a
// multipart file and are passed to the service separately.
type ContentRequest struct {
	InputType string                  `json:"input_type" binding:"required,oneof=csv xlsx text json manual"`
	Text      string                  `json:"text,omitempty"`
	Manual    []ManualQuestionRequest `json:"manual,omitempty"`
}

// ContentErrorResponse reports rejected rows from a normalization pass.
type ContentErrorResponse struct {
	Errors    []string `json:"errors"`
	Truncated bool     `json:"truncated"`
}
