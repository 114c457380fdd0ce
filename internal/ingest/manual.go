package ingest

import (
	"fmt"
	"strings"
)

// parseManual validates admin-typed form entries. The form constrains the
// shape already (four options, single-letter answer), so this is validation
// rather than parsing.
func parseManual(entries []ManualQuestion) Result {
	var res Result
	for i, e := range entries {
		questionNum := i + 1

		text := strings.TrimSpace(e.Text)
		if text == "" {
			res.Errors = append(res.Errors, fmt.Sprintf("Question %d: question text is required", questionNum))
			continue
		}

		options := []string{
			strings.TrimSpace(e.OptionA),
			strings.TrimSpace(e.OptionB),
			strings.TrimSpace(e.OptionC),
			strings.TrimSpace(e.OptionD),
		}
		incomplete := false
		for _, o := range options {
			if o == "" {
				incomplete = true
				break
			}
		}
		if incomplete {
			res.Errors = append(res.Errors, fmt.Sprintf("Question %d: all four options are required", questionNum))
			continue
		}

		correctIndex, ok := letterIndex[strings.ToUpper(strings.TrimSpace(e.Answer))]
		if !ok {
			res.Errors = append(res.Errors, fmt.Sprintf("Question %d: invalid answer selection", questionNum))
			continue
		}

		res.Questions = append(res.Questions, ParsedQuestion{
			Text:         text,
			Options:      options,
			CorrectIndex: correctIndex,
		})
	}
	return res
}
