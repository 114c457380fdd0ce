package ingest

import (
	"fmt"
	"strings"
)

var letterIndex = map[string]int{"A": 0, "B": 1, "C": 2, "D": 3}

// parseFreeform handles plain pasted text, one question per line:
//
//	question text, optionA, optionB, optionC, optionD, answer
//
// The last five comma-separated fields are fixed; everything before them is
// rejoined as the question text, so questions may themselves contain commas.
// Line numbers count non-blank lines only.
func parseFreeform(text string) Result {
	var res Result
	lineNum := 0
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		lineNum++

		parts := strings.Split(line, ",")
		for i := range parts {
			parts[i] = strings.TrimSpace(parts[i])
		}
		if len(parts) < 6 {
			res.Errors = append(res.Errors, fmt.Sprintf("Line %d: not enough parts, expected at least 6 (question, 4 options, answer)", lineNum))
			continue
		}

		n := len(parts)
		questionText := strings.Join(parts[:n-5], ", ")
		options := []string{parts[n-5], parts[n-4], parts[n-3], parts[n-2]}
		answer := strings.ToUpper(parts[n-1])

		if questionText == "" {
			res.Errors = append(res.Errors, fmt.Sprintf("Line %d: question text is required", lineNum))
			continue
		}

		correctIndex, ok := letterIndex[answer]
		if !ok {
			res.Errors = append(res.Errors, fmt.Sprintf("Line %d: invalid answer %q, must be A, B, C, or D", lineNum, answer))
			continue
		}

		res.Questions = append(res.Questions, ParsedQuestion{
			Text:         questionText,
			Options:      options,
			CorrectIndex: correctIndex,
		})
	}
	return res
}
