package ingest

import (
	"encoding/csv"
	"strconv"
	"strings"
)

// WriteCSV renders questions back to the delimited format: a header line,
// options joined with "|", answer as the zero-based index. Re-normalizing
// the output yields the same list (order, text, options, correct index).
func WriteCSV(questions []ParsedQuestion) string {
	var sb strings.Builder
	w := csv.NewWriter(&sb)

	_ = w.Write([]string{"question", "options", "answer"})
	for _, q := range questions {
		_ = w.Write([]string{
			q.Text,
			strings.Join(q.Options, "|"),
			strconv.Itoa(q.CorrectIndex),
		})
	}
	w.Flush()
	return sb.String()
}
