package ingest

import (
	"encoding/csv"
	"fmt"
	"regexp"
	"sort"
	"strings"
)

var (
	questionAliases = []string{"question", "q", "Question", "QUESTION"}
	answerAliases   = []string{"answer", "ans", "correct", "Answer", "ANS"}
	optionsAliases  = []string{"options", "Options", "choice", "choices"}

	optionColumnRe = regexp.MustCompile(`(?i)^option[a-z0-9]+$`)
)

// pickFirstKey returns the first alias present in the row, tried in priority
// order, or "" when none matches.
func pickFirstKey(row map[string]string, aliases []string) string {
	for _, k := range aliases {
		if _, ok := row[k]; ok {
			return k
		}
	}
	return ""
}

// parseDelimited parses header CSV text. Row numbers in error messages are
// 1-based with the header counted as row 1, so the first data row is row 2.
func parseDelimited(text string) Result {
	r := csv.NewReader(strings.NewReader(text))
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true

	records, err := r.ReadAll()
	if err != nil {
		return Result{Errors: []string{fmt.Sprintf("CSV parse error: %s", err)}}
	}
	if len(records) < 2 {
		return Result{Errors: []string{"CSV must have a header line and at least one data row"}}
	}

	header := records[0]
	var res Result
	for i, record := range records[1:] {
		rowNum := i + 2
		row := make(map[string]string, len(header))
		for j, name := range header {
			if j < len(record) {
				row[strings.TrimSpace(name)] = strings.TrimSpace(record[j])
			}
		}
		if q, ok := parseRow(row, rowNum, &res.Errors); ok {
			res.Questions = append(res.Questions, q)
		}
	}
	return res
}

// parseRow resolves one header-keyed row into a question. Shared by the
// delimited and spreadsheet formats.
func parseRow(row map[string]string, rowNum int, errs *[]string) (ParsedQuestion, bool) {
	text := row[pickFirstKey(row, questionAliases)]
	if text == "" {
		*errs = append(*errs, fmt.Sprintf("Row %d: missing question", rowNum))
		return ParsedQuestion{}, false
	}

	options := resolveOptions(row)
	if len(options) < 2 {
		*errs = append(*errs, fmt.Sprintf(`Row %d: need at least 2 options (optionA/optionB/... or options="A|B|C")`, rowNum))
		return ParsedQuestion{}, false
	}

	answerRaw := row[pickFirstKey(row, answerAliases)]
	correctIndex, ok := ResolveAnswerIndex(answerRaw, options)
	if !ok {
		*errs = append(*errs, fmt.Sprintf("Row %d: invalid answer %q (expected A/B/1..N/or option text)", rowNum, answerRaw))
		return ParsedQuestion{}, false
	}

	return ParsedQuestion{Text: text, Options: options, CorrectIndex: correctIndex}, true
}

// resolveOptions builds the options list from either a single separated cell
// (| primary, ; fallback) or optionX columns sorted by column name.
func resolveOptions(row map[string]string) []string {
	if key := pickFirstKey(row, optionsAliases); key != "" {
		raw := row[key]
		options := splitOptions(raw, "|")
		if len(options) < 2 {
			options = splitOptions(raw, ";")
		}
		return options
	}

	var names []string
	for k, v := range row {
		if optionColumnRe.MatchString(k) && strings.TrimSpace(v) != "" {
			names = append(names, k)
		}
	}
	sort.Strings(names)

	options := make([]string, 0, len(names))
	for _, k := range names {
		options = append(options, strings.TrimSpace(row[k]))
	}
	return options
}

func splitOptions(raw, sep string) []string {
	var out []string
	for _, p := range strings.Split(raw, sep) {
		if s := strings.TrimSpace(p); s != "" {
			out = append(out, s)
		}
	}
	return out
}
