package ingest

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

// parseStructured handles machine-written JSON: either a bare array of
// question objects or an object with a "questions" array. Each item supplies
// text/question, an options array or optionA..-style fields, an answer under
// any of the accepted keys, and an optional hint/explanation.
func parseStructured(text string) Result {
	var data any
	if err := json.Unmarshal([]byte(text), &data); err != nil {
		return Result{Errors: []string{fmt.Sprintf("Invalid JSON: %s", err)}}
	}

	items, ok := data.([]any)
	if !ok {
		obj, isObj := data.(map[string]any)
		if isObj {
			items, ok = obj["questions"].([]any)
		}
		if !ok {
			return Result{Errors: []string{"JSON must contain an array of questions or an object with a 'questions' array"}}
		}
	}

	var res Result
	for idx, raw := range items {
		questionNum := idx + 1
		item, isMap := raw.(map[string]any)
		if !isMap {
			res.Errors = append(res.Errors, fmt.Sprintf("Question %d: entry is not an object", questionNum))
			continue
		}

		qText := strings.TrimSpace(stringValue(firstOf(item, "text", "question")))
		if qText == "" {
			res.Errors = append(res.Errors, fmt.Sprintf("Question %d: missing 'text' or 'question' field", questionNum))
			continue
		}

		options := structuredOptions(item)
		if len(options) < 2 {
			res.Errors = append(res.Errors, fmt.Sprintf("Question %d: need at least 2 options", questionNum))
			continue
		}

		answerRaw := firstOf(item, "answer", "correct", "correctAnswer", "correctIndex")
		correctIndex, resolved := resolveAnswerValue(answerRaw, options)
		if !resolved {
			res.Errors = append(res.Errors, fmt.Sprintf("Question %d: invalid answer %q (expected A/B/1..N/0..N-1/or option text)", questionNum, stringValue(answerRaw)))
			continue
		}

		q := ParsedQuestion{Text: qText, Options: options, CorrectIndex: correctIndex}
		if hint := strings.TrimSpace(stringValue(firstOf(item, "hint", "explanation"))); hint != "" {
			q.Hint = &hint
		}
		res.Questions = append(res.Questions, q)
	}

	if len(res.Questions) == 0 && len(res.Errors) == 0 {
		res.Errors = append(res.Errors, "No valid questions found in JSON")
	}
	return res
}

// resolveAnswerValue routes a JSON answer value into the common resolution
// algorithm. Numbers go straight to the index logic; everything else goes
// through letter/number/text matching as a string.
func resolveAnswerValue(v any, options []string) (int, bool) {
	switch a := v.(type) {
	case nil:
		return 0, false
	case float64:
		return resolveNumericIndex(int(a), options)
	default:
		return ResolveAnswerIndex(stringValue(v), options)
	}
}

// structuredOptions reads either an options array or optionX fields sorted
// by key, dropping empties.
func structuredOptions(item map[string]any) []string {
	if arr, ok := item["options"].([]any); ok {
		var options []string
		for _, o := range arr {
			if s := strings.TrimSpace(stringValue(o)); s != "" {
				options = append(options, s)
			}
		}
		return options
	}

	var keys []string
	for k := range item {
		if optionColumnRe.MatchString(k) {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)

	var options []string
	for _, k := range keys {
		if s := strings.TrimSpace(stringValue(item[k])); s != "" {
			options = append(options, s)
		}
	}
	return options
}

func firstOf(item map[string]any, keys ...string) any {
	for _, k := range keys {
		if v, ok := item[k]; ok && v != nil {
			return v
		}
	}
	return nil
}

func stringValue(v any) string {
	switch s := v.(type) {
	case nil:
		return ""
	case string:
		return s
	case float64:
		// JSON numbers: render 2 as "2", not "2.000000"
		if s == float64(int64(s)) {
			return fmt.Sprintf("%d", int64(s))
		}
		return fmt.Sprintf("%g", s)
	default:
		return fmt.Sprintf("%v", v)
	}
}
