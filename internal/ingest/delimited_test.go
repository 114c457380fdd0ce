package ingest

import (
	"reflect"
	"strings"
	"testing"
)

func TestParseDelimitedOptionsCell(t *testing.T) {
	csvText := "question,options,answer\nCapital of Bangladesh?,X|Y|Z,B\n"
	res := Normalize(Source{Format: FormatDelimited, Text: csvText})

	if len(res.Errors) != 0 {
		t.Fatalf("unexpected errors: %v", res.Errors)
	}
	if len(res.Questions) != 1 {
		t.Fatalf("got %d questions, want 1", len(res.Questions))
	}
	q := res.Questions[0]
	if !reflect.DeepEqual(q.Options, []string{"X", "Y", "Z"}) {
		t.Errorf("options = %v", q.Options)
	}
	if q.CorrectIndex != 1 {
		t.Errorf("correctIndex = %d, want 1", q.CorrectIndex)
	}
}

func TestParseDelimitedSemicolonFallback(t *testing.T) {
	csvText := "question,options,answer\nPick one,first;second;third,third\n"
	res := parseDelimited(csvText)

	if len(res.Errors) != 0 {
		t.Fatalf("unexpected errors: %v", res.Errors)
	}
	q := res.Questions[0]
	if !reflect.DeepEqual(q.Options, []string{"first", "second", "third"}) {
		t.Errorf("options = %v", q.Options)
	}
	if q.CorrectIndex != 2 {
		t.Errorf("correctIndex = %d, want 2", q.CorrectIndex)
	}
}

func TestParseDelimitedOptionColumns(t *testing.T) {
	csvText := "q,optionB,optionA,optionC,ans\n2+2?,4,3,5,4\n"
	res := parseDelimited(csvText)

	if len(res.Errors) != 0 {
		t.Fatalf("unexpected errors: %v", res.Errors)
	}
	q := res.Questions[0]
	// columns sort alphabetically: optionA, optionB, optionC
	if !reflect.DeepEqual(q.Options, []string{"3", "4", "5"}) {
		t.Errorf("options = %v", q.Options)
	}
	if q.CorrectIndex != 1 {
		t.Errorf("correctIndex = %d, want 1 (matched by option text)", q.CorrectIndex)
	}
}

func TestParseDelimitedBadRowsCollected(t *testing.T) {
	csvText := strings.Join([]string{
		"question,options,answer",
		",A|B,A",              // row 2: missing question
		"only one option,A,A", // row 3: < 2 options
		"bad answer,A|B,Q",    // row 4: unresolvable answer
		"good,A|B,B",          // row 5: fine
	}, "\n")
	res := parseDelimited(csvText)

	if len(res.Questions) != 1 {
		t.Fatalf("got %d questions, want 1", len(res.Questions))
	}
	if len(res.Errors) != 3 {
		t.Fatalf("got %d errors, want 3: %v", len(res.Errors), res.Errors)
	}
	for i, want := range []string{"Row 2:", "Row 3:", "Row 4:"} {
		if !strings.HasPrefix(res.Errors[i], want) {
			t.Errorf("error %d = %q, want prefix %q", i, res.Errors[i], want)
		}
	}
}

func TestParseDelimitedQuotedCommaInQuestion(t *testing.T) {
	csvText := "question,options,answer\n\"To be, or not to be?\",yes|no,A\n"
	res := parseDelimited(csvText)
	if len(res.Errors) != 0 {
		t.Fatalf("unexpected errors: %v", res.Errors)
	}
	if res.Questions[0].Text != "To be, or not to be?" {
		t.Errorf("text = %q", res.Questions[0].Text)
	}
}

func TestBoundErrors(t *testing.T) {
	errs := []string{"a", "b", "c"}
	if got := BoundErrors(errs, 2); len(got) != 2 {
		t.Errorf("BoundErrors len = %d, want 2", len(got))
	}
	if got := BoundErrors(errs, 8); len(got) != 3 {
		t.Errorf("BoundErrors len = %d, want 3", len(got))
	}
}
