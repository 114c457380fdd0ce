package ingest

import (
	"reflect"
	"strings"
	"testing"
)

func TestParseFreeform(t *testing.T) {
	text := `
What is 2+2?, 3, 4, 5, 6, B

Which planet is red, and dusty?, Mars, Venus, Earth, Pluto, A
`
	res := Normalize(Source{Format: FormatFreeform, Text: text})

	if len(res.Errors) != 0 {
		t.Fatalf("unexpected errors: %v", res.Errors)
	}
	if len(res.Questions) != 2 {
		t.Fatalf("got %d questions, want 2", len(res.Questions))
	}

	// the comma inside the question text survives the rejoin
	q := res.Questions[1]
	if q.Text != "Which planet is red, and dusty?" {
		t.Errorf("text = %q", q.Text)
	}
	if !reflect.DeepEqual(q.Options, []string{"Mars", "Venus", "Earth", "Pluto"}) {
		t.Errorf("options = %v", q.Options)
	}
	if q.CorrectIndex != 0 {
		t.Errorf("correctIndex = %d, want 0", q.CorrectIndex)
	}
}

func TestParseFreeformErrors(t *testing.T) {
	text := "too short, A, B\nok question, a, b, c, d, E"
	res := parseFreeform(text)

	if len(res.Questions) != 0 {
		t.Fatalf("got %d questions, want 0", len(res.Questions))
	}
	if len(res.Errors) != 2 {
		t.Fatalf("got %d errors, want 2: %v", len(res.Errors), res.Errors)
	}
	if !strings.HasPrefix(res.Errors[0], "Line 1:") || !strings.HasPrefix(res.Errors[1], "Line 2:") {
		t.Errorf("errors = %v", res.Errors)
	}
}
