package ingest

import (
	"reflect"
	"testing"
)

// Exporting a normalized set and re-normalizing it must reproduce the same
// list: order, text, options and correct index all intact.
func TestWriteCSVRoundTrip(t *testing.T) {
	original := []ParsedQuestion{
		{Text: "Capital of Bangladesh?", Options: []string{"Dhaka", "Delhi", "Kathmandu"}, CorrectIndex: 0},
		{Text: "To be, or not to be?", Options: []string{"yes", "no"}, CorrectIndex: 1},
		{Text: "Pick the pipe", Options: []string{"a b", "c d", "e f", "g h"}, CorrectIndex: 3},
	}

	csvText := WriteCSV(original)
	res := parseDelimited(csvText)

	if len(res.Errors) != 0 {
		t.Fatalf("round-trip produced errors: %v", res.Errors)
	}
	if !reflect.DeepEqual(res.Questions, original) {
		t.Errorf("round-trip mismatch:\n got %+v\nwant %+v", res.Questions, original)
	}
}
