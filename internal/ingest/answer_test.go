package ingest

import "testing"

func TestResolveAnswerIndex(t *testing.T) {
	options := []string{"Dhaka", "Delhi", "Kathmandu", "Colombo"}

	tests := []struct {
		name    string
		raw     string
		want    int
		wantOK  bool
	}{
		{name: "letter", raw: "C", want: 2, wantOK: true},
		{name: "lowercase letter", raw: "c", want: 2, wantOK: true},
		{name: "letter with whitespace", raw: " B ", want: 1, wantOK: true},
		{name: "zero-based index", raw: "2", want: 2, wantOK: true},
		{name: "one-based index", raw: "3", want: 2, wantOK: true},
		{name: "zero wins tie over one-based", raw: "0", want: 0, wantOK: true},
		{name: "one-based only when zero-based out of range", raw: "4", want: 3, wantOK: true},
		{name: "option text", raw: "Kathmandu", want: 2, wantOK: true},
		{name: "option text case-insensitive", raw: "kathmandu ", want: 2, wantOK: true},
		{name: "letter out of range falls to text", raw: "Z", wantOK: false},
		{name: "number out of range", raw: "5", wantOK: false},
		{name: "negative number", raw: "-1", wantOK: false},
		{name: "empty", raw: "", wantOK: false},
		{name: "garbage", raw: "??", wantOK: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ResolveAnswerIndex(tt.raw, options)
			if ok != tt.wantOK {
				t.Fatalf("ResolveAnswerIndex(%q) ok = %v, want %v", tt.raw, ok, tt.wantOK)
			}
			if ok && got != tt.want {
				t.Errorf("ResolveAnswerIndex(%q) = %d, want %d", tt.raw, got, tt.want)
			}
		})
	}
}

// The letter rule reads only the first character and runs before the text
// match, so option text that starts with a letter inside the option range
// resolves as that letter. "Dhaka" with four options means D, even though
// Dhaka is the first option; "Colombo" means C, which happens to be wrong.
func TestResolveAnswerIndexLetterBeatsText(t *testing.T) {
	options := []string{"Dhaka", "Delhi", "Kathmandu", "Colombo"}

	if got, ok := ResolveAnswerIndex("Dhaka", options); !ok || got != 3 {
		t.Errorf("ResolveAnswerIndex(Dhaka) = (%d, %v), want (3, true)", got, ok)
	}
	if got, ok := ResolveAnswerIndex("Colombo", options); !ok || got != 2 {
		t.Errorf("ResolveAnswerIndex(Colombo) = (%d, %v), want (2, true)", got, ok)
	}
	// Text starting past the option range still reaches the text match.
	if got, ok := ResolveAnswerIndex("Kathmandu", options); !ok || got != 2 {
		t.Errorf("ResolveAnswerIndex(Kathmandu) = (%d, %v), want (2, true)", got, ok)
	}
}

// All encodings of the same answer must land on the same index.
func TestResolveAnswerIndexEquivalence(t *testing.T) {
	options := []string{"red", "green", "blue", "yellow"}
	for _, raw := range []string{"C", "2", "3", "blue", "BLUE"} {
		got, ok := ResolveAnswerIndex(raw, options)
		if !ok || got != 2 {
			t.Errorf("ResolveAnswerIndex(%q) = (%d, %v), want (2, true)", raw, got, ok)
		}
	}
}
