package ingest

import (
	"strconv"
	"strings"
)

// alphaToIndex maps a leading letter A-Z to its alphabet position, or -1.
// Only the first character is inspected, so any word starting with a letter
// in option range reads as that letter.
func alphaToIndex(s string) int {
	x := strings.ToUpper(strings.TrimSpace(s))
	if x == "" {
		return -1
	}
	c := x[0]
	if c < 'A' || c > 'Z' {
		return -1
	}
	return int(c - 'A')
}

// ResolveAnswerIndex maps a raw answer value to the zero-based index of the
// correct option. Every input format funnels through this one algorithm:
//
//  1. a leading letter A-Z, taken as an alphabetical position;
//  2. an integer, tried zero-based first, then one-based;
//  3. the literal option text, matched case-insensitively after trimming.
//
// Step 1 looks at the first character only. An answer written as full option
// text that happens to start with a letter inside the option range resolves
// by that letter, not by the text match: with four options, "Dhaka" means D.
//
// Returns (index, true) on success, (0, false) when the value resolves to
// nothing in range.
func ResolveAnswerIndex(raw string, options []string) (int, bool) {
	a := strings.TrimSpace(raw)
	if a == "" {
		return 0, false
	}

	if idx := alphaToIndex(a); idx >= 0 && idx < len(options) {
		return idx, true
	}

	if n, err := strconv.ParseFloat(a, 64); err == nil {
		if idx, ok := resolveNumericIndex(int(n), options); ok {
			return idx, true
		}
		// out-of-range numbers still get a shot at literal text matching
	}

	for i, o := range options {
		if strings.EqualFold(strings.TrimSpace(o), a) {
			return i, true
		}
	}

	return 0, false
}

// resolveNumericIndex accepts n as a zero-based index when in range, falling
// back to one-based. Ties (n valid under both readings) resolve zero-based.
func resolveNumericIndex(n int, options []string) (int, bool) {
	if n >= 0 && n < len(options) {
		return n, true
	}
	if n >= 1 && n <= len(options) {
		return n - 1, true
	}
	return 0, false
}
