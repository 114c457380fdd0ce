// Package ingest converts administrator-supplied question content, in any of
// the supported input formats, into a canonical list of parsed questions.
// Parsing is row-tolerant: a malformed row contributes one error string and
// is skipped, it never aborts the batch. Whether any error should reject the
// whole upload is the caller's policy, not this package's.
package ingest

import "fmt"

// Format discriminates the input shape. It is always supplied explicitly by
// the upload form, never sniffed from the payload.
type Format string

const (
	FormatDelimited   Format = "delimited"   // CSV with a header line
	FormatSpreadsheet Format = "spreadsheet" // XLSX, first sheet only
	FormatFreeform    Format = "freeform"    // one question per line, comma-separated
	FormatStructured  Format = "structured"  // JSON array of question objects
	FormatManual      Format = "manual"      // pre-structured form entries
)

// ParsedQuestion is the canonical output shape. CorrectIndex is zero-based
// and always within range of Options.
type ParsedQuestion struct {
	Text         string   `json:"text"`
	Options      []string `json:"options"`
	CorrectIndex int      `json:"correct_index"`
	Hint         *string  `json:"hint,omitempty"`
}

// ManualQuestion is one entry of the manual-entry form.
type ManualQuestion struct {
	Text    string `json:"text"`
	OptionA string `json:"optionA"`
	OptionB string `json:"optionB"`
	OptionC string `json:"optionC"`
	OptionD string `json:"optionD"`
	Answer  string `json:"answer"` // single letter A-D
}

// Source is the discriminated input to Normalize. Text carries delimited,
// freeform and structured payloads; File carries spreadsheet bytes; Manual
// carries manual-entry rows.
type Source struct {
	Format Format
	Text   string
	File   []byte
	Manual []ManualQuestion
}

// Result is the outcome of normalizing one batch. Questions holds the rows
// that parsed cleanly; Errors holds one human-readable entry per rejected
// row, in input order.
type Result struct {
	Questions []ParsedQuestion `json:"questions"`
	Errors    []string         `json:"errors"`
}

// Normalize dispatches on the source format. Unknown formats are the only
// whole-batch failure this function itself produces.
func Normalize(src Source) Result {
	switch src.Format {
	case FormatDelimited:
		return parseDelimited(src.Text)
	case FormatSpreadsheet:
		return parseSpreadsheet(src.File)
	case FormatFreeform:
		return parseFreeform(src.Text)
	case FormatStructured:
		return parseStructured(src.Text)
	case FormatManual:
		return parseManual(src.Manual)
	default:
		return Result{Errors: []string{fmt.Sprintf("unknown input format %q", src.Format)}}
	}
}

// BoundErrors truncates an error list for display. A batch with hundreds of
// bad rows should not flood the admin form.
func BoundErrors(errs []string, max int) []string {
	if max <= 0 || len(errs) <= max {
		return errs
	}
	return errs[:max]
}
