package quiz

import "fmt"

// Kind identifies a lint finding category.
type Kind string

const (
	// KindTruncatedBlock marks a fence opened but never closed.
	KindTruncatedBlock Kind = "truncated_block"
	// KindMalformedHeader marks a header that is not a valid JSON object.
	KindMalformedHeader Kind = "malformed_header"
	// KindMissingField marks a required header key that is absent.
	KindMissingField Kind = "missing_field"
	// KindMalformedOption marks an option line with invalid checkbox syntax.
	KindMalformedOption Kind = "malformed_option"
	// KindDuplicateID marks an id already seen in the current scope.
	KindDuplicateID Kind = "duplicate_id"
	// KindNoCorrectAnswer marks a choice block with zero checked options.
	KindNoCorrectAnswer Kind = "no_correct_answer"
	// KindEmptyField marks a required field that is blank after trimming.
	KindEmptyField Kind = "empty_field"
)

// Finding is one problem attached to a block occurrence in a document.
type Finding struct {
	Kind    Kind   `json:"kind"`
	Line    int    `json:"line"`
	BlockID string `json:"block_id,omitempty"`
	Field   string `json:"field,omitempty"`
	Message string `json:"message"`
}

// String renders a finding in path-less "line: kind: message" form.
func (f Finding) String() string {
	return fmt.Sprintf("line %d: %s: %s", f.Line, f.Kind, f.Message)
}
