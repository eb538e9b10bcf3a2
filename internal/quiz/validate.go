package quiz

import (
	"fmt"
	"strings"
)

// Validator checks parsed blocks against the corpus invariants.
//
// The seen-id set is the only cross-block state; it belongs to exactly one
// validation pass and must be fed blocks in document (and corpus) order so
// duplicate attribution is deterministic.
type Validator struct {
	seen map[string]string
}

// NewValidator returns a validator with an empty seen-id set.
func NewValidator() *Validator {
	return &Validator{seen: map[string]string{}}
}

// Reset clears the seen-id set, for per-file uniqueness scope.
func (v *Validator) Reset() {
	v.seen = map[string]string{}
}

// Validate checks one block's invariants and records its id.
//
// The first occurrence of an id validates normally; later occurrences are
// reported as duplicates pointing at the first location.
func (v *Validator) Validate(path string, block QuizBlock) []Finding {
	var findings []Finding
	add := func(kind Kind, field, message string) {
		findings = append(findings, Finding{
			Kind:    kind,
			Line:    block.Line,
			BlockID: block.ID,
			Field:   field,
			Message: message,
		})
	}

	id := strings.TrimSpace(block.ID)
	if id == "" {
		add(KindEmptyField, "id", "id is blank")
	} else {
		location := fmt.Sprintf("%s:%d", path, block.Line)
		if first, exists := v.seen[id]; exists {
			add(KindDuplicateID, "id", fmt.Sprintf("id %q already used at %s", id, first))
		} else {
			v.seen[id] = location
		}
	}

	if strings.TrimSpace(block.Title) == "" {
		add(KindEmptyField, "title", "title is blank")
	}
	if strings.TrimSpace(block.Body) == "" {
		add(KindEmptyField, "body", "body is blank")
	}

	if block.Type == TypeMultipleChoice && checkedCount(block.Options) == 0 {
		add(KindNoCorrectAnswer, "options", fmt.Sprintf("multiple-choice block %q has no checked option", id))
	}

	return findings
}

// checkedCount counts the options marked correct.
func checkedCount(options []Option) int {
	count := 0
	for _, option := range options {
		if option.Checked {
			count++
		}
	}
	return count
}
