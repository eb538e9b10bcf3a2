package quiz

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"masterylint/internal/scan"
)

// requiredHeaderKeys lists the keys every block header must carry.
var requiredHeaderKeys = []string{"id", "title", "type", "body"}

// ErrMalformedOption indicates an option line with invalid checkbox syntax.
var ErrMalformedOption = errors.New("malformed option line")

// ParseBlock converts a raw scanned block into a QuizBlock.
//
// All parse problems are returned as findings; a block with any finding is
// not usable and the zero QuizBlock is returned alongside them.
func ParseBlock(raw scan.RawBlock) (QuizBlock, []Finding) {
	var findings []Finding

	header, headerFindings := parseHeader(raw)
	findings = append(findings, headerFindings...)

	options := make([]Option, 0, len(raw.Options))
	for _, line := range raw.Options {
		option, err := ParseOption(line.Text)
		if err != nil {
			findings = append(findings, Finding{
				Kind:    KindMalformedOption,
				Line:    line.Line,
				BlockID: header.ID,
				Message: fmt.Sprintf("not a checkbox option: %q", line.Text),
			})
			continue
		}
		options = append(options, option)
	}

	if len(findings) > 0 {
		return QuizBlock{}, findings
	}
	return QuizBlock{
		ID:      header.ID,
		Title:   header.Title,
		Type:    classifyType(header.Type),
		RawType: header.Type,
		Body:    header.Body,
		Line:    raw.FenceLine,
		Options: options,
	}, nil
}

// blockHeader mirrors the JSON object inside a masteryls fence.
type blockHeader struct {
	ID    string
	Title string
	Type  string
	Body  string
}

// parseHeader decodes the fence content as a JSON header object.
func parseHeader(raw scan.RawBlock) (blockHeader, []Finding) {
	text := strings.TrimSpace(raw.HeaderText)
	var fields map[string]json.RawMessage
	if err := json.Unmarshal([]byte(text), &fields); err != nil {
		return blockHeader{}, []Finding{{
			Kind:    KindMalformedHeader,
			Line:    raw.FenceLine,
			Message: fmt.Sprintf("header is not a JSON object: %v", err),
		}}
	}

	var findings []Finding
	values := map[string]string{}
	for _, key := range requiredHeaderKeys {
		rawValue, ok := fields[key]
		if !ok {
			findings = append(findings, Finding{
				Kind:    KindMissingField,
				Line:    raw.FenceLine,
				Field:   key,
				Message: fmt.Sprintf("required key %q is missing", key),
			})
			continue
		}
		var value string
		if err := json.Unmarshal(rawValue, &value); err != nil {
			findings = append(findings, Finding{
				Kind:    KindMalformedHeader,
				Line:    raw.FenceLine,
				Field:   key,
				Message: fmt.Sprintf("key %q is not a string: %v", key, err),
			})
			continue
		}
		values[key] = value
	}
	if len(findings) > 0 {
		return blockHeader{ID: values["id"]}, findings
	}
	return blockHeader{
		ID:    values["id"],
		Title: values["title"],
		Type:  values["type"],
		Body:  values["body"],
	}, nil
}

// ParseOption parses a single "- [ ]" / "- [x]" checkbox line.
//
// The leading "- " marker is expected to be present; the x is matched
// case-insensitively. The option text is the remainder of the line.
func ParseOption(line string) (Option, error) {
	rest, ok := strings.CutPrefix(line, "- ")
	if !ok {
		return Option{}, ErrMalformedOption
	}
	rest = strings.TrimLeft(rest, " ")
	if len(rest) < 3 || rest[0] != '[' || rest[2] != ']' {
		return Option{}, ErrMalformedOption
	}
	var checked bool
	switch rest[1] {
	case ' ':
		checked = false
	case 'x', 'X':
		checked = true
	default:
		return Option{}, ErrMalformedOption
	}
	text := rest[3:]
	if text != "" {
		cut, ok := strings.CutPrefix(text, " ")
		if !ok {
			return Option{}, ErrMalformedOption
		}
		text = cut
	}
	return Option{Checked: checked, Text: text}, nil
}
