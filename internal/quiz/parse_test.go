package quiz

import (
	"errors"
	"testing"

	"masterylint/internal/scan"
)

// TestParseBlockMultipleChoice verifies the concrete reference block parses.
func TestParseBlockMultipleChoice(t *testing.T) {
	raw := scan.RawBlock{
		FenceLine:  10,
		HeaderText: `{"id":"Q1","title":"T","type":"multiple-choice","body":"B"}`,
		Options: []scan.OptionLine{
			{Line: 13, Text: "- [ ] A"},
			{Line: 14, Text: "- [x] B"},
			{Line: 15, Text: "- [ ] C"},
		},
	}
	block, findings := ParseBlock(raw)
	if len(findings) != 0 {
		t.Fatalf("unexpected findings: %+v", findings)
	}
	if block.ID != "Q1" || block.Type != TypeMultipleChoice || block.Line != 10 {
		t.Fatalf("unexpected block: %+v", block)
	}
	want := []Option{
		{Checked: false, Text: "A"},
		{Checked: true, Text: "B"},
		{Checked: false, Text: "C"},
	}
	if len(block.Options) != len(want) {
		t.Fatalf("expected %d options, got %d", len(want), len(block.Options))
	}
	for i, option := range block.Options {
		if option != want[i] {
			t.Fatalf("option %d: expected %+v, got %+v", i, want[i], option)
		}
	}
}

// TestParseBlockEssayWithoutOptions verifies essay blocks need no options.
func TestParseBlockEssayWithoutOptions(t *testing.T) {
	raw := scan.RawBlock{
		FenceLine:  1,
		HeaderText: `{"id":"a","title":"T","type":"essay","body":"B"}`,
	}
	block, findings := ParseBlock(raw)
	if len(findings) != 0 {
		t.Fatalf("unexpected findings: %+v", findings)
	}
	if block.Type != TypeEssay {
		t.Fatalf("expected essay type, got %q", block.Type)
	}
	if len(block.Options) != 0 {
		t.Fatalf("expected no options, got %+v", block.Options)
	}
}

// TestParseBlockUnknownType verifies open-set types map to other.
func TestParseBlockUnknownType(t *testing.T) {
	raw := scan.RawBlock{
		FenceLine:  1,
		HeaderText: `{"id":"a","title":"T","type":"matching","body":"B"}`,
	}
	block, findings := ParseBlock(raw)
	if len(findings) != 0 {
		t.Fatalf("unexpected findings: %+v", findings)
	}
	if block.Type != TypeOther || block.RawType != "matching" {
		t.Fatalf("unexpected type mapping: %+v", block)
	}
}

// TestParseBlockMalformedHeader verifies invalid JSON is reported.
func TestParseBlockMalformedHeader(t *testing.T) {
	raw := scan.RawBlock{FenceLine: 4, HeaderText: `{"id": "a",`}
	_, findings := ParseBlock(raw)
	if len(findings) != 1 {
		t.Fatalf("expected 1 finding, got %+v", findings)
	}
	if findings[0].Kind != KindMalformedHeader || findings[0].Line != 4 {
		t.Fatalf("unexpected finding: %+v", findings[0])
	}
}

// TestParseBlockMissingFields verifies each absent key is reported.
func TestParseBlockMissingFields(t *testing.T) {
	raw := scan.RawBlock{FenceLine: 1, HeaderText: `{"id":"a","type":"essay"}`}
	_, findings := ParseBlock(raw)
	if len(findings) != 2 {
		t.Fatalf("expected 2 findings, got %+v", findings)
	}
	fields := map[string]bool{}
	for _, finding := range findings {
		if finding.Kind != KindMissingField {
			t.Fatalf("unexpected kind: %+v", finding)
		}
		fields[finding.Field] = true
	}
	if !fields["title"] || !fields["body"] {
		t.Fatalf("expected title and body to be missing, got %+v", fields)
	}
}

// TestParseBlockMalformedOptionLine verifies bad checkbox lines are reported.
func TestParseBlockMalformedOptionLine(t *testing.T) {
	raw := scan.RawBlock{
		FenceLine:  1,
		HeaderText: `{"id":"a","title":"T","type":"multiple-choice","body":"B"}`,
		Options: []scan.OptionLine{
			{Line: 5, Text: "- [x] fine"},
			{Line: 6, Text: "- [?] broken"},
		},
	}
	_, findings := ParseBlock(raw)
	if len(findings) != 1 {
		t.Fatalf("expected 1 finding, got %+v", findings)
	}
	if findings[0].Kind != KindMalformedOption || findings[0].Line != 6 {
		t.Fatalf("unexpected finding: %+v", findings[0])
	}
}

// TestParseOption verifies checkbox parsing accepts both markers.
func TestParseOption(t *testing.T) {
	option, err := ParseOption("- [X] Upper")
	if err != nil {
		t.Fatalf("parse option: %v", err)
	}
	if !option.Checked || option.Text != "Upper" {
		t.Fatalf("unexpected option: %+v", option)
	}
	option, err = ParseOption("- [ ] text with [x] inside")
	if err != nil {
		t.Fatalf("parse option: %v", err)
	}
	if option.Checked || option.Text != "text with [x] inside" {
		t.Fatalf("unexpected option: %+v", option)
	}
}

// TestParseOptionRejectsBadSyntax verifies the sentinel error is returned.
func TestParseOptionRejectsBadSyntax(t *testing.T) {
	for _, line := range []string{"- []", "- [y] nope", "- no box", "* [x] star"} {
		if _, err := ParseOption(line); !errors.Is(err, ErrMalformedOption) {
			t.Fatalf("%q: expected ErrMalformedOption, got %v", line, err)
		}
	}
}
