package scan

// RawBlock is one masteryls fenced region extracted from a document.
type RawBlock struct {
	// Index is the zero-based occurrence index among masteryls fences.
	Index int
	// FenceLine is the 1-based line number of the opening fence.
	FenceLine int
	// HeaderText is the raw text between the fences, expected to be JSON.
	HeaderText string
	// Options holds the candidate answer lines following the closing fence.
	Options []OptionLine
}

// OptionLine is one candidate answer line in the run after a block's fence.
type OptionLine struct {
	Line int
	Text string
}

// Truncated reports a masteryls fence that was opened but never closed.
type Truncated struct {
	Index int
	Line  int
}

// Result holds the blocks and scanner findings for one document.
type Result struct {
	Blocks    []RawBlock
	Truncated []Truncated
}
