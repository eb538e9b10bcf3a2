package quiz

// Type tags the kind of a quiz block.
type Type string

const (
	// TypeMultipleChoice marks a block answered by checking options.
	TypeMultipleChoice Type = "multiple-choice"
	// TypeEssay marks a free-form answer block with no options.
	TypeEssay Type = "essay"
	// TypeOther marks any type tag not otherwise recognized.
	TypeOther Type = "other"
)

// QuizBlock is the parsed, validated representation of one masteryls block.
type QuizBlock struct {
	ID      string   `json:"id"`
	Title   string   `json:"title"`
	Type    Type     `json:"type"`
	RawType string   `json:"raw_type"`
	Body    string   `json:"body"`
	Line    int      `json:"line"`
	Options []Option `json:"options,omitempty"`
}

// Option is one answer choice belonging to a quiz block.
type Option struct {
	Checked bool   `json:"checked"`
	Text    string `json:"text"`
}

// classifyType maps a raw type tag onto the known type set.
func classifyType(raw string) Type {
	switch raw {
	case string(TypeMultipleChoice):
		return TypeMultipleChoice
	case string(TypeEssay):
		return TypeEssay
	default:
		return TypeOther
	}
}
