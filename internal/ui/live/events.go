package live

import "masterylint/internal/lint"

// EventKind identifies the type of live UI event.
type EventKind int

const (
	// EventRunStart signals the start of a run.
	EventRunStart EventKind = iota
	// EventFile delivers a document status update.
	EventFile
	// EventRunEnd signals run completion.
	EventRunEnd
)

// Event carries a UI update payload.
type Event struct {
	Kind      EventKind
	RunID     string
	Repo      string
	FileTotal int
	File      lint.FileEvent
	Summary   lint.RunSummary
}
