package live

import (
	"time"

	"masterylint/internal/lint"
)

// FileRow holds UI state for a single document.
type FileRow struct {
	Index      int
	Path       string
	Status     lint.FileEventType
	Blocks     int
	Findings   int
	Error      string
	StartedAt  time.Time
	FinishedAt time.Time
}

// StatusCounts aggregates counts by status bucket.
type StatusCounts struct {
	Queued   int
	Scanning int
	Clean    int
	Findings int
	Errors   int
	Done     int
}

// State captures the live UI state for a lint run.
type State struct {
	RunID     string
	Repo      string
	FileTotal int
	StartedAt time.Time
	LastEvent string
	Finished  bool
	Rows      []FileRow
	Counts    StatusCounts
	Summary   lint.RunSummary
}
