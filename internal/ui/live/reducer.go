package live

import (
	"fmt"

	"masterylint/internal/lint"
)

// Reduce applies a file event to the UI state.
func Reduce(state State, event lint.FileEvent) State {
	state = ensureRow(state, event)
	state = applyFileEvent(state, event)
	state.Counts = recount(state.Rows)
	if message := formatLastEvent(event); message != "" {
		state.LastEvent = message
	}
	return state
}

// ensureRow grows the state rows to include the target index.
func ensureRow(state State, event lint.FileEvent) State {
	if event.Index < 0 {
		return state
	}
	if event.Index < len(state.Rows) {
		return state
	}
	rows := make([]FileRow, event.Index+1)
	copy(rows, state.Rows)
	for i := len(state.Rows); i < len(rows); i++ {
		rows[i] = FileRow{Index: i, Status: lint.FileQueued}
	}
	state.Rows = rows
	return state
}

// applyFileEvent updates a row with the given event.
func applyFileEvent(state State, event lint.FileEvent) State {
	if event.Index < 0 || event.Index >= len(state.Rows) {
		return state
	}
	row := state.Rows[event.Index]
	if row.Path == "" {
		row.Path = event.Path
	}
	row.Status = event.Type
	if event.Type == lint.FileScanning && row.StartedAt.IsZero() {
		row.StartedAt = event.EmittedAt
	}
	if isTerminalStatus(event.Type) {
		if !event.EmittedAt.IsZero() {
			row.FinishedAt = event.EmittedAt
		}
		row.Blocks = event.Blocks
		row.Findings = event.Findings
		row.Error = event.Error
	}
	state.Rows[event.Index] = row
	return state
}

// isTerminalStatus reports whether a status is final.
func isTerminalStatus(status lint.FileEventType) bool {
	switch status {
	case lint.FileClean, lint.FileFindings, lint.FileError:
		return true
	default:
		return false
	}
}

// recount recomputes status counts for the current rows.
func recount(rows []FileRow) StatusCounts {
	var counts StatusCounts
	for _, row := range rows {
		switch row.Status {
		case lint.FileQueued:
			counts.Queued++
		case lint.FileScanning:
			counts.Scanning++
		case lint.FileClean:
			counts.Done++
			counts.Clean++
		case lint.FileFindings:
			counts.Done++
			counts.Findings++
		case lint.FileError:
			counts.Done++
			counts.Errors++
		}
	}
	return counts
}

// formatLastEvent creates a short footer message for the event.
func formatLastEvent(event lint.FileEvent) string {
	switch event.Type {
	case lint.FileFindings:
		return fmt.Sprintf("%s: %d finding(s)", event.Path, event.Findings)
	case lint.FileError:
		return fmt.Sprintf("%s: read error: %s", event.Path, event.Error)
	case lint.FileClean:
		return fmt.Sprintf("%s: clean", event.Path)
	}
	return ""
}
