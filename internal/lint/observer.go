package lint

import "time"

// FileEventType identifies a document status update for observers.
type FileEventType string

const (
	// FileQueued marks a document known but not yet scanned.
	FileQueued FileEventType = "queued"
	// FileScanning marks an active scan of a document.
	FileScanning FileEventType = "scanning"
	// FileClean marks a document that produced no findings.
	FileClean FileEventType = "clean"
	// FileFindings marks a document that produced findings.
	FileFindings FileEventType = "findings"
	// FileError marks a document that could not be read.
	FileError FileEventType = "error"
)

// FileEvent carries a single status update for a document.
type FileEvent struct {
	Path      string
	Index     int
	Type      FileEventType
	Blocks    int
	Findings  int
	Error     string
	EmittedAt time.Time
}

// RunObserver receives run lifecycle events for UI or logging.
type RunObserver interface {
	// OnRunStart signals the start of a run.
	OnRunStart(runID string, repo string, fileTotal int)
	// OnFileEvent delivers a document status update.
	OnFileEvent(event FileEvent)
	// OnRunEnd signals run completion.
	OnRunEnd(results Results)
}
