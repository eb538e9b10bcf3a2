package lint

import (
	"time"

	"masterylint/internal/quiz"
)

// FileStatus describes the lint outcome for one document.
type FileStatus string

const (
	// StatusClean marks a document with no findings.
	StatusClean FileStatus = "clean"
	// StatusFindings marks a document with at least one finding.
	StatusFindings FileStatus = "findings"
	// StatusError marks a document that could not be read.
	StatusError FileStatus = "error"
)

// Results is the top-level payload persisted as results.json.
type Results struct {
	RunID      string       `json:"run_id"`
	Repo       RepoMetadata `json:"repo"`
	IDScope    string       `json:"id_scope"`
	StartedAt  time.Time    `json:"started_at"`
	FinishedAt time.Time    `json:"finished_at"`
	Files      []FileResult `json:"files"`
	Summary    RunSummary   `json:"summary"`
}

// RepoMetadata identifies the linted repository state.
type RepoMetadata struct {
	Name   string `json:"name"`
	VCS    string `json:"vcs"`
	Commit string `json:"commit"`
	Branch string `json:"branch"`
	Dirty  bool   `json:"dirty"`
}

// FileResult captures the outcome for a single markdown document.
// Blocks holds only the blocks that passed validation; BlocksScanned
// counts every complete quiz fence the scanner found.
type FileResult struct {
	Path          string         `json:"path"`
	Status        FileStatus     `json:"status"`
	BlocksScanned int            `json:"blocks_scanned"`
	Blocks        []BlockRecord  `json:"blocks"`
	Findings      []quiz.Finding `json:"findings"`
	ReadErr       string         `json:"read_error,omitempty"`
}

// BlockRecord summarizes a quiz block that parsed and validated cleanly.
type BlockRecord struct {
	Index int    `json:"index"`
	Line  int    `json:"line"`
	ID    string `json:"id"`
	Title string `json:"title"`
	Type  string `json:"type"`
}

// RunSummary aggregates counts across the run.
type RunSummary struct {
	FilesTotal        int            `json:"files_total"`
	FilesClean        int            `json:"files_clean"`
	FilesWithFindings int            `json:"files_with_findings"`
	FilesErrored      int            `json:"files_errored"`
	BlocksTotal       int            `json:"blocks_total"`
	BlocksValid       int            `json:"blocks_valid"`
	FindingsTotal     int            `json:"findings_total"`
	FindingsByKind    map[string]int `json:"findings_by_kind"`
}

// Summarize recomputes the run summary from file results.
func Summarize(files []FileResult) RunSummary {
	summary := RunSummary{
		FilesTotal:     len(files),
		FindingsByKind: map[string]int{},
	}
	for _, file := range files {
		switch file.Status {
		case StatusClean:
			summary.FilesClean++
		case StatusFindings:
			summary.FilesWithFindings++
		case StatusError:
			summary.FilesErrored++
		}
		summary.BlocksTotal += file.BlocksScanned
		summary.BlocksValid += len(file.Blocks)
		summary.FindingsTotal += len(file.Findings)
		for _, finding := range file.Findings {
			summary.FindingsByKind[string(finding.Kind)]++
		}
	}
	return summary
}
