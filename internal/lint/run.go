package lint

import (
	"context"
	"fmt"
	"path/filepath"
	"sort"
	"time"

	"masterylint/internal/quiz"
	"masterylint/internal/spec"
	"masterylint/internal/vcs"
)

// fallbackCommit labels runs on trees without usable git metadata.
const fallbackCommit = "uncommitted"

// Options configures a lint run.
type Options struct {
	RepoRoot string
	Config   spec.Config
	Workers  int
	IDScope  string
	Observer RunObserver
	// RunIDGenerator overrides run ID generation for tests.
	RunIDGenerator func() (string, error)
	// Clock overrides time.Now for tests.
	Clock func() time.Time
}

// Run lints the configured corpus and returns the aggregated results.
func Run(ctx context.Context, opts Options) (Results, error) {
	if opts.RepoRoot == "" {
		return Results{}, fmt.Errorf("repo root is required")
	}
	now := opts.Clock
	if now == nil {
		now = time.Now
	}
	runID, err := ensureRunID(opts.RunIDGenerator)
	if err != nil {
		return Results{}, err
	}
	workers := opts.Workers
	if workers <= 0 {
		workers = opts.Config.Lint.Workers
	}
	idScope := opts.IDScope
	if idScope == "" {
		idScope = opts.Config.Lint.IDScope
	}

	repoMeta := loadRepoMetadata(ctx, opts.RepoRoot)
	paths, err := Discover(opts.RepoRoot, opts.Config.Corpus)
	if err != nil {
		return Results{}, err
	}

	results := Results{
		RunID:     runID,
		Repo:      repoMeta,
		IDScope:   idScope,
		StartedAt: now().UTC(),
	}
	if opts.Observer != nil {
		opts.Observer.OnRunStart(runID, repoMeta.Name, len(paths))
		for index, relPath := range paths {
			emitFileEvent(opts.Observer, FileEvent{Path: relPath, Index: index, Type: FileQueued})
		}
	}

	var outcomes []fileOutcome
	if workers <= 1 {
		outcomes = processFilesSequential(ctx, opts.RepoRoot, paths, opts.Observer)
	} else {
		outcomes = processFilesConcurrent(ctx, opts.RepoRoot, paths, workers, opts.Observer)
	}

	// Validation runs sequentially in discovery order so duplicate id
	// attribution is deterministic regardless of worker count. Blocks
	// whose validation produced findings drop out of the valid list.
	validator := quiz.NewValidator()
	files := make([]FileResult, 0, len(outcomes))
	for _, outcome := range outcomes {
		if idScope == spec.IDScopeFile {
			validator.Reset()
		}
		records := outcome.result.Blocks
		valid := make([]BlockRecord, 0, len(records))
		for i, block := range outcome.parsed {
			findings := validator.Validate(outcome.result.Path, block)
			if len(findings) > 0 {
				outcome.result.Findings = append(outcome.result.Findings, findings...)
				continue
			}
			valid = append(valid, records[i])
		}
		outcome.result.Blocks = valid
		finalizeFileResult(&outcome.result)
		files = append(files, outcome.result)
		emitFileEvent(opts.Observer, FileEvent{
			Path:     outcome.result.Path,
			Index:    outcome.index,
			Type:     statusEventType(outcome.result.Status),
			Blocks:   len(outcome.result.Blocks),
			Findings: len(outcome.result.Findings),
			Error:    outcome.result.ReadErr,
		})
	}

	results.Files = files
	results.Summary = Summarize(files)
	results.FinishedAt = now().UTC()
	if opts.Observer != nil {
		opts.Observer.OnRunEnd(results)
	}
	if ctx.Err() != nil {
		return results, fmt.Errorf("lint run interrupted: %w", ctx.Err())
	}
	return results, nil
}

// finalizeFileResult orders findings by line and assigns a status.
func finalizeFileResult(result *FileResult) {
	sort.SliceStable(result.Findings, func(i, j int) bool {
		return result.Findings[i].Line < result.Findings[j].Line
	})
	if result.Status == StatusError {
		return
	}
	if len(result.Findings) > 0 {
		result.Status = StatusFindings
		return
	}
	result.Status = StatusClean
}

// statusEventType maps a final file status to its observer event.
func statusEventType(status FileStatus) FileEventType {
	switch status {
	case StatusError:
		return FileError
	case StatusFindings:
		return FileFindings
	default:
		return FileClean
	}
}

// loadRepoMetadata reads git metadata, falling back to a synthetic
// identity when the corpus is not inside a git checkout.
func loadRepoMetadata(ctx context.Context, repoRoot string) RepoMetadata {
	repo, err := vcs.Discover(ctx, repoRoot)
	if err == nil {
		if meta, metaErr := repo.Metadata(ctx); metaErr == nil {
			return RepoMetadata{
				Name:   meta.Name,
				VCS:    meta.VCS,
				Commit: meta.Commit,
				Branch: meta.Branch,
				Dirty:  meta.Dirty,
			}
		}
	}
	return RepoMetadata{
		Name:   filepath.Base(repoRoot),
		VCS:    "none",
		Commit: fallbackCommit,
	}
}

// ensureRunID uses the provided generator or falls back to NewRunID.
func ensureRunID(generator func() (string, error)) (string, error) {
	if generator != nil {
		return generator()
	}
	return NewRunID()
}
