package lint

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"masterylint/internal/quiz"
	"masterylint/internal/scan"
)

// fileOutcome captures the scan and parse result for one document.
// Findings that need cross-file state (id uniqueness) are added later
// by the sequential validation pass.
type fileOutcome struct {
	index  int
	result FileResult
	parsed []quiz.QuizBlock
}

// processFile reads, scans, and parses a single document. The returned
// outcome has no status yet; validation finalizes it.
func processFile(repoRoot, relPath string, index int) fileOutcome {
	outcome := fileOutcome{
		index:  index,
		result: FileResult{Path: relPath, Blocks: []BlockRecord{}, Findings: []quiz.Finding{}},
	}
	data, err := os.ReadFile(filepath.Join(repoRoot, filepath.FromSlash(relPath)))
	if err != nil {
		outcome.result.Status = StatusError
		outcome.result.ReadErr = err.Error()
		return outcome
	}
	scanned := scan.Scan(string(data))
	outcome.result.BlocksScanned = len(scanned.Blocks)
	for _, raw := range scanned.Blocks {
		block, findings := quiz.ParseBlock(raw)
		if len(findings) > 0 {
			outcome.result.Findings = append(outcome.result.Findings, findings...)
			continue
		}
		outcome.result.Blocks = append(outcome.result.Blocks, BlockRecord{
			Index: raw.Index,
			Line:  block.Line,
			ID:    block.ID,
			Title: block.Title,
			Type:  block.RawType,
		})
		outcome.parsed = append(outcome.parsed, block)
	}
	for _, truncated := range scanned.Truncated {
		outcome.result.Findings = append(outcome.result.Findings, quiz.Finding{
			Kind:    quiz.KindTruncatedBlock,
			Line:    truncated.Line,
			Message: "quiz fence opened but never closed",
		})
	}
	return outcome
}

// processFilesSequential scans documents one at a time.
func processFilesSequential(ctx context.Context, repoRoot string, paths []string, observer RunObserver) []fileOutcome {
	outcomes := make([]fileOutcome, 0, len(paths))
	for index, relPath := range paths {
		if ctx.Err() != nil {
			break
		}
		emitFileEvent(observer, FileEvent{Path: relPath, Index: index, Type: FileScanning})
		outcomes = append(outcomes, processFile(repoRoot, relPath, index))
	}
	return outcomes
}

// processFilesConcurrent scans documents with a bounded worker pool and
// preserves discovery ordering in the returned slice.
func processFilesConcurrent(ctx context.Context, repoRoot string, paths []string, workers int, observer RunObserver) []fileOutcome {
	jobs := make(chan int)
	results := make(chan fileOutcome, len(paths))

	for w := 0; w < workers; w++ {
		go func() {
			for index := range jobs {
				relPath := paths[index]
				emitFileEvent(observer, FileEvent{Path: relPath, Index: index, Type: FileScanning})
				results <- processFile(repoRoot, relPath, index)
			}
		}()
	}

	go func() {
		defer close(jobs)
		for index := range paths {
			select {
			case jobs <- index:
			case <-ctx.Done():
				return
			}
		}
	}()

	outcomes := make([]fileOutcome, len(paths))
	received := 0
	for received < len(paths) {
		select {
		case outcome := <-results:
			outcomes[outcome.index] = outcome
			received++
		case <-ctx.Done():
			// Fill the slots we never received so validation can skip them.
			for index := range outcomes {
				if outcomes[index].result.Path == "" {
					outcomes[index] = fileOutcome{
						index: index,
						result: FileResult{
							Path:     paths[index],
							Status:   StatusError,
							Blocks:   []BlockRecord{},
							Findings: []quiz.Finding{},
							ReadErr:  ctx.Err().Error(),
						},
					}
				}
			}
			return outcomes
		}
	}
	return outcomes
}

// emitFileEvent forwards an event with a timestamp when an observer is set.
func emitFileEvent(observer RunObserver, event FileEvent) {
	if observer == nil {
		return
	}
	event.EmittedAt = time.Now()
	observer.OnFileEvent(event)
}
