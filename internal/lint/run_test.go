package lint

import (
	"sync"
	"testing"

	"masterylint/internal/quiz"
	"masterylint/internal/spec"
	"masterylint/internal/testutil"
)

const cleanDoc = "# Cows\n\n```masteryls\n{\"id\": \"q-cow-legs\", \"title\": \"Legs\", \"type\": \"multiple-choice\", \"body\": \"How many legs does a cow have?\"}\n```\n- [x] Four\n- [ ] Three\n"

const duplicateDoc = "# Cows again\n\n```masteryls\n{\"id\": \"q-cow-legs\", \"title\": \"Legs again\", \"type\": \"essay\", \"body\": \"Describe cow legs.\"}\n```\n"

const truncatedDoc = "# Broken\n\n```masteryls\n{\"id\": \"q-broken\", \"title\": \"Broken\", \"type\": \"essay\", \"body\": \"b\"}\n"

func runOptions(root string, cfg spec.Config) Options {
	return Options{
		RepoRoot: root,
		Config:   cfg,
		RunIDGenerator: func() (string, error) {
			return "20240102T030405Z-deadbeef", nil
		},
	}
}

func corpusConfig() spec.Config {
	return spec.Config{
		Version: 1,
		Corpus:  spec.CorpusConfig{Roots: []string{"."}, Include: []string{"*.md"}},
		Lint:    spec.LintConfig{IDScope: spec.IDScopeCorpus, Workers: 1},
		Output:  spec.OutputConfig{Dir: "out"},
	}
}

// TestRunCleanCorpus verifies a corpus with no findings.
func TestRunCleanCorpus(t *testing.T) {
	ctx := testutil.Context(t, 0)
	root := t.TempDir()
	testutil.WriteCorpusFile(t, root, "lessons/cow.md", cleanDoc)

	results, err := Run(ctx, runOptions(root, corpusConfig()))
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if results.RunID != "20240102T030405Z-deadbeef" {
		t.Fatalf("unexpected run id %q", results.RunID)
	}
	if len(results.Files) != 1 {
		t.Fatalf("expected 1 file, got %d", len(results.Files))
	}
	file := results.Files[0]
	if file.Status != StatusClean {
		t.Fatalf("expected clean status, got %q (findings %v)", file.Status, file.Findings)
	}
	if len(file.Blocks) != 1 {
		t.Fatalf("expected 1 block, got %d", len(file.Blocks))
	}
	if file.Blocks[0].ID != "q-cow-legs" {
		t.Fatalf("unexpected block id %q", file.Blocks[0].ID)
	}
	if results.Summary.FilesClean != 1 || results.Summary.FindingsTotal != 0 {
		t.Fatalf("unexpected summary %+v", results.Summary)
	}
}

// TestRunDuplicateAcrossFiles verifies corpus-scope id uniqueness points
// at the first occurrence.
func TestRunDuplicateAcrossFiles(t *testing.T) {
	ctx := testutil.Context(t, 0)
	root := t.TempDir()
	testutil.WriteCorpusFile(t, root, "lessons/cow.md", cleanDoc)
	testutil.WriteCorpusFile(t, root, "lessons/cow2.md", duplicateDoc)

	results, err := Run(ctx, runOptions(root, corpusConfig()))
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if len(results.Files) != 2 {
		t.Fatalf("expected 2 files, got %d", len(results.Files))
	}
	first, second := results.Files[0], results.Files[1]
	if first.Status != StatusClean {
		t.Fatalf("expected first file clean, got %q", first.Status)
	}
	if second.Status != StatusFindings || len(second.Findings) != 1 {
		t.Fatalf("expected one finding in second file, got %+v", second)
	}
	finding := second.Findings[0]
	if finding.Kind != quiz.KindDuplicateID {
		t.Fatalf("expected duplicate_id, got %q", finding.Kind)
	}
	if len(second.Blocks) != 0 || second.BlocksScanned != 1 {
		t.Fatalf("expected duplicate block excluded from valid list, got %+v", second)
	}
	if results.Summary.FindingsByKind["duplicate_id"] != 1 {
		t.Fatalf("unexpected summary %+v", results.Summary)
	}
	if results.Summary.BlocksTotal != 2 || results.Summary.BlocksValid != 1 {
		t.Fatalf("unexpected block counts %+v", results.Summary)
	}
}

const noCorrectDoc = "# Pick\n\n```masteryls\n{\"id\": \"q-pick\", \"title\": \"Pick\", \"type\": \"multiple-choice\", \"body\": \"Pick one.\"}\n```\n- [ ] A\n- [ ] B\n"

// TestRunExcludesInvalidBlocks verifies a block that fails validation
// never appears in the valid-block list or counts.
func TestRunExcludesInvalidBlocks(t *testing.T) {
	ctx := testutil.Context(t, 0)
	root := t.TempDir()
	testutil.WriteCorpusFile(t, root, "lessons/pick.md", noCorrectDoc)

	results, err := Run(ctx, runOptions(root, corpusConfig()))
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	file := results.Files[0]
	if file.Status != StatusFindings || len(file.Findings) != 1 {
		t.Fatalf("expected one finding, got %+v", file)
	}
	if file.Findings[0].Kind != quiz.KindNoCorrectAnswer {
		t.Fatalf("expected no_correct_answer, got %q", file.Findings[0].Kind)
	}
	if len(file.Blocks) != 0 {
		t.Fatalf("expected invalid block excluded, got %+v", file.Blocks)
	}
	if file.BlocksScanned != 1 {
		t.Fatalf("expected 1 scanned block, got %d", file.BlocksScanned)
	}
	if results.Summary.BlocksTotal != 1 || results.Summary.BlocksValid != 0 {
		t.Fatalf("unexpected block counts %+v", results.Summary)
	}
}

// TestRunFileScopeAllowsCrossFileReuse verifies per-file scope resets
// the seen-id set between documents.
func TestRunFileScopeAllowsCrossFileReuse(t *testing.T) {
	ctx := testutil.Context(t, 0)
	root := t.TempDir()
	testutil.WriteCorpusFile(t, root, "lessons/cow.md", cleanDoc)
	testutil.WriteCorpusFile(t, root, "lessons/cow2.md", duplicateDoc)

	cfg := corpusConfig()
	cfg.Lint.IDScope = spec.IDScopeFile
	results, err := Run(ctx, runOptions(root, cfg))
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	for _, file := range results.Files {
		if file.Status != StatusClean {
			t.Fatalf("expected all files clean, got %q for %s: %v", file.Status, file.Path, file.Findings)
		}
	}
}

// TestRunTruncatedBlock verifies an unclosed fence is reported.
func TestRunTruncatedBlock(t *testing.T) {
	ctx := testutil.Context(t, 0)
	root := t.TempDir()
	testutil.WriteCorpusFile(t, root, "lessons/broken.md", truncatedDoc)

	results, err := Run(ctx, runOptions(root, corpusConfig()))
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	file := results.Files[0]
	if file.Status != StatusFindings || len(file.Findings) != 1 {
		t.Fatalf("expected one finding, got %+v", file)
	}
	if file.Findings[0].Kind != quiz.KindTruncatedBlock {
		t.Fatalf("expected truncated_block, got %q", file.Findings[0].Kind)
	}
	if file.Findings[0].Line != 3 {
		t.Fatalf("expected finding at line 3, got %d", file.Findings[0].Line)
	}
}

// TestRunConcurrentMatchesSequential verifies worker count does not
// change results or duplicate attribution.
func TestRunConcurrentMatchesSequential(t *testing.T) {
	ctx := testutil.Context(t, 0)
	root := t.TempDir()
	testutil.WriteCorpusFile(t, root, "lessons/cow.md", cleanDoc)
	testutil.WriteCorpusFile(t, root, "lessons/cow2.md", duplicateDoc)
	testutil.WriteCorpusFile(t, root, "lessons/broken.md", truncatedDoc)

	sequential, err := Run(ctx, runOptions(root, corpusConfig()))
	if err != nil {
		t.Fatalf("sequential run: %v", err)
	}

	cfg := corpusConfig()
	cfg.Lint.Workers = 4
	concurrent, err := Run(ctx, runOptions(root, cfg))
	if err != nil {
		t.Fatalf("concurrent run: %v", err)
	}

	if len(sequential.Files) != len(concurrent.Files) {
		t.Fatalf("file count mismatch: %d vs %d", len(sequential.Files), len(concurrent.Files))
	}
	for i := range sequential.Files {
		seq, conc := sequential.Files[i], concurrent.Files[i]
		if seq.Path != conc.Path || seq.Status != conc.Status || len(seq.Findings) != len(conc.Findings) {
			t.Fatalf("file %d diverged: %+v vs %+v", i, seq, conc)
		}
	}
	if sequential.Summary.FindingsTotal != concurrent.Summary.FindingsTotal {
		t.Fatalf("summary mismatch: %+v vs %+v", sequential.Summary, concurrent.Summary)
	}
}

// recordingObserver captures events for assertions.
type recordingObserver struct {
	mu        sync.Mutex
	runID     string
	fileTotal int
	events    []FileEvent
	ended     bool
}

func (r *recordingObserver) OnRunStart(runID string, _ string, fileTotal int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.runID = runID
	r.fileTotal = fileTotal
}

func (r *recordingObserver) OnFileEvent(event FileEvent) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, event)
}

func (r *recordingObserver) OnRunEnd(Results) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ended = true
}

// TestRunEmitsObserverEvents verifies the observer lifecycle.
func TestRunEmitsObserverEvents(t *testing.T) {
	ctx := testutil.Context(t, 0)
	root := t.TempDir()
	testutil.WriteCorpusFile(t, root, "lessons/cow.md", cleanDoc)

	observer := &recordingObserver{}
	opts := runOptions(root, corpusConfig())
	opts.Observer = observer
	if _, err := Run(ctx, opts); err != nil {
		t.Fatalf("run: %v", err)
	}

	if observer.runID == "" || observer.fileTotal != 1 || !observer.ended {
		t.Fatalf("observer lifecycle incomplete: %+v", observer)
	}
	var sawQueued, sawScanning, sawClean bool
	for _, event := range observer.events {
		switch event.Type {
		case FileQueued:
			sawQueued = true
		case FileScanning:
			sawScanning = true
		case FileClean:
			sawClean = true
		}
	}
	if !sawQueued || !sawScanning || !sawClean {
		t.Fatalf("missing event types in %+v", observer.events)
	}
}
