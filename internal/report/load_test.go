package report

import (
	"strings"
	"testing"

	"masterylint/internal/lint"
	"masterylint/internal/quiz"
)

// TestResolveRunByCommitAndRunID verifies run resolution by commit and run ID.
func TestResolveRunByCommitAndRunID(t *testing.T) {
	root := t.TempDir()
	first := lint.Results{
		RunID: "run-1",
		Repo:  lint.RepoMetadata{Commit: "abc"},
	}
	if _, err := lint.WriteRunOutputs(first, root); err != nil {
		t.Fatalf("write outputs: %v", err)
	}
	second := lint.Results{
		RunID: "run-2",
		Repo:  lint.RepoMetadata{Commit: "def"},
	}
	if _, err := lint.WriteRunOutputs(second, root); err != nil {
		t.Fatalf("write outputs: %v", err)
	}

	resolved, _, err := ResolveRun(root, "", "abc")
	if err != nil {
		t.Fatalf("resolve commit: %v", err)
	}
	if resolved.RunID != "run-1" {
		t.Fatalf("unexpected run id: %s", resolved.RunID)
	}

	resolved, _, err = ResolveRun(root, "", "run-2")
	if err != nil {
		t.Fatalf("resolve run id: %v", err)
	}
	if resolved.Repo.Commit != "def" {
		t.Fatalf("unexpected commit: %s", resolved.Repo.Commit)
	}
}

// TestResolveRunLatestForCommit verifies the newest run wins per commit.
func TestResolveRunLatestForCommit(t *testing.T) {
	root := t.TempDir()
	for _, runID := range []string{"20240101T000000Z-aa", "20240102T000000Z-bb"} {
		results := lint.Results{RunID: runID, Repo: lint.RepoMetadata{Commit: "abc"}}
		if _, err := lint.WriteRunOutputs(results, root); err != nil {
			t.Fatalf("write outputs: %v", err)
		}
	}
	resolved, _, err := ResolveRun(root, "", "abc")
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if resolved.RunID != "20240102T000000Z-bb" {
		t.Fatalf("expected latest run, got %s", resolved.RunID)
	}
}

// TestBuildReportHTML verifies report HTML includes findings and metadata.
func TestBuildReportHTML(t *testing.T) {
	results := lint.Results{
		RunID:   "20240102T030405Z-deadbeef",
		Repo:    lint.RepoMetadata{Name: "course", Commit: "abc123def456789"},
		IDScope: "corpus",
		Files: []lint.FileResult{
			{Path: "lessons/cow.md", Status: lint.StatusClean, BlocksScanned: 1, Blocks: []lint.BlockRecord{{ID: "q-1"}}},
			{Path: "lessons/cow2.md", Status: lint.StatusFindings, BlocksScanned: 1, Findings: []quiz.Finding{{
				Kind:    quiz.KindDuplicateID,
				Line:    3,
				BlockID: "q-1",
				Field:   "id",
				Message: `id "q-1" already used at lessons/cow.md:3`,
			}}},
		},
	}
	results.Summary = lint.Summarize(results.Files)

	html, err := BuildReportHTML(results)
	if err != nil {
		t.Fatalf("build report: %v", err)
	}
	for _, token := range []string{"lessons/cow.md", "lessons/cow2.md", "duplicate_id", "20240102T030405Z-deadbeef", "abc123def456"} {
		if !strings.Contains(html, token) {
			t.Fatalf("expected report to include %s", token)
		}
	}
	if !strings.Contains(html, "<table") {
		t.Fatalf("expected table in report")
	}
	if strings.Contains(html, "abc123def456789") {
		t.Fatalf("expected commit to be shortened")
	}
	if !strings.Contains(html, "already used at lessons/cow.md:3") {
		t.Fatalf("expected duplicate message in report")
	}
}
