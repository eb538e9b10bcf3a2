package vcs

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"testing"

	"masterylint/internal/testutil"
)

// TestDiscoverRepoRootAndMetadata verifies repo discovery and metadata parsing.
func TestDiscoverRepoRootAndMetadata(t *testing.T) {
	ctx := testutil.Context(t, 0)
	root := filepath.Join(t.TempDir(), "repo")
	subdir := filepath.Join(root, "nested")

	fake := &fakeGitRunner{responses: map[string]string{
		"rev-parse --show-toplevel":   root,
		"rev-parse HEAD":              "commit-7",
		"rev-parse --abbrev-ref HEAD": "main",
		"status --porcelain":          "",
	}}
	client := NewClient(fake)

	actualRoot, err := client.DiscoverRepoRoot(ctx, subdir)
	if err != nil {
		t.Fatalf("discover repo root: %v", err)
	}
	if actualRoot != root {
		t.Fatalf("expected root %q, got %q", root, actualRoot)
	}

	repo, err := client.Discover(ctx, subdir)
	if err != nil {
		t.Fatalf("discover repo: %v", err)
	}
	meta, err := repo.Metadata(ctx)
	if err != nil {
		t.Fatalf("metadata: %v", err)
	}
	if meta.Commit != "commit-7" {
		t.Fatalf("expected commit %q, got %q", "commit-7", meta.Commit)
	}
	if meta.Branch != "main" {
		t.Fatalf("expected branch main, got %q", meta.Branch)
	}
	if meta.Dirty {
		t.Fatalf("expected clean repo, got dirty")
	}
	if meta.Name != filepath.Base(root) {
		t.Fatalf("expected name %q, got %q", filepath.Base(root), meta.Name)
	}

	fake.responses["status --porcelain"] = " M lessons/cow.md"
	meta, err = repo.Metadata(ctx)
	if err != nil {
		t.Fatalf("metadata dirty: %v", err)
	}
	if !meta.Dirty {
		t.Fatalf("expected dirty repo")
	}
}

// TestResolveRef verifies ref resolution and empty-ref rejection.
func TestResolveRef(t *testing.T) {
	ctx := testutil.Context(t, 0)
	fake := &fakeGitRunner{responses: map[string]string{
		"rev-parse --verify HEAD~1": "commit-6",
	}}
	client := NewClient(fake)

	commit, err := client.ResolveRef(ctx, "repo", "HEAD~1")
	if err != nil {
		t.Fatalf("resolve ref: %v", err)
	}
	if commit != "commit-6" {
		t.Fatalf("expected commit-6, got %q", commit)
	}
	if _, err := client.ResolveRef(ctx, "repo", "  "); err == nil {
		t.Fatalf("expected error for empty ref")
	}
}

// fakeGitRunner returns canned outputs for git commands in tests.
type fakeGitRunner struct {
	responses map[string]string
}

// Run satisfies gitRunner for test doubles.
func (f *fakeGitRunner) Run(_ context.Context, _ string, args ...string) (string, error) {
	key := strings.Join(args, " ")
	if value, ok := f.responses[key]; ok {
		return value, nil
	}
	return "", fmt.Errorf("unexpected git args: %s", key)
}
