package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// addGitignoreEntry appends the results folder to the repo's .gitignore
// unless an equivalent line is already present. It reports whether the
// file was changed.
func addGitignoreEntry(repoRoot, outputDir string) (bool, error) {
	entry, err := normalizeGitignorePath(repoRoot, outputDir)
	if err != nil {
		return false, err
	}
	if entry == "" {
		return false, fmt.Errorf("results folder resolves to an empty gitignore entry")
	}

	gitignorePath := filepath.Join(repoRoot, ".gitignore")
	var existing []byte
	if data, err := os.ReadFile(gitignorePath); err == nil {
		existing = data
	} else if !os.IsNotExist(err) {
		return false, fmt.Errorf("read .gitignore: %w", err)
	}

	for _, line := range strings.Split(string(existing), "\n") {
		if strings.TrimSpace(line) == entry {
			return false, nil
		}
	}

	updated := string(existing)
	if len(updated) > 0 && !strings.HasSuffix(updated, "\n") {
		updated += "\n"
	}
	updated += entry + "\n"
	if err := os.WriteFile(gitignorePath, []byte(updated), 0o644); err != nil {
		return false, fmt.Errorf("write .gitignore: %w", err)
	}
	return true, nil
}

// normalizeGitignorePath turns the results folder into a slash path
// relative to the repo root. Folders outside the repo cannot be
// gitignored and are rejected.
func normalizeGitignorePath(repoRoot, outputDir string) (string, error) {
	if strings.TrimSpace(outputDir) == "" {
		return "", fmt.Errorf("results folder is required")
	}
	clean := filepath.Clean(outputDir)
	if filepath.IsAbs(clean) {
		rel, err := filepath.Rel(repoRoot, clean)
		if err != nil {
			return "", fmt.Errorf("resolve results folder: %w", err)
		}
		if strings.HasPrefix(rel, "..") {
			return "", fmt.Errorf("results folder %q is outside the repo root", outputDir)
		}
		clean = rel
	}
	clean = strings.TrimPrefix(clean, "."+string(filepath.Separator))
	if clean == "." || clean == "" || strings.HasPrefix(clean, "..") {
		return "", fmt.Errorf("results folder %q is outside the repo root", outputDir)
	}
	return filepath.ToSlash(clean), nil
}
