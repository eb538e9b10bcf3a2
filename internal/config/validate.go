package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"masterylint/internal/spec"
)

// Issue captures a validation problem with a config field.
type Issue struct {
	Field   string
	Message string
}

// ValidationError aggregates config validation issues.
type ValidationError struct {
	Issues []Issue
}

// Error renders validation errors as a multi-line string.
func (err *ValidationError) Error() string {
	if err == nil || len(err.Issues) == 0 {
		return "config validation failed"
	}
	lines := make([]string, 0, len(err.Issues))
	for _, issue := range err.Issues {
		lines = append(lines, fmt.Sprintf("%s: %s", issue.Field, issue.Message))
	}
	return strings.Join(lines, "\n")
}

// Validate checks a config for correctness and referenced paths.
func Validate(cfg *spec.Config, baseDir string) error {
	var issues []Issue
	add := func(field, message string) {
		issues = append(issues, Issue{Field: field, Message: message})
	}

	if cfg.Version == 0 {
		add("version", "is required")
	} else if cfg.Version != 1 {
		add("version", fmt.Sprintf("unsupported version %d", cfg.Version))
	}

	if baseDir == "" {
		baseDir = "."
	}

	if len(cfg.Corpus.Roots) == 0 {
		add("corpus.roots", "must include at least one entry")
	}
	for i, root := range cfg.Corpus.Roots {
		fieldName := fmt.Sprintf("corpus.roots[%d]", i)
		rootPath := root
		if !filepath.IsAbs(rootPath) {
			rootPath = filepath.Join(baseDir, rootPath)
		}
		info, err := os.Stat(rootPath)
		if err != nil {
			add(fieldName, fmt.Sprintf("path not found at %q", root))
			continue
		}
		if !info.IsDir() {
			add(fieldName, fmt.Sprintf("path %q is not a directory", root))
		}
	}

	for i, pattern := range cfg.Corpus.Include {
		if !validGlob(pattern) {
			add(fmt.Sprintf("corpus.include[%d]", i), fmt.Sprintf("invalid glob %q", pattern))
		}
	}
	for i, pattern := range cfg.Corpus.Exclude {
		if !validGlob(pattern) {
			add(fmt.Sprintf("corpus.exclude[%d]", i), fmt.Sprintf("invalid glob %q", pattern))
		}
	}

	switch cfg.Lint.IDScope {
	case spec.IDScopeCorpus, spec.IDScopeFile:
	default:
		add("lint.id_scope", fmt.Sprintf("must be %q or %q, got %q", spec.IDScopeCorpus, spec.IDScopeFile, cfg.Lint.IDScope))
	}
	if cfg.Lint.Workers < 0 {
		add("lint.workers", "must be >= 0")
	}

	if strings.TrimSpace(cfg.Output.Dir) == "" {
		add("output.dir", "is required")
	}

	if len(issues) > 0 {
		return &ValidationError{Issues: issues}
	}
	return nil
}

// validGlob reports whether a pattern compiles as a path glob.
func validGlob(pattern string) bool {
	// "**" segments are handled by the discoverer; strip them for the
	// syntax check since path.Match rejects nothing else statically.
	stripped := strings.ReplaceAll(pattern, "**", "*")
	_, err := filepath.Match(stripped, "probe")
	return err == nil
}
