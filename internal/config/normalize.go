package config

import (
	"strings"

	"masterylint/internal/spec"
)

// Normalize trims values and fills defaults before validation.
func Normalize(cfg *spec.Config) {
	if cfg == nil {
		return
	}
	cfg.Corpus.Roots = trimSlice(cfg.Corpus.Roots)
	cfg.Corpus.Include = trimSlice(cfg.Corpus.Include)
	cfg.Corpus.Exclude = trimSlice(cfg.Corpus.Exclude)
	if len(cfg.Corpus.Include) == 0 {
		cfg.Corpus.Include = []string{"*.md"}
	}

	cfg.Lint.IDScope = strings.TrimSpace(cfg.Lint.IDScope)
	if cfg.Lint.IDScope == "" {
		cfg.Lint.IDScope = spec.IDScopeCorpus
	}
	if cfg.Lint.Workers == 0 {
		cfg.Lint.Workers = 1
	}

	cfg.Output.Dir = strings.TrimSpace(cfg.Output.Dir)
	if cfg.Output.Dir == "" {
		cfg.Output.Dir = DefaultOutputDir
	}
}

// trimSlice trims entries and drops the ones left empty.
func trimSlice(values []string) []string {
	trimmed := make([]string, 0, len(values))
	for _, value := range values {
		value = strings.TrimSpace(value)
		if value != "" {
			trimmed = append(trimmed, value)
		}
	}
	return trimmed
}
