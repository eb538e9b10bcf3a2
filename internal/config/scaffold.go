package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const scaffoldConfig = `version: 1

corpus:
  roots:
    - "."
  include:
    - "*.md"
  exclude:
    - "node_modules/**"
    - "{{output_dir}}/**"

lint:
  id_scope: corpus
  workers: 4

output:
  dir: "{{output_dir}}"
`

// Scaffold writes a starter config file with the chosen output directory.
func Scaffold(specPath, outputDir string) error {
	if specPath == "" {
		return fmt.Errorf("spec path is required")
	}
	if strings.TrimSpace(outputDir) == "" {
		outputDir = DefaultOutputDir
	}
	if info, err := os.Stat(specPath); err == nil {
		if info.IsDir() {
			return fmt.Errorf("spec path %q is a directory", specPath)
		}
		return fmt.Errorf("spec file already exists at %q", specPath)
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("stat spec file: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(specPath), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	rendered := strings.ReplaceAll(scaffoldConfig, "{{output_dir}}", filepath.ToSlash(outputDir))
	if err := os.WriteFile(specPath, []byte(rendered), 0o644); err != nil {
		return fmt.Errorf("write spec file: %w", err)
	}
	return nil
}
