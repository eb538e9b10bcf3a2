package lint

import (
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"masterylint/internal/spec"
)

// Discover walks the corpus roots and returns the matching document
// paths, slash-separated and relative to repoRoot, in sorted order.
func Discover(repoRoot string, corpus spec.CorpusConfig) ([]string, error) {
	seen := map[string]bool{}
	var files []string
	for _, root := range corpus.Roots {
		rootPath := root
		if !filepath.IsAbs(rootPath) {
			rootPath = filepath.Join(repoRoot, rootPath)
		}
		err := filepath.WalkDir(rootPath, func(fullPath string, entry fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if entry.IsDir() {
				if entry.Name() == ".git" {
					return filepath.SkipDir
				}
				return nil
			}
			rel, err := filepath.Rel(repoRoot, fullPath)
			if err != nil {
				return err
			}
			rel = filepath.ToSlash(rel)
			if !matchAny(corpus.Include, rel) || matchAny(corpus.Exclude, rel) {
				return nil
			}
			if !seen[rel] {
				seen[rel] = true
				files = append(files, rel)
			}
			return nil
		})
		if err != nil {
			if os.IsNotExist(err) {
				return nil, fmt.Errorf("corpus root %q not found", root)
			}
			return nil, fmt.Errorf("walk corpus root %q: %w", root, err)
		}
	}
	sort.Strings(files)
	return files, nil
}

// matchAny reports whether any pattern matches the relative path.
func matchAny(patterns []string, relPath string) bool {
	for _, pattern := range patterns {
		if matchGlob(pattern, relPath) {
			return true
		}
	}
	return false
}

// matchGlob matches a glob against a slash-relative path. Patterns
// without a separator match the base name; "**" matches any number of
// path segments.
func matchGlob(pattern, relPath string) bool {
	if !strings.Contains(pattern, "/") {
		ok, err := path.Match(pattern, path.Base(relPath))
		return err == nil && ok
	}
	return matchSegments(strings.Split(pattern, "/"), strings.Split(relPath, "/"))
}

// matchSegments matches pattern segments against path segments.
func matchSegments(pattern, segments []string) bool {
	if len(pattern) == 0 {
		return len(segments) == 0
	}
	if pattern[0] == "**" {
		if matchSegments(pattern[1:], segments) {
			return true
		}
		if len(segments) == 0 {
			return false
		}
		return matchSegments(pattern, segments[1:])
	}
	if len(segments) == 0 {
		return false
	}
	ok, err := path.Match(pattern[0], segments[0])
	if err != nil || !ok {
		return false
	}
	return matchSegments(pattern[1:], segments[1:])
}
