// Package filter selects files based on include/exclude glob patterns.
//
// Patterns use doublestar syntax: * stays within a path segment, ** crosses segments.
package filter

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// Filter selects files based on include/exclude patterns.
// Empty includes means "match all". Excludes always win.
type Filter struct {
	includes []string
	excludes []string
}

// New validates include/exclude patterns and returns a reusable filter.
// Leading "./" is stripped so patterns match cleaned paths.
func New(includes, excludes []string) (*Filter, error) {
	inc, err := normalize(includes)
	if err != nil {
		return nil, fmt.Errorf("include patterns: %w", err)
	}

	exc, err := normalize(excludes)
	if err != nil {
		return nil, fmt.Errorf("exclude patterns: %w", err)
	}

	return &Filter{includes: inc, excludes: exc}, nil
}

// Match reports whether the slash-separated path is selected.
func (f *Filter) Match(path string, hasIncludes bool) bool {
	included := !hasIncludes || MatchAny(f.includes, path)

	return included && !MatchAny(f.excludes, path)
}

// MatchAny reports whether path matches any of the patterns.
// Patterns are assumed valid.
func MatchAny(patterns []string, path string) bool {
	for _, pattern := range patterns {
		if doublestar.MatchUnvalidated(pattern, path) {
			return true
		}
	}

	return false
}

func normalize(patterns []string) ([]string, error) {
	out := make([]string, 0, len(patterns))

	for _, p := range patterns {
		p = strings.TrimPrefix(p, "./")

		if !doublestar.ValidatePattern(p) {
			return nil, fmt.Errorf("invalid pattern %q", p)
		}

		out = append(out, p)
	}

	return out, nil
}

// Resolve takes positional args (files/directories) and include/exclude patterns.
// Files are added directly (bypassing filtering). Directories are walked and filtered.
// hasIncludes indicates whether include filtering was requested, even with an empty list.
// Returns matched files and total candidates scanned.
func Resolve(args, includes, excludes []string, hasIncludes bool) (files []string, scanned int, err error) {
	for _, arg := range args {
		if err := validatePath(arg); err != nil {
			return nil, 0, err
		}
	}

	flt, err := New(includes, excludes)
	if err != nil {
		return nil, 0, err
	}

	seen := make(map[string]struct{})

	add := func(path string) {
		if _, ok := seen[path]; ok {
			return
		}

		seen[path] = struct{}{}
		files = append(files, path)
	}

	for _, arg := range args {
		arg = filepath.Clean(arg)

		info, err := os.Stat(arg)
		if err != nil {
			return nil, 0, fmt.Errorf("stat %q: %w", arg, err)
		}

		if !info.IsDir() {
			scanned++

			add(arg)

			continue
		}

		walked, total, err := walkDir(arg, flt, hasIncludes)
		if err != nil {
			return nil, 0, err
		}

		scanned += total

		for _, path := range walked {
			add(path)
		}
	}

	if len(files) == 0 {
		return nil, scanned, fmt.Errorf("no files matched the provided patterns: %v", args)
	}

	return files, scanned, nil
}

// Collect walks args and returns every file found, slash-separated and deduplicated.
func Collect(args []string) ([]string, error) {
	var paths []string

	seen := make(map[string]struct{})

	for _, arg := range args {
		arg = filepath.Clean(arg)

		err := filepath.WalkDir(arg, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}

			if d.IsDir() {
				return nil
			}

			clean := filepath.ToSlash(filepath.Clean(path))
			if _, ok := seen[clean]; !ok {
				seen[clean] = struct{}{}
				paths = append(paths, clean)
			}

			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("walking %q: %w", arg, err)
		}
	}

	return paths, nil
}

// walkDir walks root recursively, returning files that pass the filter.
func walkDir(root string, flt *Filter, hasIncludes bool) (files []string, total int, err error) {
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			return nil
		}

		total++

		if flt.Match(filepath.ToSlash(filepath.Clean(path)), hasIncludes) {
			files = append(files, path)
		}

		return nil
	})
	if err != nil {
		return nil, 0, fmt.Errorf("walking %q: %w", root, err)
	}

	return files, total, nil
}

// validatePath rejects paths that escape the current working directory.
func validatePath(path string) error {
	if filepath.IsAbs(path) {
		return fmt.Errorf("absolute paths are not allowed: %q", path)
	}

	if clean := filepath.Clean(path); clean == ".." || strings.HasPrefix(clean, ".."+string(filepath.Separator)) {
		return fmt.Errorf("paths must be within the current working directory: %q", path)
	}

	return nil
}
