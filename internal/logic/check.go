package logic

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/idelchi/sealr/internal/config"
	"github.com/idelchi/sealr/internal/filter"
)

// RunCheck validates that every include/exclude pattern matches at least one file.
func RunCheck(cfg *config.Config, w io.Writer) error {
	includes, err := filter.Merge(cfg.Include, cfg.IncludeFrom)
	if err != nil {
		return fmt.Errorf("loading include patterns: %w", err)
	}

	excludes, err := filter.Merge(cfg.Exclude, cfg.ExcludeFrom)
	if err != nil {
		return fmt.Errorf("loading exclude patterns: %w", err)
	}

	if len(includes) == 0 && len(excludes) == 0 {
		return errors.New("no include or exclude patterns to check")
	}

	candidates, err := filter.Collect(cfg.Files)
	if err != nil {
		return err
	}

	var failures int

	failures += checkPatterns(w, "include", includes, candidates, cfg.Quiet)
	failures += checkPatterns(w, "exclude", excludes, candidates, cfg.Quiet)

	if failures > 0 {
		return fmt.Errorf("%d pattern(s) matched no files", failures)
	}

	return nil
}

// checkPatterns tests each pattern individually against candidates.
// Returns the number of patterns that matched zero files or were invalid.
func checkPatterns(w io.Writer, kind string, patterns, candidates []string, quiet bool) int {
	var failures int

	for _, pattern := range patterns {
		flt, err := filter.New([]string{pattern}, nil)
		if err != nil {
			fmt.Fprintf(w, "%s: %s: %v\n", kind, pattern, err)

			failures++

			continue
		}

		var count int

		for _, path := range candidates {
			if flt.Match(path, true) {
				count++
			}
		}

		switch {
		case count == 0:
			fmt.Fprintf(w, "%s: %s: 0 files (ERROR)\n", kind, strings.TrimPrefix(pattern, "./"))

			failures++
		case !quiet:
			fmt.Fprintf(w, "%s: %s: %d files\n", kind, strings.TrimPrefix(pattern, "./"), count)
		}
	}

	return failures
}
