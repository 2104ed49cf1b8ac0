// Package logic implements the core business logic of the sealr commands.
package logic

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/idelchi/sealr/internal/config"
	"github.com/idelchi/sealr/internal/filter"
	"github.com/idelchi/sealr/internal/logging"
	"github.com/idelchi/sealr/internal/processor"
	"github.com/idelchi/sealr/internal/secretbox"
)

// NewBox builds the Box for cfg and acquires its key immediately,
// so a missing production secret fails before any work starts.
func NewBox(cfg *config.Config, log *logging.Logger) (*secretbox.Box, error) {
	if err := cfg.ResolveSecret(); err != nil {
		return nil, err
	}

	box := secretbox.New(secretbox.NewKeyring(secretbox.Options{
		Secret: cfg.Secret,
		Mode:   cfg.Mode,
		Logger: log,
	}))

	if err := box.Ready(); err != nil {
		return nil, fmt.Errorf("acquiring key: %w", err)
	}

	log.Debugf("key acquired (mode %s)", cfg.Mode)

	return box, nil
}

// RunValues seals or opens cfg.Values, or every line of in when there are none,
// writing one result per line to out in input order.
func RunValues(cfg *config.Config, log *logging.Logger, in io.Reader, out io.Writer) error {
	box, err := NewBox(cfg, log)
	if err != nil {
		return err
	}

	apply := processor.Transform(cfg, box)

	emit := func(value string) error {
		if !cfg.Decrypt && len(value) >= processor.MaxLineSize {
			return fmt.Errorf("value of %d bytes exceeds the %d byte limit", len(value), processor.MaxLineSize-1)
		}

		result, err := apply(value)
		if err != nil {
			return err
		}

		if _, err := fmt.Fprintln(out, result); err != nil {
			return fmt.Errorf("writing result: %w", err)
		}

		return nil
	}

	if len(cfg.Values) > 0 {
		for i, value := range cfg.Values {
			if err := emit(value); err != nil {
				return fmt.Errorf("value %d: %w", i+1, err)
			}
		}

		return nil
	}

	scanner, release := processor.NewScanner(in, cfg.Decrypt)
	defer release()

	for number := 1; scanner.Scan(); number++ {
		if err := emit(scanner.Text()); err != nil {
			return fmt.Errorf("line %d: %w", number, err)
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading input: %w", err)
	}

	return nil
}

// Run seals or opens the configured files.
// Progress, dry-run listings and statistics are written to out.
func Run(ctx context.Context, cfg *config.Config, log *logging.Logger, out io.Writer) error {
	scanned, excluded, start, done, err := preamble(cfg, out)
	if done || err != nil {
		return err
	}

	box, err := NewBox(cfg, log)
	if err != nil {
		return err
	}

	proc := processor.New(cfg, box, log)
	proc.Out = out

	summary, err := proc.ProcessFiles(ctx)

	if cfg.Stats {
		printStats(out, scanned, excluded, summary, time.Since(start))
	}

	if err != nil {
		return fmt.Errorf("running logic: %w", err)
	}

	return nil
}

// preamble resolves files and handles dry run. Returns done=true if dry run was executed.
func preamble(cfg *config.Config, out io.Writer) (int, int, time.Time, bool, error) {
	start := time.Now()

	scanned, err := resolveFiles(cfg)
	if err != nil {
		return 0, 0, start, false, fmt.Errorf("resolving files: %w", err)
	}

	excluded := scanned - len(cfg.Files)

	if cfg.Dry {
		dryRun(cfg, out, scanned, excluded, start)

		return scanned, excluded, start, true, nil
	}

	return scanned, excluded, start, false, nil
}

// resolveFiles expands positional args and applies include/exclude filtering.
// Decrypting without includes selects files carrying the encrypt suffix.
// Returns the total number of files scanned before filtering.
func resolveFiles(cfg *config.Config) (int, error) {
	includes, err := filter.Merge(cfg.Include, cfg.IncludeFrom)
	if err != nil {
		return 0, fmt.Errorf("loading include patterns: %w", err)
	}

	excludes, err := filter.Merge(cfg.Exclude, cfg.ExcludeFrom)
	if err != nil {
		return 0, fmt.Errorf("loading exclude patterns: %w", err)
	}

	hasIncludes := len(cfg.Include) > 0 || cfg.IncludeFrom != ""

	if cfg.Decrypt && !hasIncludes && cfg.Suffixes.Encrypt != "" {
		includes = append(includes, "**/*"+cfg.Suffixes.Encrypt)
		hasIncludes = true
	}

	files, scanned, err := filter.Resolve(cfg.Files, includes, excludes, hasIncludes)
	if err != nil {
		return scanned, fmt.Errorf("filtering files: %w", err)
	}

	cfg.Files = files

	return scanned, nil
}

// dryRun previews what would be processed without sealing anything.
func dryRun(cfg *config.Config, out io.Writer, scanned, excluded int, start time.Time) {
	var summary processor.Summary

	summary.Processed = len(cfg.Files)

	for _, file := range cfg.Files {
		if !cfg.Quiet {
			fmt.Fprintf(out, "Would process %q -> %q\n", file, processor.OutputPath(cfg, file))
		}

		if info, err := os.Stat(file); err == nil {
			summary.TotalSize += info.Size()
		}
	}

	if cfg.Stats {
		printStats(out, scanned, excluded, summary, time.Since(start))
	}
}

func printStats(w io.Writer, scanned, excluded int, summary processor.Summary, duration time.Duration) {
	fmt.Fprintf(w, "\nStats\n")
	fmt.Fprintf(w, "  Scanned:   %d\n", scanned)
	fmt.Fprintf(w, "  Excluded:  %d\n", excluded)
	fmt.Fprintf(w, "  Processed: %d\n", summary.Processed)
	fmt.Fprintf(w, "  Lines:     %d\n", summary.Lines)
	fmt.Fprintf(w, "  Errors:    %d\n", summary.Errored)
	//nolint:gosec // TotalSize is a sum of file sizes
	fmt.Fprintf(w, "  Size:      %s\n", humanize.IBytes(uint64(max(0, summary.TotalSize))))
	fmt.Fprintf(w, "  Duration:  %s\n", duration.Round(time.Millisecond))
}
