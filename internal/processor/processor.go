package processor

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/idelchi/sealr/internal/config"
	"github.com/idelchi/sealr/internal/fileutil"
	"github.com/idelchi/sealr/internal/logging"
)

// Box is the sealing backend. *secretbox.Box satisfies it.
type Box interface {
	Seal(plaintext string) (string, error)
	Open(token string) (string, error)
	SealDeterministic(plaintext string) (string, error)
	OpenDeterministic(token string) (string, error)
}

// Processor handles sealing and opening of files.
type Processor struct {
	// cfg contains runtime configuration options
	cfg *config.Config

	box Box
	log *logging.Logger

	// Out receives the per-file progress lines. Defaults to os.Stdout.
	Out io.Writer
}

// New creates a Processor.
func New(cfg *config.Config, box Box, log *logging.Logger) *Processor {
	return &Processor{cfg: cfg, box: box, log: log, Out: os.Stdout}
}

// Transform returns the per-value operation selected by the configuration.
func Transform(cfg *config.Config, box Box) func(string) (string, error) {
	switch {
	case cfg.Decrypt && cfg.Deterministic:
		return box.OpenDeterministic
	case cfg.Decrypt:
		return box.Open
	case cfg.Deterministic:
		return box.SealDeterministic
	default:
		return box.Seal
	}
}

// ProcessFiles concurrently processes all files in the configuration.
// A failing file does not stop the others; the first error is returned.
// Cancelling ctx stops every file at its next line.
//
//nolint:cyclop
func (p *Processor) ProcessFiles(ctx context.Context) (Summary, error) {
	results := make(chan Result, len(p.cfg.Files))

	group := errgroup.Group{}
	group.SetLimit(p.cfg.Parallel)

	var summary Summary

	done := make(chan struct{})

	go func() {
		defer close(done)

		for result := range results {
			if result.Error != nil {
				summary.Errored++

				p.log.Errorf("processing %q: %v", result.Input, result.Error)

				continue
			}

			summary.Processed++
			summary.Lines += result.Lines
			summary.TotalSize += result.OutputSize

			if !p.cfg.Quiet {
				fmt.Fprintf(p.Out, "Processed %q -> %q (%d lines)\n", result.Input, result.Output, result.Lines)
			}

			if p.cfg.Delete {
				if err := os.Remove(result.Input); err != nil {
					p.log.Errorf("deleting %q: %v", result.Input, err)
				} else {
					p.log.Infof("deleted %q", result.Input)
				}
			}
		}
	}()

	for _, file := range p.cfg.Files {
		group.Go(func() error {
			outPath := OutputPath(p.cfg, file)

			lines, size, err := p.processFile(ctx, file, outPath)
			if err != nil {
				results <- Result{Input: file, Error: err}

				return err
			}

			results <- Result{Input: file, Output: outPath, Lines: lines, OutputSize: size}

			return nil
		})
	}

	err := group.Wait()

	close(results)

	<-done

	if err != nil {
		return summary, fmt.Errorf("processing files: %w", err)
	}

	return summary, nil
}

// processFile transforms filename line by line into outPath.
func (p *Processor) processFile(ctx context.Context, filename, outPath string) (lines int, size int64, err error) {
	if filepath.Clean(filename) == filepath.Clean(outPath) {
		return 0, 0, errors.New("output path equals input path, set a different suffix")
	}

	info, err := os.Stat(filename)
	if err != nil {
		return 0, 0, fmt.Errorf("getting file info: %w", err)
	}

	in, err := os.Open(filepath.Clean(filename))
	if err != nil {
		return 0, 0, fmt.Errorf("opening input file: %w", err)
	}
	defer in.Close()

	out, err := fileutil.Create(outPath, info.Mode())
	if err != nil {
		return 0, 0, fmt.Errorf("preparing atomic write: %w", err)
	}
	defer out.Abort()

	lines, err = p.transform(ctx, in, out)
	if err != nil {
		return 0, 0, err
	}

	if err := out.Commit(); err != nil {
		return 0, 0, err
	}

	size, err = fileutil.Finalize(outPath, p.cfg.PreserveTimestamps, info.ModTime())
	if err != nil {
		return 0, 0, fmt.Errorf("finalizing output: %w", err)
	}

	return lines, size, nil
}

// transform applies the configured operation to every non-blank line of reader.
// Each line keeps its "\n" or "\r\n" terminator; a final unterminated line gets "\n".
func (p *Processor) transform(ctx context.Context, reader io.Reader, writer io.Writer) (int, error) {
	apply := Transform(p.cfg, p.box)

	scanner, release := NewScanner(reader, p.cfg.Decrypt)
	defer release()

	scanner.Split(scanLines)

	bw := bufio.NewWriter(writer)

	var (
		number int
		count  int
	)

	for scanner.Scan() {
		number++

		if err := ctx.Err(); err != nil {
			return 0, err
		}

		line, eol := scanner.Text(), "\n"
		if trimmed, ok := strings.CutSuffix(line, "\r"); ok {
			line, eol = trimmed, "\r\n"
		}

		if strings.TrimSpace(line) != "" {
			transformed, err := apply(line)
			if err != nil {
				return 0, fmt.Errorf("line %d: %w", number, err)
			}

			line = transformed
			count++
		}

		if _, err := bw.WriteString(line + eol); err != nil {
			return 0, fmt.Errorf("writing line %d: %w", number, err)
		}
	}

	if err := scanner.Err(); err != nil {
		return 0, fmt.Errorf("reading line %d: %w", number+1, err)
	}

	if err := bw.Flush(); err != nil {
		return 0, fmt.Errorf("flushing output: %w", err)
	}

	return count, nil
}

// scanLines is bufio.ScanLines without dropping a trailing "\r".
func scanLines(data []byte, atEOF bool) (int, []byte, error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}

	if i := bytes.IndexByte(data, '\n'); i >= 0 {
		return i + 1, data[:i], nil
	}

	if atEOF {
		return len(data), data, nil
	}

	return 0, nil, nil
}

// OutputPath generates the output file path based on the input filename
// and the configured suffixes.
func OutputPath(cfg *config.Config, filename string) string {
	ext := cfg.Suffixes.Encrypt

	if cfg.Decrypt {
		filename = strings.TrimSuffix(filename, cfg.Suffixes.Encrypt)
		ext = cfg.Suffixes.Decrypt
	}

	return filepath.Join(filepath.Dir(filename), filepath.Base(filename)+ext)
}
