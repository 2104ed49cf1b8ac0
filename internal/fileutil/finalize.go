// Package fileutil provides atomic file replacement.
package fileutil

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Atomic writes to a temporary file next to its target and renames it into place on Commit.
type Atomic struct {
	*os.File

	target string
	mode   os.FileMode
	done   bool
}

// Create starts an atomic write of target. The final file gets mode's permission bits.
// Callers must defer Abort; it is a no-op after a successful Commit.
func Create(target string, mode os.FileMode) (*Atomic, error) {
	tmp, err := os.CreateTemp(filepath.Dir(target), ".sealr-*")
	if err != nil {
		return nil, fmt.Errorf("creating temporary file: %w", err)
	}

	return &Atomic{File: tmp, target: target, mode: mode.Perm()}, nil
}

// Commit closes the temporary file, applies permissions and renames it to the target.
func (a *Atomic) Commit() error {
	if err := a.Chmod(a.mode); err != nil {
		return fmt.Errorf("setting file permissions: %w", err)
	}

	if err := a.Close(); err != nil {
		return fmt.Errorf("closing temporary file: %w", err)
	}

	if err := os.Rename(a.Name(), a.target); err != nil {
		return fmt.Errorf("renaming output file: %w", err)
	}

	a.done = true

	return nil
}

// Abort removes the temporary file unless Commit succeeded.
func (a *Atomic) Abort() {
	if a.done {
		return
	}

	a.Close()           //nolint:errcheck,gosec // best-effort cleanup
	os.Remove(a.Name()) //nolint:errcheck,gosec // best-effort cleanup
}

// Finalize optionally copies modTime onto path and returns its size.
func Finalize(path string, preserveTimestamps bool, modTime time.Time) (int64, error) {
	if preserveTimestamps {
		if err := os.Chtimes(path, modTime, modTime); err != nil {
			return 0, fmt.Errorf("preserving timestamps: %w", err)
		}
	}

	info, err := os.Stat(path)
	if err != nil {
		return 0, fmt.Errorf("stat output %q: %w", path, err)
	}

	return info.Size(), nil
}
