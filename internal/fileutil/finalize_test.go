package fileutil_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/idelchi/sealr/internal/fileutil"
)

func TestAtomicCommit(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	target := filepath.Join(dir, "out.sealed")

	out, err := fileutil.Create(target, 0o640)
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}

	defer out.Abort()

	if _, err := out.WriteString("payload\n"); err != nil {
		t.Fatal(err)
	}

	if _, err := os.Stat(target); !os.IsNotExist(err) {
		t.Fatalf("target visible before Commit: %v", err)
	}

	if err := out.Commit(); err != nil {
		t.Fatalf("Commit error: %v", err)
	}

	data, err := os.ReadFile(target)
	if err != nil {
		t.Fatal(err)
	}

	if string(data) != "payload\n" {
		t.Errorf("content = %q", data)
	}

	info, err := os.Stat(target)
	if err != nil {
		t.Fatal(err)
	}

	if info.Mode().Perm() != 0o640 {
		t.Errorf("mode = %v, want 0640", info.Mode().Perm())
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}

	if len(entries) != 1 {
		t.Errorf("directory has %d entries, want only the target", len(entries))
	}
}

func TestAtomicAbort(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	out, err := fileutil.Create(filepath.Join(dir, "never"), 0o600)
	if err != nil {
		t.Fatal(err)
	}

	out.Abort()

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}

	if len(entries) != 0 {
		t.Errorf("Abort left %d entries behind", len(entries))
	}
}

func TestFinalize(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "f")
	if err := os.WriteFile(path, []byte("12345"), 0o600); err != nil {
		t.Fatal(err)
	}

	stamp := time.Date(2020, 1, 2, 3, 4, 5, 0, time.UTC)

	size, err := fileutil.Finalize(path, true, stamp)
	if err != nil {
		t.Fatalf("Finalize error: %v", err)
	}

	if size != 5 {
		t.Errorf("size = %d, want 5", size)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}

	if !info.ModTime().Equal(stamp) {
		t.Errorf("mtime = %v, want %v", info.ModTime(), stamp)
	}
}
