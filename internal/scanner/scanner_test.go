package scanner

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jotaen/snapdiff/internal/filter"
)

func createFile(t *testing.T, path string, size int) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, make([]byte, size), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestScanFindsAllFiles(t *testing.T) {
	root := t.TempDir()
	createFile(t, filepath.Join(root, "a.txt"), 10)
	createFile(t, filepath.Join(root, "sub", "b.txt"), 20)

	s := New(root, filter.New(false, false), true, 2)
	r := s.Scan()

	if r.Scheduled.Files != 2 {
		t.Fatalf("scheduled files = %d, want 2", r.Scheduled.Files)
	}
	if r.Scheduled.Bytes != 30 {
		t.Fatalf("scheduled bytes = %d, want 30", r.Scheduled.Bytes)
	}
}

func TestScanSkipsDotPathsAndSymlinksByDefault(t *testing.T) {
	root := t.TempDir()
	createFile(t, filepath.Join(root, "visible.txt"), 1)
	createFile(t, filepath.Join(root, ".hidden"), 1)
	target := filepath.Join(root, "visible.txt")
	if err := os.Symlink(target, filepath.Join(root, "link")); err != nil {
		t.Fatal(err)
	}

	s := New(root, filter.New(false, false), true, 2)
	r := s.Scan()

	if r.Scheduled.Files != 1 {
		t.Fatalf("scheduled files = %d, want 1", r.Scheduled.Files)
	}
	if r.SkippedFiles.Files != 2 {
		t.Fatalf("skipped files = %d, want 2", r.SkippedFiles.Files)
	}
}

func TestScanLargeSmallSplit(t *testing.T) {
	root := t.TempDir()
	createFile(t, filepath.Join(root, "small.txt"), 10)

	s := New(root, filter.New(false, false), true, 2)
	// Threshold is a package constant (10 MiB), so this only exercises the
	// small path; large-list ordering is covered by internal/pathlist's
	// tests with synthetic sizes.
	r := s.Scan()

	if len(r.Large) != 0 {
		t.Fatalf("large = %v, want empty", r.Large)
	}
	if len(r.Small) != 1 {
		t.Fatalf("small = %v, want 1 entry", r.Small)
	}
}

func TestScanNoSplitWhenSingleWorker(t *testing.T) {
	root := t.TempDir()
	createFile(t, filepath.Join(root, "a.txt"), 1)

	s := New(root, filter.New(false, false), false, 1)
	r := s.Scan()

	if len(r.Large) != 0 {
		t.Fatalf("large = %v, want empty when splitLarge is false", r.Large)
	}
}

func TestScanUnreadableSubdirIsSkippedNotFatal(t *testing.T) {
	if os.Getuid() == 0 {
		t.Skip("skipping permission test when running as root")
	}
	root := t.TempDir()
	createFile(t, filepath.Join(root, "accessible.txt"), 1)

	blocked := filepath.Join(root, "blocked")
	if err := os.Mkdir(blocked, 0o000); err != nil {
		t.Fatal(err)
	}
	defer func() { _ = os.Chmod(blocked, 0o755) }()

	s := New(root, filter.New(false, false), true, 2)
	r := s.Scan()

	if r.Scheduled.Files != 1 {
		t.Fatalf("scheduled files = %d, want 1 (blocked dir skipped)", r.Scheduled.Files)
	}
	if r.SkippedFolders.Files != 1 {
		t.Fatalf("skipped folders = %d, want 1", r.SkippedFolders.Files)
	}
}

func TestScanIncludeSymlinksAdmitsAtZeroSize(t *testing.T) {
	root := t.TempDir()
	target := filepath.Join(root, "real.txt")
	createFile(t, target, 50)
	if err := os.Symlink(target, filepath.Join(root, "link")); err != nil {
		t.Fatal(err)
	}

	s := New(root, filter.New(true, false), true, 2)
	r := s.Scan()

	if r.Scheduled.Files != 2 {
		t.Fatalf("scheduled files = %d, want 2", r.Scheduled.Files)
	}
	if r.Scheduled.Bytes != 50 {
		t.Fatalf("scheduled bytes = %d, want 50 (symlink counted at size 0)", r.Scheduled.Bytes)
	}
}
