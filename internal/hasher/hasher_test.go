package hasher

import (
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/jotaen/snapdiff/internal/pathlist"
	"github.com/jotaen/snapdiff/internal/snapfile"
)

type fakeSnapshot struct {
	mu    sync.Mutex
	files []snapfile.File
}

func (s *fakeSnapshot) Add(f snapfile.File) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.files = append(s.files, f)
}

type fakeProgress struct {
	mu    sync.Mutex
	files uint64
	bytes uint64
}

func (p *fakeProgress) AddFiles(n uint64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.files += n
}

func (p *fakeProgress) AddBytes(n uint64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.bytes += n
}

func writeFile(t *testing.T, root, rel, content string) {
	t.Helper()
	full := filepath.Join(root, rel)
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(full, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestPoolHashesAllEntries(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "a.txt", "hello")
	writeFile(t, root, "b.txt", "world!")

	cursor := pathlist.NewCursor(nil, []pathlist.Entry{
		{RelPath: "a.txt", Size: 5},
		{RelPath: "b.txt", Size: 6},
	})
	snap := &fakeSnapshot{}
	prog := &fakeProgress{}

	p := &Pool{Root: root, Cursor: cursor, Snapshot: snap, Progress: prog, Workers: 2}
	if err := p.Run(); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if len(snap.files) != 2 {
		t.Fatalf("got %d files, want 2", len(snap.files))
	}
	if prog.files != 2 {
		t.Fatalf("progress files = %d, want 2", prog.files)
	}
	if prog.bytes != 11 {
		t.Fatalf("progress bytes = %d, want 11", prog.bytes)
	}
}

func TestPoolObservedSizeAuthoritative(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "a.txt", "actual-content-longer-than-scheduled")

	cursor := pathlist.NewCursor(nil, []pathlist.Entry{{RelPath: "a.txt", Size: 1}})
	snap := &fakeSnapshot{}
	prog := &fakeProgress{}

	p := &Pool{Root: root, Cursor: cursor, Snapshot: snap, Progress: prog, Workers: 1}
	if err := p.Run(); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if got, want := snap.files[0].Size, uint64(len("actual-content-longer-than-scheduled")); got != want {
		t.Fatalf("recorded size = %d, want %d (observed, not scheduled)", got, want)
	}
}

func TestPoolSymlinkRecordsSizeZeroWithoutOpeningTarget(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "target.txt", "this content must never be hashed")

	targetPath := filepath.Join(root, "target.txt")
	linkPath := filepath.Join(root, "link.txt")
	if err := os.Symlink(targetPath, linkPath); err != nil {
		t.Skipf("symlinks unsupported: %v", err)
	}

	cursor := pathlist.NewCursor(nil, []pathlist.Entry{{RelPath: "link.txt", Size: 0, IsSymlink: true}})
	snap := &fakeSnapshot{}
	prog := &fakeProgress{}

	p := &Pool{Root: root, Cursor: cursor, Snapshot: snap, Progress: prog, Workers: 1}
	if err := p.Run(); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if len(snap.files) != 1 {
		t.Fatalf("got %d files, want 1", len(snap.files))
	}
	if snap.files[0].Size != 0 {
		t.Fatalf("symlink size = %d, want 0", snap.files[0].Size)
	}
	if prog.bytes != 0 {
		t.Fatalf("symlink should not contribute read bytes, got %d", prog.bytes)
	}
}

func TestPoolDanglingSymlinkIsNotFatal(t *testing.T) {
	root := t.TempDir()
	linkPath := filepath.Join(root, "dangling.txt")
	if err := os.Symlink(filepath.Join(root, "does-not-exist.txt"), linkPath); err != nil {
		t.Skipf("symlinks unsupported: %v", err)
	}

	cursor := pathlist.NewCursor(nil, []pathlist.Entry{{RelPath: "dangling.txt", Size: 0, IsSymlink: true}})
	snap := &fakeSnapshot{}
	prog := &fakeProgress{}

	p := &Pool{Root: root, Cursor: cursor, Snapshot: snap, Progress: prog, Workers: 1}
	if err := p.Run(); err != nil {
		t.Fatalf("Run() error = %v, want nil (dangling symlink target is never opened)", err)
	}
	if len(snap.files) != 1 || snap.files[0].Size != 0 {
		t.Fatalf("got %+v, want one size-0 entry", snap.files)
	}
}

func TestPoolMissingFileIsFatal(t *testing.T) {
	root := t.TempDir()
	cursor := pathlist.NewCursor(nil, []pathlist.Entry{{RelPath: "does-not-exist.txt", Size: 1}})
	snap := &fakeSnapshot{}
	prog := &fakeProgress{}

	p := &Pool{Root: root, Cursor: cursor, Snapshot: snap, Progress: prog, Workers: 1}
	if err := p.Run(); err == nil {
		t.Fatal("expected error for a scheduled-but-missing file")
	}
}
