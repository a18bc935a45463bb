// Package hasher implements a bounded-concurrency work pool: a fixed set
// of workers pop paths from a shared cursor, stream-hash each file in
// Threshold-sized chunks, and hand the resulting record to a shared
// Snapshot, polling a cancellation flag before every chunk read.
package hasher

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"

	"github.com/jotaen/snapdiff/internal/checksum"
	"github.com/jotaen/snapdiff/internal/pathlist"
	"github.com/jotaen/snapdiff/internal/scanner"
	"github.com/jotaen/snapdiff/internal/snapfile"
)

// Snapshot is the capability a Pool needs from its target: accept one
// hashed File at a time. Both snapshot.Snapshot1 and snapshot.Snapshot2
// satisfy this without either package importing the other.
type Snapshot interface {
	Add(f snapfile.File)
}

// Progress is the capability a Pool needs to report hashing progress.
// Its own internal synchronization is independent of the cursor and
// Snapshot locks, so a progress update never waits on either of them.
type Progress interface {
	AddFiles(n uint64)
	AddBytes(n uint64)
}

// Pool hashes every entry in a Cursor and feeds the resulting records
// into a Snapshot, using Workers goroutines.
type Pool struct {
	Root     string
	Cursor   *pathlist.Cursor
	Snapshot Snapshot
	Progress Progress
	Cancel   *atomic.Bool
	Workers  int
}

// Run hashes every remaining entry in the cursor. It returns the first
// error encountered by any worker (an unreadable scheduled file); other
// workers keep draining the cursor and are joined before Run returns.
func (p *Pool) Run() error {
	workers := p.Workers
	if workers < 1 {
		workers = 1
	}

	var wg sync.WaitGroup
	var once sync.Once
	var firstErr error

	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			if err := p.drain(); err != nil {
				once.Do(func() { firstErr = err })
			}
		}()
	}
	wg.Wait()
	return firstErr
}

// drain pops and hashes entries until the cursor is exhausted or one
// fails.
func (p *Pool) drain() error {
	for {
		entry, ok := p.Cursor.Pop()
		if !ok {
			return nil
		}
		f, err := p.hashOne(entry)
		if err != nil {
			return err
		}
		p.Snapshot.Add(f)
		p.Progress.AddFiles(1)
	}
}

// hashOne streams one scheduled file in chunks of scanner.Threshold
// bytes, checking the cancellation flag before each read. Cancellation
// terminates the whole process with exit 255 — the one place in the
// pipeline where an immediate, non-graceful exit is the contract rather
// than an error return.
//
// A symlink entry is never opened: its target is not followed, so it is
// always recorded at size 0 with the empty-input checksum, regardless of
// what it points to (including a dangling or directory target, which
// would otherwise fail to open or read).
func (p *Pool) hashOne(entry pathlist.Entry) (snapfile.File, error) {
	if entry.IsSymlink {
		return snapfile.New(entry.RelPath, 0, checksum.New().Finalize()), nil
	}

	full := filepath.Join(p.Root, entry.RelPath)
	f, err := os.Open(full)
	if err != nil {
		return snapfile.File{}, fmt.Errorf("open %s: %w", entry.RelPath, err)
	}
	defer func() { _ = f.Close() }()

	buf := make([]byte, scanner.Threshold)
	var sum checksum.Summer
	var size uint64

	for {
		if p.Cancel != nil && p.Cancel.Load() {
			fmt.Println()
			os.Exit(255)
		}

		n, readErr := f.Read(buf)
		if n > 0 {
			sum.Consume(buf[:n])
			size += uint64(n)
			p.Progress.AddBytes(uint64(n))
		}
		if readErr == io.EOF {
			break
		}
		if readErr != nil {
			return snapfile.File{}, fmt.Errorf("read %s: %w", entry.RelPath, readErr)
		}
	}

	return snapfile.New(entry.RelPath, size, sum.Finalize()), nil
}
