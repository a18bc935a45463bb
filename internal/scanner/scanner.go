// Package scanner provides parallel filesystem scanning for one snapshot
// root.
//
// # Architecture
//
// One walker goroutine per directory, gated by a semaphore that bounds
// concurrent directory reads. Each walker partitions its entries directly
// into the scanner's shared large list (size > Threshold, only when the
// phase runs with more than one hashing worker) and small list, and
// tracks skip counts for files and folders.
//
// A directory that fails to open (permissions, races, a symlink loop)
// counts as one skipped folder; its siblings are unaffected, since each
// subdirectory is an independent walker goroutine.
package scanner

import (
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"

	"github.com/jotaen/snapdiff/internal/filter"
	"github.com/jotaen/snapdiff/internal/pathlist"
	"github.com/jotaen/snapdiff/internal/stats"
	"github.com/jotaen/snapdiff/internal/types"
)

// Threshold is the small/large file size boundary, 10 MiB, also used as
// the hasher's read chunk size.
const Threshold uint64 = 10 * 1024 * 1024

// Result is everything produced by one Scan: the partitioned path lists
// plus bookkeeping counts.
type Result struct {
	Root           string
	Large          []pathlist.Entry
	Small          []pathlist.Entry
	Scheduled      stats.Count
	SkippedFiles   stats.Count
	SkippedFolders stats.Count
}

// Scanner walks one snapshot root using a pool of directory-reading
// goroutines bounded by workers.
type Scanner struct {
	root       string
	filter     filter.Filter
	splitLarge bool // true when the phase's worker count is > 1

	walkerSem types.Semaphore
	walkerWg  sync.WaitGroup
	mu        sync.Mutex
	large     []pathlist.Entry
	small     []pathlist.Entry

	scheduledFiles stats.Count
	skipFiles      atomic.Uint64
	skipFolders    atomic.Uint64
}

// New creates a Scanner for root. splitLarge should be true when the
// phase's worker count is greater than 1 (the large/small split only
// pays off with parallel hashing). workers bounds how many directories
// are read concurrently.
func New(root string, f filter.Filter, splitLarge bool, workers int) *Scanner {
	if workers < 1 {
		workers = 1
	}
	return &Scanner{
		root:       root,
		filter:     f,
		splitLarge: splitLarge,
		walkerSem:  types.NewSemaphore(workers),
	}
}

// Scan performs the concurrent walk and returns the partitioned result.
func (s *Scanner) Scan() Result {
	s.walk(s.root)
	s.walkerWg.Wait()

	return Result{
		Root:  s.root,
		Large: s.large,
		Small: s.small,
		Scheduled: stats.Count{
			Files: s.scheduledFiles.Files,
			Bytes: s.scheduledFiles.Bytes,
		},
		SkippedFiles:   stats.Count{Files: s.skipFiles.Load()},
		SkippedFolders: stats.Count{Files: s.skipFolders.Load()},
	}
}

// walk spawns a goroutine that reads dir and fans out to its
// subdirectories. The semaphore caps concurrent directory reads; it is
// acquired inside the goroutine so walkerWg.Add happens before any
// blocking, avoiding a race with Wait.
func (s *Scanner) walk(dir string) {
	s.walkerWg.Add(1)
	go func() {
		defer s.walkerWg.Done()

		s.walkerSem.Acquire()
		entries, err := os.ReadDir(dir)
		s.walkerSem.Release()
		if err != nil {
			s.skipFolders.Add(1)
			return
		}

		for _, entry := range entries {
			full := filepath.Join(dir, entry.Name())
			name := entry.Name()

			isSymlink := entry.Type()&os.ModeSymlink != 0
			if reason := s.filter.Match(isSymlink, name); reason != filter.Included {
				if entry.IsDir() {
					s.skipFolders.Add(1)
				} else {
					s.skipFiles.Add(1)
				}
				continue
			}

			switch {
			case isSymlink:
				s.admit(full, 0, true)
			case entry.IsDir():
				s.walk(full)
			default:
				s.admitFile(full)
			}
		}
	}()
}

// admitFile verifies a regular file is reachable (open + stat) before
// scheduling it; races where the file vanishes between listing and open
// are counted as a skipped file, never fatal.
func (s *Scanner) admitFile(full string) {
	f, err := os.Open(full)
	if err != nil {
		s.skipFiles.Add(1)
		return
	}
	defer func() { _ = f.Close() }()

	info, err := f.Stat()
	if err != nil {
		s.skipFiles.Add(1)
		return
	}
	if !info.Mode().IsRegular() {
		s.skipFiles.Add(1)
		return
	}

	s.admit(full, uint64(info.Size()), false)
}

// admit schedules a path into the large or small list based on size and
// splitLarge. isSymlink entries are always small: their content is never
// read, so the large/small split (which only matters for chunked
// hashing) doesn't apply.
func (s *Scanner) admit(full string, size uint64, isSymlink bool) {
	rel, err := filepath.Rel(s.root, full)
	if err != nil {
		rel = full
	}
	e := pathlist.Entry{RelPath: rel, Size: size, IsSymlink: isSymlink}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.scheduledFiles.Record(size)
	if s.splitLarge && size > Threshold {
		s.large = append(s.large, e)
	} else {
		s.small = append(s.small, e)
	}
}
