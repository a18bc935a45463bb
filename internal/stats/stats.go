// Package stats implements the pure accumulators used throughout snapdiff:
// a (file count, byte count) Count, and a Stats that optionally retains the
// underlying File records for detailed reporting. The Report keeps
// Modified as two Stats (modified_1, modified_2) rather than a single
// gain/loss delta, because Snap-1 and Snap-2 byte totals for modified
// files differ and both totals need to be preserved independently.
package stats

import "github.com/jotaen/snapdiff/internal/snapfile"

// Count is a pure (files, bytes) accumulator.
type Count struct {
	Files uint64
	Bytes uint64
}

// Record adds one file of the given size to the count.
func (c *Count) Record(size uint64) {
	c.Files++
	c.Bytes += size
}

// Stats is a Count that can optionally retain the File records it was
// built from, for buckets that need a per-file listing (Moved, Added,
// Deleted, Modified).
type Stats struct {
	Count
	keepFiles bool
	files     []snapfile.File
}

// New returns an empty Stats. If keepFiles is true, RecordFile retains
// the File records for later retrieval via FileList.
func New(keepFiles bool) Stats {
	return Stats{keepFiles: keepFiles}
}

// RecordFile records one file's size and, if keepFiles was requested,
// appends it to the retained list.
func (s *Stats) RecordFile(f snapfile.File) {
	s.Count.Record(f.Size)
	if s.keepFiles {
		s.files = append(s.files, f)
	}
}

// FileList returns the retained File records, or nil if this Stats wasn't
// configured to keep them.
func (s *Stats) FileList() []snapfile.File {
	return s.files
}
