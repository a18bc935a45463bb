// Package snapshot implements the two-level content-addressed index that
// drives comparison: Snapshot1 accumulates the first tree by path, then
// finalizes into a hash-keyed multimap; Snapshot2 streams the second
// tree, classifying by path match first and buffering the rest for
// hash-based reconciliation.
//
// The reconciliation in Snapshot2.Conclude pairs multiple same-checksum
// remainders element-wise — min(N, M) become Moved, the surplus on
// either side becomes Added or Deleted. A reconciliation that instead
// ran once per checksum key rather than once per file would only ever
// record a single Moved pairing per duplicate-content group, silently
// dropping the rest to Added/Deleted; full element-wise pairing is what
// keeps every duplicate accounted for.
package snapshot

import (
	"fmt"
	"sync"

	"github.com/jotaen/snapdiff/internal/checksum"
	"github.com/jotaen/snapdiff/internal/snapfile"
	"github.com/jotaen/snapdiff/internal/stats"
)

// DigestKind labels the result of matching a Snapshot-2 file against
// Snapshot-1 by path.
type DigestKind int

const (
	NoMatch DigestKind = iota
	Identical
	Modified
)

// HashIndex groups files by content checksum. Built once, by
// Snapshot1.conclude.
type HashIndex map[checksum.Sum][]snapfile.File

// Snapshot1 accumulates the first tree's files by path. It is the active
// Snapshot during phase 1, fed concurrently by the hasher's worker pool.
type Snapshot1 struct {
	mu     sync.Mutex
	byPath map[string]snapfile.File
	total  stats.Stats
}

// NewSnapshot1 returns an empty Snapshot1.
func NewSnapshot1() *Snapshot1 {
	return &Snapshot1{byPath: make(map[string]snapfile.File), total: stats.New(false)}
}

// Add admits f1 into the path index. A duplicate path is a programmer
// error — the scanner never schedules the same relative path twice within
// one root — and panics rather than returning a recoverable error.
func (s *Snapshot1) Add(f1 snapfile.File) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.byPath[f1.Path]; exists {
		panic(fmt.Sprintf("snapshot: duplicate path added twice: %s", f1.Path))
	}
	s.total.RecordFile(f1)
	s.byPath[f1.Path] = f1
}

// digest matches f2 against the path index, removing and classifying any
// hit. Called only from Snapshot2.Add, after phase 1 has fully joined —
// the mutex here still matters because Snapshot1 is also the free-standing
// active Snapshot during phase 1, used without Snapshot2 in the picture.
func (s *Snapshot1) digest(f2 snapfile.File) (DigestKind, snapfile.File) {
	s.mu.Lock()
	defer s.mu.Unlock()
	f1, ok := s.byPath[f2.Path]
	if !ok {
		return NoMatch, snapfile.File{}
	}
	delete(s.byPath, f2.Path)
	if snapfile.SameContent(f1, f2) {
		return Identical, f1
	}
	return Modified, f1
}

// conclude drains the path index, returning the running total and a
// checksum-keyed multimap for reconciliation. Call exactly once.
func (s *Snapshot1) conclude() (stats.Stats, HashIndex) {
	s.mu.Lock()
	defer s.mu.Unlock()
	idx := make(HashIndex, len(s.byPath))
	for _, f := range s.byPath {
		idx[f.Checksum] = append(idx[f.Checksum], f)
	}
	s.byPath = nil
	return s.total, idx
}
