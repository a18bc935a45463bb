package snapshot

import (
	"sync"

	"github.com/jotaen/snapdiff/internal/checksum"
	"github.com/jotaen/snapdiff/internal/report"
	"github.com/jotaen/snapdiff/internal/snapfile"
)

// Snapshot2 streams files from the second tree, classifying each against
// an owned Snapshot1 by path before buffering path-unmatched files by
// checksum for reconciliation at Conclude. It is the active Snapshot
// during phase 2.
type Snapshot2 struct {
	mu        sync.Mutex
	snap1     *Snapshot1
	remainder map[checksum.Sum][]snapfile.File
	rep       report.Report
}

// NewSnapshot2 wraps snap1 — finalized at the end of phase 1 — for phase
// 2 classification. keepDetail controls whether the Report's per-file
// buckets retain their File lists (needed only when a detailed report
// will be written).
func NewSnapshot2(snap1 *Snapshot1, keepDetail bool) *Snapshot2 {
	return &Snapshot2{
		snap1:     snap1,
		remainder: make(map[checksum.Sum][]snapfile.File),
		rep:       report.New(keepDetail),
	}
}

// Add classifies f2 against the wrapped Snapshot1: a path match resolves
// it immediately as Identical or Modified; no match buffers it by
// checksum for reconciliation in Conclude.
func (s *Snapshot2) Add(f2 snapfile.File) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rep.Total2.RecordFile(f2)

	switch kind, f1 := s.snap1.digest(f2); kind {
	case Identical:
		s.rep.Identical.RecordFile(f2)
	case Modified:
		s.rep.Modified1.RecordFile(f1)
		s.rep.Modified2.RecordFile(f2)
	default:
		s.remainder[f2.Checksum] = append(s.remainder[f2.Checksum], f2)
	}
}

// Conclude finalizes Snapshot1, then reconciles the two remainders by
// checksum: for each checksum, the first min(N, M) entries pair up as
// Moved (displayed using the Snapshot-1 path); surplus Snapshot-2
// entries are Added, surplus Snapshot-1 entries are Deleted.
// Any Snapshot-1 checksum bucket untouched by a Snapshot-2 remainder is
// Deleted in full. Consumes both snapshots; call exactly once.
func (s *Snapshot2) Conclude() report.Report {
	total1, hashIdx := s.snap1.conclude()
	s.rep.Total1 = total1

	for csum, snap2List := range s.remainder {
		snap1List, ok := hashIdx[csum]
		if !ok {
			for _, f2 := range snap2List {
				s.rep.Added.RecordFile(f2)
			}
			continue
		}

		n := len(snap2List)
		if len(snap1List) < n {
			n = len(snap1List)
		}
		for i := 0; i < n; i++ {
			s.rep.Moved.RecordFile(snap1List[i])
		}
		for _, f2 := range snap2List[n:] {
			s.rep.Added.RecordFile(f2)
		}

		if n == len(snap1List) {
			delete(hashIdx, csum)
		} else {
			hashIdx[csum] = snap1List[n:]
		}
	}

	for _, remaining := range hashIdx {
		for _, f1 := range remaining {
			s.rep.Deleted.RecordFile(f1)
		}
	}

	return s.rep
}
