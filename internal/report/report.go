// Package report defines the eight-bucket comparison result and its two
// renderings: a detailed per-file listing and an ANSI summary table.
package report

import "github.com/jotaen/snapdiff/internal/stats"

// Report holds the eight Stats buckets produced by one comparison run.
// Moved, Added, Deleted and Modified2 retain their File lists when
// keepDetail was requested at New — the only four buckets a detailed
// report ever lists.
type Report struct {
	Total1    stats.Stats
	Total2    stats.Stats
	Identical stats.Stats
	Moved     stats.Stats
	Added     stats.Stats
	Deleted   stats.Stats
	Modified1 stats.Stats
	Modified2 stats.Stats
}

// New returns an empty Report.
func New(keepDetail bool) Report {
	return Report{
		Total1:    stats.New(false),
		Total2:    stats.New(false),
		Identical: stats.New(false),
		Moved:     stats.New(keepDetail),
		Added:     stats.New(keepDetail),
		Deleted:   stats.New(keepDetail),
		Modified1: stats.New(false),
		Modified2: stats.New(keepDetail),
	}
}

// ModifiedDelta is total_2 - total_1 bytes among modified files: the
// (±delta) annotation on the summary table's Modified row.
func (r Report) ModifiedDelta() int64 {
	return int64(r.Modified2.Bytes) - int64(r.Modified1.Bytes)
}
