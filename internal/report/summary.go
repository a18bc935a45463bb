package report

import (
	"fmt"
	"strings"

	"github.com/jotaen/snapdiff/internal/format"
)

// WriteSummary renders the summary table: a header, TOTAL (Snap 1, Snap
// 2) and OF WHICH (Identical, Moved, Added, Deleted, Modified) rows,
// file count and byte total right-aligned. The Modified row appends a
// (±delta) byte annotation when non-zero. When colored is false every
// ANSI sequence is stripped (--no-color).
//
// Column widths are computed from the plain number strings only, rather
// than via text/tabwriter — ANSI escapes inside a tabwriter cell would
// be counted as visible width and break the alignment tabwriter is
// supposed to give.
func (r Report) WriteSummary(colored bool) string {
	pal := format.NoColors()
	if colored {
		pal = format.Colors()
	}

	files := []string{
		format.Dec(int64(r.Total1.Files)),
		format.Dec(int64(r.Total2.Files)),
		format.Dec(int64(r.Identical.Files)),
		format.Dec(int64(r.Moved.Files)),
		format.Dec(int64(r.Added.Files)),
		format.Dec(int64(r.Deleted.Files)),
		format.Dec(int64(r.Modified2.Files)),
	}
	bytesCol := []string{
		format.Dec(int64(r.Total1.Bytes)),
		format.Dec(int64(r.Total2.Bytes)),
		format.Dec(int64(r.Identical.Bytes)),
		format.Dec(int64(r.Moved.Bytes)),
		"+" + format.Dec(int64(r.Added.Bytes)),
		"-" + format.Dec(int64(r.Deleted.Bytes)),
		format.Dec(int64(r.Modified2.Bytes)),
	}

	fw := maxLen(files)
	bw := maxLen(bytesCol)

	delta := ""
	if d := r.ModifiedDelta(); d != 0 {
		delta = fmt.Sprintf(" (%s)", format.DecSigned(d))
	}

	pad := func(s string, w int) string { return fmt.Sprintf("%*s", w, s) }

	var b strings.Builder
	fmt.Fprintf(&b, "\n%s            %s     %s%s\n", pal.Bold, pad("FILES", fw), pad("BYTES", bw), pal.Reset)
	fmt.Fprintf(&b, "%sTOTAL       %sSnap 1      %s     %s%s\n", pal.Bold, pal.Light, pad(files[0], fw), pad(bytesCol[0], bw), pal.Reset)
	fmt.Fprintf(&b, "%s            %sSnap 2      %s     %s%s\n", pal.Bold, pal.Light, pad(files[1], fw), pad(bytesCol[1], bw), pal.Reset)
	fmt.Fprintf(&b, "%sOF WHICH    %sIdentical   %s     %s%s\n", pal.Bold, pal.Blue, pad(files[2], fw), pad(bytesCol[2], bw), pal.Reset)
	fmt.Fprintf(&b, "%s            %sMoved       %s     %s%s\n", pal.Bold, pal.Blue, pad(files[3], fw), pad(bytesCol[3], bw), pal.Reset)
	fmt.Fprintf(&b, "%s            %sAdded       %s     %s%s\n", pal.Bold, pal.Green, pad(files[4], fw), pad(bytesCol[4], bw), pal.Reset)
	fmt.Fprintf(&b, "%s            %sDeleted     %s     %s%s\n", pal.Bold, pal.Red, pad(files[5], fw), pad(bytesCol[5], bw), pal.Reset)
	fmt.Fprintf(&b, "%s            %sModified    %s     %s%s%s%s\n", pal.Bold, pal.Yellow, pad(files[6], fw), pad(bytesCol[6], bw), pal.Brown, delta, pal.Reset)
	return b.String()
}

func maxLen(ss []string) int {
	m := 0
	for _, s := range ss {
		if len(s) > m {
			m = len(s)
		}
	}
	return m
}
