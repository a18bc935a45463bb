package report

import (
	"bufio"
	"fmt"
	"io"

	"github.com/jotaen/snapdiff/internal/snapfile"
)

// WriteDetail writes the per-file listing: two snapshot totals, the
// identical total, then one line per Moved, Added, Deleted and Modified
// file. Paths are those recorded in the File record, relative to their
// snapshot root. Requires the Report to have been built with keepDetail
// true, or the four per-file sections are empty.
func (r Report) WriteDetail(w io.Writer) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "#sn1 %d (%d files)\n", r.Total1.Bytes, r.Total1.Files)
	fmt.Fprintf(bw, "#sn2 %d (%d files)\n", r.Total2.Bytes, r.Total2.Files)
	fmt.Fprintf(bw, "=idn %d (%d files)\n", r.Identical.Bytes, r.Identical.Files)

	writeLines(bw, ">mvd", r.Moved.FileList())
	writeLines(bw, "+add", r.Added.FileList())
	writeLines(bw, "-del", r.Deleted.FileList())
	writeLines(bw, "*mdf", r.Modified2.FileList())

	return bw.Flush()
}

func writeLines(w *bufio.Writer, tag string, files []snapfile.File) {
	for _, f := range files {
		fmt.Fprintf(w, "%s %d %s\n", tag, f.Size, f.Path)
	}
}
