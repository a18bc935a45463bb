package snapshot

import "github.com/jotaen/snapdiff/internal/snapfile"

// Snapshot is the capability shared by Snapshot1 (phase-1 accumulator) and
// Snapshot2 (phase-2 classifier): accept one File at a time. internal/hasher
// defines an identical interface independently for its own consumer-side
// contract, rather than this package exporting one shared type the two
// phases both depend on.
type Snapshot interface {
	Add(f snapfile.File)
}
