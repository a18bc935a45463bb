package progress

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/dustin/go-humanize"
)

// RepaintInterval is the minimum time between repaints for a Tracker.
// Hashing runs at disk and memory speed; redrawing on every file or
// chunk would itself become a bottleneck, so repaints are throttled to
// this interval.
const RepaintInterval = 666 * time.Millisecond

// Tracker accumulates file and byte counts for one hashing phase and
// renders them through a spinner-mode Bar. It satisfies the Progress
// contract consumed by internal/hasher's worker pool: AddFiles and
// AddBytes are safe to call from any number of goroutines.
type Tracker struct {
	label string
	files atomic.Uint64
	bytes atomic.Uint64
	start time.Time
	bar   *Bar
}

// NewTracker returns a Tracker labelled for one phase (e.g. "Snap 1",
// "Snap 2"). Pass enabled=false to suppress rendering entirely, as when
// stderr isn't a terminal.
func NewTracker(label string, enabled bool) *Tracker {
	t := &Tracker{
		label: label,
		start: time.Now(),
		bar:   NewWithInterval(enabled, RepaintInterval),
	}
	t.bar.Describe(t)
	return t
}

// AddFiles records n more files hashed.
func (t *Tracker) AddFiles(n uint64) {
	t.files.Add(n)
	t.bar.Describe(t)
}

// AddBytes records n more bytes read.
func (t *Tracker) AddBytes(n uint64) {
	t.bytes.Add(n)
	t.bar.Describe(t)
}

// Finish stops the spinner and prints the final tally for this phase.
func (t *Tracker) Finish() {
	t.bar.Finish(t)
}

// String renders the current tally, throttled by the Bar itself rather
// than here — every AddFiles/AddBytes call recomputes it, but the Bar
// only repaints once per RepaintInterval.
func (t *Tracker) String() string {
	elapsed := time.Since(t.start).Truncate(time.Second)
	rate := "0 B/s"
	if secs := time.Since(t.start).Seconds(); secs > 0 {
		rate = humanize.IBytes(uint64(float64(t.bytes.Load())/secs)) + "/s"
	}
	return fmt.Sprintf("%s: %d files, %s hashed (%s) in %v",
		t.label, t.files.Load(), humanize.IBytes(t.bytes.Load()), rate, elapsed)
}
