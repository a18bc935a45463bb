// Package pathlist holds the scanner's output: two ordered lists of
// discovered files (large, sorted by size descending, and small, order
// irrelevant) plus a shared cursor that the hasher's worker pool drains
// exactly once, large list first.
package pathlist

import (
	"sync"

	"github.com/jotaen/snapdiff/internal/types"
)

// Entry is one file discovered by the scanner, not yet hashed.
//
// Size here is the size observed at scheduling time; it is advisory only
// — the hasher re-measures size while streaming the file, and that
// observation is authoritative.
type Entry struct {
	RelPath   string
	Size      uint64
	IsSymlink bool
}

// Cursor is the shared, mutex-protected queue that a phase's worker pool
// drains. It is built once from the scanner's lists and consumed exactly once by
// the hasher: large entries first (descending size), then small entries
// in scan order.
type Cursor struct {
	mu    sync.Mutex
	large []Entry
	small []Entry
	li    int
	si    int
}

// NewCursor builds a Cursor from the scanner's large and small lists,
// sorting large by size descending (keyed on negated size, since Sorted
// only orders ascending).
func NewCursor(large, small []Entry) *Cursor {
	sorted := types.NewSorted(large, func(e Entry) int64 { return -int64(e.Size) })
	return &Cursor{large: sorted.Items(), small: small}
}

// Pop removes and returns the next entry, or ok=false once both lists are
// exhausted.
func (c *Cursor) Pop() (Entry, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.li < len(c.large) {
		e := c.large[c.li]
		c.li++
		return e, true
	}
	if c.si < len(c.small) {
		e := c.small[c.si]
		c.si++
		return e, true
	}
	return Entry{}, false
}

// Len returns the total number of entries, large and small combined.
func (c *Cursor) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.large) + len(c.small)
}
