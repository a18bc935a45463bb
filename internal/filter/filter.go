// Package filter decides whether a discovered filesystem entry should be
// skipped during scanning: symlinks and dot-prefixed names are skipped by
// default, each independently toggleable.
package filter

import "strings"

const dotPrefix = "."

// Reason names why an entry was skipped.
type Reason int

const (
	// Included means the entry passed the filter.
	Included Reason = iota
	// SkipSymlink means the entry is a symlink and symlinks are excluded.
	SkipSymlink
	// SkipDotPath means the entry's basename starts with "." and dot
	// paths are excluded.
	SkipDotPath
)

// Filter holds the two independent inclusion toggles from the CLI.
type Filter struct {
	IncludeSymlinks bool
	IncludeDotPaths bool
}

// New builds a Filter from the CLI's --include-symlinks/--include-dot-paths
// flags.
func New(includeSymlinks, includeDotPaths bool) Filter {
	return Filter{IncludeSymlinks: includeSymlinks, IncludeDotPaths: includeDotPaths}
}

// Match decides whether an entry should be skipped. isSymlink is the
// entry's own link-ness (not its target); name is its basename.
func (f Filter) Match(isSymlink bool, name string) Reason {
	if !f.IncludeSymlinks && isSymlink {
		return SkipSymlink
	}
	if !f.IncludeDotPaths && strings.HasPrefix(name, dotPrefix) {
		return SkipDotPath
	}
	return Included
}
