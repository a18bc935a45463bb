// Package snapfile defines the File record shared by the scanner, hasher
// and snapshots: a relative path plus the size and checksum observed while
// hashing it.
package snapfile

import "github.com/jotaen/snapdiff/internal/checksum"

// File is one hashed file, relative to its snapshot root.
//
// Equality in this domain is (Size, Checksum); Path is tracked separately
// and compared by the snapshots, not by File itself.
type File struct {
	Path     string
	Size     uint64
	Checksum checksum.Sum
}

// New builds a File record.
func New(path string, size uint64, sum checksum.Sum) File {
	return File{Path: path, Size: size, Checksum: sum}
}

// SameContent reports whether two files have identical size and checksum,
// regardless of path.
func SameContent(a, b File) bool {
	return a.Size == b.Size && a.Checksum == b.Checksum
}
