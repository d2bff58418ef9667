package domain

import "io/fs"

// EntryKind represents the type of a filesystem entry
type EntryKind int

const (
	KindFile EntryKind = iota
	KindDirectory
	KindSymlink
)

// String returns a short human-readable kind name
func (k EntryKind) String() string {
	switch k {
	case KindFile:
		return "file"
	case KindDirectory:
		return "dir"
	case KindSymlink:
		return "symlink"
	default:
		return "unknown"
	}
}

// Entry represents one filesystem object discovered during a walk.
// It is immutable once yielded by the walker.
type Entry struct {
	// AbsPath is the absolute path on disk
	AbsPath string

	// RelPath is the path relative to the walk root, slash-normalized.
	// Unique within a single walk.
	RelPath string

	// Kind indicates file, directory, or symlink
	Kind EntryKind

	// Size in bytes (0 for directories)
	Size int64

	// Mode holds the permission bits
	Mode fs.FileMode
}

// IsDir returns true if this is a directory
func (e Entry) IsDir() bool {
	return e.Kind == KindDirectory
}

// IsFile returns true if this is a regular file
func (e Entry) IsFile() bool {
	return e.Kind == KindFile
}

// IsSymlink returns true if this is a symbolic link
func (e Entry) IsSymlink() bool {
	return e.Kind == KindSymlink
}
