package domain

// DiffTag classifies one relative path in a two-tree comparison
type DiffTag int

const (
	DiffUnchanged DiffTag = iota
	DiffAdded
	DiffRemoved
	DiffModified
)

// String returns the report tag for a diff classification
func (t DiffTag) String() string {
	switch t {
	case DiffAdded:
		return "added"
	case DiffRemoved:
		return "removed"
	case DiffModified:
		return "modified"
	case DiffUnchanged:
		return "unchanged"
	default:
		return "unknown"
	}
}

// DiffRecord is one classified relative path from a diff run.
// The digests are set only when both sides are regular files.
type DiffRecord struct {
	RelPath      string
	Tag          DiffTag
	SourceDigest string
	DestDigest   string
}

// DuplicateGroup collects the paths sharing one content digest.
// Paths keep walk order; only groups with two or more members are reported.
type DuplicateGroup struct {
	Digest string
	Size   int64
	Paths  []string
}

// Wasted returns the bytes recoverable by deleting all but one member
func (g DuplicateGroup) Wasted() int64 {
	if len(g.Paths) < 2 {
		return 0
	}
	return int64(len(g.Paths)-1) * g.Size
}

// Issue records a per-entry failure that did not abort the operation
type Issue struct {
	Path string
	Err  error
}

// CopyOutcome classifies the result of copying a single entry
type CopyOutcome int

const (
	CopyDone CopyOutcome = iota
	CopySkipped
	CopyFailed
)

// CopyResult accumulates per-entry outcomes of a copy run.
// Per-entry failures never abort the run; only an uncreatable
// destination root does.
type CopyResult struct {
	Copied    int
	Skipped   int
	Failed    int
	Conflicts []string
	Issues    []Issue
}

// Ok reports whether every entry copied cleanly
func (r CopyResult) Ok() bool {
	return r.Failed == 0 && len(r.Conflicts) == 0
}
