package walker

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/fsbox-cli/fsbox/internal/domain"
)

// SkipDir can be returned from a walk callback for a directory to
// skip its contents while continuing with siblings.
var SkipDir = fs.SkipDir

// Options configures a walk
type Options struct {
	// MaxDepth limits recursion. -1 means unbounded.
	// 0 yields only the root's immediate children.
	MaxDepth int

	// IncludeHidden yields entries whose name starts with a dot
	IncludeHidden bool

	// Match filters yielded entries by name. Nil matches everything.
	// Directories that fail the match are still descended into.
	Match MatchFunc

	// FilesOnly suppresses directory and symlink entries.
	// Directories are still descended into.
	FilesOnly bool
}

// Unbounded returns options for a full walk including hidden entries
func Unbounded() Options {
	return Options{MaxDepth: -1, IncludeHidden: true}
}

// Func receives each discovered entry in depth-first, lexical order
type Func func(e domain.Entry) error

// Walk traverses the tree rooted at root and calls fn for each entry.
//
// Symlinks are yielded as their own kind and never followed. Unreadable
// subdirectories are recorded as issues and the walk continues with
// siblings. A missing or non-directory root fails the whole walk.
func Walk(ctx context.Context, root string, opts Options, fn Func) ([]domain.Issue, error) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, err
	}

	info, err := os.Lstat(absRoot)
	if err != nil {
		return nil, domain.MapOSError(err)
	}
	if !info.IsDir() {
		return nil, domain.ErrNotDirectory
	}

	w := &walker{opts: opts, root: absRoot, fn: fn}
	if err := w.walkDir(ctx, absRoot, 0); err != nil {
		return w.issues, err
	}
	return w.issues, nil
}

// Collect runs Walk and gathers the entries into a slice
func Collect(ctx context.Context, root string, opts Options) ([]domain.Entry, []domain.Issue, error) {
	var entries []domain.Entry
	issues, err := Walk(ctx, root, opts, func(e domain.Entry) error {
		entries = append(entries, e)
		return nil
	})
	if err != nil {
		return nil, issues, err
	}
	return entries, issues, nil
}

// Index runs Walk and maps relative path to entry
func Index(ctx context.Context, root string, opts Options) (map[string]domain.Entry, []domain.Issue, error) {
	index := make(map[string]domain.Entry)
	issues, err := Walk(ctx, root, opts, func(e domain.Entry) error {
		index[e.RelPath] = e
		return nil
	})
	if err != nil {
		return nil, issues, err
	}
	return index, issues, nil
}

type walker struct {
	opts   Options
	root   string
	fn     Func
	issues []domain.Issue
}

func (w *walker) walkDir(ctx context.Context, dir string, depth int) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		if dir == w.root {
			return domain.MapOSError(err)
		}
		// Partial-failure tolerant: record and continue with siblings
		w.issues = append(w.issues, domain.Issue{Path: dir, Err: domain.MapOSError(err)})
		return nil
	}

	for _, de := range entries {
		name := de.Name()
		if !w.opts.IncludeHidden && strings.HasPrefix(name, ".") {
			continue
		}

		abs := filepath.Join(dir, name)
		info, err := de.Info()
		if err != nil {
			w.issues = append(w.issues, domain.Issue{Path: abs, Err: domain.MapOSError(err)})
			continue
		}

		entry := fromFileInfo(w.root, abs, info)

		skipChildren := false
		if w.yieldable(entry, name) {
			if err := w.fn(entry); err != nil {
				if errors.Is(err, SkipDir) && entry.IsDir() {
					skipChildren = true
				} else {
					return err
				}
			}
		}

		if entry.IsDir() && !skipChildren && w.descend(depth) {
			if err := w.walkDir(ctx, abs, depth+1); err != nil {
				return err
			}
		}
	}
	return nil
}

// yieldable applies the FilesOnly and Match filters
func (w *walker) yieldable(e domain.Entry, name string) bool {
	if w.opts.FilesOnly && !e.IsFile() {
		return false
	}
	if w.opts.Match != nil && !w.opts.Match(name) {
		return false
	}
	return true
}

// descend reports whether children at depth+1 are within the depth limit
func (w *walker) descend(depth int) bool {
	return w.opts.MaxDepth < 0 || depth < w.opts.MaxDepth
}

// fromFileInfo converts os.FileInfo to a domain.Entry
func fromFileInfo(root, abs string, info os.FileInfo) domain.Entry {
	kind := domain.KindFile
	if info.IsDir() {
		kind = domain.KindDirectory
	} else if info.Mode()&os.ModeSymlink != 0 {
		kind = domain.KindSymlink
	}

	rel, err := filepath.Rel(root, abs)
	if err != nil {
		rel = abs
	}

	return domain.Entry{
		AbsPath: abs,
		RelPath: filepath.ToSlash(rel),
		Kind:    kind,
		Size:    info.Size(),
		Mode:    info.Mode().Perm(),
	}
}
