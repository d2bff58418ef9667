package cleaner

import (
	"context"
	"os"
	"strings"

	"github.com/fsbox-cli/fsbox/internal/core/walker"
	"github.com/fsbox-cli/fsbox/internal/domain"
)

// Options lists what counts as junk
type Options struct {
	// Names removed when a file or directory matches exactly
	Names []string

	// Extensions removed when a file name ends with one
	Extensions []string
}

// DefaultOptions returns the stock junk lists
func DefaultOptions() Options {
	return Options{
		Names: []string{
			"__pycache__", ".pytest_cache", ".mypy_cache", ".ruff_cache",
			"target", ".DS_Store", "Thumbs.db", ".eggs",
		},
		Extensions: []string{".pyc", ".pyo", ".class", ".o", ".obj", ".log"},
	}
}

// Candidate is one junk entry slated for removal
type Candidate struct {
	Path    string
	RelPath string
	IsDir   bool
}

// Scan walks root and collects junk candidates in walk order. Children
// of a matched directory are pruned; removing the directory covers them.
func Scan(ctx context.Context, root string, opts Options) ([]Candidate, []domain.Issue, error) {
	var found []Candidate

	issues, err := walker.Walk(ctx, root, walker.Unbounded(), func(e domain.Entry) error {
		name := baseName(e.RelPath)
		if !isJunk(name, opts) {
			return nil
		}
		found = append(found, Candidate{Path: e.AbsPath, RelPath: e.RelPath, IsDir: e.IsDir()})
		if e.IsDir() {
			return walker.SkipDir
		}
		return nil
	})
	if err != nil {
		return nil, issues, err
	}
	return found, issues, nil
}

// Remove deletes the candidates, continuing past per-entry failures
func Remove(candidates []Candidate) (int, []domain.Issue) {
	removed := 0
	var issues []domain.Issue

	for _, c := range candidates {
		var err error
		if c.IsDir {
			err = os.RemoveAll(c.Path)
		} else {
			err = os.Remove(c.Path)
		}
		if err != nil {
			issues = append(issues, domain.Issue{Path: c.RelPath, Err: domain.MapOSError(err)})
			continue
		}
		removed++
	}
	return removed, issues
}

func isJunk(name string, opts Options) bool {
	for _, n := range opts.Names {
		if name == n {
			return true
		}
	}
	for _, ext := range opts.Extensions {
		if strings.HasSuffix(name, ext) {
			return true
		}
	}
	return false
}

func baseName(rel string) string {
	if i := strings.LastIndexByte(rel, '/'); i >= 0 {
		return rel[i+1:]
	}
	return rel
}
