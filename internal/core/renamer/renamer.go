package renamer

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/fsbox-cli/fsbox/internal/core/walker"
	"github.com/fsbox-cli/fsbox/internal/domain"
)

// Change is one planned or applied rename
type Change struct {
	Dir     string
	OldName string
	NewName string
}

// Result accumulates what a rename pass did
type Result struct {
	Changes []Change
	Applied int
	Issues  []domain.Issue
}

// Run renames files under root whose name contains pattern, replacing
// every occurrence with replacement. With dryRun the changes are
// planned and reported but not applied.
func Run(ctx context.Context, root, pattern, replacement string, dryRun bool) (Result, error) {
	var result Result

	opts := walker.Options{MaxDepth: -1, IncludeHidden: true, FilesOnly: true}
	issues, err := walker.Walk(ctx, root, opts, func(e domain.Entry) error {
		name := filepath.Base(e.AbsPath)
		if !strings.Contains(name, pattern) {
			return nil
		}
		change := Change{
			Dir:     filepath.Dir(e.AbsPath),
			OldName: name,
			NewName: strings.ReplaceAll(name, pattern, replacement),
		}
		result.Changes = append(result.Changes, change)

		if dryRun {
			return nil
		}
		newPath := filepath.Join(change.Dir, change.NewName)
		if _, err := os.Lstat(newPath); err == nil {
			result.Issues = append(result.Issues, domain.Issue{Path: e.RelPath, Err: domain.ErrConflict})
			return nil
		}
		if err := os.Rename(e.AbsPath, newPath); err != nil {
			result.Issues = append(result.Issues, domain.Issue{Path: e.RelPath, Err: domain.MapOSError(err)})
			return nil
		}
		result.Applied++
		return nil
	})
	result.Issues = append(result.Issues, issues...)
	if err != nil {
		return result, err
	}
	return result, nil
}
