package copier

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/fsbox-cli/fsbox/internal/core/walker"
	"github.com/fsbox-cli/fsbox/internal/domain"
	"github.com/fsbox-cli/fsbox/internal/progress"
)

// Options configures a copy run
type Options struct {
	// Overwrite replaces existing destination entries. When off, an
	// existing destination entry is reported as a conflict and skipped.
	Overwrite bool

	// Reporter receives per-file progress events. Nil disables reporting.
	Reporter progress.Reporter
}

// Copy replicates the tree (or single file) at src under dst,
// preserving permission bits and recreating symlink targets.
//
// Per-entry failures and conflicts never abort the run; they are
// accumulated into the result. Only a missing source or an uncreatable
// destination root is fatal.
func Copy(ctx context.Context, src, dst string, opts Options) (domain.CopyResult, error) {
	var result domain.CopyResult

	reporter := opts.Reporter
	if reporter == nil {
		reporter = progress.NullReporter{}
	}

	absSrc, err := filepath.Abs(src)
	if err != nil {
		return result, err
	}
	info, err := os.Lstat(absSrc)
	if err != nil {
		return result, domain.MapOSError(err)
	}

	c := &copier{opts: opts, reporter: reporter, result: &result}

	// A single regular file copies straight to dst (or into dst when
	// dst is an existing directory).
	if !info.IsDir() {
		target := dst
		if ti, err := os.Stat(dst); err == nil && ti.IsDir() {
			target = filepath.Join(dst, filepath.Base(absSrc))
		}
		if err := os.MkdirAll(filepath.Dir(target), 0755); err != nil {
			return result, fmt.Errorf("cannot create destination root: %w", domain.MapOSError(err))
		}
		c.copyEntry(walkerEntry(absSrc, filepath.Base(absSrc), info), target)
		return result, nil
	}

	absDst, err := filepath.Abs(dst)
	if err != nil {
		return result, err
	}
	if err := os.MkdirAll(absDst, info.Mode().Perm()); err != nil {
		return result, fmt.Errorf("cannot create destination root: %w", domain.MapOSError(err))
	}

	issues, err := walker.Walk(ctx, absSrc, walker.Unbounded(), func(e domain.Entry) error {
		c.copyEntry(e, filepath.Join(absDst, filepath.FromSlash(e.RelPath)))
		return nil
	})
	for _, issue := range issues {
		result.Failed++
		result.Issues = append(result.Issues, issue)
	}
	if err != nil {
		return result, err
	}
	return result, nil
}

type copier struct {
	opts     Options
	reporter progress.Reporter
	result   *domain.CopyResult
}

// copyEntry replicates one walked entry, recording the outcome
func (c *copier) copyEntry(e domain.Entry, target string) {
	switch e.Kind {
	case domain.KindDirectory:
		if err := os.MkdirAll(target, e.Mode); err != nil {
			c.fail(e.RelPath, domain.MapOSError(err))
			return
		}
		c.result.Copied++

	case domain.KindSymlink:
		if c.conflict(e.RelPath, target) {
			return
		}
		linkTarget, err := os.Readlink(e.AbsPath)
		if err != nil {
			c.fail(e.RelPath, domain.MapOSError(err))
			return
		}
		os.Remove(target) // only reached with overwrite on
		if err := os.Symlink(linkTarget, target); err != nil {
			c.fail(e.RelPath, domain.MapOSError(err))
			return
		}
		c.result.Copied++

	case domain.KindFile:
		if c.conflict(e.RelPath, target) {
			return
		}
		c.reporter.Start(e.RelPath, e.Size)
		if err := copyFile(e.AbsPath, target, e.Mode, c.reporter); err != nil {
			c.reporter.Error(err)
			c.fail(e.RelPath, err)
			return
		}
		c.reporter.Complete()
		c.result.Copied++
	}
}

// conflict checks the overwrite policy for an existing destination.
// Returns true when the entry must be skipped.
func (c *copier) conflict(rel, target string) bool {
	if c.opts.Overwrite {
		return false
	}
	if _, err := os.Lstat(target); err == nil {
		c.result.Skipped++
		c.result.Conflicts = append(c.result.Conflicts, rel)
		return true
	}
	return false
}

func (c *copier) fail(rel string, err error) {
	c.result.Failed++
	c.result.Issues = append(c.result.Issues, domain.Issue{Path: rel, Err: err})
}

// copyFile streams bytes and applies the source permission bits
func copyFile(src, dst string, mode fs.FileMode, reporter progress.Reporter) error {
	in, err := os.Open(src)
	if err != nil {
		return domain.MapOSError(err)
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, mode)
	if err != nil {
		return domain.MapOSError(err)
	}

	_, copyErr := io.Copy(progress.NewWriter(out, reporter), in)
	closeErr := out.Close()
	if copyErr != nil {
		return fmt.Errorf("%w: %v", domain.ErrIO, copyErr)
	}
	if closeErr != nil {
		return fmt.Errorf("%w: %v", domain.ErrIO, closeErr)
	}

	// O_CREATE is subject to the umask; restore the exact bits
	if err := os.Chmod(dst, mode); err != nil {
		return domain.MapOSError(err)
	}
	return nil
}

// walkerEntry builds an Entry for a source that is itself a file
func walkerEntry(abs, rel string, info os.FileInfo) domain.Entry {
	kind := domain.KindFile
	if info.Mode()&os.ModeSymlink != 0 {
		kind = domain.KindSymlink
	}
	return domain.Entry{
		AbsPath: abs,
		RelPath: rel,
		Kind:    kind,
		Size:    info.Size(),
		Mode:    info.Mode().Perm(),
	}
}
