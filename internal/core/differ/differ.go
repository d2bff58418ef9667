package differ

import (
	"context"
	"os"
	"runtime"
	"sort"
	"sync"

	"github.com/sourcegraph/conc/pool"

	"github.com/fsbox-cli/fsbox/internal/core/checksum"
	"github.com/fsbox-cli/fsbox/internal/core/walker"
	"github.com/fsbox-cli/fsbox/internal/domain"
)

// Options configures a diff run
type Options struct {
	// Algorithm selects the content digest; defaults to SHA256
	Algorithm checksum.Algorithm

	// Workers bounds the hashing pool; defaults to GOMAXPROCS.
	// Files are independent units of work, so execution order does not
	// matter; the final record sort keeps the output deterministic.
	Workers int
}

// Result holds the classified records and any per-entry issues
type Result struct {
	Records []domain.DiffRecord
	Issues  []domain.Issue
}

// Identical reports whether every record is Unchanged
func (r Result) Identical() bool {
	for _, rec := range r.Records {
		if rec.Tag != domain.DiffUnchanged {
			return false
		}
	}
	return true
}

// Diff walks roots a and b and classifies every relative path in the
// union of the two trees. Pure read and compare; no side effects.
// Records come back sorted by relative path.
func Diff(ctx context.Context, a, b string, opts Options) (Result, error) {
	if opts.Algorithm == "" {
		opts.Algorithm = checksum.SHA256
	}
	if opts.Workers <= 0 {
		opts.Workers = runtime.GOMAXPROCS(0)
	}

	var result Result

	mapA, issuesA, err := walker.Index(ctx, a, walker.Unbounded())
	if err != nil {
		return result, err
	}
	mapB, issuesB, err := walker.Index(ctx, b, walker.Unbounded())
	if err != nil {
		return result, err
	}
	result.Issues = append(result.Issues, issuesA...)
	result.Issues = append(result.Issues, issuesB...)

	// Relative paths present in both trees as regular files need a
	// digest on each side; hash them through a bounded pool.
	type filePair struct {
		rel      string
		ea, eb   domain.Entry
	}
	var pairs []filePair

	union := make(map[string]struct{}, len(mapA)+len(mapB))
	for rel := range mapA {
		union[rel] = struct{}{}
	}
	for rel := range mapB {
		union[rel] = struct{}{}
	}

	for rel := range union {
		ea, inA := mapA[rel]
		eb, inB := mapB[rel]
		switch {
		case inA && !inB:
			result.Records = append(result.Records, domain.DiffRecord{RelPath: rel, Tag: domain.DiffRemoved})
		case !inA && inB:
			result.Records = append(result.Records, domain.DiffRecord{RelPath: rel, Tag: domain.DiffAdded})
		case ea.IsDir() && eb.IsDir():
			// Directories are never "modified"; content differences
			// surface as separate records.
			result.Records = append(result.Records, domain.DiffRecord{RelPath: rel, Tag: domain.DiffUnchanged})
		case ea.IsSymlink() && eb.IsSymlink():
			result.Records = append(result.Records, compareSymlinks(rel, ea, eb))
		case ea.IsFile() && eb.IsFile():
			pairs = append(pairs, filePair{rel: rel, ea: ea, eb: eb})
		default:
			// Kind changed between the trees
			result.Records = append(result.Records, domain.DiffRecord{RelPath: rel, Tag: domain.DiffModified})
		}
	}

	calc := checksum.NewDefaultCalculator()
	records := make([]domain.DiffRecord, len(pairs))
	var mu sync.Mutex

	p := pool.New().WithMaxGoroutines(opts.Workers).WithContext(ctx)
	for i, fp := range pairs {
		p.Go(func(ctx context.Context) error {
			da, errA := calc.File(ctx, fp.ea.AbsPath, opts.Algorithm)
			db, errB := calc.File(ctx, fp.eb.AbsPath, opts.Algorithm)

			rec := domain.DiffRecord{RelPath: fp.rel, SourceDigest: da, DestDigest: db}
			switch {
			case errA != nil || errB != nil:
				// Hash failure: report the issue and keep the record
				// conservative so the pair is flagged for review.
				rec.Tag = domain.DiffModified
				mu.Lock()
				if errA != nil {
					result.Issues = append(result.Issues, domain.Issue{Path: fp.ea.AbsPath, Err: errA})
				}
				if errB != nil {
					result.Issues = append(result.Issues, domain.Issue{Path: fp.eb.AbsPath, Err: errB})
				}
				mu.Unlock()
			case da == db:
				rec.Tag = domain.DiffUnchanged
			default:
				rec.Tag = domain.DiffModified
			}
			records[i] = rec
			return nil
		})
	}
	if err := p.Wait(); err != nil {
		return result, err
	}
	result.Records = append(result.Records, records...)

	sort.Slice(result.Records, func(i, j int) bool {
		return result.Records[i].RelPath < result.Records[j].RelPath
	})
	return result, nil
}

// compareSymlinks classifies two symlinks by their targets
func compareSymlinks(rel string, a, b domain.Entry) domain.DiffRecord {
	ta, errA := os.Readlink(a.AbsPath)
	tb, errB := os.Readlink(b.AbsPath)
	tag := domain.DiffModified
	if errA == nil && errB == nil && ta == tb {
		tag = domain.DiffUnchanged
	}
	return domain.DiffRecord{RelPath: rel, Tag: tag}
}
