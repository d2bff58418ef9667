package dedup

import (
	"context"
	"runtime"
	"sort"
	"sync"

	"github.com/sourcegraph/conc/pool"

	"github.com/fsbox-cli/fsbox/internal/core/checksum"
	"github.com/fsbox-cli/fsbox/internal/core/walker"
	"github.com/fsbox-cli/fsbox/internal/domain"
	"github.com/fsbox-cli/fsbox/internal/progress"
)

// Options configures a duplicate scan
type Options struct {
	// Algorithm selects the content digest; defaults to XXH64, which is
	// plenty for grouping and much faster over large trees
	Algorithm checksum.Algorithm

	// Workers bounds the hashing pool; defaults to GOMAXPROCS
	Workers int

	// Reporter receives per-file progress events. Nil disables reporting.
	Reporter progress.Reporter
}

// Report is the result of one duplicate scan
type Report struct {
	// Groups holds only groups with two or more members, ordered by
	// descending wasted space, then by digest
	Groups []domain.DuplicateGroup

	// FilesScanned counts every file that was hashed
	FilesScanned int

	// TotalWasted sums Wasted() over all groups
	TotalWasted int64

	// Issues holds per-file walk or hash failures
	Issues []domain.Issue
}

// Scan walks the tree under root, digests every regular file, and
// groups files by content. Directories and symlinks are excluded.
// Zero-byte files group together; that is accepted behavior.
func Scan(ctx context.Context, root string, opts Options) (Report, error) {
	if opts.Algorithm == "" {
		opts.Algorithm = checksum.XXH64
	}
	if opts.Workers <= 0 {
		opts.Workers = runtime.GOMAXPROCS(0)
	}
	reporter := opts.Reporter
	if reporter == nil {
		reporter = progress.NullReporter{}
	}

	var report Report

	// Enumeration stays sequential so member order inside a group is
	// the walk order; only the hashing fans out.
	files, issues, err := walker.Collect(ctx, root, walker.Options{
		MaxDepth:      -1,
		IncludeHidden: true,
		FilesOnly:     true,
	})
	if err != nil {
		return report, err
	}
	report.Issues = append(report.Issues, issues...)

	var totalBytes int64
	for _, f := range files {
		totalBytes += f.Size
	}
	reporter.SetTotal(len(files), totalBytes)

	calc := checksum.NewDefaultCalculator()
	digests := make([]string, len(files))
	var mu sync.Mutex

	p := pool.New().WithMaxGoroutines(opts.Workers).WithContext(ctx)
	for i, f := range files {
		p.Go(func(ctx context.Context) error {
			d, err := calc.File(ctx, f.AbsPath, opts.Algorithm)
			if err != nil {
				mu.Lock()
				report.Issues = append(report.Issues, domain.Issue{Path: f.AbsPath, Err: err})
				mu.Unlock()
				reporter.Error(err)
				return nil
			}
			digests[i] = d
			reporter.Complete()
			return nil
		})
	}
	if err := p.Wait(); err != nil {
		return report, err
	}

	// Group in walk order so member lists are deterministic
	byDigest := make(map[string]*domain.DuplicateGroup)
	var order []string
	for i, f := range files {
		if digests[i] == "" {
			continue // hash failed, already reported
		}
		report.FilesScanned++
		g, ok := byDigest[digests[i]]
		if !ok {
			g = &domain.DuplicateGroup{Digest: digests[i], Size: f.Size}
			byDigest[digests[i]] = g
			order = append(order, digests[i])
		}
		g.Paths = append(g.Paths, f.AbsPath)
	}

	for _, d := range order {
		g := byDigest[d]
		if len(g.Paths) < 2 {
			continue
		}
		report.Groups = append(report.Groups, *g)
		report.TotalWasted += g.Wasted()
	}

	sort.Slice(report.Groups, func(i, j int) bool {
		wi, wj := report.Groups[i].Wasted(), report.Groups[j].Wasted()
		if wi != wj {
			return wi > wj
		}
		return report.Groups[i].Digest < report.Groups[j].Digest
	})
	return report, nil
}
