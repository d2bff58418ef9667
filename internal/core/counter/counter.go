package counter

import (
	"bufio"
	"context"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/charlievieth/fastwalk"

	"github.com/fsbox-cli/fsbox/internal/domain"
)

// NoExtension labels files without an extension in the report
const NoExtension = "(no ext)"

// Row is the per-extension tally
type Row struct {
	Extension string
	Files     int
	Lines     int
}

// Report aggregates file and line counts grouped by extension
type Report struct {
	Rows       []Row
	TotalFiles int
	TotalLines int
	Issues     []domain.Issue
}

// Count walks root and tallies files and lines per extension. When
// extensions is non-empty only those extensions are counted (with or
// without a leading dot). Files are independent, so the walk fans out;
// rows are sorted by file count, then extension, for stable output.
func Count(ctx context.Context, root string, extensions []string) (Report, error) {
	var report Report

	filter := make(map[string]bool, len(extensions))
	for _, e := range extensions {
		if !strings.HasPrefix(e, ".") {
			e = "." + e
		}
		filter[strings.ToLower(e)] = true
	}

	type tally struct{ files, lines int }
	byExt := make(map[string]*tally)
	var mu sync.Mutex

	conf := fastwalk.Config{Follow: false}
	err := fastwalk.Walk(&conf, root, func(p string, d os.DirEntry, err error) error {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		if err != nil {
			mu.Lock()
			report.Issues = append(report.Issues, domain.Issue{Path: p, Err: domain.MapOSError(err)})
			mu.Unlock()
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}

		ext := strings.ToLower(filepath.Ext(p))
		if ext == "" {
			ext = NoExtension
		}
		if len(filter) > 0 && !filter[ext] {
			return nil
		}

		lines, countErr := countLines(p)
		mu.Lock()
		defer mu.Unlock()
		if countErr != nil {
			report.Issues = append(report.Issues, domain.Issue{Path: p, Err: countErr})
			return nil
		}
		t, ok := byExt[ext]
		if !ok {
			t = &tally{}
			byExt[ext] = t
		}
		t.files++
		t.lines += lines
		return nil
	})
	if err != nil {
		return report, domain.MapOSError(err)
	}

	for ext, t := range byExt {
		report.Rows = append(report.Rows, Row{Extension: ext, Files: t.files, Lines: t.lines})
		report.TotalFiles += t.files
		report.TotalLines += t.lines
	}
	sort.Slice(report.Rows, func(i, j int) bool {
		if report.Rows[i].Files != report.Rows[j].Files {
			return report.Rows[i].Files > report.Rows[j].Files
		}
		return report.Rows[i].Extension < report.Rows[j].Extension
	})
	return report, nil
}

// countLines counts newline-terminated lines with a scoped handle
func countLines(path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, domain.MapOSError(err)
	}
	defer f.Close()

	lines := 0
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)
	for scanner.Scan() {
		lines++
	}
	if err := scanner.Err(); err != nil {
		// Binary files with very long runs are tallied as zero lines
		return 0, nil
	}
	return lines, nil
}
