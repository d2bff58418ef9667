package sizer

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"sync/atomic"

	"github.com/charlievieth/fastwalk"

	"github.com/fsbox-cli/fsbox/internal/domain"
)

// Item is one immediate child of the report root with its recursive size
type Item struct {
	Name  string
	IsDir bool
	Bytes int64
}

// Report holds the sorted usage breakdown for one directory
type Report struct {
	Items  []Item
	Total  int64
	Issues []domain.Issue
}

// Usage sizes every immediate child of root, recursing into
// directories, and returns items sorted by descending size. Sizing
// fans out per subtree since subtrees are independent; the sort keeps
// the report deterministic.
func Usage(ctx context.Context, root string) (Report, error) {
	var report Report

	entries, err := os.ReadDir(root)
	if err != nil {
		return report, domain.MapOSError(err)
	}

	for _, de := range entries {
		path := filepath.Join(root, de.Name())
		item := Item{Name: de.Name(), IsDir: de.IsDir()}

		if de.IsDir() {
			size, issues := dirSize(ctx, path)
			item.Bytes = size
			report.Issues = append(report.Issues, issues...)
		} else if info, err := de.Info(); err == nil {
			item.Bytes = info.Size()
		} else {
			report.Issues = append(report.Issues, domain.Issue{Path: path, Err: domain.MapOSError(err)})
		}

		report.Items = append(report.Items, item)
		report.Total += item.Bytes
	}

	sort.Slice(report.Items, func(i, j int) bool {
		if report.Items[i].Bytes != report.Items[j].Bytes {
			return report.Items[i].Bytes > report.Items[j].Bytes
		}
		return report.Items[i].Name < report.Items[j].Name
	})
	return report, nil
}

// dirSize sums regular-file sizes under dir with a parallel walk
func dirSize(ctx context.Context, dir string) (int64, []domain.Issue) {
	var total atomic.Int64
	var issues []domain.Issue

	conf := fastwalk.Config{Follow: false}
	err := fastwalk.Walk(&conf, dir, func(p string, d os.DirEntry, err error) error {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		if err != nil {
			// Unreadable subtree: skip it, keep sizing the rest
			return nil
		}
		if d.Type().IsRegular() {
			if info, err := d.Info(); err == nil {
				total.Add(info.Size())
			}
		}
		return nil
	})
	if err != nil {
		issues = append(issues, domain.Issue{Path: dir, Err: err})
	}
	return total.Load(), issues
}
