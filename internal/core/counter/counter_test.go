package counter

import (
	"context"
	"testing"

	"github.com/fsbox-cli/fsbox/internal/testutil"
)

func TestCount(t *testing.T) {
	dir := t.TempDir()
	testutil.MakeTree(t, dir, map[string]string{
		"main.go":      "package main\n\nfunc main() {}\n",
		"util.go":      "package main\n",
		"doc.md":       "# Title\n\nBody\n",
		"sub/extra.GO": "package sub\n", // extension matching is case-insensitive
		"Makefile":     "all:\n\ttrue\n",
	})

	report, err := Count(context.Background(), dir, nil)
	if err != nil {
		t.Fatalf("Count failed: %v", err)
	}
	if report.TotalFiles != 5 {
		t.Errorf("total files: got %d, want 5", report.TotalFiles)
	}

	byExt := map[string]Row{}
	for _, r := range report.Rows {
		byExt[r.Extension] = r
	}
	if byExt[".go"].Files != 3 {
		t.Errorf(".go files: got %d, want 3", byExt[".go"].Files)
	}
	if byExt[".go"].Lines != 5 {
		t.Errorf(".go lines: got %d, want 5", byExt[".go"].Lines)
	}
	if byExt[NoExtension].Files != 1 {
		t.Errorf("no-ext files: got %d, want 1", byExt[NoExtension].Files)
	}
}

func TestCountWithFilter(t *testing.T) {
	dir := t.TempDir()
	testutil.MakeTree(t, dir, map[string]string{
		"a.go": "x\n",
		"b.rs": "y\n",
		"c.md": "z\n",
	})

	// Filter accepts names with or without the leading dot
	report, err := Count(context.Background(), dir, []string{"go", ".rs"})
	if err != nil {
		t.Fatalf("Count failed: %v", err)
	}
	if report.TotalFiles != 2 {
		t.Errorf("filtered files: got %d, want 2", report.TotalFiles)
	}
	for _, r := range report.Rows {
		if r.Extension == ".md" {
			t.Error("filtered extension leaked into report")
		}
	}
}

func TestCountRowOrder(t *testing.T) {
	dir := t.TempDir()
	testutil.MakeTree(t, dir, map[string]string{
		"a.py": "1\n", "b.py": "2\n", "c.py": "3\n",
		"x.sh": "4\n",
	})

	report, err := Count(context.Background(), dir, nil)
	if err != nil {
		t.Fatalf("Count failed: %v", err)
	}
	if report.Rows[0].Extension != ".py" {
		t.Errorf("most frequent extension first: got %s", report.Rows[0].Extension)
	}
}
