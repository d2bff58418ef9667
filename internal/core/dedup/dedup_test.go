package dedup

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fsbox-cli/fsbox/internal/testutil"
)

// Two byte-identical files and one distinct file: exactly one group of
// size 2, and the distinct file appears in no group.
func TestScanFindsDuplicates(t *testing.T) {
	dir := t.TempDir()
	testutil.MakeTree(t, dir, map[string]string{
		"a.txt": "hi",
		"b.txt": "hi",
		"c.txt": "bye",
	})

	report, err := Scan(context.Background(), dir, Options{})
	if err != nil {
		t.Fatalf("Scan failed: %v", err)
	}

	if len(report.Groups) != 1 {
		t.Fatalf("groups: got %d, want 1", len(report.Groups))
	}
	g := report.Groups[0]
	if len(g.Paths) != 2 {
		t.Fatalf("group size: got %d, want 2", len(g.Paths))
	}
	for _, p := range g.Paths {
		name := filepath.Base(p)
		if name != "a.txt" && name != "b.txt" {
			t.Errorf("unexpected group member: %s", name)
		}
	}
	if report.TotalWasted != 2 { // one extra copy of "hi"
		t.Errorf("wasted: got %d, want 2", report.TotalWasted)
	}
	if report.FilesScanned != 3 {
		t.Errorf("scanned: got %d, want 3", report.FilesScanned)
	}
}

func TestScanNoDuplicates(t *testing.T) {
	dir := t.TempDir()
	testutil.MakeTree(t, dir, map[string]string{
		"a.txt": "one",
		"b.txt": "two",
	})

	report, err := Scan(context.Background(), dir, Options{})
	if err != nil {
		t.Fatalf("Scan failed: %v", err)
	}
	if len(report.Groups) != 0 {
		t.Errorf("groups: got %d, want 0", len(report.Groups))
	}
}

// Zero-byte files group together; that is accepted behavior.
func TestScanZeroByteFilesGroup(t *testing.T) {
	dir := t.TempDir()
	testutil.MakeTree(t, dir, map[string]string{
		"x.log": "",
		"y.log": "",
	})

	report, err := Scan(context.Background(), dir, Options{})
	if err != nil {
		t.Fatalf("Scan failed: %v", err)
	}
	if len(report.Groups) != 1 {
		t.Fatalf("groups: got %d, want 1", len(report.Groups))
	}
	if report.Groups[0].Wasted() != 0 {
		t.Errorf("zero-byte wasted: got %d, want 0", report.Groups[0].Wasted())
	}
}

// Groups come back ordered by descending wasted space.
func TestScanGroupOrder(t *testing.T) {
	dir := t.TempDir()
	big := strings.Repeat("B", 1000)
	testutil.MakeTree(t, dir, map[string]string{
		"small1.txt": "s",
		"small2.txt": "s",
		"big1.bin":   big,
		"big2.bin":   big,
		"big3.bin":   big,
	})

	report, err := Scan(context.Background(), dir, Options{})
	if err != nil {
		t.Fatalf("Scan failed: %v", err)
	}
	if len(report.Groups) != 2 {
		t.Fatalf("groups: got %d, want 2", len(report.Groups))
	}
	if report.Groups[0].Size != 1000 {
		t.Errorf("first group: got size %d, want the big group first", report.Groups[0].Size)
	}
	if got, want := report.Groups[0].Wasted(), int64(2000); got != want {
		t.Errorf("big group wasted: got %d, want %d", got, want)
	}
	if got, want := report.TotalWasted, int64(2001); got != want {
		t.Errorf("total wasted: got %d, want %d", got, want)
	}
}

// Member paths keep walk order; repeated scans agree.
func TestScanDeterministic(t *testing.T) {
	dir := t.TempDir()
	testutil.MakeTree(t, dir, map[string]string{
		"a/one.txt": "dup",
		"b/two.txt": "dup",
		"c/..keep":  "x",
	})

	first, err := Scan(context.Background(), dir, Options{Workers: 4})
	if err != nil {
		t.Fatalf("Scan failed: %v", err)
	}
	second, err := Scan(context.Background(), dir, Options{Workers: 1})
	if err != nil {
		t.Fatalf("Scan failed: %v", err)
	}

	if len(first.Groups) != len(second.Groups) {
		t.Fatalf("group counts differ: %d vs %d", len(first.Groups), len(second.Groups))
	}
	for i := range first.Groups {
		a, b := first.Groups[i], second.Groups[i]
		if a.Digest != b.Digest || strings.Join(a.Paths, ";") != strings.Join(b.Paths, ";") {
			t.Errorf("group %d differs across runs", i)
		}
	}
}
