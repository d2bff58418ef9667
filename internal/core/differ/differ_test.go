package differ

import (
	"context"
	"path/filepath"
	"sort"
	"testing"

	"github.com/fsbox-cli/fsbox/internal/core/copier"
	"github.com/fsbox-cli/fsbox/internal/domain"
	"github.com/fsbox-cli/fsbox/internal/testutil"
)

func tagsByPath(r Result) map[string]domain.DiffTag {
	out := make(map[string]domain.DiffTag, len(r.Records))
	for _, rec := range r.Records {
		out[rec.RelPath] = rec.Tag
	}
	return out
}

// Diffing a tree against itself yields only Unchanged records.
func TestDiffSelfIsUnchanged(t *testing.T) {
	dir := t.TempDir()
	testutil.MakeTree(t, dir, map[string]string{
		"a.txt":     "alpha",
		"sub/b.txt": "beta",
		"empty/":    "",
	})

	result, err := Diff(context.Background(), dir, dir, Options{})
	if err != nil {
		t.Fatalf("Diff failed: %v", err)
	}
	if !result.Identical() {
		t.Errorf("self-diff not identical: %+v", result.Records)
	}
	if len(result.Records) != 4 {
		t.Errorf("record count: got %d, want 4", len(result.Records))
	}
}

func TestDiffClassification(t *testing.T) {
	a := t.TempDir()
	b := t.TempDir()

	testutil.MakeTree(t, a, map[string]string{
		"same.txt":    "identical",
		"changed.txt": "old content",
		"gone.txt":    "only in a",
	})
	testutil.MakeTree(t, b, map[string]string{
		"same.txt":    "identical",
		"changed.txt": "new content",
		"new.txt":     "only in b",
	})

	result, err := Diff(context.Background(), a, b, Options{})
	if err != nil {
		t.Fatalf("Diff failed: %v", err)
	}

	tags := tagsByPath(result)
	expect := map[string]domain.DiffTag{
		"same.txt":    domain.DiffUnchanged,
		"changed.txt": domain.DiffModified,
		"gone.txt":    domain.DiffRemoved,
		"new.txt":     domain.DiffAdded,
	}
	for rel, want := range expect {
		if got, ok := tags[rel]; !ok || got != want {
			t.Errorf("%s: got %v, want %v", rel, got, want)
		}
	}
}

// Every Added in A→B corresponds to a Removed in B→A and vice versa;
// Modified appears in both directions.
func TestDiffSymmetry(t *testing.T) {
	a := t.TempDir()
	b := t.TempDir()

	testutil.MakeTree(t, a, map[string]string{
		"only_a.txt":  "a",
		"shared.txt":  "one",
		"sub/x.txt":   "x",
	})
	testutil.MakeTree(t, b, map[string]string{
		"only_b.txt":  "b",
		"shared.txt":  "two",
		"sub/x.txt":   "x",
	})

	ab, err := Diff(context.Background(), a, b, Options{})
	if err != nil {
		t.Fatalf("Diff a→b failed: %v", err)
	}
	ba, err := Diff(context.Background(), b, a, Options{})
	if err != nil {
		t.Fatalf("Diff b→a failed: %v", err)
	}

	fwd, rev := tagsByPath(ab), tagsByPath(ba)
	for rel, tag := range fwd {
		var want domain.DiffTag
		switch tag {
		case domain.DiffAdded:
			want = domain.DiffRemoved
		case domain.DiffRemoved:
			want = domain.DiffAdded
		default:
			want = tag
		}
		if rev[rel] != want {
			t.Errorf("%s: forward %v, reverse %v (want %v)", rel, tag, rev[rel], want)
		}
	}
}

// Copying a tree to an empty destination then diffing source against
// destination yields only Unchanged records.
func TestDiffCopyRoundTrip(t *testing.T) {
	src := t.TempDir()
	dst := filepath.Join(t.TempDir(), "copy")

	testutil.MakeTree(t, src, map[string]string{
		"a.txt":          "alpha",
		".hidden":        "h",
		"sub/b.txt":      "beta",
		"sub/deep/c.txt": "gamma",
	})

	if _, err := copier.Copy(context.Background(), src, dst, copier.Options{}); err != nil {
		t.Fatalf("Copy failed: %v", err)
	}

	result, err := Diff(context.Background(), src, dst, Options{})
	if err != nil {
		t.Fatalf("Diff failed: %v", err)
	}
	if !result.Identical() {
		t.Errorf("round trip not identical: %+v", result.Records)
	}
}

func TestDiffRecordsSortedByPath(t *testing.T) {
	a := t.TempDir()
	b := t.TempDir()

	testutil.MakeTree(t, a, map[string]string{
		"z.txt": "1", "m/x.txt": "2", "a.txt": "3",
	})
	testutil.MakeTree(t, b, map[string]string{
		"b.txt": "4", "m/y.txt": "5",
	})

	result, err := Diff(context.Background(), a, b, Options{})
	if err != nil {
		t.Fatalf("Diff failed: %v", err)
	}

	paths := make([]string, 0, len(result.Records))
	for _, rec := range result.Records {
		paths = append(paths, rec.RelPath)
	}
	if !sort.StringsAreSorted(paths) {
		t.Errorf("records not sorted: %v", paths)
	}
}

func TestDiffKindChangeIsModified(t *testing.T) {
	a := t.TempDir()
	b := t.TempDir()

	testutil.MakeTree(t, a, map[string]string{"thing": "file here"})
	testutil.MakeTree(t, b, map[string]string{"thing/": ""})

	result, err := Diff(context.Background(), a, b, Options{})
	if err != nil {
		t.Fatalf("Diff failed: %v", err)
	}
	if tags := tagsByPath(result); tags["thing"] != domain.DiffModified {
		t.Errorf("kind change: got %v, want Modified", tags["thing"])
	}
}
