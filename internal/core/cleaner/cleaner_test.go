package cleaner

import (
	"context"
	"testing"

	"github.com/fsbox-cli/fsbox/internal/testutil"
)

func TestScanFindsJunk(t *testing.T) {
	dir := t.TempDir()
	testutil.MakeTree(t, dir, map[string]string{
		"src/main.go":                "package main",
		"src/__pycache__/mod.pyc":    "bytecode",
		"src/__pycache__/sub/x.pyc":  "bytecode",
		"build.log":                  "log",
		"notes.txt":                  "keep me",
		".DS_Store":                  "junk",
	})

	found, issues, err := Scan(context.Background(), dir, DefaultOptions())
	if err != nil {
		t.Fatalf("Scan failed: %v", err)
	}
	if len(issues) != 0 {
		t.Fatalf("issues: %v", issues)
	}

	rels := map[string]bool{}
	for _, c := range found {
		rels[c.RelPath] = true
	}

	for _, want := range []string{"src/__pycache__", "build.log", ".DS_Store"} {
		if !rels[want] {
			t.Errorf("missing candidate %s (have %v)", want, rels)
		}
	}
	// Children of a matched directory are pruned
	if rels["src/__pycache__/mod.pyc"] {
		t.Error("child of matched directory not pruned")
	}
	if rels["notes.txt"] || rels["src/main.go"] {
		t.Error("non-junk entry flagged")
	}
}

func TestRemove(t *testing.T) {
	dir := t.TempDir()
	testutil.MakeTree(t, dir, map[string]string{
		"__pycache__/a.pyc": "x",
		"trace.log":         "y",
		"keep.txt":          "z",
	})

	found, _, err := Scan(context.Background(), dir, DefaultOptions())
	if err != nil {
		t.Fatalf("Scan failed: %v", err)
	}

	removed, issues := Remove(found)
	if len(issues) != 0 {
		t.Fatalf("issues: %v", issues)
	}
	if removed != len(found) {
		t.Errorf("removed: got %d, want %d", removed, len(found))
	}

	if testutil.Exists(dir + "/__pycache__") {
		t.Error("junk directory survived")
	}
	if testutil.Exists(dir + "/trace.log") {
		t.Error("junk file survived")
	}
	if !testutil.Exists(dir + "/keep.txt") {
		t.Error("kept file deleted")
	}
}

func TestScanCustomLists(t *testing.T) {
	dir := t.TempDir()
	testutil.MakeTree(t, dir, map[string]string{
		"node_modules/x.js": "m",
		"a.tmp":             "t",
		"build.log":         "keep under custom opts",
	})

	opts := Options{Names: []string{"node_modules"}, Extensions: []string{".tmp"}}
	found, _, err := Scan(context.Background(), dir, opts)
	if err != nil {
		t.Fatalf("Scan failed: %v", err)
	}
	if len(found) != 2 {
		t.Errorf("candidates: got %d, want 2 (%v)", len(found), found)
	}
}
