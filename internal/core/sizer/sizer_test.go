package sizer

import (
	"context"
	"strings"
	"testing"

	"github.com/fsbox-cli/fsbox/internal/testutil"
)

func TestUsage(t *testing.T) {
	dir := t.TempDir()
	testutil.MakeTree(t, dir, map[string]string{
		"big/junk.bin":     strings.Repeat("x", 5000),
		"big/more/junk2":   strings.Repeat("y", 3000),
		"small/a.txt":      "tiny",
		"loose.txt":        strings.Repeat("z", 100),
	})

	report, err := Usage(context.Background(), dir)
	if err != nil {
		t.Fatalf("Usage failed: %v", err)
	}
	if len(report.Items) != 3 {
		t.Fatalf("items: got %d, want 3", len(report.Items))
	}

	if report.Items[0].Name != "big" || report.Items[0].Bytes != 8000 {
		t.Errorf("largest first: got %s (%d)", report.Items[0].Name, report.Items[0].Bytes)
	}
	if report.Items[1].Name != "loose.txt" {
		t.Errorf("second item: got %s", report.Items[1].Name)
	}
	if report.Total != 8104 {
		t.Errorf("total: got %d, want 8104", report.Total)
	}
}

func TestUsageMissingRoot(t *testing.T) {
	if _, err := Usage(context.Background(), t.TempDir()+"/nope"); err == nil {
		t.Error("missing root should fail")
	}
}
