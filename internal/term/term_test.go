package term

import (
	"bytes"
	"strings"
	"testing"
)

func TestHumanSize(t *testing.T) {
	tests := []struct {
		bytes int64
		want  string
	}{
		{0, "0 B"},
		{512, "512 B"},
		{1023, "1023 B"},
		{1024, "1.0 KB"},
		{1536, "1.5 KB"},
		{1048576, "1.0 MB"},
		{5 * 1024 * 1024 * 1024, "5.0 GB"},
		{int64(2) * 1024 * 1024 * 1024 * 1024, "2.0 TB"},
	}
	for _, tc := range tests {
		if got := HumanSize(tc.bytes); got != tc.want {
			t.Errorf("HumanSize(%d) = %q, want %q", tc.bytes, got, tc.want)
		}
	}
}

func TestConfirm(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"y\n", true},
		{"Y\n", true},
		{"yes\n", true},
		{"YES\n", true},
		{"n\n", false},
		{"no\n", false},
		{"\n", false},
		{"whatever\n", false},
		{"", false},
	}
	for _, tc := range tests {
		var out bytes.Buffer
		got := Confirm(strings.NewReader(tc.input), &out, "delete %d files?", 3)
		if got != tc.want {
			t.Errorf("Confirm(%q) = %v, want %v", tc.input, got, tc.want)
		}
		if !strings.Contains(out.String(), "delete 3 files? [y/N]:") {
			t.Errorf("prompt missing from output: %q", out.String())
		}
	}
}

func TestTableAlignment(t *testing.T) {
	var out bytes.Buffer
	p := NewPrinter(&out)
	p.Table([][]string{
		{"name", "size"},
		{"a-long-name.txt", "12 B"},
		{"b", "1.0 KB"},
	})
	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3", len(lines))
	}
	if !strings.HasPrefix(lines[2], "b               ") {
		t.Errorf("short cell not padded: %q", lines[2])
	}
	if !strings.HasSuffix(lines[1], "12 B") {
		t.Errorf("last column should not be padded: %q", lines[1])
	}
}
