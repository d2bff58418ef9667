package cli

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/cobra"

	"github.com/fsbox-cli/fsbox/internal/clipboard"
	"github.com/fsbox-cli/fsbox/internal/core/walker"
	"github.com/fsbox-cli/fsbox/internal/domain"
)

var cbCmd = &cobra.Command{
	Use:   "cb [TARGETS...]",
	Short: "Copy file contents to the clipboard",
	Long: `Gathers the contents of the given files, directories (recursive) and
name globs, joins them with per-file headers, and places the result on
the system clipboard. With no targets the current directory is used.
Falls back to printing on stdout when no clipboard utility exists.`,
	RunE: runCb,
}

var cbNoHeader bool

func init() {
	cbCmd.Flags().BoolVar(&cbNoHeader, "no-header", false, "omit the per-file headers")
	rootCmd.AddCommand(cbCmd)
}

func runCb(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		args = []string{"."}
	}

	var paths []string
	for _, target := range args {
		expanded, err := expandTarget(cmd, target)
		if err != nil {
			return err
		}
		paths = append(paths, expanded...)
	}
	if len(paths) == 0 {
		return fmt.Errorf("%w: no files matched", domain.ErrNotFound)
	}

	var b strings.Builder
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			errOut.Warn("skipped: %s: %v", path, err)
			fail()
			continue
		}
		if !cbNoHeader {
			fmt.Fprintf(&b, "--- %s ---\n", path)
		}
		b.Write(data)
		if len(data) > 0 && data[len(data)-1] != '\n' {
			b.WriteByte('\n')
		}
	}

	text := b.String()
	if !clipboard.Available() {
		errOut.Warn("no clipboard utility found, printing instead")
		out.Printf("%s", text)
		return nil
	}
	if err := clipboard.Write(text); err != nil {
		return err
	}
	out.Success("Copied %d files to the clipboard.", len(paths))
	return nil
}

// expandTarget resolves one argument into file paths: a directory
// recurses, a glob expands, a plain path is taken as is.
func expandTarget(cmd *cobra.Command, target string) ([]string, error) {
	if info, err := os.Stat(target); err == nil {
		if !info.IsDir() {
			return []string{target}, nil
		}
		var files []string
		opts := walker.Options{MaxDepth: -1, FilesOnly: true}
		issues, err := walker.Walk(cmd.Context(), target, opts, func(e domain.Entry) error {
			files = append(files, e.AbsPath)
			return nil
		})
		if err != nil {
			return nil, err
		}
		reportIssues(issues)
		return files, nil
	}

	if !strings.ContainsAny(target, "*?[{") {
		return nil, fmt.Errorf("%w: %s", domain.ErrNotFound, target)
	}
	matches, err := doublestar.FilepathGlob(target)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", domain.ErrBadPattern, target, err)
	}
	var files []string
	for _, m := range matches {
		if info, err := os.Stat(m); err == nil && !info.IsDir() {
			files = append(files, m)
		}
	}
	sort.Strings(files)
	return files, nil
}
