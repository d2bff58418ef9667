package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fsbox-cli/fsbox/internal/core/walker"
	"github.com/fsbox-cli/fsbox/internal/domain"
)

var findCmd = &cobra.Command{
	Use:   "find PATTERN [DIR]",
	Short: "Find entries by name pattern",
	Long: `Searches DIR (default: current directory) for entries whose name
matches PATTERN. Patterns without wildcards match as case-insensitive
substrings; otherwise glob syntax applies (*, ?, [...]).`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runFind,
}

var findType string

func init() {
	findCmd.Flags().StringVarP(&findType, "type", "t", "all", "entry type: f (files), d (dirs), all")
	rootCmd.AddCommand(findCmd)
}

func runFind(cmd *cobra.Command, args []string) error {
	pattern := args[0]
	root := argOrDot(args, 1)

	match, err := walker.CompileMatch(pattern)
	if err != nil {
		return err
	}
	var wantKind domain.EntryKind
	filterKind := false
	switch findType {
	case "f":
		wantKind, filterKind = domain.KindFile, true
	case "d":
		wantKind, filterKind = domain.KindDirectory, true
	case "all":
	default:
		return fmt.Errorf("invalid --type %q (want f, d or all)", findType)
	}

	opts := walker.Options{MaxDepth: -1, IncludeHidden: true, Match: match}
	count := 0
	issues, err := walker.Walk(cmd.Context(), root, opts, func(e domain.Entry) error {
		if filterKind && e.Kind != wantKind {
			return nil
		}
		out.Printf("%s\n", e.RelPath)
		count++
		return nil
	})
	if err != nil {
		return err
	}
	reportIssues(issues)
	out.Dim("%d matches", count)
	return nil
}
