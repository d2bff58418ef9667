package cli

import (
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/fsbox-cli/fsbox/internal/core/renamer"
)

var renameCmd = &cobra.Command{
	Use:   "rename PATTERN REPLACEMENT [DIR]",
	Short: "Rename files by substring replacement",
	Args:  cobra.RangeArgs(2, 3),
	RunE:  runRename,
}

var renameDryRun bool

func init() {
	renameCmd.Flags().BoolVarP(&renameDryRun, "dry-run", "n", false, "preview without renaming")
	rootCmd.AddCommand(renameCmd)
}

func runRename(cmd *cobra.Command, args []string) error {
	root := argOrDot(args, 2)
	result, err := renamer.Run(cmd.Context(), root, args[0], args[1], renameDryRun)
	if err != nil {
		return err
	}

	for _, change := range result.Changes {
		rel, relErr := filepath.Rel(root, change.Dir)
		if relErr != nil || rel == "." {
			rel = ""
		} else {
			rel += string(filepath.Separator)
		}
		out.Printf("  %s%s -> %s%s\n", rel, change.OldName, rel, change.NewName)
	}
	if renameDryRun {
		out.Dim("dry run: %d files would be renamed", len(result.Changes))
	} else {
		out.Success("Renamed %d files.", result.Applied)
	}
	reportIssues(result.Issues)
	return nil
}
