package cli

import (
	"github.com/spf13/cobra"

	"github.com/fsbox-cli/fsbox/internal/core/copier"
)

var cpCmd = &cobra.Command{
	Use:   "cp SRC DST",
	Short: "Copy a file or directory tree",
	Args:  cobra.ExactArgs(2),
	RunE:  runCp,
}

var (
	cpOverwrite bool
	cpVerbose   bool
)

func init() {
	cpCmd.Flags().BoolVarP(&cpOverwrite, "overwrite", "o", false, "replace existing destination entries")
	cpCmd.Flags().BoolVarP(&cpVerbose, "verbose", "v", false, "report each file as it is copied")
	rootCmd.AddCommand(cpCmd)
}

func runCp(cmd *cobra.Command, args []string) error {
	opts := copier.Options{Overwrite: cpOverwrite}
	if cpVerbose {
		opts.Reporter = newProgressReporter()
	}
	result, err := copier.Copy(cmd.Context(), args[0], args[1], opts)
	if err != nil {
		return err
	}

	out.Printf("copied: %d  skipped: %d  failed: %d\n",
		result.Copied, result.Skipped, result.Failed)
	for _, rel := range result.Conflicts {
		out.Warn("conflict (exists, not overwritten): %s", rel)
	}
	reportIssues(result.Issues)
	if !result.Ok() {
		fail()
	}
	return nil
}
