package cli

import (
	"github.com/spf13/cobra"

	"github.com/fsbox-cli/fsbox/internal/core/differ"
	"github.com/fsbox-cli/fsbox/internal/domain"
)

var diffCmd = &cobra.Command{
	Use:   "diff A B",
	Short: "Compare two directory trees by content",
	Args:  cobra.ExactArgs(2),
	RunE:  runDiff,
}

func init() {
	rootCmd.AddCommand(diffCmd)
}

func runDiff(cmd *cobra.Command, args []string) error {
	result, err := differ.Diff(cmd.Context(), args[0], args[1], differ.Options{
		Algorithm: cfg.Algorithm(),
		Workers:   cfg.Hash.Workers,
	})
	if err != nil {
		return err
	}

	if result.Identical() {
		out.Success("Trees are identical.")
		reportIssues(result.Issues)
		return nil
	}

	counts := map[domain.DiffTag]int{}
	for _, rec := range result.Records {
		counts[rec.Tag]++
		if rec.Tag == domain.DiffUnchanged {
			continue
		}
		out.Printf("%-9s %s\n", rec.Tag, rec.RelPath)
	}
	out.Println()
	out.Header("added: %d  removed: %d  modified: %d  unchanged: %d",
		counts[domain.DiffAdded], counts[domain.DiffRemoved],
		counts[domain.DiffModified], counts[domain.DiffUnchanged])
	reportIssues(result.Issues)
	return nil
}
