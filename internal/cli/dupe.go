package cli

import (
	"github.com/spf13/cobra"

	"github.com/fsbox-cli/fsbox/internal/core/checksum"
	"github.com/fsbox-cli/fsbox/internal/core/dedup"
	"github.com/fsbox-cli/fsbox/internal/term"
)

var dupeCmd = &cobra.Command{
	Use:   "dupe [DIR]",
	Short: "Find duplicate files by content",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runDupe,
}

var (
	dupeAlgo    string
	dupeVerbose bool
)

func init() {
	dupeCmd.Flags().StringVarP(&dupeAlgo, "algorithm", "a", "", "digest algorithm (default xxh64)")
	dupeCmd.Flags().BoolVarP(&dupeVerbose, "verbose", "v", false, "report each file as it is hashed")
	rootCmd.AddCommand(dupeCmd)
}

func runDupe(cmd *cobra.Command, args []string) error {
	opts := dedup.Options{Workers: cfg.Hash.Workers}
	if dupeVerbose {
		opts.Reporter = newProgressReporter()
	}
	if dupeAlgo != "" {
		algo, err := checksum.ParseAlgorithm(dupeAlgo)
		if err != nil {
			return err
		}
		opts.Algorithm = algo
	}

	report, err := dedup.Scan(cmd.Context(), argOrDot(args, 0), opts)
	if err != nil {
		return err
	}

	if len(report.Groups) == 0 {
		out.Success("No duplicates among %d files.", report.FilesScanned)
		reportIssues(report.Issues)
		return nil
	}

	for _, group := range report.Groups {
		out.Header("%s  %s each, %s wasted", group.Digest,
			term.HumanSize(group.Size), term.HumanSize(group.Wasted()))
		for _, path := range group.Paths {
			out.Printf("  %s\n", path)
		}
		out.Println()
	}
	out.Header("%d groups in %d files, %s wasted in total",
		len(report.Groups), report.FilesScanned, term.HumanSize(report.TotalWasted))
	reportIssues(report.Issues)
	return nil
}
