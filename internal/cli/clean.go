package cli

import (
	"github.com/spf13/cobra"

	"github.com/fsbox-cli/fsbox/internal/core/cleaner"
)

var cleanCmd = &cobra.Command{
	Use:   "clean [DIR]",
	Short: "Remove build artifacts and junk files",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runClean,
}

var cleanYes bool

func init() {
	cleanCmd.Flags().BoolVarP(&cleanYes, "yes", "y", false, "skip the confirmation prompt")
	rootCmd.AddCommand(cleanCmd)
}

func runClean(cmd *cobra.Command, args []string) error {
	opts := cleaner.DefaultOptions()
	if len(cfg.Clean.Names) > 0 {
		opts.Names = cfg.Clean.Names
	}
	if len(cfg.Clean.Extensions) > 0 {
		opts.Extensions = cfg.Clean.Extensions
	}

	candidates, issues, err := cleaner.Scan(cmd.Context(), argOrDot(args, 0), opts)
	if err != nil {
		return err
	}
	reportIssues(issues)

	if len(candidates) == 0 {
		out.Println("Nothing to clean.")
		return nil
	}

	out.Header("Found %d junk entries:", len(candidates))
	for _, c := range candidates {
		suffix := ""
		if c.IsDir {
			suffix = "/"
		}
		out.Printf("  %s%s\n", c.RelPath, suffix)
	}
	if !confirmed(cleanYes, "Remove %d entries", len(candidates)) {
		out.Println("Aborted.")
		return nil
	}

	removed, removeIssues := cleaner.Remove(candidates)
	out.Success("Removed %d of %d entries.", removed, len(candidates))
	reportIssues(removeIssues)
	return nil
}
