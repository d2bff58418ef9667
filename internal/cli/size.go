package cli

import (
	"github.com/spf13/cobra"

	"github.com/fsbox-cli/fsbox/internal/core/sizer"
	"github.com/fsbox-cli/fsbox/internal/term"
)

var sizeCmd = &cobra.Command{
	Use:   "size [DIR]",
	Short: "Show disk usage per directory entry",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runSize,
}

var sizeTop int

func init() {
	sizeCmd.Flags().IntVarP(&sizeTop, "top", "n", 0, "show only the N largest entries")
	rootCmd.AddCommand(sizeCmd)
}

func runSize(cmd *cobra.Command, args []string) error {
	report, err := sizer.Usage(cmd.Context(), argOrDot(args, 0))
	if err != nil {
		return err
	}

	items := report.Items
	if sizeTop > 0 && sizeTop < len(items) {
		items = items[:sizeTop]
	}

	rows := make([][]string, 0, len(items)+1)
	for _, item := range items {
		name := item.Name
		if item.IsDir {
			name += "/"
		}
		rows = append(rows, []string{"  " + term.HumanSize(item.Bytes), name})
	}
	out.Table(rows)
	out.Println()
	out.Header("total: %s", term.HumanSize(report.Total))
	reportIssues(report.Issues)
	return nil
}
