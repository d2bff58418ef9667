package cli

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/fsbox-cli/fsbox/internal/core/counter"
)

var countCmd = &cobra.Command{
	Use:   "count [DIR]",
	Short: "Count files and lines per extension",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runCount,
}

var countExtensions []string

func init() {
	countCmd.Flags().StringSliceVarP(&countExtensions, "ext", "e", nil, "only count these extensions (repeatable)")
	rootCmd.AddCommand(countCmd)
}

func runCount(cmd *cobra.Command, args []string) error {
	report, err := counter.Count(cmd.Context(), argOrDot(args, 0), countExtensions)
	if err != nil {
		return err
	}

	rows := [][]string{{"  ext", "files", "lines"}}
	for _, row := range report.Rows {
		rows = append(rows, []string{
			"  " + row.Extension,
			strconv.Itoa(row.Files),
			strconv.Itoa(row.Lines),
		})
	}
	out.Table(rows)
	out.Println()
	out.Header("total: %d files, %d lines", report.TotalFiles, report.TotalLines)
	reportIssues(report.Issues)
	return nil
}
