package cli

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/fsbox-cli/fsbox/internal/core/archive"
	"github.com/fsbox-cli/fsbox/internal/term"
)

var zipCmd = &cobra.Command{
	Use:   "zip SRC [OUT]",
	Short: "Zip a file or directory",
	Args:  cobra.RangeArgs(1, 2),
	RunE:  runZip,
}

var unzipCmd = &cobra.Command{
	Use:   "unzip ARCHIVE [DEST]",
	Short: "Extract a zip archive",
	Args:  cobra.RangeArgs(1, 2),
	RunE:  runUnzip,
}

func init() {
	rootCmd.AddCommand(zipCmd)
	rootCmd.AddCommand(unzipCmd)
}

func runZip(cmd *cobra.Command, args []string) error {
	source := filepath.Clean(args[0])
	output := filepath.Base(source) + ".zip"
	if len(args) == 2 {
		output = args[1]
	}

	summary, err := archive.CreateZip(cmd.Context(), source, output)
	if err != nil {
		return err
	}
	printArchiveSummary(summary)
	return nil
}

func runUnzip(cmd *cobra.Command, args []string) error {
	archivePath := args[0]
	dest := strings.TrimSuffix(filepath.Base(archivePath), ".zip")
	if len(args) == 2 {
		dest = args[1]
	}

	summary, err := archive.ExtractZip(cmd.Context(), archivePath, dest)
	if err != nil {
		return err
	}
	out.Success("Extracted %d files (%s) into %s", summary.Files,
		term.HumanSize(summary.Bytes), dest)
	reportIssues(summary.Issues)
	return nil
}

func printArchiveSummary(summary archive.Summary) {
	size := "?"
	if info, err := os.Stat(summary.ArchivePath); err == nil {
		size = term.HumanSize(info.Size())
	}
	out.Success("Wrote %s: %d files, %s in, %s archived",
		summary.ArchivePath, summary.Files, term.HumanSize(summary.Bytes), size)
	reportIssues(summary.Issues)
}
