package cli

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/fsbox-cli/fsbox/internal/core/archive"
)

var backupCmd = &cobra.Command{
	Use:   "backup [SRC]",
	Short: "Create a timestamped archive of a directory",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runBackup,
}

var (
	backupDest   string
	backupFormat string
)

func init() {
	backupCmd.Flags().StringVarP(&backupDest, "dest", "d", ".", "directory to place the archive in")
	backupCmd.Flags().StringVar(&backupFormat, "format", "zip", "archive format: zip, tgz or tzst")
	rootCmd.AddCommand(backupCmd)
}

func runBackup(cmd *cobra.Command, args []string) error {
	source := filepath.Clean(argOrDot(args, 0))

	format, err := archive.ParseFormat(backupFormat)
	if err != nil {
		return err
	}

	base := filepath.Base(source)
	if abs, err := filepath.Abs(source); err == nil {
		base = filepath.Base(abs)
	}
	stamp := time.Now().Format("20060102_150405")
	output := filepath.Join(backupDest, fmt.Sprintf("%s_%s%s", base, stamp, format.Ext()))

	summary, err := archive.Create(cmd.Context(), source, output, format)
	if err != nil {
		return err
	}
	printArchiveSummary(summary)
	return nil
}
