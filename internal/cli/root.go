// Package cli implements the fsbox command surface.
package cli

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/fsbox-cli/fsbox/internal/config"
	"github.com/fsbox-cli/fsbox/internal/logger"
	"github.com/fsbox-cli/fsbox/internal/term"
)

const banner = `  __     _
 / _|___| |__   _____  __
| |_/ __| '_ \ / _ \ \/ /
|  _\__ \ |_) | (_) >  <
|_| |___/_.__/ \___/_/\_\
`

var (
	cfg     = config.Default()
	out     = term.NewPrinter(os.Stdout)
	errOut  = term.NewPrinter(os.Stderr)
	cfgPath string

	// exitCode is raised by commands that finish with partial
	// failures after their report has been printed.
	exitCode int
)

func fail() {
	if exitCode == 0 {
		exitCode = 1
	}
}

var rootCmd = &cobra.Command{
	Use:           "fsbox",
	Short:         "Everyday filesystem toolkit",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.Load(cfgPath)
		if err != nil {
			return err
		}
		cfg = loaded
		return initLogger(cfg)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		out.Header(banner)
		rows := [][]string{}
		for _, sub := range cmd.Commands() {
			if sub.Hidden || sub.Name() == "help" || sub.Name() == "completion" {
				continue
			}
			rows = append(rows, []string{"  " + sub.Name(), sub.Short})
		}
		out.Table(rows)
		out.Println()
		out.Dim("Run 'fsbox <command> --help' for details.")
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "", "config file (default: searched)")
}

func initLogger(cfg *config.Config) error {
	logCfg := logger.Config{
		Level:  logger.ParseLevel(cfg.Log.Level),
		Format: logger.ParseFormat(cfg.Log.Format),
	}
	if cfg.Log.File != "" {
		logCfg.File = logger.FileConfig{
			Enabled:    true,
			Path:       cfg.Log.File,
			MaxSizeMB:  cfg.Log.MaxSize,
			MaxBackups: cfg.Log.Backups,
			Compress:   cfg.Log.Compress,
		}
	}
	return logger.Init(logCfg)
}

// ExecuteContext runs the root command and returns the process exit
// code. The context cancels long-running commands on interrupt.
func ExecuteContext(ctx context.Context) int {
	defer logger.Shutdown()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		errOut.Error("error: %v", err)
		fail()
	}
	return exitCode
}
