package cli

import (
	"os"
	"sort"
	"strings"

	"github.com/spf13/cobra"
)

var envCmd = &cobra.Command{
	Use:   "env [FILTER]",
	Short: "List environment variables",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runEnv,
}

func init() {
	rootCmd.AddCommand(envCmd)
}

func runEnv(cmd *cobra.Command, args []string) error {
	filter := ""
	if len(args) == 1 {
		filter = strings.ToLower(args[0])
	}

	vars := os.Environ()
	sort.Strings(vars)

	shown := 0
	for _, kv := range vars {
		if filter != "" && !strings.Contains(strings.ToLower(kv), filter) {
			continue
		}
		key, value, _ := strings.Cut(kv, "=")
		out.Printf("%s=%s\n", key, value)
		shown++
	}
	if filter != "" {
		out.Dim("%d of %d variables match %q", shown, len(vars), args[0])
	}
	return nil
}
