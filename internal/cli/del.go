package cli

import (
	"os"
	"sort"

	"github.com/spf13/cobra"
)

var delCmd = &cobra.Command{
	Use:   "del KEEP...",
	Short: "Delete everything in the current directory except KEEP",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runDel,
}

var delYes bool

func init() {
	delCmd.Flags().BoolVarP(&delYes, "yes", "y", false, "skip the confirmation prompt")
	rootCmd.AddCommand(delCmd)
}

func runDel(cmd *cobra.Command, args []string) error {
	keep := make(map[string]bool, len(args))
	for _, name := range args {
		keep[name] = true
	}

	entries, err := os.ReadDir(".")
	if err != nil {
		return err
	}

	var targets []string
	for _, e := range entries {
		if !keep[e.Name()] {
			targets = append(targets, e.Name())
		}
	}
	sort.Strings(targets)

	if len(targets) == 0 {
		out.Println("Nothing to delete.")
		return nil
	}

	out.Header("Will delete %d entries:", len(targets))
	for _, name := range targets {
		out.Printf("  %s\n", name)
	}
	if !confirmed(delYes, "Delete %d entries", len(targets)) {
		out.Println("Aborted.")
		return nil
	}

	deleted := 0
	for _, name := range targets {
		if err := os.RemoveAll(name); err != nil {
			errOut.Error("failed: %s: %v", name, err)
			fail()
			continue
		}
		deleted++
	}
	out.Success("Deleted %d of %d entries.", deleted, len(targets))
	return nil
}
