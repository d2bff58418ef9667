package cli

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/fsbox-cli/fsbox/internal/term"
)

var treeCmd = &cobra.Command{
	Use:   "tree [DIR]",
	Short: "Print a directory tree",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runTree,
}

var (
	treeDepth int
	treeAll   bool
)

func init() {
	treeCmd.Flags().IntVarP(&treeDepth, "depth", "d", 0, "maximum depth (default from config)")
	treeCmd.Flags().BoolVarP(&treeAll, "all", "a", false, "include hidden entries")
	rootCmd.AddCommand(treeCmd)
}

func runTree(cmd *cobra.Command, args []string) error {
	root := argOrDot(args, 0)
	depth := treeDepth
	if depth <= 0 {
		depth = cfg.Tree.Depth
	}

	abs, err := filepath.Abs(root)
	if err != nil {
		return err
	}
	out.Header("%s", abs)
	dirs, files := printTree(root, "", depth)
	out.Println()
	out.Dim("%d directories, %d files", dirs, files)
	return nil
}

// printTree renders one level and recurses, returning the directory
// and file counts beneath it.
func printTree(dir, prefix string, depth int) (dirs, files int) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		errOut.Warn("unreadable: %s: %v", dir, err)
		fail()
		return 0, 0
	}

	visible := entries[:0:0]
	for _, e := range entries {
		if !treeAll && strings.HasPrefix(e.Name(), ".") {
			continue
		}
		visible = append(visible, e)
	}
	// Directories first, then case-insensitive by name
	sort.SliceStable(visible, func(i, j int) bool {
		if visible[i].IsDir() != visible[j].IsDir() {
			return visible[i].IsDir()
		}
		return strings.ToLower(visible[i].Name()) < strings.ToLower(visible[j].Name())
	})

	for i, e := range visible {
		connector, childPrefix := "├── ", prefix+"│   "
		if i == len(visible)-1 {
			connector, childPrefix = "└── ", prefix+"    "
		}
		if e.IsDir() {
			dirs++
			out.Printf("%s%s%s/\n", prefix, connector, e.Name())
			if depth > 1 {
				d, f := printTree(filepath.Join(dir, e.Name()), childPrefix, depth-1)
				dirs += d
				files += f
			}
			continue
		}
		files++
		size := ""
		if info, err := e.Info(); err == nil {
			size = "  " + term.HumanSize(info.Size())
		}
		out.Printf("%s%s%s%s\n", prefix, connector, e.Name(), size)
	}
	return dirs, files
}
