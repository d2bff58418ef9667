package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/fsbox-cli/fsbox/internal/core/checksum"
	"github.com/fsbox-cli/fsbox/internal/term"
)

var hashCmd = &cobra.Command{
	Use:   "hash FILE",
	Short: "Print content digests of a file",
	Args:  cobra.ExactArgs(1),
	RunE:  runHash,
}

var hashAlgo string

func init() {
	hashCmd.Flags().StringVarP(&hashAlgo, "algorithm", "a", "", "single algorithm: md5, sha256 or xxh64")
	rootCmd.AddCommand(hashCmd)
}

func runHash(cmd *cobra.Command, args []string) error {
	path := args[0]

	algos := []checksum.Algorithm{checksum.MD5, checksum.SHA256, checksum.XXH64}
	if hashAlgo != "" {
		algo, err := checksum.ParseAlgorithm(hashAlgo)
		if err != nil {
			return err
		}
		algos = []checksum.Algorithm{algo}
	}

	calc := checksum.NewCalculator(checksum.Options{MaxSize: cfg.Hash.MaxSize})
	rows := make([][]string, 0, len(algos))
	for _, algo := range algos {
		digest, err := calc.File(cmd.Context(), path, algo)
		if err != nil {
			return err
		}
		rows = append(rows, []string{"  " + string(algo), digest})
	}
	out.Table(rows)

	if info, err := os.Stat(path); err == nil {
		out.Dim("size: %s (%d bytes)", term.HumanSize(info.Size()), info.Size())
	}
	return nil
}
