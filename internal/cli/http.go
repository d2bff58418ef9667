package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fsbox-cli/fsbox/internal/server"
)

var httpCmd = &cobra.Command{
	Use:   "http [DIR]",
	Short: "Serve a directory over HTTP",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runHTTP,
}

var (
	httpPort    int
	httpNoIndex bool
)

func init() {
	httpCmd.Flags().IntVarP(&httpPort, "port", "p", 8000, "port to listen on")
	httpCmd.Flags().BoolVar(&httpNoIndex, "no-index", false, "disable directory listings")
	rootCmd.AddCommand(httpCmd)
}

func runHTTP(cmd *cobra.Command, args []string) error {
	root := argOrDot(args, 0)
	srv, err := server.New(server.Options{
		Root:    root,
		Addr:    fmt.Sprintf(":%d", httpPort),
		Listing: !httpNoIndex,
	})
	if err != nil {
		return err
	}
	out.Header("Serving %s on http://localhost:%d (Ctrl-C to stop)", root, httpPort)
	return srv.Run(cmd.Context())
}
