package cli

import (
	"github.com/spf13/cobra"

	"github.com/timoleistner/plotrna/pkg/server"
)

// newServeCmd creates the serve command, which runs the HTTP rendering
// service until interrupted.
func newServeCmd() *cobra.Command {
	var (
		addr    string
		noCache bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP rendering service",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			provider, err := newProvider(noCache)
			if err != nil {
				return err
			}
			srv := server.New(
				server.WithLogger(loggerFromContext(ctx)),
				server.WithProvider(provider),
			)
			return srv.ListenAndServe(ctx, addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the layout coordinate cache")
	return cmd
}
