package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/justify/pkg/server"
)

// serveCommand creates the command that runs the HTTP API.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr    string
		noCache bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the justify JSON API over HTTP",
		Long: `Serve starts an HTTP server with the following endpoints:

  POST /v1/justify   justify {"text", "width", "whitespace", "normalize"}
  GET  /healthz      liveness probe
  GET  /version      build information

The server shuts down gracefully on interrupt.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("addr") {
				cfg.Server.Addr = addr
			}

			runner, err := c.newRunner(ctx, cfg, noCache)
			if err != nil {
				return err
			}
			defer runner.Close()

			srv := server.New(cfg.Server.Addr, runner, loggerFromContext(ctx))
			srv.MaxBodyBytes = cfg.Server.MaxBodyBytes
			srv.ReadTimeout = cfg.Server.ReadTimeout.Duration
			return srv.ListenAndServe(ctx)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", server.DefaultAddr, "listen address")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	return cmd
}
