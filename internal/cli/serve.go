package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/matzehuels/amidakuji/pkg/observability"
	"github.com/matzehuels/amidakuji/pkg/server"
)

// serveCommand creates the serve command for the HTTP API.
func (c *CLI) serveCommand() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve diagrams over HTTP",
		Long: `Serve diagrams over HTTP until interrupted.

Endpoints:
  GET /healthz
  GET /v1/diagram?lines=6&min=5&max=12[&format=svg&strategy=connected&margin=0.1&seed=42&page=letter]
  GET /v1/diagram.json?lines=6&min=5&max=12

Defaults for format, strategy, margin, seed, and page come from the config file.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runServe(cmd.Context(), addr, cmd.Flags().Changed("addr"))
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from config, else :8080)")
	return cmd
}

func (c *CLI) runServe(ctx context.Context, addr string, addrSet bool) error {
	cfg, err := c.loadConfig()
	if err != nil {
		return err
	}
	if !addrSet || addr == "" {
		addr = cfg.Server.Addr
	}

	observability.SetHTTPHooks(observability.NewLogHooks(c.Logger))
	return server.New(cfg, c.Logger).ListenAndServe(ctx, addr)
}
