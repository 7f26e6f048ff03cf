package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/amidakuji/pkg/buildinfo"
	"github.com/matzehuels/amidakuji/pkg/observability"
)

// RootCommand creates the root cobra command with all subcommands registered.
//
// The pre-run hook applies --verbose, attaches the CLI logger to the command
// context and routes pipeline events to it.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "Amidakuji generates ghost-leg lottery diagrams",
		Long: `Amidakuji generates random ghost-leg lottery (amidakuji) diagrams: vertical
lines joined by randomly placed horizontal rungs. Each start line leads to
exactly one destination, printed as a letter at the bottom of the page.

Diagrams are rendered to PDF, SVG, PNG, or JSON.`,
		Version:       buildinfo.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if c.verbose {
				c.SetLogLevel(LogDebug)
			}
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			observability.SetPipelineHooks(observability.NewLogHooks(c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "enable debug logging")
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default: ./amidakuji.toml or ~/.config/amidakuji/config.toml)")

	// Register all subcommands
	root.AddCommand(c.generateCommand())
	root.AddCommand(c.simulateCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.completionCommand())

	return root
}
