package cli

import (
	"context"
	"io"

	"github.com/spf13/cobra"

	amiio "github.com/matzehuels/amidakuji/pkg/io"
	"github.com/matzehuels/amidakuji/pkg/ladder"
	"github.com/matzehuels/amidakuji/pkg/render/layout"
)

// simulateCommand creates the simulate command for tracing a saved diagram.
func (c *CLI) simulateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "simulate [diagram.json]",
		Short: "Trace every start line of a saved diagram",
		Long: `Trace every start line of a diagram saved with 'generate -f json'.

Each output line reads "start → label (column)": the start line number, the
destination label printed on the diagram, and the 1-based column it lands in.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runSimulate(cmd.Context(), cmd.OutOrStdout(), args[0])
		},
	}
	return cmd
}

// runSimulate loads the diagram at input and prints its mapping.
func (c *CLI) runSimulate(ctx context.Context, out io.Writer, input string) error {
	logger := loggerFromContext(ctx)

	d, err := amiio.ImportJSON(input)
	if err != nil {
		return err
	}
	logger.Debug("loaded diagram", "id", d.ID, "lines", d.LineCount, "rungs", d.RungCount())

	m := ladder.Simulate(d)
	for start, dest := range m {
		printRoute(out, start+1, layout.Letter(start), dest+1)
	}
	if fixed := m.FixedPoints(); len(fixed) > 0 {
		logger.Debugf("%d of %d lines end where they start", len(fixed), d.LineCount)
	}
	return nil
}
