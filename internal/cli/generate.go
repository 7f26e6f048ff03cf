package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/matzehuels/amidakuji/pkg/config"
	"github.com/matzehuels/amidakuji/pkg/errors"
	amiio "github.com/matzehuels/amidakuji/pkg/io"
	"github.com/matzehuels/amidakuji/pkg/ladder"
	"github.com/matzehuels/amidakuji/pkg/pipeline"
	"github.com/matzehuels/amidakuji/pkg/render/sink"
)

// generateOpts holds the command-line flags for the generate command.
type generateOpts struct {
	lines    int     // number of vertical lines
	minRungs int     // lower bound of the rung budget
	maxRungs int     // upper bound of the rung budget
	output   string  // output file path
	format   string  // pdf, svg, png, json; inferred from output when empty
	strategy string  // baseline or connected
	margin   float64 // share of rows kept empty by the connected strategy
	seed     uint64  // 0 draws a random seed
	page     string  // a4 or letter
}

// generateCommand creates the generate command.
func (c *CLI) generateCommand() *cobra.Command {
	var opts generateOpts

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a random amidakuji diagram",
		Long: `Generate a random amidakuji diagram and write it to a file.

The rung count is drawn uniformly between --min-bars and --max-bars. With
--strategy connected every vertical line is guaranteed to touch at least one
rung; generation fails and lists the untouched lines if the drawn count is
too small.

The output format follows --format, then the file extension of --output,
then the config file, and finally defaults to PDF.`,
		Example: `  amidakuji generate -l 6 --min 5 --max 12 -o ladder.pdf
  amidakuji generate -l 10 --min 9 --max 20 --strategy connected -o out/ladder.svg
  amidakuji generate -l 4 --min 3 --max 3 --seed 42 -o ladder.json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			applyConfig(cmd, &opts, cfg)
			return c.runGenerate(cmd.Context(), cmd.OutOrStdout(), opts)
		},
	}

	cmd.Flags().IntVarP(&opts.lines, "lines", "l", 0, "number of vertical lines (>= 2)")
	cmd.Flags().IntVar(&opts.minRungs, "min-bars", 0, "minimum number of rungs")
	cmd.Flags().IntVar(&opts.maxRungs, "max-bars", 0, "maximum number of rungs")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "", "output format: pdf (default), svg, png, json")
	cmd.Flags().StringVar(&opts.strategy, "strategy", "", "rung placement: baseline (default), connected")
	cmd.Flags().Float64Var(&opts.margin, "margin", 0, "share of rows kept empty above and below rungs (connected, default 0.1)")
	cmd.Flags().Uint64Var(&opts.seed, "seed", 0, "random seed (0 = random)")
	cmd.Flags().StringVar(&opts.page, "page", "", "page size: a4 (default), letter")

	cmd.Flags().IntVar(&opts.minRungs, "min", 0, "alias for --min-bars")
	cmd.Flags().IntVar(&opts.maxRungs, "max", 0, "alias for --max-bars")
	_ = cmd.Flags().MarkHidden("min")
	_ = cmd.Flags().MarkHidden("max")

	_ = cmd.MarkFlagRequired("lines")
	_ = cmd.MarkFlagRequired("output")
	cmd.MarkFlagsOneRequired("min-bars", "min")
	cmd.MarkFlagsOneRequired("max-bars", "max")

	return cmd
}

// applyConfig fills every flag the user did not set from cfg.
func applyConfig(cmd *cobra.Command, opts *generateOpts, cfg *config.Config) {
	flags := cmd.Flags()
	if !flags.Changed("strategy") {
		opts.strategy = cfg.Strategy
	}
	if !flags.Changed("margin") {
		opts.margin = cfg.Margin()
	}
	if !flags.Changed("seed") {
		opts.seed = cfg.Seed
	}
	if !flags.Changed("page") {
		opts.page = cfg.Page
	}
	if !flags.Changed("format") {
		opts.format = resolveFormat(opts.output, cfg.Format)
	}
}

// resolveFormat picks the format from the output extension, then the
// configured default.
func resolveFormat(output, configured string) string {
	if f := sink.FormatFromPath(output); f != "" {
		return f
	}
	if configured != "" {
		return configured
	}
	return sink.DefaultFormat
}

// runGenerate generates, renders and saves one diagram.
func (c *CLI) runGenerate(ctx context.Context, out io.Writer, opts generateOpts) error {
	logger := loggerFromContext(ctx)

	if err := errors.ValidateOutputPath(opts.output); err != nil {
		return err
	}
	popts := pipeline.Options{
		Lines:       opts.lines,
		MinRungs:    opts.minRungs,
		MaxRungs:    opts.maxRungs,
		Strategy:    opts.strategy,
		MarginRatio: opts.margin,
		Seed:        opts.seed,
		Format:      opts.format,
		Page:        opts.page,
		Logger:      logger,
	}
	if err := popts.ValidateAndSetDefaults(); err != nil {
		return err
	}
	runner := c.newRunner()

	logger.Info("Generating amidakuji",
		"lines", popts.Lines,
		"min", popts.MinRungs,
		"max", popts.MaxRungs,
		"strategy", popts.Strategy)
	st := startStage(logger, "generate")
	d, err := runner.Generate(ctx, popts)
	if err != nil {
		return err
	}
	st.donef("Placed %d rungs", d.RungCount())
	m := ladder.Simulate(d)

	if err := ctx.Err(); err != nil {
		return err
	}

	logger.Infof("Rendering %s (%s)", popts.Format, popts.Page)
	st = startStage(logger, "render")
	l, err := runner.Layout(ctx, d, m, popts)
	if err != nil {
		return err
	}
	data, err := runner.Render(ctx, l, d, m, popts)
	if err != nil {
		return err
	}
	if err := amiio.WriteFile(opts.output, data); err != nil {
		return err
	}
	st.donef("Saved %s", opts.output)

	printSuccess(out, "Generated %s", StyleValue.Render(popts.Format))
	printFile(out, opts.output)
	printStats(out,
		fmt.Sprintf("%d lines", d.LineCount),
		fmt.Sprintf("%d rungs", d.RungCount()),
		fmt.Sprintf("seed %d", popts.Seed))
	return nil
}
