package pipeline

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/amidakuji/pkg/errors"
	"github.com/matzehuels/amidakuji/pkg/ladder"
	"github.com/matzehuels/amidakuji/pkg/observability"
	"github.com/matzehuels/amidakuji/pkg/render/layout"
	"github.com/matzehuels/amidakuji/pkg/render/sink"
)

// Runner executes the pipeline. It holds no per-run state, so multiple
// goroutines can share one Runner with different options.
type Runner struct {
	Logger *log.Logger
}

// NewRunner creates a runner. A nil logger falls back to log.Default().
func NewRunner(logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Logger: logger}
}

// Execute runs generate → simulate → layout → render. Cancellation is
// checked between stages.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}

	result := &Result{Format: opts.Format, Seed: opts.Seed}

	// Stage 1: Generate
	genStart := time.Now()
	d, err := r.Generate(ctx, opts)
	if err != nil {
		return nil, err
	}
	result.Diagram = d
	result.Stats.GenerateTime = time.Since(genStart)
	result.Stats.Rungs = d.RungCount()
	result.Stats.Rows = len(d.DistinctRows())

	opts.Logger.Info("generated diagram",
		"id", d.ID,
		"lines", d.LineCount,
		"rungs", result.Stats.Rungs,
		"seed", opts.Seed,
		"duration", result.Stats.GenerateTime)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Stage 2: Simulate + Layout
	layoutStart := time.Now()
	result.Mapping = ladder.Simulate(d)
	l, err := r.Layout(ctx, d, result.Mapping, opts)
	if err != nil {
		return nil, err
	}
	result.Layout = l
	result.Stats.LayoutTime = time.Since(layoutStart)

	opts.Logger.Debug("computed layout",
		"bands", l.Bands,
		"page", l.Page.Name,
		"duration", result.Stats.LayoutTime)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Stage 3: Render
	renderStart := time.Now()
	data, err := r.Render(ctx, l, d, result.Mapping, opts)
	if err != nil {
		return nil, err
	}
	result.Artifact = data
	result.Stats.RenderTime = time.Since(renderStart)
	result.Stats.Bytes = len(data)

	opts.Logger.Info("rendered output",
		"format", opts.Format,
		"bytes", len(data),
		"duration", result.Stats.RenderTime)

	return result, nil
}

// Generate runs the generation stage alone.
func (r *Runner) Generate(ctx context.Context, opts Options) (*ladder.Diagram, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateForGenerate(); err != nil {
		return nil, err
	}

	hooks := observability.Pipeline()
	hooks.OnGenerateStart(ctx, opts.Lines, opts.MinRungs, opts.MaxRungs, opts.Strategy)
	start := time.Now()

	d, err := ladder.Generate(opts.Lines, opts.MinRungs, opts.MaxRungs,
		ladder.WithStrategy(opts.strategy),
		ladder.WithMarginRatio(opts.MarginRatio),
		ladder.WithSeed(opts.Seed),
	)

	rungs := 0
	if d != nil {
		rungs = d.RungCount()
	}
	hooks.OnGenerateComplete(ctx, rungs, time.Since(start), err)
	return d, err
}

// Layout positions d on the configured page.
func (r *Runner) Layout(ctx context.Context, d *ladder.Diagram, m ladder.Mapping, opts Options) (layout.Layout, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateForRender(); err != nil {
		return layout.Layout{}, err
	}
	if err := ctx.Err(); err != nil {
		return layout.Layout{}, err
	}
	return layout.Build(d, m, layout.WithPage(opts.page))
}

// Render encodes l in the configured format.
func (r *Runner) Render(ctx context.Context, l layout.Layout, d *ladder.Diagram, m ladder.Mapping, opts Options) ([]byte, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateForRender(); err != nil {
		return nil, err
	}

	hooks := observability.Pipeline()
	hooks.OnRenderStart(ctx, opts.Format)
	start := time.Now()

	data, err := sink.Render(opts.Format, l,
		sink.WithDiagram(d, m),
		sink.WithPNGScale(opts.PNGScale),
	)
	if err != nil && errors.GetCode(err) == "" {
		err = errors.Wrap(errors.ErrCodeInternal, err, "render %s", opts.Format)
	}

	hooks.OnRenderComplete(ctx, opts.Format, len(data), time.Since(start), err)
	return data, err
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
