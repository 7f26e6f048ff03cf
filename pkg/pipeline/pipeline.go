// Package pipeline runs the generate → simulate → layout → render sequence
// shared by the CLI and the HTTP server.
//
// Centralizing the sequence keeps defaults, validation and logging the same
// for every entry point.
//
// # Usage
//
//	runner := pipeline.NewRunner(logger)
//	result, err := runner.Execute(ctx, pipeline.Options{
//	    Lines:    6,
//	    MinRungs: 5,
//	    MaxRungs: 12,
//	    Format:   "svg",
//	})
//	if err != nil {
//	    return err
//	}
//	os.WriteFile("ladder.svg", result.Artifact, 0o644)
//
// Stages can also be run one at a time with [Runner.Generate],
// [Runner.Layout] and [Runner.Render].
package pipeline

import (
	"io"
	"math/rand/v2"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/amidakuji/pkg/errors"
	"github.com/matzehuels/amidakuji/pkg/ladder"
	"github.com/matzehuels/amidakuji/pkg/render/layout"
	"github.com/matzehuels/amidakuji/pkg/render/sink"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and Server
// =============================================================================

const (
	// DefaultStrategy is the default rung placement strategy.
	DefaultStrategy = ladder.Baseline

	// DefaultFormat is the default output format.
	DefaultFormat = sink.DefaultFormat
)

// DefaultPage is the default page size.
var DefaultPage = layout.A4

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for one pipeline run.
type Options struct {
	// Generate options
	Lines       int     `json:"lines"`
	MinRungs    int     `json:"min_rungs"`
	MaxRungs    int     `json:"max_rungs"`
	Strategy    string  `json:"strategy,omitempty"`
	MarginRatio float64 `json:"margin_ratio"`   // 0 keeps one margin row
	Seed        uint64  `json:"seed,omitempty"` // 0 draws a random seed

	// Render options
	Format   string  `json:"format,omitempty"`
	Page     string  `json:"page,omitempty"`
	PNGScale float64 `json:"png_scale,omitempty"`

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`

	strategy  ladder.Strategy
	page      layout.PageSize
	validated bool
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Diagram is the generated ladder.
	Diagram *ladder.Diagram

	// Mapping holds the destination column of every start column.
	Mapping ladder.Mapping

	// Layout is the positioned page geometry.
	Layout layout.Layout

	// Artifact is the rendered output in Format.
	Artifact []byte
	Format   string

	// Seed is the seed the diagram was generated with; rerunning with it
	// reproduces the diagram.
	Seed uint64

	Stats Stats
}

// Stats contains pipeline execution statistics.
type Stats struct {
	Rungs        int
	Rows         int
	GenerateTime time.Duration
	LayoutTime   time.Duration
	RenderTime   time.Duration
	Bytes        int
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults checks every field and applies defaults.
// This method is idempotent.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if err := o.ValidateForGenerate(); err != nil {
		return err
	}
	if err := o.ValidateForRender(); err != nil {
		return err
	}
	o.validated = true
	return nil
}

// ValidateForGenerate checks the generation parameters and draws a seed
// when none is set.
func (o *Options) ValidateForGenerate() error {
	if err := errors.ValidateAtLeast("lines", o.Lines, ladder.MinLines); err != nil {
		return err
	}
	if err := errors.ValidateAtLeast("min rungs", o.MinRungs, 0); err != nil {
		return err
	}
	if err := errors.ValidateAtLeast("max rungs", o.MaxRungs, 0); err != nil {
		return err
	}
	if err := errors.ValidateRange("min rungs", o.MinRungs, "max rungs", o.MaxRungs); err != nil {
		return err
	}
	s, err := ladder.ParseStrategy(o.Strategy)
	if err != nil {
		return err
	}
	o.strategy, o.Strategy = s, string(s)
	if err := errors.ValidateRatio("margin ratio", o.MarginRatio, ladder.MaxMarginRatio); err != nil {
		return err
	}
	if o.Seed == 0 {
		o.Seed = rand.Uint64() | 1
	}
	o.setLogger()
	return nil
}

// ValidateForRender checks the render parameters and applies defaults.
func (o *Options) ValidateForRender() error {
	if o.Format == "" {
		o.Format = DefaultFormat
	}
	if err := sink.ValidateFormat(o.Format); err != nil {
		return err
	}
	p, err := layout.ParsePage(o.Page)
	if err != nil {
		return err
	}
	o.page, o.Page = p, p.Name
	if o.PNGScale == 0 {
		o.PNGScale = sink.DefaultPNGScale
	}
	if o.PNGScale < 0 {
		return errors.New(errors.ErrCodeInvalidParameter, "png scale must be positive, got %g", o.PNGScale)
	}
	o.setLogger()
	return nil
}

func (o *Options) setLogger() {
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}
