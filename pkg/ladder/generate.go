package ladder

import (
	"math"
	"math/rand/v2"

	"github.com/google/uuid"

	"github.com/matzehuels/amidakuji/pkg/errors"
)

// Strategy selects the rung placement algorithm.
type Strategy string

const (
	// Baseline places rungs greedily with no coverage guarantee.
	Baseline Strategy = "baseline"
	// Connected guarantees every vertical line touches a rung or fails.
	Connected Strategy = "connected"
)

const (
	// DefaultMarginRatio is the share of grid rows kept empty at the top
	// and bottom of a Connected ladder.
	DefaultMarginRatio = 0.1

	// MaxMarginRatio is the exclusive upper bound for the margin ratio.
	MaxMarginRatio = 0.5

	baselineMinHeight  = 2
	connectedMinHeight = 6
)

// ValidStrategies is the set of supported placement strategies.
var ValidStrategies = map[Strategy]bool{
	Baseline:  true,
	Connected: true,
}

// ParseStrategy converts a strategy name to a Strategy.
// The empty string selects Baseline.
func ParseStrategy(s string) (Strategy, error) {
	if s == "" {
		return Baseline, nil
	}
	st := Strategy(s)
	if !ValidStrategies[st] {
		return "", errors.New(errors.ErrCodeInvalidParameter, "invalid strategy: %s (must be 'baseline' or 'connected')", s)
	}
	return st, nil
}

// Option configures Generate.
type Option func(*generator)

type generator struct {
	strategy Strategy
	margin   float64
	rng      *rand.Rand
}

// WithStrategy selects the placement strategy (default Baseline).
func WithStrategy(s Strategy) Option { return func(g *generator) { g.strategy = s } }

// WithMarginRatio sets the margin ratio used by Connected (default 0.1).
func WithMarginRatio(r float64) Option { return func(g *generator) { g.margin = r } }

// WithRand sets the random source. A nil source is ignored.
func WithRand(r *rand.Rand) Option {
	return func(g *generator) {
		if r != nil {
			g.rng = r
		}
	}
}

// WithSeed seeds a fresh random source; equal seeds give equal diagrams.
func WithSeed(seed uint64) Option { return WithRand(NewRand(seed)) }

// NewRand returns a PCG-backed random source for seed.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0xdeadbeef))
}

// placer is one rung placement algorithm.
type placer interface {
	// layout returns the grid height and the usable row range [first, end).
	layout(budget int, margin float64) (height, first, end int)
	// place puts up to budget rungs on g.
	place(g *grid, lines, budget int, rng *rand.Rand) []Rung
}

var placers = map[Strategy]placer{
	Baseline:  baselinePlacer{},
	Connected: connectedPlacer{},
}

// Generate builds a random diagram with lineCount vertical lines and a rung
// budget drawn uniformly from [minRungs, maxRungs].
//
// Invalid inputs fail with INVALID_PARAMETER before any randomness is
// consumed. With the Connected strategy, a ladder that leaves some line
// untouched fails with *errors.ConnectivityError; the caller decides whether
// to retry with a larger budget.
//
// Baseline always places exactly the drawn budget: its grid has twice as
// many rows as rungs and every row accepts at least one rung. Connected may
// place fewer when its margin leaves too few rows.
func Generate(lineCount, minRungs, maxRungs int, opts ...Option) (*Diagram, error) {
	g := generator{strategy: Baseline, margin: DefaultMarginRatio}
	for _, opt := range opts {
		opt(&g)
	}
	if err := g.validate(lineCount, minRungs, maxRungs); err != nil {
		return nil, err
	}
	if g.rng == nil {
		g.rng = NewRand(rand.Uint64())
	}

	p := placers[g.strategy]
	budget := minRungs + int(g.rng.Uint64N(uint64(maxRungs-minRungs)+1))
	height, first, end := p.layout(budget, g.margin)

	occ := newGrid(height, lineCount-1, first, end)
	d := &Diagram{
		ID:        uuid.NewString(),
		LineCount: lineCount,
		Height:    height,
		Strategy:  g.strategy,
		Rungs:     p.place(occ, lineCount, budget, g.rng),
	}
	if d.Rungs == nil {
		d.Rungs = []Rung{}
	}

	if g.strategy == Connected {
		if missing := d.Uncovered(); len(missing) > 0 {
			return nil, &errors.ConnectivityError{Uncovered: missing}
		}
	}
	return d, nil
}

// MaxRungs returns the largest maximum rung count Generate accepts for
// lineCount lines: the placement grid of 2*maxRungs rows by lineCount-1
// columns must fit in an int.
func MaxRungs(lineCount int) int {
	if lineCount < MinLines {
		return 0
	}
	return math.MaxInt / 2 / (lineCount - 1)
}

func (g *generator) validate(lineCount, minRungs, maxRungs int) error {
	if err := errors.ValidateAtLeast("line count", lineCount, MinLines); err != nil {
		return err
	}
	if err := errors.ValidateAtLeast("minimum rung count", minRungs, 0); err != nil {
		return err
	}
	if err := errors.ValidateAtLeast("maximum rung count", maxRungs, 0); err != nil {
		return err
	}
	if err := errors.ValidateRange("minimum rung count", minRungs, "maximum rung count", maxRungs); err != nil {
		return err
	}
	if lineCount > MaxLines {
		return errors.New(errors.ErrCodeInvalidParameter, "line count must be at most %d, got %d", MaxLines, lineCount)
	}
	if limit := MaxRungs(lineCount); maxRungs > limit {
		return errors.New(errors.ErrCodeInvalidParameter, "maximum rung count must be at most %d for %d lines, got %d", limit, lineCount, maxRungs)
	}
	if _, ok := placers[g.strategy]; !ok {
		return errors.New(errors.ErrCodeInvalidParameter, "invalid strategy: %s", g.strategy)
	}
	return errors.ValidateRatio("margin ratio", g.margin, MaxMarginRatio)
}

type baselinePlacer struct{}

func (baselinePlacer) layout(budget int, _ float64) (int, int, int) {
	h := max(budget*2, baselineMinHeight)
	return h, 0, h
}

func (baselinePlacer) place(g *grid, _ int, budget int, rng *rand.Rand) []Rung {
	return fill(g, nil, budget, rng)
}

type connectedPlacer struct{}

func (connectedPlacer) layout(budget int, margin float64) (int, int, int) {
	h := max(budget*2, connectedMinHeight)
	m := max(1, int(float64(h)*margin))
	return h, m, h - m
}

func (connectedPlacer) place(g *grid, lines, budget int, rng *rand.Rand) []Rung {
	cands := g.candidates()
	shuffle(cands, rng)

	covered := make([]bool, lines)
	left := lines
	var rungs []Rung
	for _, c := range cands {
		if len(rungs) >= budget || left == 0 {
			break
		}
		if covered[c.Column] && covered[c.Column+1] {
			continue
		}
		if !g.free(c.Row, c.Column) {
			continue
		}
		g.mark(c.Row, c.Column)
		rungs = append(rungs, c)
		for _, l := range []int{c.Column, c.Column + 1} {
			if !covered[l] {
				covered[l] = true
				left--
			}
		}
	}
	return fill(g, rungs, budget, rng)
}

// fill adds rungs from the shuffled free cells of g until budget is reached
// or no cell fits.
func fill(g *grid, rungs []Rung, budget int, rng *rand.Rand) []Rung {
	if len(rungs) >= budget {
		return rungs
	}
	cands := g.candidates()
	shuffle(cands, rng)
	for _, c := range cands {
		if len(rungs) >= budget {
			break
		}
		if g.free(c.Row, c.Column) {
			g.mark(c.Row, c.Column)
			rungs = append(rungs, c)
		}
	}
	return rungs
}

func shuffle(cells []Rung, rng *rand.Rand) {
	rng.Shuffle(len(cells), func(i, j int) { cells[i], cells[j] = cells[j], cells[i] })
}
