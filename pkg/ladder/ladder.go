package ladder

import (
	"cmp"
	"slices"

	"github.com/matzehuels/amidakuji/pkg/errors"
)

const (
	// MinLines is the smallest number of vertical lines a diagram may have.
	MinLines = 2
	// MaxLines is the largest number of vertical lines a diagram may have.
	MaxLines = 1 << 16
)

// Rung is a horizontal connector between Column and Column+1 on Row.
// Smaller rows are nearer the top of the diagram.
type Rung struct {
	Row    int `json:"row"`
	Column int `json:"left_column"`
}

// Diagram is a generated amidakuji.
type Diagram struct {
	ID        string   `json:"id,omitempty"`
	LineCount int      `json:"line_count"`
	Height    int      `json:"height,omitempty"` // rows in the placement grid
	Strategy  Strategy `json:"strategy,omitempty"`
	Rungs     []Rung   `json:"rungs"`
}

// RungCount returns the number of placed rungs.
func (d *Diagram) RungCount() int { return len(d.Rungs) }

// Validate checks the structural invariants of d: a line count within
// [MinLines, MaxLines], every rung inside the column range, no shared or
// adjacent rungs on a row.
func (d *Diagram) Validate() error {
	if d.LineCount < MinLines {
		return errors.New(errors.ErrCodeInvalidDiagram, "diagram needs at least %d lines, has %d", MinLines, d.LineCount)
	}
	if d.LineCount > MaxLines {
		return errors.New(errors.ErrCodeInvalidDiagram, "diagram has %d lines, at most %d allowed", d.LineCount, MaxLines)
	}
	byRow := make(map[int][]int)
	for _, r := range d.Rungs {
		if r.Row < 0 {
			return errors.New(errors.ErrCodeInvalidDiagram, "rung at column %d has negative row %d", r.Column, r.Row)
		}
		if r.Column < 0 || r.Column > d.LineCount-2 {
			return errors.New(errors.ErrCodeInvalidDiagram, "rung at row %d has column %d outside [0, %d]", r.Row, r.Column, d.LineCount-2)
		}
		byRow[r.Row] = append(byRow[r.Row], r.Column)
	}
	for row, cols := range byRow {
		slices.Sort(cols)
		for i := 1; i < len(cols); i++ {
			if cols[i]-cols[i-1] <= 1 {
				return errors.New(errors.ErrCodeInvalidDiagram, "rungs at row %d columns %d and %d overlap or touch", row, cols[i-1], cols[i])
			}
		}
	}
	return nil
}

// Coverage reports, per vertical line, whether at least one rung touches it.
func (d *Diagram) Coverage() []bool {
	covered := make([]bool, d.LineCount)
	for _, r := range d.Rungs {
		if r.Column >= 0 && r.Column+1 < d.LineCount {
			covered[r.Column] = true
			covered[r.Column+1] = true
		}
	}
	return covered
}

// Uncovered returns the 0-based indices of lines no rung touches.
func (d *Diagram) Uncovered() []int {
	var out []int
	for i, ok := range d.Coverage() {
		if !ok {
			out = append(out, i)
		}
	}
	return out
}

// DistinctRows returns the rows that hold at least one rung, ascending.
func (d *Diagram) DistinctRows() []int {
	rows := make([]int, 0, len(d.Rungs))
	for _, r := range d.Rungs {
		rows = append(rows, r.Row)
	}
	slices.Sort(rows)
	return slices.Compact(rows)
}

// SortedRungs returns a copy of the rungs ordered by row, then column.
func (d *Diagram) SortedRungs() []Rung {
	rungs := slices.Clone(d.Rungs)
	slices.SortFunc(rungs, func(a, b Rung) int {
		if c := cmp.Compare(a.Row, b.Row); c != 0 {
			return c
		}
		return cmp.Compare(a.Column, b.Column)
	})
	return rungs
}
