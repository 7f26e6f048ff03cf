package ladder

// grid is a row-major occupancy grid of rung cells. Only rows in
// [first, end) accept rungs; the rest are margin.
type grid struct {
	height, cols int
	first, end   int
	cells        []bool
}

func newGrid(height, cols, first, end int) *grid {
	return &grid{
		height: height,
		cols:   cols,
		first:  first,
		end:    end,
		cells:  make([]bool, height*cols),
	}
}

func (g *grid) occupied(row, col int) bool {
	if row < 0 || row >= g.height || col < 0 || col >= g.cols {
		return false
	}
	return g.cells[row*g.cols+col]
}

// free reports whether a rung may go at (row, col): the cell and its
// same-row neighbours are all empty.
func (g *grid) free(row, col int) bool {
	return !g.occupied(row, col) && !g.occupied(row, col-1) && !g.occupied(row, col+1)
}

func (g *grid) mark(row, col int) {
	g.cells[row*g.cols+col] = true
}

// candidates lists every unoccupied usable cell in row-major order.
func (g *grid) candidates() []Rung {
	if g.end <= g.first {
		return nil
	}
	out := make([]Rung, 0, (g.end-g.first)*g.cols)
	for row := g.first; row < g.end; row++ {
		for col := 0; col < g.cols; col++ {
			if !g.occupied(row, col) {
				out = append(out, Rung{Row: row, Column: col})
			}
		}
	}
	return out
}
