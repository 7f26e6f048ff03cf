package ladder

import "testing"

func TestGridFree(t *testing.T) {
	g := newGrid(2, 4, 0, 2)
	g.mark(0, 1)

	tests := []struct {
		row, col int
		want     bool
	}{
		{0, 0, false}, // left neighbour taken
		{0, 1, false}, // taken
		{0, 2, false}, // right neighbour taken
		{0, 3, true},
		{1, 1, true}, // other row
	}

	for _, tt := range tests {
		if got := g.free(tt.row, tt.col); got != tt.want {
			t.Errorf("free(%d, %d) = %v, want %v", tt.row, tt.col, got, tt.want)
		}
	}
}

func TestGridCandidatesSkipMarginAndOccupied(t *testing.T) {
	g := newGrid(6, 2, 1, 5)
	g.mark(2, 0)

	cands := g.candidates()
	if len(cands) != 4*2-1 {
		t.Fatalf("len(candidates) = %d, want 7", len(cands))
	}
	for _, c := range cands {
		if c.Row < 1 || c.Row >= 5 {
			t.Errorf("candidate %+v lies in the margin", c)
		}
		if c.Row == 2 && c.Column == 0 {
			t.Errorf("candidate %+v is already occupied", c)
		}
	}
}

func TestGridCandidatesEmptyRange(t *testing.T) {
	if got := newGrid(2, 3, 1, 1).candidates(); len(got) != 0 {
		t.Errorf("candidates() = %v, want none", got)
	}
}
