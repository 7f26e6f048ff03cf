package ladder

import (
	"cmp"
	"slices"
)

// Mapping maps a start column (index) to the destination column (value)
// reached by tracing down the ladder.
type Mapping []int

// Simulate traces every start column of d through its rungs in ascending
// row order. Rungs on the same row never touch, so their relative order
// does not affect the result.
//
// Rungs whose column falls outside the diagram are skipped.
func Simulate(d *Diagram) Mapping {
	n := d.LineCount
	if n <= 0 {
		return Mapping{}
	}

	rungs := slices.Clone(d.Rungs)
	slices.SortStableFunc(rungs, func(a, b Rung) int { return cmp.Compare(a.Row, b.Row) })

	// occupant[slot] is the start column currently at slot.
	occupant := make([]int, n)
	for i := range occupant {
		occupant[i] = i
	}
	for _, r := range rungs {
		if r.Column < 0 || r.Column+1 >= n {
			continue
		}
		occupant[r.Column], occupant[r.Column+1] = occupant[r.Column+1], occupant[r.Column]
	}

	dest := make(Mapping, n)
	for slot, start := range occupant {
		dest[start] = slot
	}
	return dest
}

// Valid reports whether m is a permutation of 0..len(m)-1.
func (m Mapping) Valid() bool {
	seen := make([]bool, len(m))
	for _, v := range m {
		if v < 0 || v >= len(m) || seen[v] {
			return false
		}
		seen[v] = true
	}
	return true
}

// Inverse returns the mapping from destination column back to start column.
// m must be Valid.
func (m Mapping) Inverse() Mapping {
	inv := make(Mapping, len(m))
	for start, end := range m {
		inv[end] = start
	}
	return inv
}

// FixedPoints returns the start columns that end where they began.
func (m Mapping) FixedPoints() []int {
	var out []int
	for i, v := range m {
		if i == v {
			out = append(out, i)
		}
	}
	return out
}
