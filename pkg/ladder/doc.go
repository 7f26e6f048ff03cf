// Package ladder generates and simulates amidakuji (ghost-leg lottery)
// diagrams.
//
// # Overview
//
// A [Diagram] is a set of vertical lines joined by horizontal [Rung]s. Each
// rung sits on a discrete row and joins its left column to the column on its
// right. Two rungs never share a cell, and two rungs on the same row are
// never adjacent, so every crossing is unambiguous.
//
// # Generation
//
// [Generate] draws a rung budget uniformly from [minRungs, maxRungs] and
// places rungs on a randomly shuffled occupancy grid using one of two
// strategies:
//
//   - [Baseline]: greedy placement over every cell of a max(2b, 2) row grid.
//   - [Connected]: a coverage pass that prefers rungs touching lines no rung
//     has reached yet, followed by a fill pass. Margin rows at the top and
//     bottom of a max(2b, 6) row grid stay empty. If some line ends up
//     untouched, generation fails with [errors.ConnectivityError].
//
// Randomness is injected with [WithRand] or [WithSeed]; a fixed seed always
// yields the same rung set:
//
//	d, err := ladder.Generate(5, 3, 10,
//	    ladder.WithStrategy(ladder.Connected),
//	    ladder.WithSeed(42),
//	)
//
// # Simulation
//
// [Simulate] traces every start column down through the rungs in row order
// and returns a [Mapping] from start column to destination column. The
// mapping is always a permutation.
//
// [errors.ConnectivityError]: github.com/matzehuels/amidakuji/pkg/errors.ConnectivityError
package ladder
