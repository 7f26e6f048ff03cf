package ladder_test

import (
	"fmt"

	"github.com/matzehuels/amidakuji/pkg/ladder"
)

func ExampleSimulate() {
	d := &ladder.Diagram{
		LineCount: 3,
		Rungs: []ladder.Rung{
			{Row: 0, Column: 0},
			{Row: 1, Column: 1},
		},
	}
	fmt.Println(ladder.Simulate(d))
	// Output: [2 0 1]
}

func ExampleGenerate() {
	d, err := ladder.Generate(5, 4, 8, ladder.WithStrategy(ladder.Connected), ladder.WithSeed(42))
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(d.LineCount, len(d.Uncovered()), ladder.Simulate(d).Valid())
	// Output: 5 0 true
}
