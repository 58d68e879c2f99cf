// impl_cycle.go — the C5 ring example.
//
// Contract:
//   - 5 vertices, ids 0..4.
//   - Ring edges i — (i+1) mod 5, emitted in ascending i.
//   - Odd cycle: greedy first-fit in id order takes 3 colors.
package catalog

import (
	"github.com/tintlab/tint/core"
)

const cycleSize = 5

// Cycle builds the 5-vertex ring C5.
func Cycle(opts ...Option) core.Graph {
	g := seed(cycleSize, resolve(opts...))
	for i := 0; i < cycleSize; i++ {
		g = g.AddEdge(i, (i+1)%cycleSize)
	}

	return g
}
