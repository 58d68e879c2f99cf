// impl_complete.go — the K4 complete example.
//
// Contract:
//   - 4 vertices, ids 0..3.
//   - All C(4,2)=6 pairs connected; emission order (i,j) with i<j,
//     lexicographic.
//   - Greedy first-fit needs all 4 colors, one per vertex.
package catalog

import (
	"github.com/tintlab/tint/core"
)

const completeSize = 4

// Complete builds the complete graph K4.
func Complete(opts ...Option) core.Graph {
	g := seed(completeSize, resolve(opts...))
	for i := 0; i < completeSize; i++ {
		for j := i + 1; j < completeSize; j++ {
			g = g.AddEdge(i, j)
		}
	}

	return g
}
