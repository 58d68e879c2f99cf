// impl_petersen.go — the Petersen graph example.
//
// Contract:
//   - 10 vertices: outer ring ids 0..4, inner ids 5..9.
//   - Emission order: outer ring edges i — (i+1) mod 5 (i ascending), then
//     spokes i — i+5 (i ascending), then inner star 5+i — 5+((i+2) mod 5)
//     (i ascending).
//   - 3-chromatic; a classic stress case for greedy heuristics.
package catalog

import (
	"github.com/tintlab/tint/core"
)

const (
	petersenSize = 10
	petersenRing = 5
	starSkip     = 2
)

// Petersen builds the Petersen graph: an outer 5-cycle, five spokes, and an
// inner five-point star.
func Petersen(opts ...Option) core.Graph {
	g := seed(petersenSize, resolve(opts...))

	// Outer ring.
	for i := 0; i < petersenRing; i++ {
		g = g.AddEdge(i, (i+1)%petersenRing)
	}
	// Spokes to the inner ids.
	for i := 0; i < petersenRing; i++ {
		g = g.AddEdge(i, i+petersenRing)
	}
	// Inner star: each inner vertex skips two around the inner ring.
	for i := 0; i < petersenRing; i++ {
		g = g.AddEdge(petersenRing+i, petersenRing+(i+starSkip)%petersenRing)
	}

	return g
}
