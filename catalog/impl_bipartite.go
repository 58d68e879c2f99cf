// impl_bipartite.go — the sparse 3+3 bipartite example.
//
// Contract:
//   - Partitions {0,1,2} and {3,4,5}.
//   - Exactly the 6 edges 0-3, 0-4, 1-3, 1-5, 2-4, 2-5, in that order.
//   - Deliberately NOT K{3,3}: the cross pairs 0-5, 1-4, 2-3 are absent and
//     must stay absent. Two colors still suffice.
package catalog

import (
	"github.com/tintlab/tint/core"
)

const bipartiteSize = 6

// bipartiteEdges is the fixed sparse cross pattern, left id first.
var bipartiteEdges = [6][2]int{
	{0, 3}, {0, 4},
	{1, 3}, {1, 5},
	{2, 4}, {2, 5},
}

// Bipartite builds the sparse 3+3 bipartite example.
func Bipartite(opts ...Option) core.Graph {
	g := seed(bipartiteSize, resolve(opts...))
	for _, e := range bipartiteEdges {
		g = g.AddEdge(e[0], e[1])
	}

	return g
}
