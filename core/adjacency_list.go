// File: adjacency_list.go
// Role: derived neighbor view consumed by the coloring engine.
//
// The adjacency list is recomputed on every call, never cached: graphs are
// small immutable snapshots, so recomputation is cheap and there is no
// invalidation to get wrong.
package core

// AdjacencyList derives a mapping from vertex id to its neighbor ids.
//
// Each stored edge contributes both directions (undirected expansion), and
// neighbor order follows edge insertion order. Every vertex appears as a
// key; isolated vertices map to an empty list. Duplicates cannot occur
// because AddEdge forbids parallel edges.
//
// Complexity: O(V + E) time and space.
func (g Graph) AdjacencyList() map[int][]int {
	adj := make(map[int][]int, len(g.Vertices))
	for i := range g.Vertices {
		adj[g.Vertices[i].ID] = nil
	}
	for i := range g.Edges {
		e := g.Edges[i]
		adj[e.Source] = append(adj[e.Source], e.Target)
		adj[e.Target] = append(adj[e.Target], e.Source)
	}

	return adj
}
