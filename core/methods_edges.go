// File: methods_edges.go
// Role: edge lifecycle & queries.
//
// Policy: AddEdge is idempotent and permissive. Self-loops, duplicates in
// either orientation, and unknown endpoints all yield a no-op snapshot —
// never an error. This keeps interactive editing forgiving: clicking a
// connected pair twice must not corrupt or complain.
package core

// AddEdge returns a snapshot with an undirected edge {a, b} appended.
//
// The mutation is skipped — an equivalent snapshot is returned — when
// a == b, either endpoint is missing, or the edge already exists in either
// orientation. AddEdge(a,b) and AddEdge(b,a) are interchangeable and never
// produce two stored edges.
//
// Complexity: O(V + E).
func (g Graph) AddEdge(a, b int) Graph {
	if a == b || !g.HasVertex(a) || !g.HasVertex(b) || g.HasEdge(a, b) {
		return g.Clone()
	}

	c := g.Clone()
	c.Edges = append(c.Edges, Edge{Source: a, Target: b})

	return c
}

// HasEdge reports whether an edge connects a and b, in either orientation.
// Complexity: O(E)
func (g Graph) HasEdge(a, b int) bool {
	for i := range g.Edges {
		e := g.Edges[i]
		if (e.Source == a && e.Target == b) || (e.Source == b && e.Target == a) {
			return true
		}
	}

	return false
}

// EdgeCount returns the number of stored edges.
// Complexity: O(1)
func (g Graph) EdgeCount() int { return len(g.Edges) }
