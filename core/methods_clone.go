// File: methods_clone.go
// Role: snapshot duplication.
//
// Every mutator in this package starts from Clone, edits its private copy,
// and returns it — the receiver is never touched. Callers that want to batch
// several edits before publishing a snapshot can do the same.
package core

// Clone returns a deep copy of the snapshot: fresh backing arrays for
// Vertices and Edges, same contents, same selection.
//
// Complexity: O(V + E) time and space.
func (g Graph) Clone() Graph {
	c := Graph{Selected: g.Selected}
	if len(g.Vertices) > 0 {
		c.Vertices = make([]Vertex, len(g.Vertices))
		copy(c.Vertices, g.Vertices)
	}
	if len(g.Edges) > 0 {
		c.Edges = make([]Edge, len(g.Edges))
		copy(c.Edges, g.Edges)
	}

	return c
}
