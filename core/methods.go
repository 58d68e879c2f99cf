// File: methods.go
// Role: whole-graph maintenance & selection bookkeeping.
package core

// Clear returns an empty snapshot with nothing selected. Vertex ids restart
// from 0 after a clear — id freshness is a per-graph guarantee, not a global
// one.
//
// Complexity: O(1)
func (g Graph) Clear() Graph {
	return NewGraph()
}

// Select returns a snapshot with the given vertex selected.
// Selecting an unknown id is a no-op.
//
// Complexity: O(V + E).
func (g Graph) Select(id int) Graph {
	c := g.Clone()
	if g.HasVertex(id) {
		c.Selected = id
	}

	return c
}

// Deselect returns a snapshot with no vertex selected.
//
// Complexity: O(V + E).
func (g Graph) Deselect() Graph {
	c := g.Clone()
	c.Selected = NoSelection

	return c
}
