// File: methods_vertices.go
// Role: vertex lifecycle & queries.
//
// Determinism:
//   - Vertices keeps insertion order; AddVertex appends, nothing reorders.
//   - Fresh ids are max(existing)+1 (0 for an empty graph), never reused.
package core

// AddVertex appends a new uncolored vertex at (x, y) and returns the new
// snapshot together with the created vertex.
//
// The fresh id is max(existing ids)+1, or 0 if the graph is empty. Gaps in
// the id sequence (from catalog seeding) are preserved, not filled.
//
// Complexity: O(V) (id scan + snapshot copy).
func (g Graph) AddVertex(x, y float64) (Graph, Vertex) {
	v := Vertex{ID: g.nextID(), X: x, Y: y, Color: NoColor}
	c := g.Clone()
	c.Vertices = append(c.Vertices, v)

	return c, v
}

// MoveVertex returns a snapshot with the named vertex repositioned to (x, y).
// Structure, colors, and selection are untouched. Unknown id is a no-op.
//
// Complexity: O(V + E).
func (g Graph) MoveVertex(id int, x, y float64) Graph {
	c := g.Clone()
	for i := range c.Vertices {
		if c.Vertices[i].ID == id {
			c.Vertices[i].X, c.Vertices[i].Y = x, y
			break
		}
	}

	return c
}

// SetColor returns a snapshot with the named vertex's color replaced.
// Unknown id is a no-op. Callers are responsible for keeping the coloring
// proper; this method records, it does not validate.
//
// Complexity: O(V + E).
func (g Graph) SetColor(id, color int) Graph {
	c := g.Clone()
	for i := range c.Vertices {
		if c.Vertices[i].ID == id {
			c.Vertices[i].Color = color
			break
		}
	}

	return c
}

// ResetColors returns a snapshot with every vertex's color set back to
// NoColor. Structure and selection are untouched.
//
// Complexity: O(V + E).
func (g Graph) ResetColors() Graph {
	c := g.Clone()
	for i := range c.Vertices {
		c.Vertices[i].Color = NoColor
	}

	return c
}

// HasVertex reports whether a vertex with the given id exists.
// Complexity: O(V)
func (g Graph) HasVertex(id int) bool {
	for i := range g.Vertices {
		if g.Vertices[i].ID == id {
			return true
		}
	}

	return false
}

// VertexByID returns the vertex with the given id, and whether it exists.
// Complexity: O(V)
func (g Graph) VertexByID(id int) (Vertex, bool) {
	for i := range g.Vertices {
		if g.Vertices[i].ID == id {
			return g.Vertices[i], true
		}
	}

	return Vertex{}, false
}

// VertexCount returns the number of vertices.
// Complexity: O(1)
func (g Graph) VertexCount() int { return len(g.Vertices) }

// MaxColor returns the largest assigned color, or NoColor when no vertex
// has been colored.
// Complexity: O(V)
func (g Graph) MaxColor() int {
	maxColor := NoColor
	for i := range g.Vertices {
		if g.Vertices[i].Color > maxColor {
			maxColor = g.Vertices[i].Color
		}
	}

	return maxColor
}

// nextID computes the fresh id for AddVertex: max(existing)+1, or 0 when
// the graph has no vertices.
func (g Graph) nextID() int {
	id := 0
	for i := range g.Vertices {
		if g.Vertices[i].ID >= id {
			id = g.Vertices[i].ID + 1
		}
	}

	return id
}
