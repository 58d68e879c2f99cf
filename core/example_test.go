package core_test

import (
	"fmt"

	"github.com/tintlab/tint/core"
)

// ExampleGraph_AddEdge builds a small triangle and shows the idempotent
// edge policy: repeated and reversed insertions leave the edge set alone.
func ExampleGraph_AddEdge() {
	g := core.NewGraph()
	g, a := g.AddVertex(0, 0)
	g, b := g.AddVertex(100, 0)
	g, c := g.AddVertex(50, 80)

	g = g.AddEdge(a.ID, b.ID)
	g = g.AddEdge(b.ID, c.ID)
	g = g.AddEdge(c.ID, a.ID)

	// None of these change anything.
	g = g.AddEdge(a.ID, b.ID) // duplicate
	g = g.AddEdge(b.ID, a.ID) // reversed duplicate
	g = g.AddEdge(a.ID, a.ID) // self-loop

	fmt.Println("vertices:", g.VertexCount(), "edges:", g.EdgeCount())
	// Output:
	// vertices: 3 edges: 3
}

// ExampleGraph_AdjacencyList derives the undirected neighbor view of a
// path 0—1—2.
func ExampleGraph_AdjacencyList() {
	g := core.NewGraph()
	g, a := g.AddVertex(0, 0)
	g, b := g.AddVertex(1, 0)
	g, c := g.AddVertex(2, 0)
	g = g.AddEdge(a.ID, b.ID)
	g = g.AddEdge(b.ID, c.ID)

	adj := g.AdjacencyList()
	fmt.Println("neighbors of 1:", adj[b.ID])
	// Output:
	// neighbors of 1: [0 2]
}
