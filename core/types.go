// Package core defines the central Graph, Vertex, and Edge snapshot types.
//
// This file declares the types, the NoColor/NoSelection sentinels, and the
// NewGraph constructor. Mutating operations live in methods_vertices.go and
// methods_edges.go; copying in methods_clone.go; the derived neighbor view
// in adjacency_list.go.
package core

// NoColor marks a vertex that has not been assigned a color yet.
// Assigned colors are always ≥ 0.
const NoColor = -1

// NoSelection marks a graph with no selected vertex.
// Valid vertex ids are always ≥ 0.
const NoSelection = -1

// Vertex represents a node in the graph.
//
// X and Y are positional hints for hit-testing and display; they are
// irrelevant to structure and coloring. Color is NoColor until a coloring
// engine assigns a value ≥ 0.
type Vertex struct {
	// ID uniquely identifies this Vertex within its Graph.
	ID int

	// X, Y locate the vertex on the editing surface.
	X, Y float64

	// Color is the assigned color index, or NoColor.
	Color int
}

// Edge represents an undirected connection between two vertices.
//
// (Source, Target) and (Target, Source) denote the same edge; at most one
// orientation is ever stored. Source == Target never occurs.
type Edge struct {
	// Source is one endpoint's vertex ID.
	Source int

	// Target is the other endpoint's vertex ID.
	Target int
}

// Graph is one immutable point-in-time snapshot of the full graph:
// vertices (in insertion order — the coloring iteration order), edges
// (in insertion order — the neighbor enumeration order), and the id of the
// currently selected vertex, or NoSelection.
//
// Treat a Graph as a value: every mutating method returns a new snapshot
// and leaves the receiver untouched. Construct the first snapshot with
// NewGraph (the zero value carries Selected == 0, which collides with a
// valid vertex id).
type Graph struct {
	Vertices []Vertex
	Edges    []Edge
	Selected int
}

// NewGraph returns an empty graph snapshot with nothing selected.
// Complexity: O(1)
func NewGraph() Graph {
	return Graph{Selected: NoSelection}
}
