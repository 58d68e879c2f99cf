// Package coloring implements greedy first-fit proper vertex coloring:
// a one-shot full pass (ColorAll) and a materialized replay (Steps).
package coloring

import (
	"github.com/tintlab/tint/core"
)

// ColorAll colors every vertex of g with the first-fit rule, in the
// snapshot's vertex sequence order, and returns the colored snapshot with
// its color count. Any colors already present on the input are discarded
// first.
//
// A graph with no edges short-circuits: every vertex gets color 0 and the
// count is 1 — equivalent to, and cheaper than, the general rule.
//
// Returns ErrNoVertices when g has no vertices; the input is never mutated.
// Complexity: O(V + E).
func ColorAll(g core.Graph) (Result, error) {
	if g.VertexCount() == 0 {
		return Result{}, ErrNoVertices
	}

	// ColorAll owns this fresh copy and may fill it in place before
	// publishing; callers only ever observe the finished snapshot.
	c := g.ResetColors()

	// Edgeless shortcut: no neighbor can constrain, first-fit yields 0 for all.
	if c.EdgeCount() == 0 {
		for i := range c.Vertices {
			c.Vertices[i].Color = 0
		}

		return Result{Graph: c, ColorCount: 1}, nil
	}

	adj := c.AdjacencyList()
	assigned := make(map[int]int, len(c.Vertices))
	for i := range c.Vertices {
		id := c.Vertices[i].ID
		color := firstFit(id, adj, assigned)
		c.Vertices[i].Color = color
		assigned[id] = color
	}

	return Result{Graph: c, ColorCount: c.MaxColor() + 1}, nil
}

// Steps replays the first-fit pass one vertex at a time. Frame 0 is the
// fully-uncolored snapshot (VertexID == core.NoSelection); each following
// frame colors exactly one vertex, in sequence order, and is tagged with
// that vertex's id. The result has exactly VertexCount+1 frames and its last
// frame carries the same coloring ColorAll would produce.
//
// The slice is fully materialized and restartable: recomputing from the same
// input is deterministic and side-effect-free.
//
// Returns ErrNoVertices when g has no vertices; the input is never mutated.
// Complexity: O(V·(V + E)) — one snapshot per frame.
func Steps(g core.Graph) ([]Step, error) {
	if g.VertexCount() == 0 {
		return nil, ErrNoVertices
	}

	current := g.ResetColors()
	steps := make([]Step, 0, current.VertexCount()+1)
	steps = append(steps, Step{Graph: current, VertexID: core.NoSelection})

	adj := current.AdjacencyList()
	assigned := make(map[int]int, current.VertexCount())
	// Freeze the iteration order up front; SetColor snapshots preserve
	// vertex order, but ranging over a stable id list keeps that contract
	// obvious.
	order := make([]int, current.VertexCount())
	for i := range current.Vertices {
		order[i] = current.Vertices[i].ID
	}

	for _, id := range order {
		color := firstFit(id, adj, assigned)
		assigned[id] = color
		current = current.SetColor(id, color)
		steps = append(steps, Step{Graph: current, VertexID: id})
	}

	return steps, nil
}

// firstFit returns the smallest non-negative color not used by any
// already-colored neighbor of id. Uncolored neighbors constrain nothing.
//
// The scratch set is a dense bool slice of size deg+1: with deg neighbors at
// most deg colors can be excluded, so a free slot always exists in [0, deg].
func firstFit(id int, adj map[int][]int, assigned map[int]int) int {
	neighbors := adj[id]
	used := make([]bool, len(neighbors)+1)
	for _, nbr := range neighbors {
		if color, ok := assigned[nbr]; ok && color < len(used) {
			used[color] = true
		}
	}

	for color := range used {
		if !used[color] {
			return color
		}
	}

	// Unreachable: used has len(neighbors)+1 slots and at most
	// len(neighbors) of them can be marked.
	return len(used)
}
