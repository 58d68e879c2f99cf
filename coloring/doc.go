// Package coloring provides a greedy first-fit proper vertex coloring over a
// core.Graph snapshot, in two flavors: a one-shot full pass and a fully
// materialized step-by-step replay sequence.
//
// What
//
//   - ColorAll colors every vertex in one pass and reports the color count.
//   - Steps records one full-graph snapshot per colored vertex, each tagged
//     with the id of the vertex colored at that step, for one-vertex-at-a-time
//     replay in a UI.
//   - Both apply the same assignment rule: visit vertices in the snapshot's
//     sequence order; give each vertex the smallest non-negative integer not
//     used by its already-colored neighbors.
//
// Why
//
//   - Produce a proper coloring (no edge joins two same-colored vertices)
//     cheaply: O(V + E) with the first-fit rule.
//   - The step sequence makes the heuristic teachable: each snapshot shows
//     exactly one decision, and the tag says whose.
//
// The result is an upper bound on the chromatic number, not the chromatic
// number itself — first-fit quality depends entirely on vertex order.
// Uncolored neighbors contribute nothing to the used-color set, so each
// vertex's final color depends only on vertices earlier in the sequence.
//
// Determinism
//
//	Both operations are pure functions of (vertex sequence order, edge set).
//	The same snapshot always yields bit-identical results; the input graph is
//	never mutated (snapshots are values).
//
// Edge cases
//
//   - Zero vertices: rejected with ErrNoVertices; no partial result.
//   - Zero edges: every vertex gets color 0, count 1 (shortcut in ColorAll,
//     same outcome from the general rule in Steps).
//   - Colors already present on the input are ignored: both operations start
//     from a conceptually uncolored graph.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - ColorAll: O(V + E) time, O(V + E) space for the result snapshot.
//   - Steps: O(V·(V + E)) time and space — one snapshot copy per step,
//     which is the point of the operation.
//
// Usage
//
//	res, err := coloring.ColorAll(g)
//	if err != nil {
//	    // ErrNoVertices is the only failure mode
//	}
//	fmt.Println(res.ColorCount)
//
//	steps, _ := coloring.Steps(g)
//	for _, s := range steps[1:] {
//	    // s.VertexID was just colored; s.Graph is the full snapshot after it
//	}
//
// Errors
//
//   - ErrNoVertices if the input graph has no vertices.
package coloring
