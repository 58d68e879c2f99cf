// Package catalog provides the canonical example graphs: deterministic,
// parameterless generators for a 5-cycle, the complete graph K4, a sparse
// 3+3 bipartite graph, and the Petersen graph.
//
// What
//
//   - Cycle, Complete, Bipartite, Petersen build a fresh core.Graph snapshot
//     with vertex ids 0..n-1 and a documented, stable edge emission order.
//   - Load dispatches by name ("cycle", "complete", "bipartite", "petersen");
//     an unrecognized name yields an empty graph rather than failing — the
//     permissive default a seed picker wants.
//
// Determinism
//
//	Same generator, same options ⇒ identical snapshot, every time. Ids are
//	dense 0..n-1 and edges are emitted in the order documented on each
//	generator, so colorings over catalog graphs are fully reproducible.
//
// Layout
//
// Vertex geometry is the presentation layer's business, not this package's:
// by default every vertex sits at the origin and only the structure matters.
// Pass WithLayout to position vertices at generation time — RingLayout gives
// the usual circular arrangement for display or editor seeding.
//
// Note the bipartite example is intentionally sparse: 6 of the 9 possible
// cross edges (0-5, 1-4, 2-3 are absent). It is NOT K{3,3} and must not be
// silently completed — two colors still suffice, which is the point of the
// example.
//
// Usage
//
//	g := catalog.Load("petersen", catalog.WithLayout(catalog.RingLayout(200, 200, 150)))
//	res, _ := coloring.ColorAll(g)
package catalog
