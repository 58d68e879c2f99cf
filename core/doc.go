// Package core provides the fundamental Graph, Vertex, and Edge snapshot
// types for interactive graph construction and coloring.
//
// The Graph G = (V,E) here is deliberately small and opinionated:
//
//   - Undirected, simple edges only — no self-loops, no parallel edges,
//     no weights, no direction.
//   - Integer vertex ids, allocated as max(existing)+1 and never reused.
//   - Positional hints (X,Y) on every vertex for hit-testing and display;
//     they never influence structure or coloring.
//   - A color slot per vertex, NoColor until a coloring engine assigns one.
//   - A single optional selection id, used by the editing state machine.
//
// Why value semantics?
//
// Every mutating operation (AddVertex, AddEdge, MoveVertex, ResetColors, …)
// returns a NEW snapshot and leaves the receiver untouched. Snapshots are
// single-owner values handed from one operation's output to the next
// operation's input, so there is no shared mutable state, no locking, and a
// step-replay history can hold earlier snapshots without any copy discipline
// on the caller's side.
//
// Invariants (hold for every snapshot produced by this package):
//
//   - Every edge endpoint references an id present in Vertices.
//   - No edge has Source == Target.
//   - No two edges connect the same pair in either orientation.
//   - Vertex ids are unique; Color is NoColor or ≥ 0.
//
// Invalid mutations (duplicate edge, self-loop, unknown id) are silent
// no-ops returning an equivalent snapshot — a policy decision that keeps
// interactive editing idempotent rather than error-prone.
//
// Determinism
//
//	Vertices keeps insertion order (it is the coloring iteration order) and
//	Edges keeps insertion order (it is the neighbor enumeration order), so
//	every derived view — AdjacencyList included — is fully reproducible.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Mutations: O(V + E) (snapshot copy dominates)
//   - Queries: O(V) or O(E) linear scans, fine at interactive graph sizes
//   - AdjacencyList: O(V + E)
package core
