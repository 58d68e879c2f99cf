// Package tint is an in-memory toolkit for interactively building small
// undirected graphs and coloring them with a greedy first-fit heuristic —
// place vertices, connect them, watch a proper coloring emerge one vertex
// at a time.
//
// 🎨 What is tint?
//
//	A small, pure-Go library that brings together:
//		• Core primitives: immutable graph snapshots — every mutation returns a new value
//		• Greedy coloring: one-shot proper coloring plus a step-by-step replay sequence
//		• Editing state machine: pointer events → vertex/edge creation, selection, dragging
//		• Example catalog: canonical graphs (cycle, complete, bipartite, Petersen)
//
// ✨ Why choose tint?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Deterministic – identical inputs always produce bit-identical colorings
//   - Pure Go – no cgo, no hidden deps
//   - Snapshot semantics – no shared mutable state, no locks, no invalidation bugs
//
// Under the hood, everything is organized under four subpackages:
//
//	core/     — fundamental Graph, Vertex, Edge snapshot types & adjacency derivation
//	coloring/ — greedy first-fit engine: full pass and step-by-step replay
//	editor/   — pointer-driven editing state machine (select, connect, drag, hover)
//	catalog/  — deterministic example-graph generators
//
// Quick ASCII example:
//
//	    0───1
//	    │   │        greedy first-fit in id order colors this square
//	    3───2        with two colors: 0,1 alternate around the ring.
//
// The coloring is a proper coloring (no edge joins two same-colored vertices)
// but not necessarily minimal — greedy first-fit is a heuristic, and the
// number of colors it uses depends on the vertex order it is given.
//
//	go get github.com/tintlab/tint
package tint
