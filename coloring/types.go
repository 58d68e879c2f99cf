// Package coloring defines the result types and error definitions for
// greedy first-fit coloring over a core.Graph.
package coloring

import (
	"errors"

	"github.com/tintlab/tint/core"
)

// ErrNoVertices is returned when coloring is requested on a graph with no
// vertices. The request is rejected whole; no partial coloring is produced.
var ErrNoVertices = errors.New("coloring: graph has no vertices")

// Result holds the outcome of a full coloring pass:
//   - Graph: the colored snapshot (input structure, every Color assigned).
//   - ColorCount: 1 + the largest assigned color; always ≥ 1 and ≤ VertexCount.
type Result struct {
	Graph      core.Graph
	ColorCount int
}

// Step is one frame of the step-by-step replay:
//   - Graph: the full snapshot after this step's vertex was colored.
//   - VertexID: the id of the vertex colored at this step, or
//     core.NoSelection for the initial fully-uncolored frame.
//
// Tagging each step with its vertex id is deliberate: consumers never need
// to diff consecutive snapshots to find out what changed.
type Step struct {
	Graph    core.Graph
	VertexID int
}
