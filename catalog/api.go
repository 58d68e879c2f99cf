// Package catalog — name-keyed dispatch over the example generators.
//
// Design contract (strict):
//   - Generators are pure and parameterless per name: fixed sizes, fixed
//     edge lists, ids 0..n-1, documented stable emission order.
//   - Load never fails: recognized names dispatch, anything else returns an
//     empty graph (permissive default for interactive seed pickers).
//   - Determinism: same name and options ⇒ identical snapshot.
package catalog

import (
	"github.com/tintlab/tint/core"
)

// Recognized example names for Load.
const (
	NameCycle     = "cycle"
	NameComplete  = "complete"
	NameBipartite = "bipartite"
	NamePetersen  = "petersen"
)

// Load returns the named example graph, or an empty graph for an
// unrecognized name. Names are matched exactly (lower case).
func Load(name string, opts ...Option) core.Graph {
	switch name {
	case NameCycle:
		return Cycle(opts...)
	case NameComplete:
		return Complete(opts...)
	case NameBipartite:
		return Bipartite(opts...)
	case NamePetersen:
		return Petersen(opts...)
	default:
		return core.NewGraph()
	}
}
