// Package editor implements the pointer-event transitions over core.Graph
// snapshots. See doc.go for the full transition table.
package editor

import (
	"github.com/tintlab/tint/core"
)

// PointerDown applies one transition of the editing state machine at (x, y)
// and returns the resulting Editor.
//
// With nothing selected: empty space creates a vertex; a hit selects it and
// begins dragging it. With a vertex s selected: clicking s again deselects;
// clicking a different vertex v connects s—v (a no-op when already adjacent),
// deselects, and begins dragging v; empty space deselects.
func (e Editor) PointerDown(x, y float64) Editor {
	hit, found := e.hitTest(x, y)

	if e.Graph.Selected == core.NoSelection {
		if !found {
			e.Graph, _ = e.Graph.AddVertex(x, y)
			return e
		}
		e.Graph = e.Graph.Select(hit)
		e.dragID = hit

		return e
	}

	selected := e.Graph.Selected
	switch {
	case !found, hit == selected:
		e.Graph = e.Graph.Deselect()
	default:
		// AddEdge already treats an adjacent pair as a no-op.
		e.Graph = e.Graph.AddEdge(selected, hit).Deselect()
		e.dragID = hit
	}

	return e
}

// PointerMove repositions the dragged vertex, if a drag is active, and
// always refreshes the hovered vertex. Hover tracking is independent of
// drag state and exists purely for presentation highlighting.
func (e Editor) PointerMove(x, y float64) Editor {
	if e.dragID != NoVertex {
		e.Graph = e.Graph.MoveVertex(e.dragID, x, y)
	}
	if hit, found := e.hitTest(x, y); found {
		e.hoverID = hit
	} else {
		e.hoverID = NoVertex
	}

	return e
}

// PointerUp ends the drag. Selection is untouched: a vertex selected by the
// press that started the drag stays selected after release.
func (e Editor) PointerUp() Editor {
	e.dragID = NoVertex

	return e
}

// PointerLeave ends the drag and clears hover — the pointer is gone, so
// nothing is under it.
func (e Editor) PointerLeave() Editor {
	e.dragID = NoVertex
	e.hoverID = NoVertex

	return e
}

// hitTest returns the id of the nearest vertex within the hit radius of
// (x, y), scanning last-to-first so that ties among exactly overlapping
// vertices resolve to the most recently added one.
func (e Editor) hitTest(x, y float64) (int, bool) {
	r2 := e.radius * e.radius
	bestID, bestD, found := NoVertex, r2, false

	for i := len(e.Graph.Vertices) - 1; i >= 0; i-- {
		v := e.Graph.Vertices[i]
		dx, dy := v.X-x, v.Y-y
		d2 := dx*dx + dy*dy
		if d2 > r2 {
			continue
		}
		// Strict < keeps the first (most recent) vertex on exact ties.
		if !found || d2 < bestD {
			bestID, bestD, found = v.ID, d2, true
		}
	}

	return bestID, found
}
