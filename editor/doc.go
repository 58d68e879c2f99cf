// Package editor turns abstract pointer events into graph mutations: an
// explicit editing state machine over core.Graph snapshots.
//
// What
//
//   - PointerDown(x, y) resolves the point to "hit vertex v" or "hit empty
//     space" and applies one transition:
//
//     state      | hit          | action                                  | next
//     -----------+--------------+-----------------------------------------+------
//     Idle       | empty space  | add vertex at (x,y)                     | Idle
//     Idle       | vertex v     | select v, begin drag on v               | Selected(v)
//     Selected(s)| same vertex  | deselect                                | Idle
//     Selected(s)| vertex v≠s   | add edge s—v (no-op if adjacent), deselect, begin drag on v | Idle
//     Selected(s)| empty space  | deselect                                | Idle
//
//   - PointerMove(x, y) drags the dragged vertex, if any, and always
//     refreshes the hovered vertex (presentation highlighting only).
//   - PointerUp / PointerLeave end the drag; Leave also clears hover.
//
// Dragging and selection are deliberately orthogonal: selection is part of
// the graph snapshot (core.Graph.Selected), while the drag id is transient
// editor state. The same click that selects a vertex also begins dragging
// it, so a vertex can be selected and dragged at once — ending the drag
// never changes the selection.
//
// Hit testing picks the nearest vertex within a fixed radius
// (DefaultHitRadius, overridable with WithHitRadius). Ties among exactly
// overlapping vertices go to the most recently added one — the scan runs
// from the last vertex to the first.
//
// The Editor itself is a value: every event method returns a new Editor and
// leaves the receiver untouched, the same snapshot discipline core uses.
// Nothing here blocks, suspends, or errs — every invalid intent is a
// documented no-op, matching core's permissive mutation policy.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Hit test: O(V)
//   - Any pointer event: O(V + E) (snapshot copy bound)
//
// Usage
//
//	ed := editor.New()
//	ed = ed.PointerDown(40, 40)  // empty space → new vertex 0
//	ed = ed.PointerDown(90, 40)  // empty space → new vertex 1
//	ed = ed.PointerDown(40, 40)  // hit 0 → selected, dragging
//	ed = ed.PointerUp()          // drag ends, 0 stays selected
//	ed = ed.PointerDown(90, 40)  // hit 1 → edge 0—1, deselected
package editor
