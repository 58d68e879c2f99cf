// Package editor defines the Editor value, its mode enumeration, and the
// tunable options for pointer-driven graph editing.
package editor

import (
	"github.com/tintlab/tint/core"
)

// DefaultHitRadius is the pointer hit-test radius, in the same units as
// vertex coordinates.
const DefaultHitRadius = 15.0

// NoVertex marks "no vertex" for the transient drag and hover ids.
// It equals core.NoSelection; valid vertex ids are always ≥ 0.
const NoVertex = core.NoSelection

// Mode enumerates the selection states of the editing state machine.
// Dragging is intentionally not a Mode: it is orthogonal transient state
// that coexists with either mode (see package doc).
type Mode int

const (
	// ModeIdle means no vertex is selected.
	ModeIdle Mode = iota
	// ModeSelected means exactly one vertex is selected
	// (its id lives in the graph snapshot, core.Graph.Selected).
	ModeSelected
)

// Option configures an Editor at construction time.
type Option func(*Options)

// Options holds tunable editing parameters.
type Options struct {
	// HitRadius is the maximum pointer-to-vertex distance that still counts
	// as a hit. Values ≤ 0 fall back to DefaultHitRadius.
	HitRadius float64
}

// DefaultOptions returns the standard editing parameters.
func DefaultOptions() Options {
	return Options{HitRadius: DefaultHitRadius}
}

// WithHitRadius overrides the hit-test radius. Non-positive values are
// ignored in favor of the default.
func WithHitRadius(r float64) Option {
	return func(o *Options) {
		if r > 0 {
			o.HitRadius = r
		}
	}
}

// Editor is one immutable value of the editing state machine: the current
// graph snapshot plus transient drag and hover ids. Every event method
// returns a new Editor; treat it like core.Graph — single owner, handed
// from one event's output to the next event's input.
type Editor struct {
	// Graph is the current snapshot, selection included.
	Graph core.Graph

	radius  float64
	dragID  int
	hoverID int
}

// New returns an Editor over an empty graph.
func New(opts ...Option) Editor {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return Editor{
		Graph:   core.NewGraph(),
		radius:  o.HitRadius,
		dragID:  NoVertex,
		hoverID: NoVertex,
	}
}

// Load replaces the graph snapshot wholesale (catalog seeding, clears,
// colored results). Drag and hover reset; the hit radius is kept.
func (e Editor) Load(g core.Graph) Editor {
	e.Graph = g
	e.dragID = NoVertex
	e.hoverID = NoVertex

	return e
}

// Mode reports whether a vertex is currently selected.
func (e Editor) Mode() Mode {
	if e.Graph.Selected == core.NoSelection {
		return ModeIdle
	}

	return ModeSelected
}

// Dragging returns the id of the vertex being dragged, or NoVertex.
func (e Editor) Dragging() int { return e.dragID }

// Hovered returns the id of the vertex under the pointer, or NoVertex.
// Hover is presentation-only state; it never affects structure.
func (e Editor) Hovered() int { return e.hoverID }
