// Package catalog — functional options and the shared seeding helper.
package catalog

import (
	"math"

	"github.com/tintlab/tint/core"
)

// Layout maps a vertex index (of n total) to its (x, y) position.
type Layout func(i, n int) (x, y float64)

// Option configures a catalog generator.
type Option func(*Options)

// Options holds resolved generator parameters.
type Options struct {
	// Layout positions the generated vertices. Defaults to the origin for
	// every vertex — structure is what the catalog guarantees, geometry is
	// the caller's concern.
	Layout Layout
}

// DefaultOptions returns options with the origin layout.
func DefaultOptions() Options {
	return Options{Layout: func(int, int) (float64, float64) { return 0, 0 }}
}

// WithLayout positions generated vertices with the given function.
// A nil layout is ignored.
func WithLayout(l Layout) Option {
	return func(o *Options) {
		if l != nil {
			o.Layout = l
		}
	}
}

// RingLayout returns a Layout that spaces vertices evenly on a circle of
// the given center and radius, index 0 at the top, clockwise.
func RingLayout(cx, cy, r float64) Layout {
	return func(i, n int) (float64, float64) {
		angle := 2*math.Pi*float64(i)/float64(n) - math.Pi/2

		return cx + r*math.Cos(angle), cy + r*math.Sin(angle)
	}
}

// resolve folds opts over the defaults.
func resolve(opts ...Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// seed builds a snapshot with n vertices, ids 0..n-1 in order, positioned
// by the resolved layout.
func seed(n int, cfg Options) core.Graph {
	g := core.NewGraph()
	for i := 0; i < n; i++ {
		x, y := cfg.Layout(i, n)
		g, _ = g.AddVertex(x, y)
	}

	return g
}
