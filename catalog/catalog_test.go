package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tintlab/tint/catalog"
	"github.com/tintlab/tint/coloring"
	"github.com/tintlab/tint/core"
)

// ids returns the vertex ids in sequence order.
func ids(g core.Graph) []int {
	out := make([]int, 0, len(g.Vertices))
	for _, v := range g.Vertices {
		out = append(out, v.ID)
	}

	return out
}

// TestCycle_Structure: 5 vertices, ring edges, dense ids.
func TestCycle_Structure(t *testing.T) {
	g := catalog.Cycle()

	assert.Equal(t, []int{0, 1, 2, 3, 4}, ids(g))
	require.Equal(t, 5, g.EdgeCount())
	for i := 0; i < 5; i++ {
		assert.True(t, g.HasEdge(i, (i+1)%5), "ring edge %d—%d missing", i, (i+1)%5)
	}
}

// TestComplete_Structure: K4, every pair connected.
func TestComplete_Structure(t *testing.T) {
	g := catalog.Complete()

	assert.Equal(t, []int{0, 1, 2, 3}, ids(g))
	require.Equal(t, 6, g.EdgeCount())
	for i := 0; i < 4; i++ {
		for j := i + 1; j < 4; j++ {
			assert.True(t, g.HasEdge(i, j), "pair %d—%d missing", i, j)
		}
	}
}

// TestBipartite_Structure: exactly the sparse 6-edge pattern — in
// particular the three absent cross pairs stay absent.
func TestBipartite_Structure(t *testing.T) {
	g := catalog.Bipartite()

	assert.Equal(t, []int{0, 1, 2, 3, 4, 5}, ids(g))
	require.Equal(t, 6, g.EdgeCount())
	for _, e := range [][2]int{{0, 3}, {0, 4}, {1, 3}, {1, 5}, {2, 4}, {2, 5}} {
		assert.True(t, g.HasEdge(e[0], e[1]), "edge %d—%d missing", e[0], e[1])
	}
	// Sparse by contract, not K{3,3}.
	for _, e := range [][2]int{{0, 5}, {1, 4}, {2, 3}} {
		assert.False(t, g.HasEdge(e[0], e[1]), "edge %d—%d must stay absent", e[0], e[1])
	}
	// No edges within a partition.
	for _, e := range [][2]int{{0, 1}, {1, 2}, {3, 4}, {4, 5}} {
		assert.False(t, g.HasEdge(e[0], e[1]))
	}
}

// TestPetersen_Structure: outer ring, spokes, inner star; 3-regular.
func TestPetersen_Structure(t *testing.T) {
	g := catalog.Petersen()

	assert.Equal(t, 10, g.VertexCount())
	require.Equal(t, 15, g.EdgeCount())
	for i := 0; i < 5; i++ {
		assert.True(t, g.HasEdge(i, (i+1)%5), "outer ring edge %d", i)
		assert.True(t, g.HasEdge(i, i+5), "spoke %d", i)
		assert.True(t, g.HasEdge(5+i, 5+(i+2)%5), "inner star edge %d", i)
	}

	// Every vertex has degree 3.
	adj := g.AdjacencyList()
	for id, nbrs := range adj {
		assert.Len(t, nbrs, 3, "vertex %d degree", id)
	}
}

// TestLoad_Dispatch maps names to generators and unknown names to an empty
// graph — never a failure.
func TestLoad_Dispatch(t *testing.T) {
	assert.Equal(t, 5, catalog.Load(catalog.NameCycle).VertexCount())
	assert.Equal(t, 4, catalog.Load(catalog.NameComplete).VertexCount())
	assert.Equal(t, 6, catalog.Load(catalog.NameBipartite).VertexCount())
	assert.Equal(t, 10, catalog.Load(catalog.NamePetersen).VertexCount())

	empty := catalog.Load("moebius")
	assert.Equal(t, 0, empty.VertexCount())
	assert.Equal(t, 0, empty.EdgeCount())
}

// TestLoad_Deterministic: same name, same options, identical snapshot.
func TestLoad_Deterministic(t *testing.T) {
	first := catalog.Load(catalog.NamePetersen)
	second := catalog.Load(catalog.NamePetersen)
	assert.Equal(t, first, second)
}

// TestWithLayout positions vertices with the supplied function; the default
// leaves everything at the origin.
func TestWithLayout(t *testing.T) {
	plain := catalog.Cycle()
	for _, v := range plain.Vertices {
		assert.Zero(t, v.X)
		assert.Zero(t, v.Y)
	}

	laid := catalog.Cycle(catalog.WithLayout(func(i, n int) (float64, float64) {
		return float64(i * 10), float64(n)
	}))
	for i, v := range laid.Vertices {
		assert.Equal(t, float64(i*10), v.X)
		assert.Equal(t, 5.0, v.Y)
	}

	// RingLayout keeps every vertex at distance r from the center.
	ring := catalog.Cycle(catalog.WithLayout(catalog.RingLayout(100, 100, 50)))
	for _, v := range ring.Vertices {
		dx, dy := v.X-100, v.Y-100
		assert.InDelta(t, 2500, dx*dx+dy*dy, 1e-9)
	}
}

// TestCatalog_GreedyColorCounts: the classic counts under id order —
// odd cycle 3, complete 4, sparse bipartite 2, Petersen 3.
func TestCatalog_GreedyColorCounts(t *testing.T) {
	cases := []struct {
		name string
		want int
	}{
		{catalog.NameCycle, 3},
		{catalog.NameComplete, 4},
		{catalog.NameBipartite, 2},
		{catalog.NamePetersen, 3},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res, err := coloring.ColorAll(catalog.Load(tc.name))
			require.NoError(t, err)
			assert.Equal(t, tc.want, res.ColorCount)
			for _, e := range res.Graph.Edges {
				src, _ := res.Graph.VertexByID(e.Source)
				dst, _ := res.Graph.VertexByID(e.Target)
				assert.NotEqual(t, src.Color, dst.Color)
			}
		})
	}
}
