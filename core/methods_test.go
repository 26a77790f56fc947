// SPDX-License-Identifier: MIT
// Package core_test verifies core.Graph method-level contracts.

package core_test

import (
	"math"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/codeclust/core"
)

func v(id string) core.Vertex { return core.Vertex{ID: id} }

// twoTriangles builds {A,B,C} and {D,E,F} as disjoint unit-weight 3-cliques.
func twoTriangles(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for _, tri := range [][3]string{{"A", "B", "C"}, {"D", "E", "F"}} {
		require.NoError(t, g.Connect(v(tri[0]), v(tri[1]), 1))
		require.NoError(t, g.Connect(v(tri[1]), v(tri[2]), 1))
		require.NoError(t, g.Connect(v(tri[0]), v(tri[2]), 1))
	}

	return g
}

func TestGraph_AddVertex(t *testing.T) {
	g := core.NewGraph()

	assert.ErrorIs(t, g.AddVertex(core.Vertex{}), core.ErrEmptyVertexID)

	require.NoError(t, g.AddVertex(core.Vertex{ID: "A", Payload: "first"}))
	require.NoError(t, g.AddVertex(core.Vertex{ID: "A", Payload: "second"}))
	assert.Equal(t, 1, g.Order())

	got, err := g.Vertex("A")
	require.NoError(t, err)
	assert.Equal(t, "second", got.Payload, "payload is last-write-wins")

	_, err = g.Vertex("missing")
	assert.ErrorIs(t, err, core.ErrVertexNotFound)
	_, err = g.Vertex("")
	assert.ErrorIs(t, err, core.ErrEmptyVertexID)
	assert.False(t, g.HasVertex(""))
}

func TestGraph_ConnectPreconditions(t *testing.T) {
	g := core.NewGraph()

	assert.ErrorIs(t, g.Connect(v("A"), v("A"), 1), core.ErrSelfLoop)
	assert.ErrorIs(t, g.Connect(v(""), v("A"), 1), core.ErrEmptyVertexID)
	assert.ErrorIs(t, g.Connect(v("A"), v("B"), math.NaN()), core.ErrInvalidWeight)
	assert.ErrorIs(t, g.Connect(v("A"), v("B"), math.Inf(1)), core.ErrInvalidWeight)
	assert.Zero(t, g.Order(), "failed connects must not add vertices")
	assert.Zero(t, g.EdgeCount())
}

func TestGraph_ConnectKeepsExistingPayload(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddVertex(core.Vertex{ID: "A", Payload: 1}))
	require.NoError(t, g.Connect(core.Vertex{ID: "A", Payload: 2}, core.Vertex{ID: "B", Payload: 3}, 1))

	a, err := g.Vertex("A")
	require.NoError(t, err)
	assert.Equal(t, 1, a.Payload)
	b, err := g.Vertex("B")
	require.NoError(t, err)
	assert.Equal(t, 3, b.Payload)
}

func TestGraph_UndirectedIsSimple(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.Connect(v("B"), v("A"), 2))
	require.NoError(t, g.Connect(v("A"), v("B"), 5))

	assert.Equal(t, 1, g.EdgeCount(), "reconnecting overwrites, never a multigraph")
	e, ok := g.Edge("B", "A")
	require.True(t, ok)
	assert.Equal(t, 5.0, e.Weight)
	assert.Equal(t, core.EdgeKey{From: "A", To: "B"}, e.Key(false))
	assert.True(t, g.AreConnected("A", "B"))
	assert.True(t, g.AreConnected("B", "A"))

	_, ok = g.Edge("A", "A")
	assert.False(t, ok)
}

func TestGraph_DirectedKeysByOrientation(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	require.True(t, g.Directed())
	require.NoError(t, g.Connect(v("A"), v("B"), 1))
	require.NoError(t, g.Connect(v("B"), v("A"), 3))

	assert.Equal(t, 2, g.EdgeCount())
	ab, ok := g.Edge("A", "B")
	require.True(t, ok)
	assert.Equal(t, 1.0, ab.Weight)
	ba, ok := g.Edge("B", "A")
	require.True(t, ok)
	assert.Equal(t, 3.0, ba.Weight)

	assert.Equal(t, core.EdgeKey{From: "B", To: "A"}, ba.Key(true))

	// both directions contribute to the weighted degree
	d, err := g.Degree("A")
	require.NoError(t, err)
	assert.Equal(t, 4.0, d)
}

// IDs built from paths and line ranges contain the separator of
// EdgeKey.String; distinct pairs must stay distinct edges.
func TestGraph_HyphenatedIDsStayDistinct(t *testing.T) {
	for _, directed := range []bool{false, true} {
		g := core.NewGraph(core.WithDirected(directed))
		require.NoError(t, g.Connect(v("a-b"), v("c"), 1))
		require.NoError(t, g.Connect(v("a"), v("b-c"), 5))

		assert.Equal(t, 4, g.Order())
		assert.Equal(t, 2, g.EdgeCount(), "directed=%v", directed)

		e, ok := g.Edge("a-b", "c")
		require.True(t, ok)
		assert.Equal(t, core.Edge{From: "a-b", To: "c", Weight: 1}, e)
		e, ok = g.Edge("a", "b-c")
		require.True(t, ok)
		assert.Equal(t, 5.0, e.Weight)
		assert.False(t, g.AreConnected("a", "c"))

		for id, want := range map[string]float64{"a-b": 1, "c": 1, "a": 5, "b-c": 5} {
			d, err := g.Degree(id)
			require.NoError(t, err)
			assert.Equal(t, want, d, "degree(%s)", id)
		}

		edges := g.Edges()
		require.Len(t, edges, 2)
		assert.Equal(t, "a", edges[0].From)
		assert.Equal(t, "a-b", edges[1].From)
	}
}

func TestGraph_DegreeAndNeighbors(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.Connect(v("A"), v("B"), 0.5))
	require.NoError(t, g.Connect(v("A"), v("C"), 2))
	require.NoError(t, g.AddVertex(v("Z")))

	d, err := g.Degree("A")
	require.NoError(t, err)
	assert.Equal(t, 2.5, d, "degree sums weights, not edge count")

	nbs, err := g.Neighbors("A")
	require.NoError(t, err)
	assert.Equal(t, []string{"B", "C"}, nbs)

	nbs, err = g.Neighbors("Z")
	require.NoError(t, err)
	assert.Empty(t, nbs)

	_, err = g.Degree("missing")
	assert.ErrorIs(t, err, core.ErrVertexNotFound)
	_, err = g.Neighbors("")
	assert.ErrorIs(t, err, core.ErrEmptyVertexID)
}

func TestGraph_StableIteration(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.Connect(v("c"), v("a"), 1))
	require.NoError(t, g.Connect(v("b"), v("c"), 1))
	require.NoError(t, g.AddVertex(v("d")))

	assert.Equal(t, []string{"a", "b", "c", "d"}, g.VertexIDs())
	edges := g.Edges()
	require.Len(t, edges, 2)
	assert.Equal(t, core.EdgeKey{From: "a", To: "c"}, edges[0].Key(false))
	assert.Equal(t, core.EdgeKey{From: "b", To: "c"}, edges[1].Key(false))

	vs := g.Vertices()
	require.Len(t, vs, 4)
	assert.Equal(t, "a", vs[0].ID)
}

func TestDensity(t *testing.T) {
	g := core.NewGraph()
	assert.Zero(t, core.Density(g))

	require.NoError(t, g.AddVertex(v("A")))
	assert.Zero(t, core.Density(g), "order 1 has density 0 by convention")

	require.NoError(t, g.Connect(v("A"), v("B"), 1))
	assert.Equal(t, 1.0, core.Density(g))

	tri := twoTriangles(t)
	assert.InDelta(t, 6.0/15.0, core.Density(tri), 1e-12)
}

func TestDensity_InUnitInterval(t *testing.T) {
	for n := 2; n <= 9; n++ {
		g := core.NewGraph()
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if (i*7+j*3)%4 == 0 {
					continue
				}
				require.NoError(t, g.Connect(v(strconv.Itoa(i)), v(strconv.Itoa(j)), float64(i+j)))
			}
		}
		d := core.Density(g)
		assert.GreaterOrEqual(t, d, 0.0)
		assert.LessOrEqual(t, d, 1.0)
	}
}

func TestDensity_DirectedCountsOrderedPairs(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	require.NoError(t, g.Connect(v("A"), v("B"), 1))
	assert.Equal(t, 0.5, core.Density(g))

	// every ordered pair of a 3-vertex digraph
	for _, p := range [][2]string{{"B", "A"}, {"A", "C"}, {"C", "A"}, {"B", "C"}, {"C", "B"}} {
		require.NoError(t, g.Connect(v(p[0]), v(p[1]), 1))
	}
	assert.Equal(t, 6, g.EdgeCount())
	assert.Equal(t, 1.0, core.Density(g))
}

func TestRegularity(t *testing.T) {
	assert.Equal(t, "0-regular", core.Regularity(core.NewGraph()))
	assert.Equal(t, "2-regular", core.Regularity(twoTriangles(t)))

	g := core.NewGraph()
	require.NoError(t, g.Connect(v("A"), v("B"), 1.5))
	assert.Equal(t, "1.5-regular", core.Regularity(g))

	require.NoError(t, g.Connect(v("B"), v("C"), 1))
	assert.Equal(t, core.NotRegular, core.Regularity(g))
}

func TestCutEdges(t *testing.T) {
	g := twoTriangles(t)
	require.NoError(t, g.Connect(v("C"), v("D"), 0.25))

	cut := core.CutEdges(g, []string{"A", "B", "C"})
	require.Len(t, cut, 1)
	assert.Equal(t, "C-D", cut[0].Key(false).String())
	assert.Equal(t, 0.25, core.CutWeight(g, []string{"A", "B", "C"}))

	assert.Empty(t, core.CutEdges(g, g.VertexIDs()), "whole vertex set has no boundary")
	assert.Empty(t, core.CutEdges(g, nil))
	assert.Len(t, core.CutEdges(g, []string{"A"}), 2)
}

func TestToDOT(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.Connect(v("B"), v("A"), 2))
	require.NoError(t, g.AddVertex(v("C")))

	want := "graph G {\n" +
		"  \"A\";\n  \"B\";\n  \"C\";\n" +
		"  \"B\" -- \"A\" [weight=2, label=\"2\"];\n" +
		"}\n"
	assert.Equal(t, want, core.ToDOT(g))

	dg := core.NewGraph(core.WithDirected(true))
	require.NoError(t, dg.Connect(v("A"), v("B"), 0.5))
	assert.Contains(t, core.ToDOT(dg), "digraph G {")
	assert.Contains(t, core.ToDOT(dg), "\"A\" -> \"B\" [weight=0.5")
}
