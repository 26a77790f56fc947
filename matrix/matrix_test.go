// SPDX-License-Identifier: MIT

package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/codeclust/core"
	"github.com/katalvlaran/codeclust/matrix"
)

func v(id string) core.Vertex { return core.Vertex{ID: id} }

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

func TestOperators_NilAndEmpty(t *testing.T) {
	_, _, err := matrix.Adjacency(nil)
	assert.ErrorIs(t, err, matrix.ErrGraphNil)
	_, _, err = matrix.Degree(nil)
	assert.ErrorIs(t, err, matrix.ErrGraphNil)
	_, _, err = matrix.Laplacian(nil)
	assert.ErrorIs(t, err, matrix.ErrGraphNil)

	g := core.NewGraph()
	_, _, err = matrix.Adjacency(g)
	assert.ErrorIs(t, err, matrix.ErrEmptyGraph)
	_, _, err = matrix.Laplacian(g)
	assert.ErrorIs(t, err, matrix.ErrEmptyGraph)
}

func TestAdjacency_WeightedPath(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.Connect(v("B"), v("A"), 2))
	require.NoError(t, g.Connect(v("B"), v("C"), 0.5))

	a, idx, err := matrix.Adjacency(g)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C"}, idx.IDs)

	want := mat.NewDense(3, 3, []float64{
		0, 2, 0,
		2, 0, 0.5,
		0, 0.5, 0,
	})
	assert.True(t, mat.Equal(want, a))
}

func TestAdjacency_Directed(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	require.NoError(t, g.Connect(v("A"), v("B"), 3))

	a, _, err := matrix.Adjacency(g)
	require.NoError(t, err)
	assert.Equal(t, 3.0, a.At(0, 1))
	assert.Equal(t, 0.0, a.At(1, 0))
	assert.False(t, matrix.IsSymmetric(a, 0))
}

func TestLaplacian_DegreeMinusAdjacency(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.Connect(v("A"), v("B"), 2))
	require.NoError(t, g.Connect(v("B"), v("C"), 3))
	require.NoError(t, g.AddVertex(v("Z")))

	a, _, err := matrix.Adjacency(g)
	require.NoError(t, err)
	d, _, err := matrix.Degree(g)
	require.NoError(t, err)
	l, idx, err := matrix.Laplacian(g)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C", "Z"}, idx.IDs)

	var want mat.Dense
	want.Sub(d, a)
	assert.True(t, mat.Equal(&want, l))

	assert.Equal(t, 5.0, d.At(1, 1))
	assert.Equal(t, 0.0, d.At(3, 3), "isolated vertex has zero degree")
	assert.True(t, matrix.IsSymmetric(l, matrix.DefaultSymmetryEps))

	n, _ := l.Dims()
	for i := 0; i < n; i++ {
		assert.InDelta(t, 0, mat.Sum(l.RowView(i)), 1e-12, "row %d", i)
	}
}

func TestSymmetric(t *testing.T) {
	_, err := matrix.Symmetric(nil, 0)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)

	_, err = matrix.Symmetric(mat.NewDense(2, 3, nil), 0)
	assert.ErrorIs(t, err, matrix.ErrNonSquare)

	_, err = matrix.Symmetric(mat.NewDense(2, 2, []float64{1, 2, 3, 4}), 1e-9)
	assert.ErrorIs(t, err, matrix.ErrAsymmetry)

	s, err := matrix.Symmetric(mat.NewDense(2, 2, []float64{1, 2, 2 + 1e-13, 4}), 1e-12)
	require.NoError(t, err)
	assert.Equal(t, 2.0, s.At(1, 0))
}

func TestGonumSolver_TwoTriangles(t *testing.T) {
	l, _, err := matrix.Laplacian(twoTriangles(t))
	require.NoError(t, err)
	sym, err := matrix.Symmetric(l, matrix.DefaultSymmetryEps)
	require.NoError(t, err)

	pairs, err := matrix.GonumSolver{}.EigenSym(sym)
	require.NoError(t, err)
	require.Len(t, pairs, 6)

	// spectrum of two disjoint K3 Laplacians: {0,0,3,3,3,3}
	want := []float64{0, 0, 3, 3, 3, 3}
	for i, p := range pairs {
		assert.InDelta(t, want[i], p.Value, 1e-9)
		assert.Len(t, p.Vector, 6)
		assert.InDelta(t, 1, mat.Norm(mat.NewVecDense(6, p.Vector), 2), 1e-9)
	}

	zero, nonzero := matrix.SplitZero(pairs)
	assert.Len(t, zero, 2, "one zero eigenvalue per component")
	assert.Len(t, nonzero, 4)

	_, err = matrix.GonumSolver{}.EigenSym(nil)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestOrderOfMagnitude(t *testing.T) {
	cases := []struct {
		x    float64
		want int
	}{
		{0, 0},
		{1, 0},
		{9.99, 0},
		{12, 1},
		{-250, 2},
		{0.05, -2},
		{3e-11, -11},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, matrix.OrderOfMagnitude(tc.x), "x=%g", tc.x)
	}

	assert.True(t, matrix.IsNumericallyZero(0))
	assert.True(t, matrix.IsNumericallyZero(-4e-16))
	assert.True(t, matrix.IsNumericallyZero(1e-10))
	assert.False(t, matrix.IsNumericallyZero(1e-9))
	assert.False(t, matrix.IsNumericallyZero(math.Pi))
}

func TestSortDescending_Stable(t *testing.T) {
	pairs := []matrix.Eigenpair{
		{Value: 1, Vector: []float64{1}},
		{Value: 3, Vector: []float64{2}},
		{Value: 1, Vector: []float64{3}},
		{Value: 2, Vector: []float64{4}},
	}
	matrix.SortDescending(pairs)

	var got []float64
	for _, p := range pairs {
		got = append(got, p.Vector[0])
	}
	assert.Equal(t, []float64{2, 4, 1, 3}, got)
}

func TestStackRowsAndTranspose(t *testing.T) {
	_, err := matrix.StackRows(nil)
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.StackRows([][]float64{{1, 2}, {3}})
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	m, err := matrix.StackRows([][]float64{{1, 2, 3}, {4, 5, 6}})
	require.NoError(t, err)
	tr, err := matrix.Transpose(m)
	require.NoError(t, err)

	r, c := tr.Dims()
	assert.Equal(t, 3, r)
	assert.Equal(t, 2, c)
	assert.Equal(t, 4.0, tr.At(0, 1))
	assert.Equal(t, []float64{3, 6}, mat.Row(nil, 2, tr))

	_, err = matrix.Transpose(nil)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)
}
