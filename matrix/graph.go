// SPDX-License-Identifier: MIT
//
// File: graph.go
// Role: Dense operators derived from a core.Graph (adjacency, degree, Laplacian).
// Determinism:
//   - Row/column i always corresponds to g.VertexIDs()[i] (ID ascending).

package matrix

import (
	"github.com/cockroachdb/errors"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/codeclust/core"
)

// Index maps vertex IDs to matrix rows in the graph's stable order.
type Index struct {
	IDs []string       // row i ↔ IDs[i]
	Pos map[string]int // inverse of IDs
}

// NewIndex snapshots the vertex order of g.
// Complexity: O(V log V).
func NewIndex(g *core.Graph) Index {
	ids := g.VertexIDs()
	pos := make(map[string]int, len(ids))
	for i, id := range ids {
		pos[id] = i
	}

	return Index{IDs: ids, Pos: pos}
}

// Adjacency returns the n×n matrix A with A[i][j] = weight of the edge between
// vertex i and vertex j (0 if none).
//
// Undirected edges fill both A[i][j] and A[j][i]; a directed edge a->b fills
// only A[a][b].
//
// Errors:
//   - ErrGraphNil, ErrEmptyGraph.
//
// Complexity: Time O(V² + E), Space O(V²).
func Adjacency(g *core.Graph) (*mat.Dense, Index, error) {
	if g == nil {
		return nil, Index{}, ErrGraphNil
	}
	idx := NewIndex(g)
	if len(idx.IDs) == 0 {
		return nil, idx, ErrEmptyGraph
	}

	return adjacencyFor(g, idx), idx, nil
}

// adjacencyFor fills A for the rows of idx. Edges whose endpoints are not in
// idx (added after the snapshot) are skipped.
func adjacencyFor(g *core.Graph, idx Index) *mat.Dense {
	n := len(idx.IDs)
	a := mat.NewDense(n, n, nil)
	directed := g.Directed()
	for _, e := range g.Edges() {
		i, okI := idx.Pos[e.From]
		j, okJ := idx.Pos[e.To]
		if !okI || !okJ {
			continue
		}
		a.Set(i, j, e.Weight)
		if !directed {
			a.Set(j, i, e.Weight)
		}
	}

	return a
}

// Degree returns the n×n diagonal matrix D with D[i][i] = weighted degree of vertex i.
//
// Errors:
//   - ErrGraphNil, ErrEmptyGraph, or a wrapped core error if a vertex
//     disappears concurrently.
//
// Complexity: Time O(V² + V·d), Space O(V²).
func Degree(g *core.Graph) (*mat.Dense, Index, error) {
	if g == nil {
		return nil, Index{}, ErrGraphNil
	}
	idx := NewIndex(g)
	if len(idx.IDs) == 0 {
		return nil, idx, ErrEmptyGraph
	}
	d, err := degreeFor(g, idx)
	if err != nil {
		return nil, idx, err
	}

	return d, idx, nil
}

// degreeFor fills the diagonal degree matrix for the rows of idx.
func degreeFor(g *core.Graph, idx Index) (*mat.Dense, error) {
	n := len(idx.IDs)
	d := mat.NewDense(n, n, nil)
	for i, id := range idx.IDs {
		deg, err := g.Degree(id)
		if err != nil {
			return nil, errors.Wrapf(err, "matrix: degree of %q", id)
		}
		d.Set(i, i, deg)
	}

	return d, nil
}

// Laplacian returns L = D − A for g, together with the row index.
//
// For an undirected graph L is symmetric, every row sums to zero, and the
// multiplicity of eigenvalue 0 equals the number of connected components.
//
// Complexity: Time O(V² + E), Space O(V²).
func Laplacian(g *core.Graph) (*mat.Dense, Index, error) {
	if g == nil {
		return nil, Index{}, ErrGraphNil
	}
	// one snapshot for both operands keeps their shapes equal
	idx := NewIndex(g)
	if len(idx.IDs) == 0 {
		return nil, idx, ErrEmptyGraph
	}
	d, err := degreeFor(g, idx)
	if err != nil {
		return nil, idx, err
	}

	var l mat.Dense
	l.Sub(d, adjacencyFor(g, idx))

	return &l, idx, nil
}
