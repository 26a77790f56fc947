// SPDX-License-Identifier: MIT

package spectral

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"

	"github.com/katalvlaran/codeclust/core"
	"github.com/katalvlaran/codeclust/dfs"
	"github.com/katalvlaran/codeclust/matrix"
)

// Report summarizes the structural and spectral properties of a graph.
type Report struct {
	Order              int
	EdgeCount          int
	Density            float64
	Regularity         string
	Components         int
	Connected          bool
	LaplacianSymmetric bool

	// Eigenvalues holds the Laplacian spectrum in ascending order. It is nil
	// when the Laplacian is not symmetric.
	Eigenvalues     []float64
	ZeroEigenvalues int
	ClusterCount    int
	EigenElapsed    time.Duration
}

// String renders the report as one "Key: value" line per field.
func (r *Report) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Density: %g\n", r.Density)
	fmt.Fprintf(&b, "Order: %d\n", r.Order)
	fmt.Fprintf(&b, "Edges: %d\n", r.EdgeCount)
	fmt.Fprintf(&b, "Regularity: %s\n", r.Regularity)
	if r.Connected {
		b.WriteString("Graph is connected\n")
	} else {
		b.WriteString("Graph is disconnected\n")
	}
	fmt.Fprintf(&b, "Components: %d\n", r.Components)
	fmt.Fprintf(&b, "Laplacian Matrix is symmetric: %t\n", r.LaplacianSymmetric)
	fmt.Fprintf(&b, "Zero eigenvalues: %d\n", r.ZeroEigenvalues)
	fmt.Fprintf(&b, "Clusters: %d\n", r.ClusterCount)

	return b.String()
}

// Analyze computes a Report for g.
//
// The eigendecomposition runs only when the Laplacian is symmetric, so a
// directed graph yields a report without spectrum. For an undirected graph
// ZeroEigenvalues equals Components.
//
// Errors:
//   - ErrGraphNil, ErrEmptyGraph, wrapped solver errors, ctx.Err().
//
// Complexity: O(V³).
func (c *Clusterer) Analyze(ctx context.Context, g *core.Graph) (*Report, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if g.Order() == 0 {
		return nil, ErrEmptyGraph
	}

	comps, err := dfs.ConnectedComponents(g)
	if err != nil {
		return nil, errors.Wrap(err, "spectral: components")
	}
	r := &Report{
		Order:        g.Order(),
		EdgeCount:    g.EdgeCount(),
		Density:      core.Density(g),
		Regularity:   core.Regularity(g),
		Components:   len(comps),
		Connected:    len(comps) == 1,
		ClusterCount: ClusterCount(g.Order()),
	}

	lap, _, err := matrix.Laplacian(g)
	if err != nil {
		return nil, errors.Wrap(err, "spectral: laplacian")
	}
	sym, err := matrix.Symmetric(lap, matrix.DefaultSymmetryEps)
	if err != nil {
		c.logger.Debug("skipping spectrum", zap.Error(err))
		return r, nil
	}
	r.LaplacianSymmetric = true
	if err = ctx.Err(); err != nil {
		return nil, err
	}

	start := time.Now()
	pairs, err := c.solver.EigenSym(sym)
	if err != nil {
		return nil, errors.Wrap(err, "spectral: eigendecomposition")
	}
	r.EigenElapsed = time.Since(start)

	r.Eigenvalues = make([]float64, len(pairs))
	for i, p := range pairs {
		r.Eigenvalues[i] = p.Value
		if matrix.IsNumericallyZero(p.Value) {
			r.ZeroEigenvalues++
		}
	}
	c.logger.Debug("graph analyzed",
		zap.Int("order", r.Order),
		zap.Int("components", r.Components),
		zap.Int("zero_eigenvalues", r.ZeroEigenvalues),
		zap.Duration("eigen_elapsed", r.EigenElapsed))

	return r, nil
}
