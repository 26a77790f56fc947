// SPDX-License-Identifier: MIT
//
// File: spectral.go
// Role: Laplacian eigendecomposition → eigenvector embedding → k-means.
// Determinism:
//   - Vertex order is core.Graph.VertexIDs(); eigenpair ties keep solver order.
//   - k-means is random unless the caller passes kmeans.WithSource.

package spectral

import (
	"context"
	"time"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/codeclust/core"
	"github.com/katalvlaran/codeclust/dfs"
	"github.com/katalvlaran/codeclust/kmeans"
	"github.com/katalvlaran/codeclust/matrix"
)

var (
	// ErrGraphNil is returned when a nil graph is passed.
	ErrGraphNil = errors.New("spectral: graph is nil")

	// ErrEmptyGraph is returned when the graph has no vertices.
	ErrEmptyGraph = errors.New("spectral: graph has no vertices")

	// ErrDirectedGraph is returned for directed graphs; the Laplacian must be symmetric.
	ErrDirectedGraph = errors.New("spectral: directed graphs are not supported")

	// ErrDegenerateSpectrum is returned by Embed when every eigenvalue is
	// numerically zero (for example, a graph without edges).
	ErrDegenerateSpectrum = errors.New("spectral: no nonzero eigenvalues")
)

// Option configures a Clusterer.
type Option func(*Clusterer)

// WithSolver replaces the default gonum eigensolver.
func WithSolver(s matrix.Eigensolver) Option {
	return func(c *Clusterer) {
		if s != nil {
			c.solver = s
		}
	}
}

// WithKMeansOptions forwards options to every k-means run (seed, iterations).
func WithKMeansOptions(opts ...kmeans.Option) Option {
	return func(c *Clusterer) { c.kmOpts = append(c.kmOpts, opts...) }
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *zap.Logger) Option {
	return func(c *Clusterer) {
		if l != nil {
			c.logger = l
		}
	}
}

// Clusterer partitions a weighted graph into ceil(order/2) clusters.
// It holds no per-run state and is safe for concurrent use.
type Clusterer struct {
	solver matrix.Eigensolver
	kmOpts []kmeans.Option
	logger *zap.Logger
}

// New returns a Clusterer with the gonum solver and a no-op logger.
func New(opts ...Option) *Clusterer {
	c := &Clusterer{
		solver: matrix.GonumSolver{},
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}

	return c
}

// ClusterCount returns the number of clusters produced for a graph of the given order.
func ClusterCount(order int) int {
	return (order + 1) / 2
}

// Cluster returns the vertex-id partition of g.
//
// Implementation:
//   - Stage 1: L = D − A, checked symmetric.
//   - Stage 2: Full eigendecomposition through the configured solver.
//   - Stage 3: Drop numerically-zero eigenvalues, sort the rest by eigenvalue
//     descending, keep the first k = ceil(order/2) (all of them if fewer).
//   - Stage 4: Stack the kept eigenvectors as rows and transpose, giving one
//     row per vertex.
//   - Stage 5: k-means with k clusters; row indices map back through the
//     Laplacian's vertex index.
//
// A spectrum with no nonzero eigenvalue has no embedding; Cluster then
// returns the connected components of g. For a graph without edges that is
// one singleton per vertex, so order 1 yields the single cluster {v}.
//
// Errors:
//   - ErrGraphNil, ErrEmptyGraph, ErrDirectedGraph.
//   - Wrapped solver or k-means errors; ctx.Err() between stages.
//
// Complexity: O(V³) for the eigendecomposition plus O(100·V·k²) for k-means.
func (c *Clusterer) Cluster(ctx context.Context, g *core.Graph) ([][]string, error) {
	emb, err := c.Embed(ctx, g)
	if errors.Is(err, ErrDegenerateSpectrum) {
		comps, cerr := dfs.ConnectedComponents(g)
		if cerr != nil {
			return nil, errors.Wrap(cerr, "spectral: components")
		}
		c.logger.Debug("degenerate spectrum, clustering by components",
			zap.Int("components", len(comps)))
		return comps, nil
	}
	if err != nil {
		return nil, err
	}
	if err = ctx.Err(); err != nil {
		return nil, err
	}

	start := time.Now()
	parts, err := kmeans.Cluster(emb.Matrix, emb.K, c.kmOpts...)
	if err != nil {
		return nil, errors.Wrap(err, "spectral: k-means")
	}
	c.logger.Debug("k-means done",
		zap.Int("k", emb.K),
		zap.Duration("elapsed", time.Since(start)))

	clusters := make([][]string, len(parts))
	for i, rows := range parts {
		ids := make([]string, len(rows))
		for j, r := range rows {
			ids[j] = emb.Index.IDs[r]
		}
		clusters[i] = ids
	}

	return clusters, nil
}

// Embedding is the per-vertex spectral coordinate matrix.
type Embedding struct {
	Matrix *mat.Dense         // n×len(Pairs)
	K      int                // cluster count, ceil(order/2)
	Index  matrix.Index       // row i ↔ Index.IDs[i]
	Pairs  []matrix.Eigenpair // kept eigenpairs, eigenvalue descending
}

// Embed runs stages 1–4 of Cluster and returns the embedding without
// clustering it.
func (c *Clusterer) Embed(ctx context.Context, g *core.Graph) (*Embedding, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if g.Directed() {
		return nil, ErrDirectedGraph
	}
	if g.Order() == 0 {
		return nil, ErrEmptyGraph
	}

	lap, idx, err := matrix.Laplacian(g)
	if err != nil {
		if errors.Is(err, matrix.ErrEmptyGraph) {
			return nil, ErrEmptyGraph
		}
		return nil, errors.Wrap(err, "spectral: laplacian")
	}
	sym, err := matrix.Symmetric(lap, matrix.DefaultSymmetryEps)
	if err != nil {
		return nil, errors.Wrap(err, "spectral: laplacian")
	}
	if err = ctx.Err(); err != nil {
		return nil, err
	}

	start := time.Now()
	pairs, err := c.solver.EigenSym(sym)
	if err != nil {
		return nil, errors.Wrap(err, "spectral: eigendecomposition")
	}
	c.logger.Debug("eigendecomposition done",
		zap.Int("order", len(idx.IDs)),
		zap.Duration("elapsed", time.Since(start)))

	zero, kept := matrix.SplitZero(pairs)
	if len(kept) == 0 {
		return nil, ErrDegenerateSpectrum
	}
	matrix.SortDescending(kept)

	k := ClusterCount(len(idx.IDs))
	if len(kept) > k {
		kept = kept[:k]
	}
	c.logger.Debug("eigenpairs selected",
		zap.Int("zero", len(zero)),
		zap.Int("kept", len(kept)),
		zap.Int("k", k))

	rows := make([][]float64, len(kept))
	for i, p := range kept {
		rows[i] = p.Vector
	}
	stacked, err := matrix.StackRows(rows)
	if err != nil {
		return nil, errors.Wrap(err, "spectral: embedding")
	}
	emb, err := matrix.Transpose(stacked)
	if err != nil {
		return nil, errors.Wrap(err, "spectral: embedding")
	}
	if n, _ := emb.Dims(); n != len(idx.IDs) {
		return nil, errors.Wrapf(matrix.ErrDimensionMismatch,
			"spectral: solver returned vectors of length %d for order %d", n, len(idx.IDs))
	}

	return &Embedding{Matrix: emb, K: k, Index: idx, Pairs: kept}, nil
}
