// SPDX-License-Identifier: MIT
//
// File: kmeans.go
// Role: Lloyd's algorithm over the rows of a dense embedding.
// Policy:
//   - Centroids start as uniform [0,1) vectors, not data samples.
//   - Fixed iteration budget; no convergence early exit.
//   - Empty cluster ⇒ centroid kept from the previous iteration.

package kmeans

import (
	"math"
	"math/rand/v2"

	"github.com/cockroachdb/errors"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"
)

// DefaultIterations is the fixed number of Lloyd iterations.
const DefaultIterations = 100

var (
	// ErrNilMatrix is returned when the embedding is nil.
	ErrNilMatrix = errors.New("kmeans: embedding matrix is nil")

	// ErrClusterCount is returned when k is outside [1, n].
	ErrClusterCount = errors.New("kmeans: cluster count out of range")

	// ErrIterations is returned by Cluster when WithIterations set a value < 1.
	ErrIterations = errors.New("kmeans: iteration count must be positive")
)

// Option customizes a Cluster call.
type Option func(*options)

type options struct {
	iterations int
	src        rand.Source
}

// WithIterations overrides DefaultIterations.
func WithIterations(n int) Option {
	return func(o *options) { o.iterations = n }
}

// WithSource sets the random source used for centroid initialization.
// A nil source (the default) draws from the global generator, so runs differ.
func WithSource(src rand.Source) Option {
	return func(o *options) { o.src = src }
}

// Result is the full outcome of a run.
type Result struct {
	Clusters  [][]int     // Clusters[c] = ascending row indices assigned to c
	Labels    []int       // Labels[i] = cluster of row i
	Centroids [][]float64 // final centroid per cluster
}

// Cluster partitions the n rows of x into k index lists. Some lists may be
// empty when a random centroid never wins a point.
//
// Errors:
//   - ErrNilMatrix, ErrClusterCount, ErrIterations.
//
// Complexity: O(iterations · n · k · m).
func Cluster(x mat.Matrix, k int, opts ...Option) ([][]int, error) {
	res, err := Fit(x, k, opts...)
	if err != nil {
		return nil, err
	}

	return res.Clusters, nil
}

// Fit runs Lloyd's algorithm and returns clusters, labels and centroids.
//
// Implementation:
//   - Stage 1: Draw k centroids with coordinates from distuv.Uniform{0,1}.
//   - Stage 2: Repeat the iteration budget: assign each row to the nearest
//     centroid (strict '<', so ties keep the lowest index), then move each
//     non-empty centroid to the mean of its rows.
//   - Stage 3: Bucket row indices by final label.
//
// Complexity: O(iterations · n · k · m).
func Fit(x mat.Matrix, k int, opts ...Option) (*Result, error) {
	if x == nil {
		return nil, ErrNilMatrix
	}
	o := options{iterations: DefaultIterations}
	for _, opt := range opts {
		opt(&o)
	}
	if o.iterations < 1 {
		return nil, ErrIterations
	}

	n, m := x.Dims()
	if k < 1 || k > n {
		return nil, errors.Wrapf(ErrClusterCount, "k=%d, n=%d", k, n)
	}

	rows := make([][]float64, n)
	for i := range rows {
		rows[i] = mat.Row(nil, i, x)
	}

	uniform := distuv.Uniform{Min: 0, Max: 1, Src: o.src}
	centroids := make([][]float64, k)
	for c := range centroids {
		centroids[c] = make([]float64, m)
		for d := range centroids[c] {
			centroids[c][d] = uniform.Rand()
		}
	}

	labels := make([]int, n)
	sums := make([][]float64, k)
	for c := range sums {
		sums[c] = make([]float64, m)
	}
	counts := make([]int, k)

	for iter := 0; iter < o.iterations; iter++ {
		for i, row := range rows {
			labels[i] = nearest(row, centroids)
		}

		for c := range sums {
			floats.Scale(0, sums[c])
			counts[c] = 0
		}
		for i, row := range rows {
			floats.Add(sums[labels[i]], row)
			counts[labels[i]]++
		}
		for c := range centroids {
			if counts[c] == 0 {
				continue
			}
			floats.ScaleTo(centroids[c], 1/float64(counts[c]), sums[c])
		}
	}

	clusters := make([][]int, k)
	for c := range clusters {
		clusters[c] = []int{}
	}
	for i, c := range labels {
		clusters[c] = append(clusters[c], i)
	}

	return &Result{Clusters: clusters, Labels: labels, Centroids: centroids}, nil
}

// nearest returns the index of the centroid closest to row.
func nearest(row []float64, centroids [][]float64) int {
	best, bestDist := 0, math.Inf(1)
	for c, center := range centroids {
		if d := floats.Distance(row, center, 2); d < bestDist {
			best, bestDist = c, d
		}
	}

	return best
}
