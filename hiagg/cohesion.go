// SPDX-License-Identifier: MIT
//
// File: cohesion.go
// Role: Relative-distance statistics and cohesion over a finite metric space.
//
// For a space of n points with distance d:
//
//	sumDist(x)       = Σ_p d(x, p)
//	RD(x‖y)          = d(x, y) − sumDist(x)/n
//	RD(x)            = sumDist(x)/n − (Σ_p sumDist(p)/n)/n
//	pointCohesion(x,y) = RD(y) − RD(x‖y)
//	setCohesion(S,T) = Σ_{x∈S} Σ_{y∈T} pointCohesion(x, y)
//
// setCohesion is an unnormalized sum, so it is additive over disjoint unions.

package hiagg

import (
	"context"
	"time"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
	"golang.org/x/sync/semaphore"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/codeclust/metric"
)

// Cohesion evaluates the cohesion between two single points. It may be
// remote; implementations must be safe for concurrent use and honor ctx.
type Cohesion[P comparable] interface {
	PointCohesion(ctx context.Context, x, y P) (float64, error)
}

// CohesionFunc adapts a plain function to Cohesion.
type CohesionFunc[P comparable] func(ctx context.Context, x, y P) (float64, error)

// PointCohesion calls f(ctx, x, y).
func (f CohesionFunc[P]) PointCohesion(ctx context.Context, x, y P) (float64, error) {
	return f(ctx, x, y)
}

// SetCohesion computes setCohesion(s1, s2) directly as the double sum of
// point cohesions. It is the O(|s1|·|s2|) reference the clusterer's
// incremental updates avoid.
func SetCohesion[P comparable](ctx context.Context, coh Cohesion[P], s1, s2 []P) (float64, error) {
	var sum float64
	for _, x := range s1 {
		for _, y := range s2 {
			c, err := coh.PointCohesion(ctx, x, y)
			if err != nil {
				return 0, err
			}
			sum += c
		}
	}

	return sum, nil
}

// SpaceCohesion holds the materialized distance matrix of a metric space
// snapshot and the statistics derived from it. It is immutable and safe for
// concurrent use once built.
type SpaceCohesion[P comparable] struct {
	points []P
	pos    map[P]int
	dist   *mat.SymDense
	sum    []float64 // sumDist per point
	mean   float64   // Σ_p sumDist(p) / n²
}

// NewSpaceCohesion snapshots space and evaluates all n(n+1)/2 distances
// (upper triangle with diagonal, mirrored), at most sem's weight at a time.
// A nil sem allows DefaultConcurrency evaluations.
//
// Errors:
//   - metric.ErrEmptySpace, or the first wrapped distance error.
//
// Complexity: O(n²) distance calls.
func NewSpaceCohesion[P comparable](ctx context.Context, space *metric.Space[P], sem *semaphore.Weighted) (*SpaceCohesion[P], error) {
	return newSpaceCohesion(ctx, space, sem, zap.NewNop())
}

func newSpaceCohesion[P comparable](ctx context.Context, space *metric.Space[P], sem *semaphore.Weighted, logger *zap.Logger) (*SpaceCohesion[P], error) {
	points := space.Points()
	n := len(points)
	if n == 0 {
		return nil, metric.ErrEmptySpace
	}
	if sem == nil {
		sem = semaphore.NewWeighted(DefaultConcurrency)
	}

	start := time.Now()
	dist := mat.NewSymDense(n, nil)
	err := pairwise(ctx, n, sem, func(ctx context.Context, i, j int) error {
		d, err := space.Distance(ctx, points[i], points[j])
		if err != nil {
			return errors.Wrapf(err, "hiagg: distance(%v, %v)", points[i], points[j])
		}
		dist.SetSym(i, j, d)
		return nil
	})
	if err != nil {
		return nil, err
	}

	sc := &SpaceCohesion[P]{
		points: points,
		pos:    make(map[P]int, n),
		dist:   dist,
		sum:    make([]float64, n),
	}
	row := make([]float64, n)
	for i, p := range points {
		sc.pos[p] = i
		mat.Row(row, i, dist)
		sc.sum[i] = floats.Sum(row)
	}
	sc.mean = floats.Sum(sc.sum) / float64(n*n)
	logger.Debug("distance matrix materialized",
		zap.Int("points", n),
		zap.Int("evaluations", n*(n+1)/2),
		zap.Duration("elapsed", time.Since(start)))

	return sc, nil
}

// Points returns the snapshot's points in space insertion order.
func (sc *SpaceCohesion[P]) Points() []P {
	out := make([]P, len(sc.points))
	copy(out, sc.points)

	return out
}

func (sc *SpaceCohesion[P]) index(p P) (int, error) {
	i, ok := sc.pos[p]
	if !ok {
		return 0, errors.Wrapf(ErrUnknownPoint, "hiagg: %v", p)
	}

	return i, nil
}

// SumDist returns Σ_p d(x, p).
func (sc *SpaceCohesion[P]) SumDist(x P) (float64, error) {
	i, err := sc.index(x)
	if err != nil {
		return 0, err
	}

	return sc.sum[i], nil
}

// RelativeDistance returns RD(x‖y) = d(x, y) − sumDist(x)/n.
func (sc *SpaceCohesion[P]) RelativeDistance(x, y P) (float64, error) {
	i, err := sc.index(x)
	if err != nil {
		return 0, err
	}
	j, err := sc.index(y)
	if err != nil {
		return 0, err
	}

	return sc.dist.At(i, j) - sc.sum[i]/float64(len(sc.points)), nil
}

// AverageRelativeDistance returns RD(x) = sumDist(x)/n − Σ_p sumDist(p)/n².
func (sc *SpaceCohesion[P]) AverageRelativeDistance(x P) (float64, error) {
	i, err := sc.index(x)
	if err != nil {
		return 0, err
	}

	return sc.sum[i]/float64(len(sc.points)) - sc.mean, nil
}

// PointCohesion returns RD(y) − RD(x‖y). It is symmetric in x and y.
func (sc *SpaceCohesion[P]) PointCohesion(_ context.Context, x, y P) (float64, error) {
	rdy, err := sc.AverageRelativeDistance(y)
	if err != nil {
		return 0, err
	}
	rdxy, err := sc.RelativeDistance(x, y)
	if err != nil {
		return 0, err
	}

	return rdy - rdxy, nil
}
