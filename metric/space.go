// SPDX-License-Identifier: MIT
//
// File: space.go
// Role: MetricSpace, an insertion-ordered point set plus a Distance.
// Concurrency:
//   - The point set is guarded by an RWMutex; queries work on a snapshot.
//   - Distance evaluations for one query run concurrently, bounded by
//     WithConcurrency, and the first failure cancels the rest.

package metric

import (
	"context"
	"sort"
	"sync"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency bounds concurrent distance evaluations per query.
const DefaultConcurrency = 8

// SpaceOption configures a Space.
type SpaceOption func(*spaceConfig)

type spaceConfig struct {
	concurrency int
	logger      *zap.Logger
}

// WithConcurrency sets the per-query bound on in-flight distance calls.
// Values below 1 are treated as 1.
func WithConcurrency(n int) SpaceOption {
	return func(c *spaceConfig) {
		if n < 1 {
			n = 1
		}
		c.concurrency = n
	}
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *zap.Logger) SpaceOption {
	return func(c *spaceConfig) {
		if l != nil {
			c.logger = l
		}
	}
}

// Space is a finite set of points with a distance function.
// The space never caches distances itself; wrap the Distance with NewCache
// when evaluations are expensive.
type Space[P comparable] struct {
	mu     sync.RWMutex
	points []P       // insertion order
	index  map[P]int // point → position in points
	dist   Distance[P]
	cfg    spaceConfig
}

// NewSpace creates an empty space over d.
// It panics if d is nil.
func NewSpace[P comparable](d Distance[P], opts ...SpaceOption) *Space[P] {
	if d == nil {
		panic(ErrNilDistance)
	}
	cfg := spaceConfig{concurrency: DefaultConcurrency, logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Space[P]{
		index: make(map[P]int),
		dist:  d,
		cfg:   cfg,
	}
}

// AddPoint inserts p. Adding an existing point is a no-op.
func (s *Space[P]) AddPoint(p P) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.index[p]; ok {
		return
	}
	s.index[p] = len(s.points)
	s.points = append(s.points, p)
}

// RemovePoint deletes p. Removing an absent point is a no-op.
// Complexity: O(n).
func (s *Space[P]) RemovePoint(p P) {
	s.mu.Lock()
	defer s.mu.Unlock()
	pos, ok := s.index[p]
	if !ok {
		return
	}
	delete(s.index, p)
	s.points = append(s.points[:pos], s.points[pos+1:]...)
	for i := pos; i < len(s.points); i++ {
		s.index[s.points[i]] = i
	}
}

// Size returns the number of points.
func (s *Space[P]) Size() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.points)
}

// Contains reports whether p is in the space.
func (s *Space[P]) Contains(p P) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.index[p]

	return ok
}

// Points returns a copy of the points in insertion order.
func (s *Space[P]) Points() []P {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]P, len(s.points))
	copy(out, s.points)

	return out
}

// Distance evaluates the space's distance between a and b.
func (s *Space[P]) Distance(ctx context.Context, a, b P) (float64, error) {
	return s.dist.Distance(ctx, a, b)
}

// Neighbor is a point with its distance to the query.
type Neighbor[P comparable] struct {
	Point    P
	Distance float64
}

// NearestNeighbors returns the k points closest to p, closest first.
//
// Every point currently in the space is measured, including p itself when
// present. Ties keep p first, then insertion order. k larger than the
// space is clamped.
//
// Errors:
//   - ErrInvalidK, ErrEmptySpace, or the first wrapped distance error.
//
// Complexity: O(n) distance calls plus O(n log n) sorting.
func (s *Space[P]) NearestNeighbors(ctx context.Context, p P, k int) ([]P, error) {
	ns, err := s.neighbors(ctx, p, k, false)
	if err != nil {
		return nil, err
	}

	return pointsOf(ns), nil
}

// FarthestNeighbors returns the k points farthest from p, farthest first.
// Same rules as NearestNeighbors.
func (s *Space[P]) FarthestNeighbors(ctx context.Context, p P, k int) ([]P, error) {
	ns, err := s.neighbors(ctx, p, k, true)
	if err != nil {
		return nil, err
	}

	return pointsOf(ns), nil
}

// NearestWithDistances is NearestNeighbors that also returns each distance.
func (s *Space[P]) NearestWithDistances(ctx context.Context, p P, k int) ([]Neighbor[P], error) {
	return s.neighbors(ctx, p, k, false)
}

// NearestNeighbor is NearestNeighbors with k = 1.
func (s *Space[P]) NearestNeighbor(ctx context.Context, p P) (P, error) {
	return first(s.NearestNeighbors(ctx, p, 1))
}

// FarthestNeighbor is FarthestNeighbors with k = 1.
func (s *Space[P]) FarthestNeighbor(ctx context.Context, p P) (P, error) {
	return first(s.FarthestNeighbors(ctx, p, 1))
}

// neighbors measures every point against p and returns the k best.
//
// Implementation:
//   - Stage 1: Snapshot the point list under the read lock.
//   - Stage 2: Evaluate d(p, q) for all q through an errgroup bounded by the
//     configured concurrency; each result lands in its own slot.
//   - Stage 3: Stable sort (ascending or descending), with p first among ties.
func (s *Space[P]) neighbors(ctx context.Context, p P, k int, farthest bool) ([]Neighbor[P], error) {
	if k < 1 {
		return nil, ErrInvalidK
	}
	points := s.Points()
	if len(points) == 0 {
		return nil, ErrEmptySpace
	}

	ns := make([]Neighbor[P], len(points))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.cfg.concurrency)
	for i, q := range points {
		g.Go(func() error {
			d, err := s.dist.Distance(gctx, p, q)
			if err != nil {
				return errors.Wrapf(err, "metric: distance(%v, %v)", p, q)
			}
			ns[i] = Neighbor[P]{Point: q, Distance: d}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		s.cfg.logger.Debug("neighbor query failed", zap.Error(err))
		return nil, err
	}

	sort.SliceStable(ns, func(i, j int) bool {
		a, b := ns[i], ns[j]
		if a.Distance != b.Distance {
			if farthest {
				return a.Distance > b.Distance
			}
			return a.Distance < b.Distance
		}
		return a.Point == p && b.Point != p
	})
	if k > len(ns) {
		k = len(ns)
	}

	return ns[:k], nil
}

func pointsOf[P comparable](ns []Neighbor[P]) []P {
	out := make([]P, len(ns))
	for i, n := range ns {
		out[i] = n.Point
	}

	return out
}

func first[P any](ps []P, err error) (P, error) {
	if err != nil {
		var zero P
		return zero, err
	}

	return ps[0], nil
}
