// SPDX-License-Identifier: MIT
//
// File: clusterer.go
// Role: HiAgg, agglomerative clustering while any two live clusters have
//       positive cohesion.
// Determinism:
//   - Candidate pairs are scanned row-major (i ascending, then j ascending).
//   - Slots are append-only; merged slots are tombstoned, never reused.
// Concurrency:
//   - Only seeding fans out. Merges run on the caller goroutine, one at a time.

package hiagg

import (
	"context"
	"time"

	"github.com/bits-and-blooms/bitset"
	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
	"golang.org/x/sync/semaphore"

	"github.com/katalvlaran/codeclust/metric"
)

// DefaultConcurrency bounds concurrent cohesion or distance evaluations when
// no semaphore is supplied.
const DefaultConcurrency = 8

var (
	// ErrAborted is returned by every call after a failed Seed or Step.
	ErrAborted = errors.New("hiagg: run aborted by an earlier failure")

	// ErrNotSeeded is returned by Step before Seed has succeeded.
	ErrNotSeeded = errors.New("hiagg: cohesion matrix not seeded")

	// ErrUnknownPoint is returned by SpaceCohesion for points outside its snapshot.
	ErrUnknownPoint = errors.New("hiagg: point not in space")

	// ErrSlotRange is returned by Slot for an index that was never allocated.
	ErrSlotRange = errors.New("hiagg: slot out of range")
)

// Merge describes one agglomeration step.
type Merge struct {
	I, J     int     // merged slots, I < J
	K        int     // new slot
	Cohesion float64 // C[I][J] at merge time
	Live     int     // live clusters after the merge
}

// Option configures a Clusterer.
type Option func(*config)

type config struct {
	sem     *semaphore.Weighted
	logger  *zap.Logger
	sink    Sink
	onMerge func(Merge)
}

// WithSemaphore bounds concurrent evaluations during seeding. The semaphore
// is caller-owned and may be shared between clusterers.
func WithSemaphore(sem *semaphore.Weighted) Option {
	return func(c *config) {
		if sem != nil {
			c.sem = sem
		}
	}
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *zap.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithSink mirrors every live cohesion entry into s.
func WithSink(s Sink) Option {
	return func(c *config) { c.sink = s }
}

// WithOnMerge registers a callback invoked after every merge.
func WithOnMerge(fn func(Merge)) Option {
	return func(c *config) { c.onMerge = fn }
}

// Clusterer runs HiAgg over a fixed point set. It is single-use and not safe
// for concurrent use.
type Clusterer[P comparable] struct {
	cfg    config
	space  *metric.Space[P] // nil when built with NewWithCohesion
	points []P
	coh    Cohesion[P]

	slots     [][]P       // slot → points, append-only
	rows      [][]float64 // rows[i][j] for j ≤ len(rows[i])-1
	retiredAt []int       // slot → slot index that absorbed it, -1 while live
	dead      bitset.BitSet
	live      int

	seeded  bool
	aborted bool
}

// New returns a clusterer over the current points of space. Distances are
// materialized during Seed through a SpaceCohesion.
func New[P comparable](space *metric.Space[P], opts ...Option) *Clusterer[P] {
	c := newClusterer[P](opts)
	c.space = space

	return c
}

// NewWithCohesion returns a clusterer over points with an external cohesion
// provider (for example one computed by a database).
func NewWithCohesion[P comparable](points []P, coh Cohesion[P], opts ...Option) *Clusterer[P] {
	c := newClusterer[P](opts)
	c.points = append([]P(nil), points...)
	c.coh = coh

	return c
}

func newClusterer[P comparable](opts []Option) *Clusterer[P] {
	cfg := config{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.sem == nil {
		cfg.sem = semaphore.NewWeighted(DefaultConcurrency)
	}

	return &Clusterer[P]{cfg: cfg}
}

// Run seeds the cohesion matrix and merges until no live pair has positive
// cohesion. It returns the live clusters in slot order.
//
// Errors:
//   - The first provider, sink or context error, after which the clusterer
//     is aborted.
//
// Complexity: O(n²) evaluations to seed, then O(L²) scan plus O(L) update
// per merge, L = live clusters.
func (c *Clusterer[P]) Run(ctx context.Context) ([][]P, error) {
	if !c.seeded {
		if err := c.Seed(ctx); err != nil {
			return nil, err
		}
	}
	start := time.Now()
	merges := 0
	for {
		merged, err := c.Step(ctx)
		if err != nil {
			return nil, err
		}
		if !merged {
			break
		}
		merges++
	}
	c.cfg.logger.Info("hiagg finished",
		zap.Int("points", len(c.points)),
		zap.Int("merges", merges),
		zap.Int("clusters", c.live),
		zap.Duration("elapsed", time.Since(start)))

	return c.Live(), nil
}

// Seed creates one singleton slot per point and fills the n×n cohesion
// matrix, evaluating i ≤ j concurrently and mirroring.
//
// Implementation:
//   - Stage 1: Build the SpaceCohesion when constructed from a space.
//   - Stage 2: Evaluate the upper triangle under the semaphore.
//   - Stage 3: Reset the sink and write every entry from the caller goroutine.
func (c *Clusterer[P]) Seed(ctx context.Context) error {
	if c.aborted {
		return ErrAborted
	}
	if c.seeded {
		return nil
	}

	if c.space != nil {
		if c.space.Size() == 0 {
			c.seeded = true
			return c.resetSink(ctx)
		}
		sc, err := newSpaceCohesion(ctx, c.space, c.cfg.sem, c.cfg.logger)
		if err != nil {
			return c.abort(err)
		}
		c.points, c.coh = sc.Points(), sc
	}

	n := len(c.points)
	c.slots = make([][]P, n)
	c.rows = make([][]float64, n)
	c.retiredAt = make([]int, n)
	for i, p := range c.points {
		c.slots[i] = []P{p}
		c.rows[i] = make([]float64, n)
		c.retiredAt[i] = -1
	}
	c.live = n

	start := time.Now()
	err := pairwise(ctx, n, c.cfg.sem, func(ctx context.Context, i, j int) error {
		v, err := c.coh.PointCohesion(ctx, c.points[i], c.points[j])
		if err != nil {
			return errors.Wrapf(err, "hiagg: cohesion(%v, %v)", c.points[i], c.points[j])
		}
		c.rows[i][j] = v
		c.rows[j][i] = v
		return nil
	})
	if err != nil {
		return c.abort(err)
	}
	c.cfg.logger.Debug("cohesion matrix seeded",
		zap.Int("points", n),
		zap.Duration("elapsed", time.Since(start)))

	if err = c.resetSink(ctx); err != nil {
		return err
	}
	if c.cfg.sink != nil {
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if err = c.cfg.sink.Put(ctx, i, j, c.rows[i][j]); err != nil {
					return c.abort(errors.Wrap(err, "hiagg: sink put"))
				}
			}
		}
	}
	c.seeded = true

	return nil
}

func (c *Clusterer[P]) resetSink(ctx context.Context) error {
	if c.cfg.sink == nil {
		return nil
	}
	if err := c.cfg.sink.Reset(ctx); err != nil {
		return c.abort(errors.Wrap(err, "hiagg: sink reset"))
	}

	return nil
}

// Next returns the first live pair (i, j), i < j, with positive cohesion in
// row-major order. ok is false when no such pair exists.
//
// The matrix is symmetric, so the first hit of a full row-major scan over
// i ≠ j always lies above the diagonal.
func (c *Clusterer[P]) Next() (i, j int, ok bool) {
	for i = 0; i < len(c.slots); i++ {
		if c.dead.Test(uint(i)) {
			continue
		}
		for j = i + 1; j < len(c.rows[i]); j++ {
			if c.dead.Test(uint(j)) {
				continue
			}
			if c.rows[i][j] > 0 {
				return i, j, true
			}
		}
	}

	return 0, 0, false
}

// Step performs at most one merge and reports whether it merged.
//
// Implementation:
//   - Stage 1: Next() picks the pair (i, j).
//   - Stage 2: Append slot k = S_i ∪ S_j with
//     C[k][k] = C[i][i] + C[j][j] + 2·C[i][j] and, for each live l,
//     C[k][l] = C[l][k] = C[i][l] + C[j][l].
//   - Stage 3: Tombstone i and j; mirror the change into the sink.
//
// Complexity: O(L²) scan plus O(L) update.
func (c *Clusterer[P]) Step(ctx context.Context) (bool, error) {
	if c.aborted {
		return false, ErrAborted
	}
	if !c.seeded {
		return false, ErrNotSeeded
	}
	if err := ctx.Err(); err != nil {
		return false, c.abort(err)
	}

	i, j, ok := c.Next()
	if !ok {
		return false, nil
	}
	k := len(c.slots)
	cij := c.rows[i][j]

	merged := make([]P, 0, len(c.slots[i])+len(c.slots[j]))
	merged = append(merged, c.slots[i]...)
	merged = append(merged, c.slots[j]...)

	row := make([]float64, k+1)
	for l := 0; l < k; l++ {
		if l == i || l == j || c.dead.Test(uint(l)) {
			continue
		}
		v := c.rows[i][l] + c.rows[j][l]
		row[l] = v
		c.rows[l] = append(c.rows[l], v)
	}
	row[k] = c.rows[i][i] + c.rows[j][j] + 2*cij

	c.slots = append(c.slots, merged)
	c.rows = append(c.rows, row)
	c.retiredAt = append(c.retiredAt, -1)
	c.retiredAt[i], c.retiredAt[j] = k, k
	c.dead.Set(uint(i)).Set(uint(j))
	c.live--

	if err := c.mirrorMerge(ctx, i, j, k); err != nil {
		return false, c.abort(err)
	}

	m := Merge{I: i, J: j, K: k, Cohesion: cij, Live: c.live}
	c.cfg.logger.Debug("clusters merged",
		zap.Int("i", i),
		zap.Int("j", j),
		zap.Int("k", k),
		zap.Float64("cohesion", cij),
		zap.Int("size", len(merged)),
		zap.Int("live", c.live))
	if c.cfg.onMerge != nil {
		c.cfg.onMerge(m)
	}

	return true, nil
}

func (c *Clusterer[P]) mirrorMerge(ctx context.Context, i, j, k int) error {
	s := c.cfg.sink
	if s == nil {
		return nil
	}
	if err := s.Put(ctx, k, k, c.rows[k][k]); err != nil {
		return errors.Wrap(err, "hiagg: sink put")
	}
	for l := 0; l < k; l++ {
		if c.dead.Test(uint(l)) {
			continue
		}
		if err := s.Put(ctx, k, l, c.rows[k][l]); err != nil {
			return errors.Wrap(err, "hiagg: sink put")
		}
		if err := s.Put(ctx, l, k, c.rows[k][l]); err != nil {
			return errors.Wrap(err, "hiagg: sink put")
		}
	}
	if err := s.Retire(ctx, i); err != nil {
		return errors.Wrap(err, "hiagg: sink retire")
	}
	if err := s.Retire(ctx, j); err != nil {
		return errors.Wrap(err, "hiagg: sink retire")
	}

	return nil
}

func (c *Clusterer[P]) abort(err error) error {
	c.aborted = true
	c.cfg.logger.Warn("hiagg aborted", zap.Error(err))

	return err
}

// Cohesion returns C[i][j]. ok is false for unallocated slots and for pairs
// whose entry was never computed (one slot retired before the other existed).
func (c *Clusterer[P]) Cohesion(i, j int) (v float64, ok bool) {
	n := len(c.slots)
	if i < 0 || j < 0 || i >= n || j >= n {
		return 0, false
	}
	lo, hi := i, j
	if lo > hi {
		lo, hi = hi, lo
	}
	if r := c.retiredAt[lo]; r != -1 && hi >= r {
		return 0, false
	}

	return c.rows[hi][lo], true
}

// Slot returns a copy of the points of slot i, live or retired.
func (c *Clusterer[P]) Slot(i int) ([]P, error) {
	if i < 0 || i >= len(c.slots) {
		return nil, errors.Wrapf(ErrSlotRange, "hiagg: slot %d of %d", i, len(c.slots))
	}

	return append([]P(nil), c.slots[i]...), nil
}

// IsLive reports whether slot i exists and has not been merged.
func (c *Clusterer[P]) IsLive(i int) bool {
	return i >= 0 && i < len(c.slots) && !c.dead.Test(uint(i))
}

// Live returns copies of the live clusters in slot order.
func (c *Clusterer[P]) Live() [][]P {
	out := make([][]P, 0, c.live)
	for i, s := range c.slots {
		if c.dead.Test(uint(i)) {
			continue
		}
		out = append(out, append([]P(nil), s...))
	}

	return out
}

// LiveSlots returns the indices of live slots in ascending order.
func (c *Clusterer[P]) LiveSlots() []int {
	out := make([]int, 0, c.live)
	for i := range c.slots {
		if !c.dead.Test(uint(i)) {
			out = append(out, i)
		}
	}

	return out
}

// Slots returns the number of slots ever allocated (live and retired).
func (c *Clusterer[P]) Slots() int { return len(c.slots) }
