// SPDX-License-Identifier: MIT

package metric

import (
	"context"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"

	"github.com/katalvlaran/codeclust/core"
)

// WeightFunc turns a distance into an edge weight (a similarity).
type WeightFunc func(distance float64) float64

// InverseWeight maps d to 1/(1+d): identical points weigh 1, far points tend to 0.
func InverseWeight(d float64) float64 { return 1 / (1 + d) }

// NeighborGraph builds an undirected similarity graph: every point becomes a
// vertex and is connected to its k nearest other points with weight(d).
//
// A nil weight selects InverseWeight. Points are visited in insertion order;
// when two points pick each other the later connection overwrites the earlier
// one with the same (symmetric) weight.
//
// Errors:
//   - ErrInvalidK, wrapped distance or graph errors.
//
// Complexity: O(n²) distance calls.
func NeighborGraph(ctx context.Context, s *Space[string], k int, weight WeightFunc) (*core.Graph, error) {
	if k < 1 {
		return nil, ErrInvalidK
	}
	if weight == nil {
		weight = InverseWeight
	}

	g := core.NewGraph()
	points := s.Points()
	for _, p := range points {
		if err := g.AddVertex(core.Vertex{ID: p}); err != nil {
			return nil, errors.Wrapf(err, "metric: vertex %q", p)
		}
	}
	for _, p := range points {
		// k+1 to make room for p itself, which ranks first
		ns, err := s.NearestWithDistances(ctx, p, k+1)
		if err != nil {
			return nil, err
		}
		linked := 0
		for _, n := range ns {
			if n.Point == p || linked == k {
				continue
			}
			linked++
			if err = g.Connect(core.Vertex{ID: p}, core.Vertex{ID: n.Point}, weight(n.Distance)); err != nil {
				return nil, errors.Wrapf(err, "metric: edge %q-%q", p, n.Point)
			}
		}
	}
	s.cfg.logger.Debug("neighbor graph built",
		zap.Int("order", g.Order()),
		zap.Int("edges", g.EdgeCount()),
		zap.Int("k", k))

	return g, nil
}
