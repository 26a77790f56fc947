// SPDX-License-Identifier: MIT

package metric

import (
	"context"
	"sync"

	"github.com/cockroachdb/errors"
	"gonum.org/v1/gonum/floats"
)

// Metric names a vector distance.
type Metric int

const (
	// Euclidean is the L2 distance.
	Euclidean Metric = iota
	// Cosine is 1 − cos(a, b); zero vectors are at distance 1 from everything
	// but themselves.
	Cosine
)

// Embeddings is an in-memory Distance over points with vector embeddings.
type Embeddings[P comparable] struct {
	mu      sync.RWMutex
	metric  Metric
	vectors map[P][]float64
}

// NewEmbeddings returns an empty store using m.
func NewEmbeddings[P comparable](m Metric) *Embeddings[P] {
	return &Embeddings[P]{metric: m, vectors: make(map[P][]float64)}
}

// Set stores a copy of vec for p, replacing any previous vector.
func (e *Embeddings[P]) Set(p P, vec []float64) {
	cp := make([]float64, len(vec))
	copy(cp, vec)
	e.mu.Lock()
	e.vectors[p] = cp
	e.mu.Unlock()
}

// Vector returns the stored vector for p.
func (e *Embeddings[P]) Vector(p P) ([]float64, bool) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	v, ok := e.vectors[p]

	return v, ok
}

// Distance implements Distance.
//
// Errors:
//   - ErrUnknownPoint, ErrDimensionMismatch.
func (e *Embeddings[P]) Distance(_ context.Context, a, b P) (float64, error) {
	e.mu.RLock()
	va, okA := e.vectors[a]
	vb, okB := e.vectors[b]
	e.mu.RUnlock()
	if !okA {
		return 0, errors.Wrapf(ErrUnknownPoint, "metric: %v", a)
	}
	if !okB {
		return 0, errors.Wrapf(ErrUnknownPoint, "metric: %v", b)
	}
	if len(va) != len(vb) {
		return 0, errors.Wrapf(ErrDimensionMismatch, "metric: %d vs %d", len(va), len(vb))
	}
	if a == b {
		return 0, nil
	}

	switch e.metric {
	case Cosine:
		na, nb := floats.Norm(va, 2), floats.Norm(vb, 2)
		if na == 0 || nb == 0 {
			return 1, nil
		}
		return 1 - floats.Dot(va, vb)/(na*nb), nil
	default:
		return floats.Distance(va, vb, 2), nil
	}
}
