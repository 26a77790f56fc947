// SPDX-License-Identifier: MIT
//
// File: distance.go
// Role: The pluggable, possibly-remote distance capability and the errors
//       shared by every provider in this package.

package metric

import (
	"context"

	"github.com/cockroachdb/errors"
)

var (
	// ErrEmptySpace is returned by neighbor queries on a space with no points.
	ErrEmptySpace = errors.New("metric: space is empty")

	// ErrInvalidK is returned when a neighbor query asks for fewer than one point.
	ErrInvalidK = errors.New("metric: k must be at least 1")

	// ErrNilDistance is returned when a nil Distance is supplied.
	ErrNilDistance = errors.New("metric: distance is nil")

	// ErrUnknownPoint is returned by in-memory providers for points they hold no data for.
	ErrUnknownPoint = errors.New("metric: unknown point")

	// ErrDimensionMismatch is returned when two embeddings differ in length.
	ErrDimensionMismatch = errors.New("metric: embedding dimensions differ")

	// ErrNoRows is returned by SQLDistance when the store has no distance for a pair.
	ErrNoRows = errors.New("metric: no distance returned")
)

// Distance evaluates d(a, b). Implementations must be symmetric and
// non-negative with d(x, x) = 0, and safe for concurrent use; evaluation may
// block on I/O and must honor ctx.
type Distance[P any] interface {
	Distance(ctx context.Context, a, b P) (float64, error)
}

// DistanceFunc adapts a plain function to Distance.
type DistanceFunc[P any] func(ctx context.Context, a, b P) (float64, error)

// Distance calls f(ctx, a, b).
func (f DistanceFunc[P]) Distance(ctx context.Context, a, b P) (float64, error) {
	return f(ctx, a, b)
}
