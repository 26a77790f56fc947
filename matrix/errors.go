// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// All functions return these sentinels (possibly wrapped with context);
// callers match them with errors.Is. No function panics on user input.

package matrix

import "github.com/cockroachdb/errors"

var (
	// ErrGraphNil indicates that a nil *core.Graph was passed into a builder.
	ErrGraphNil = errors.New("matrix: graph is nil")

	// ErrEmptyGraph indicates a graph without vertices, which has no matrix form.
	ErrEmptyGraph = errors.New("matrix: graph has no vertices")

	// ErrNilMatrix indicates that a nil matrix argument was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrAsymmetry signals that a matrix expected to be symmetric violated
	// symmetry within the given tolerance.
	ErrAsymmetry = errors.New("matrix: matrix is not symmetric within eps")

	// ErrDimensionMismatch indicates rows of different lengths in StackRows.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrEigenFailed indicates that the eigensolver did not converge.
	ErrEigenFailed = errors.New("matrix: eigen decomposition failed")
)
