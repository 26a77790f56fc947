// SPDX-License-Identifier: MIT
//
// File: eigen.go
// Role: Eigendecomposition capability consumed by the spectral pipeline, plus
//       the numeric-zero policy for eigenvalues.

package matrix

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/mat"
)

// ZeroMagnitude is the order of magnitude at or below which an eigenvalue
// counts as numerically zero.
const ZeroMagnitude = -10

// Eigenpair is one eigenvalue with its (unit-norm) eigenvector.
type Eigenpair struct {
	Value  float64
	Vector []float64
}

// Eigensolver computes the full eigendecomposition of a real symmetric matrix.
//
// Implementations may be remote or slow; errors are propagated to the caller
// untouched by the spectral pipeline.
type Eigensolver interface {
	EigenSym(a mat.Symmetric) ([]Eigenpair, error)
}

// GonumSolver is the default Eigensolver backed by gonum's mat.EigenSym.
type GonumSolver struct{}

// EigenSym factorizes a and returns eigenpairs in ascending eigenvalue order.
//
// Implementation:
//   - Stage 1: mat.EigenSym.Factorize with vectors requested.
//   - Stage 2: Copy values and split the eigenvector matrix into columns.
//
// Errors:
//   - ErrNilMatrix, ErrEigenFailed (factorization did not converge).
//
// Complexity: O(n³).
func (GonumSolver) EigenSym(a mat.Symmetric) ([]Eigenpair, error) {
	if a == nil {
		return nil, ErrNilMatrix
	}

	var es mat.EigenSym
	if ok := es.Factorize(a, true); !ok {
		return nil, ErrEigenFailed
	}
	values := es.Values(nil)
	var vectors mat.Dense
	es.VectorsTo(&vectors)

	pairs := make([]Eigenpair, len(values))
	for i, v := range values {
		pairs[i] = Eigenpair{Value: v, Vector: mat.Col(nil, i, &vectors)}
	}

	return pairs, nil
}

// OrderOfMagnitude returns floor(log10(|x|)), and 0 for x == 0.
func OrderOfMagnitude(x float64) int {
	if x == 0 {
		return 0
	}

	return int(math.Floor(math.Log10(math.Abs(x))))
}

// IsNumericallyZero reports whether x is exactly zero or its order of
// magnitude is at most ZeroMagnitude.
func IsNumericallyZero(x float64) bool {
	return x == 0 || OrderOfMagnitude(x) <= ZeroMagnitude
}

// SplitZero separates numerically-zero eigenpairs from the rest, preserving
// the input order inside each group.
// Complexity: O(n).
func SplitZero(pairs []Eigenpair) (zero, nonzero []Eigenpair) {
	for _, p := range pairs {
		if IsNumericallyZero(p.Value) {
			zero = append(zero, p)
		} else {
			nonzero = append(nonzero, p)
		}
	}

	return zero, nonzero
}

// SortDescending stably orders pairs by eigenvalue, largest first.
func SortDescending(pairs []Eigenpair) {
	sort.SliceStable(pairs, func(i, j int) bool { return pairs[i].Value > pairs[j].Value })
}
