// SPDX-License-Identifier: MIT
//
// File: validators.go
// Role: Shape/symmetry checks used before spectral methods.
// Policy:
//   - Symmetry check runs O(n²) on the upper triangle only.

package matrix

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// DefaultSymmetryEps is the absolute tolerance used by spectral callers
// when checking that a Laplacian is symmetric.
const DefaultSymmetryEps = 1e-12

// IsSymmetric reports whether m is square and |m[i][j] − m[j][i]| ≤ eps
// for every i < j. A nil matrix is not symmetric.
// Complexity: O(n²).
func IsSymmetric(m mat.Matrix, eps float64) bool {
	if m == nil {
		return false
	}
	r, c := m.Dims()
	if r != c {
		return false
	}
	for i := 0; i < r; i++ {
		for j := i + 1; j < c; j++ {
			if math.Abs(m.At(i, j)-m.At(j, i)) > eps {
				return false
			}
		}
	}

	return true
}

// Symmetric converts m into a *mat.SymDense after checking symmetry within eps.
// The upper triangle of m is copied.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrAsymmetry.
//
// Complexity: O(n²).
func Symmetric(m mat.Matrix, eps float64) (*mat.SymDense, error) {
	if m == nil {
		return nil, ErrNilMatrix
	}
	r, c := m.Dims()
	if r != c {
		return nil, ErrNonSquare
	}
	if !IsSymmetric(m, eps) {
		return nil, ErrAsymmetry
	}

	s := mat.NewSymDense(r, nil)
	for i := 0; i < r; i++ {
		for j := i; j < r; j++ {
			s.SetSym(i, j, m.At(i, j))
		}
	}

	return s, nil
}
