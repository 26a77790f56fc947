// SPDX-License-Identifier: MIT

package matrix

import "gonum.org/v1/gonum/mat"

// StackRows builds a dense matrix whose i-th row is rows[i].
//
// Errors:
//   - ErrDimensionMismatch when rows are empty or of different lengths.
//
// Complexity: O(r·c).
func StackRows(rows [][]float64) (*mat.Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrDimensionMismatch
	}
	c := len(rows[0])
	data := make([]float64, 0, len(rows)*c)
	for _, row := range rows {
		if len(row) != c {
			return nil, ErrDimensionMismatch
		}
		data = append(data, row...)
	}

	return mat.NewDense(len(rows), c, data), nil
}

// Transpose returns a materialized copy of mᵀ.
// Complexity: O(r·c).
func Transpose(m mat.Matrix) (*mat.Dense, error) {
	if m == nil {
		return nil, ErrNilMatrix
	}

	return mat.DenseCopyOf(m.T()), nil
}
