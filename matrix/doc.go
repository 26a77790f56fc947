// Package matrix is the linear-algebra adapter between core.Graph and the
// spectral pipeline.
//
// The matrix package provides:
//
//   - Adjacency, Degree and Laplacian builders returning gonum *mat.Dense
//     values whose rows follow the graph's stable (ID-sorted) vertex order.
//   - IsSymmetric / Symmetric checks that guard eigendecomposition.
//   - The Eigensolver capability with a gonum-backed default (GonumSolver),
//     and the numeric-zero policy for eigenvalues (IsNumericallyZero).
//   - Small helpers (StackRows, Transpose) used to build embeddings.
//
// Matrices are dense: O(V²) memory and O(V³) eigendecomposition make this
// suitable for the few-thousand-vertex graphs produced by k-NN search over
// code embeddings, not for web-scale graphs.
package matrix
