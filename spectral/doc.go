// Package spectral clusters a weighted graph through its Laplacian spectrum.
//
// Pipeline (Clusterer.Cluster):
//
//  1. L = D − A over the graph's stable vertex order (matrix.Laplacian).
//  2. Full eigendecomposition via a pluggable matrix.Eigensolver.
//  3. Numerically-zero eigenvalues (exactly 0, or order of magnitude ≤ −10)
//     are dropped; their count equals the number of connected components.
//  4. The remaining pairs are sorted by eigenvalue descending and the first
//     k = ceil(order/2) eigenvectors become the columns of an n×k embedding.
//  5. k-means (package kmeans) partitions the embedding rows; row indices are
//     mapped back to vertex IDs.
//
// The cluster-count rule and the descending selection are a fixed,
// reproducible policy. They make no optimality claim.
//
// Clusterer.Analyze reports order, density, regularity, connectivity,
// Laplacian symmetry and the zero-eigenvalue count.
package spectral
