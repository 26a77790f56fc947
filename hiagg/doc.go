// Package hiagg implements HiAgg, a hierarchical agglomerative clustering
// method over an abstract metric space driven by cohesion.
//
// Cohesion between two clusters is the unnormalized double sum of point
// cohesions (see SpaceCohesion). Starting from singletons, the clusterer
// repeatedly merges the first live pair with positive cohesion in row-major
// order, until none is left. Because the double sum is additive over
// disjoint unions, the merged cluster's row is derived from the two merged
// rows in O(L) instead of being recomputed:
//
//	C[k][k] = C[i][i] + C[j][j] + 2·C[i][j]
//	C[k][l] = C[i][l] + C[j][l]
//
// Merged slots are tombstoned in a bitset and never reused, so slot indices
// are stable handles (they key the optional cluster_cohesion Sink).
//
// Seeding evaluates n(n+1)/2 cohesions (or distances) concurrently under a
// caller-owned semaphore; any failure aborts the whole run.
package hiagg
