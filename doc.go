// Package codeclust groups code fragments into clusters, either by
// partitioning a similarity graph spectrally or by agglomerating points of a
// finite metric space on cohesion.
//
// What is inside?
//
//	core/      thread-safe weighted Graph, Vertex and Edge, density, regularity, DOT
//	dfs/       connected components and connectivity
//	matrix/    adjacency and Laplacian builders, symmetry checks, eigensolver, helpers
//	kmeans/    Lloyd's k-means over the rows of a matrix
//	spectral/  Laplacian-embedding clusterer and the graph Analyze report
//	metric/    MetricSpace, neighbor queries, cached/rate-limited/SQL/embedding distances
//	hiagg/     cohesion statistics and the hierarchical agglomerative clusterer
//	builder/   deterministic graph fixtures (paths, cycles, cliques, random sparse)
//
// Two pipelines:
//
//	graph ──► Laplacian ──► eigenpairs ──► embedding ──► k-means ──► clusters
//	space ──► distances ──► cohesion matrix ──► merge while cohesive ──► clusters
//
// Quick example:
//
//	    A───B       C───D
//	     near        near
//
//	four points, d(A,B) = d(C,D) = 1 and 10 otherwise, agglomerate into
//	[[A B] [C D]].
//
//	go get github.com/katalvlaran/codeclust
package codeclust
