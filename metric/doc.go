// Package metric provides an abstract metric space over opaque points and
// the distance providers that back it.
//
// Space[P] holds an insertion-ordered point set and a Distance[P]. Neighbor
// queries measure every point against the query concurrently (bounded by
// WithConcurrency, failing fast on the first provider error) and return a
// stable ordering.
//
// Providers compose:
//
//	sqlDist := metric.NewSQLDistance(db, "", logger)           // remote store
//	limited := metric.RateLimited[string](sqlDist, limiter)   // throttle
//	cached, _ := metric.NewCache[string](limited, 1<<16)      // memoize + dedupe
//	space := metric.NewSpace[string](cached, metric.WithConcurrency(16))
//
// Embeddings is an in-memory provider over float vectors (Euclidean or
// Cosine), and NeighborGraph turns a space into a k-NN similarity graph for
// the spectral pipeline.
package metric
