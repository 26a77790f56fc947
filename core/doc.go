// Package core provides a thread-safe, in-memory weighted Graph used as the
// similarity graph for spectral clustering.
//
// The Graph G = (V,E) is deliberately narrow:
//
//   - Directed vs. undirected mode, fixed at construction (WithDirected)
//   - Float64 edge weights (similarities), finite only
//   - Always simple: no self-loops, reconnecting a pair overwrites its weight
//   - Vertices carry an opaque Payload; identity is by ID only
//   - Deterministic iteration: Vertices(), VertexIDs(), Edges(), Neighbors()
//     all return sorted results, which keeps matrix construction reproducible
//   - Memoized neighborhoods with narrow invalidation: Connect(a,b) forgets
//     only the cached neighborhoods of a and b
//
// Core Methods:
//
//	// Vertex lifecycle
//	AddVertex(v Vertex) error                         // O(1), last write wins
//	HasVertex(id string) bool                         // O(1)
//	Vertex(id string) (Vertex, error)                 // O(1)
//
//	// Edge lifecycle
//	Connect(a, b Vertex, weight float64) error        // O(1)
//	Edge(a, b string) (Edge, bool)                    // O(1), direction ignored
//	AreConnected(a, b string) bool                    // O(1)
//
//	// Query
//	IncidentEdges(id string) ([]Edge, error)          // O(d) warm
//	Neighbors(id string) ([]string, error)            // O(d log d)
//	Degree(id string) (float64, error)                // weighted
//	Vertices() []Vertex / VertexIDs() []string        // O(V log V)
//	Edges() []Edge                                    // O(E log E)
//	Order() int / EdgeCount() int                     // O(1)
//
// Derived (pure functions):
//
//	Density(g)            // 2E / V(V-1) undirected, E / V(V-1) directed, 0 for V ≤ 1
//	Regularity(g)         // "<d>-regular" or "not regular"
//	CutEdges(g, subset)   // edge boundary of a vertex subset
//	WriteDOT(w, g)        // Graphviz export
//
// Errors:
//
//	ErrEmptyVertexID, ErrVertexNotFound, ErrSelfLoop, ErrInvalidWeight
package core
