// File: methods_edges.go
// Role: Edge lifecycle & queries: Connect/Edge/AreConnected/Edges.
// Determinism:
//   - Edges() returns edges sorted by catalog key (From, then To) asc.
// Concurrency:
//   - Mutations under the mu write lock; the two touched neighborhoods are
//     dropped under muCache while mu is still held.

package core

import "math"

// Connect links a and b with the given weight, adding missing endpoints.
//
// Steps:
//  1. Validate IDs, self-loop and weight.
//  2. Lock mu; register endpoints that are not yet present (existing
//     payloads are kept, use AddVertex to replace them).
//  3. Store the edge under its key, overwriting any previous weight, so the
//     graph stays simple.
//  4. Drop the memoized neighborhoods of a and b (and only those).
//
// Errors:
//   - ErrEmptyVertexID: either ID is empty.
//   - ErrSelfLoop: a.ID == b.ID.
//   - ErrInvalidWeight: weight is NaN or ±Inf.
//
// Complexity: O(1) amortized.
func (g *Graph) Connect(a, b Vertex, weight float64) error {
	if a.ID == "" || b.ID == "" {
		return ErrEmptyVertexID
	}
	if a.ID == b.ID {
		return ErrSelfLoop
	}
	if math.IsNaN(weight) || math.IsInf(weight, 0) {
		return ErrInvalidWeight
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	for _, v := range [2]Vertex{a, b} {
		if _, ok := g.vertices[v.ID]; !ok {
			stored := v
			g.vertices[v.ID] = &stored
		}
	}

	g.edges[edgeKey(a.ID, b.ID, g.directed)] = &Edge{From: a.ID, To: b.ID, Weight: weight}

	g.muCache.Lock()
	delete(g.neighborhoods, a.ID)
	delete(g.neighborhoods, b.ID)
	g.muCache.Unlock()

	return nil
}

// Edge returns the edge joining a and b, in either direction.
//
// For directed graphs the a->b edge is preferred when both directions exist.
// A vertex is never joined to itself, so Edge(a, a) always reports false.
// Complexity: O(1).
func (g *Graph) Edge(a, b string) (Edge, bool) {
	if a == "" || b == "" || a == b {
		return Edge{}, false
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	if e, ok := g.edges[edgeKey(a, b, g.directed)]; ok {
		return *e, true
	}
	if g.directed {
		if e, ok := g.edges[edgeKey(b, a, true)]; ok {
			return *e, true
		}
	}

	return Edge{}, false
}

// AreConnected reports whether a and b share an edge (direction ignored).
// Complexity: O(1).
func (g *Graph) AreConnected(a, b string) bool {
	_, ok := g.Edge(a, b)

	return ok
}

// Edges returns copies of all edges sorted by catalog key (From, then To).
// Complexity: O(E log E).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	keys := make([]EdgeKey, 0, len(g.edges))
	for k := range g.edges {
		keys = append(keys, k)
	}
	sortKeys(keys)

	out := make([]Edge, len(keys))
	for i, k := range keys {
		out[i] = *g.edges[k]
	}

	return out
}
