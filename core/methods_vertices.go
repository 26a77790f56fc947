// File: methods_vertices.go
// Role: Vertex lifecycle & queries.
//
// Determinism:
//   - Vertices() and VertexIDs() return vertices sorted by ID ascending.
//
// Concurrency:
//   - Vertex catalog protected by mu.

package core

import "sort"

// AddVertex inserts v, replacing the payload of an existing vertex with the same ID.
//
// Implementation:
//   - Stage 1: Validate non-empty ID (ErrEmptyVertexID).
//   - Stage 2: Under the write lock, store a private copy of v.
//
// Behavior highlights:
//   - Last write wins for Payload; edges incident to the vertex are untouched.
//
// Complexity:
//   - Time O(1) amortized, Space O(1).
func (g *Graph) AddVertex(v Vertex) error {
	if v.ID == "" {
		return ErrEmptyVertexID
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	stored := v
	g.vertices[v.ID] = &stored

	return nil
}

// HasVertex reports whether the vertex ID exists (empty ID ⇒ false).
// Complexity: O(1).
func (g *Graph) HasVertex(id string) bool {
	if id == "" {
		return false
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.vertices[id]

	return ok
}

// Vertex returns a copy of the stored vertex record.
//
// Errors:
//   - ErrEmptyVertexID: if id == "".
//   - ErrVertexNotFound: if the vertex does not exist.
func (g *Graph) Vertex(id string) (Vertex, error) {
	if id == "" {
		return Vertex{}, ErrEmptyVertexID
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	v, ok := g.vertices[id]
	if !ok {
		return Vertex{}, ErrVertexNotFound
	}

	return *v, nil
}

// Vertices returns copies of all vertex records sorted by ID ascending.
// This is the stable order used by every matrix built from the graph.
// Complexity: O(V log V).
func (g *Graph) Vertices() []Vertex {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Vertex, 0, len(g.vertices))
	for _, v := range g.vertices {
		out = append(out, *v)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out
}

// VertexIDs returns all vertex IDs sorted ascending.
// Complexity: O(V log V).
func (g *Graph) VertexIDs() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	ids := make([]string, 0, len(g.vertices))
	for id := range g.vertices {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

// Degree returns the weighted degree of id: the sum of the weights of all
// edges incident to it. In directed graphs both incoming and outgoing edges count.
//
// Errors:
//   - ErrEmptyVertexID, ErrVertexNotFound.
//
// Complexity:
//   - O(1) on a warm neighborhood cache, O(E) otherwise.
func (g *Graph) Degree(id string) (float64, error) {
	incident, err := g.IncidentEdges(id)
	if err != nil {
		return 0, err
	}

	var degree float64
	for _, e := range incident {
		degree += e.Weight
	}

	return degree, nil
}
