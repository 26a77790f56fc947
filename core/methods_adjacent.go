// File: methods_adjacent.go
// Role: Neighborhood APIs (IncidentEdges, Neighbors) and the memoized
//       neighborhood cache.
// Determinism:
//   - IncidentEdges() sorts by catalog key asc.
//   - Neighbors() returns unique IDs sorted lex asc.
// Concurrency:
//   - Readers hold mu.RLock while consulting or filling the cache under muCache.

package core

import "sort"

// IncidentEdges returns every edge that has id as an endpoint.
//
// Implementation:
//   - Stage 1: Validate id and existence under mu read lock.
//   - Stage 2: Consult the memoized neighborhood; on a miss scan the edge
//     catalog once (O(E)) and remember the sorted keys.
//   - Stage 3: Materialize edge copies in key order.
//
// Errors:
//   - ErrEmptyVertexID, ErrVertexNotFound.
//
// Complexity:
//   - O(d) warm, O(E + d log d) cold, where d is the number of incident edges.
func (g *Graph) IncidentEdges(id string) ([]Edge, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	if _, ok := g.vertices[id]; !ok {
		return nil, ErrVertexNotFound
	}

	keys := g.neighborhood(id)
	out := make([]Edge, 0, len(keys))
	for _, k := range keys {
		if e, ok := g.edges[k]; ok {
			out = append(out, *e)
		}
	}

	return out, nil
}

// Neighbors returns the unique IDs of vertices sharing an edge with id,
// sorted ascending. Direction is ignored in directed graphs.
//
// Errors:
//   - Propagates ErrEmptyVertexID / ErrVertexNotFound.
//
// Complexity: same as IncidentEdges plus O(d log d) for sorting.
func (g *Graph) Neighbors(id string) ([]string, error) {
	incident, err := g.IncidentEdges(id)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{}, len(incident))
	for _, e := range incident {
		seen[e.Other(id)] = struct{}{}
	}
	ids := make([]string, 0, len(seen))
	for nid := range seen {
		ids = append(ids, nid)
	}
	sort.Strings(ids)

	return ids, nil
}

// neighborhood returns the memoized incident-edge keys of id.
// Caller must hold at least mu.RLock.
func (g *Graph) neighborhood(id string) []EdgeKey {
	g.muCache.Lock()
	defer g.muCache.Unlock()

	if keys, ok := g.neighborhoods[id]; ok {
		return keys
	}

	var keys []EdgeKey
	for k, e := range g.edges {
		if e.Has(id) {
			keys = append(keys, k)
		}
	}
	sortKeys(keys)
	g.neighborhoods[id] = keys

	return keys
}

// cachedNeighborhoods lists the vertex IDs whose neighborhood is currently memoized.
// Used by tests to observe invalidation.
func (g *Graph) cachedNeighborhoods() []string {
	g.muCache.Lock()
	defer g.muCache.Unlock()

	ids := make([]string, 0, len(g.neighborhoods))
	for id := range g.neighborhoods {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}
