// SPDX-License-Identifier: MIT
//
// File: analysis.go
// Role: Pure read-only descriptors of a Graph: density, regularity label,
//       and the edge boundary of a vertex subset.

package core

import "strconv"

// NotRegular is the Regularity label of a graph whose vertices differ in weighted degree.
const NotRegular = "not regular"

// Density returns the fraction of possible edges present, or 0 when the
// graph has at most one vertex: 2·E / (V·(V−1)) for undirected graphs and
// E / (V·(V−1)) for directed ones, where each ordered pair may hold an edge.
// The result always lies in [0,1].
// Complexity: O(1).
func Density(g *Graph) float64 {
	g.mu.RLock()
	order, edges, directed := len(g.vertices), len(g.edges), g.directed
	g.mu.RUnlock()
	if order <= 1 {
		return 0
	}
	n := float64(order)
	possible := n * (n - 1)
	if !directed {
		possible /= 2
	}

	return float64(edges) / possible
}

// Regularity labels g as "<d>-regular" when every vertex has the same
// weighted degree d, and NotRegular otherwise.
//
// Degrees are compared exactly; a graph with no vertices is labelled
// "0-regular" (vacuously regular).
// Complexity: O(V·E) cold cache, O(V + E) warm.
func Regularity(g *Graph) string {
	var (
		degree float64
		seen   bool
	)
	for _, id := range g.VertexIDs() {
		d, err := g.Degree(id)
		if err != nil {
			// vertex vanished under a concurrent writer: no stable label exists
			return NotRegular
		}
		if !seen {
			degree, seen = d, true
			continue
		}
		if d != degree {
			return NotRegular
		}
	}

	return strconv.FormatFloat(degree, 'g', -1, 64) + "-regular"
}

// CutEdges returns the edges with exactly one endpoint inside subset,
// i.e. the edge boundary of the partition (subset, V∖subset), sorted by key.
//
// IDs in subset that are not vertices of g are ignored.
// Complexity: O(E + |subset|).
func CutEdges(g *Graph, subset []string) []Edge {
	inside := make(map[string]struct{}, len(subset))
	for _, id := range subset {
		inside[id] = struct{}{}
	}

	var out []Edge
	for _, e := range g.Edges() {
		_, fromIn := inside[e.From]
		_, toIn := inside[e.To]
		if fromIn != toIn {
			out = append(out, e)
		}
	}

	return out
}

// CutWeight returns the total weight of CutEdges(g, subset).
// Complexity: O(E + |subset|).
func CutWeight(g *Graph, subset []string) float64 {
	var w float64
	for _, e := range CutEdges(g, subset) {
		w += e.Weight
	}

	return w
}
