// SPDX-License-Identifier: MIT

// Package core defines the central weighted Graph, Vertex and Edge types,
// and provides thread-safe primitives for building and querying them.
//
// The graph guards its vertex/edge catalog with mu and its memoized
// neighborhoods with muCache, so readers that only need a cached
// neighborhood never contend with catalog writers for long.
//
// Errors:
//
//	ErrEmptyVertexID  - vertex ID is the empty string.
//	ErrVertexNotFound - requested vertex does not exist.
//	ErrSelfLoop       - both endpoints of Connect share one ID.
//	ErrInvalidWeight  - edge weight is NaN or ±Inf.
package core

import (
	"sort"
	"sync"

	"github.com/cockroachdb/errors"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that the provided Vertex has an empty ID.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrSelfLoop indicates an attempt to connect a vertex to itself.
	ErrSelfLoop = errors.New("core: cannot connect a vertex to itself")

	// ErrInvalidWeight indicates a NaN or infinite edge weight.
	ErrInvalidWeight = errors.New("core: edge weight must be finite")
)

// DefaultWeight is the conventional weight of an unweighted connection.
const DefaultWeight = 1.0

// Vertex represents a node in the graph.
//
// Identity is by ID only: two Vertex values with the same ID denote the
// same vertex, and AddVertex replaces the stored Payload (last write wins).
type Vertex struct {
	// ID is the unique identifier for this Vertex.
	ID string

	// Payload stores arbitrary caller data (e.g. a code fragment or its embedding).
	// It is never inspected by the graph.
	Payload any
}

// Edge is a weighted connection between two distinct vertices.
//
// In undirected graphs From/To keep the order given to Connect, but the
// edge is keyed by the lexicographically sorted pair.
type Edge struct {
	// From is the first (source) vertex ID.
	From string

	// To is the second (target) vertex ID.
	To string

	// Weight is the similarity carried by the edge.
	Weight float64
}

// EdgeKey identifies an edge in the catalog. Directed keys keep
// (From, To) orientation; undirected keys hold the smaller ID in From.
type EdgeKey struct {
	From, To string
}

// String renders k as "from-to" for display only; IDs containing '-' make
// the rendering ambiguous, the key itself never is.
func (k EdgeKey) String() string {
	return k.From + "-" + k.To
}

// less orders keys by From, then To.
func (k EdgeKey) less(o EdgeKey) bool {
	if k.From != o.From {
		return k.From < o.From
	}

	return k.To < o.To
}

// Key returns the catalog key of e for a graph of the given mode.
// Complexity: O(1).
func (e Edge) Key(directed bool) EdgeKey {
	return edgeKey(e.From, e.To, directed)
}

// Has reports whether id is one of e's endpoints.
func (e Edge) Has(id string) bool {
	return e.From == id || e.To == id
}

// Other returns the endpoint opposite to id.
// The result is meaningless when id is not an endpoint of e.
func (e Edge) Other(id string) string {
	if e.From == id {
		return e.To
	}

	return e.From
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithDirected fixes the graph mode (true = directed, false = undirected).
// The mode cannot change after construction.
func WithDirected(directed bool) GraphOption {
	return func(g *Graph) { g.directed = directed }
}

// Graph is a simple weighted graph: no self-loops, no parallel edges.
//
// mu protects vertices and edges; muCache protects the memoized
// neighborhoods. Lock order is always mu -> muCache.
type Graph struct {
	mu      sync.RWMutex // guards vertices and edges
	muCache sync.Mutex   // guards neighborhoods

	directed bool // fixed at construction

	vertices map[string]*Vertex // vertex ID → Vertex
	edges    map[EdgeKey]*Edge  // edge key → Edge

	// neighborhoods[id] lists the keys of edges incident to id.
	// Entries are filled lazily and dropped only for the endpoints of a new edge.
	neighborhoods map[string][]EdgeKey
}

// NewGraph creates an empty Graph. By default the graph is undirected.
// Complexity: O(1).
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		vertices:      make(map[string]*Vertex),
		edges:         make(map[EdgeKey]*Edge),
		neighborhoods: make(map[string][]EdgeKey),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Directed reports the graph mode fixed at construction.
func (g *Graph) Directed() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.directed
}

// Order returns the number of vertices.
// Complexity: O(1).
func (g *Graph) Order() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.vertices)
}

// EdgeCount returns the number of edges.
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}

// edgeKey builds the catalog key for the pair (from, to).
func edgeKey(from, to string, directed bool) EdgeKey {
	if !directed && to < from {
		from, to = to, from
	}

	return EdgeKey{From: from, To: to}
}

func sortKeys(keys []EdgeKey) {
	sort.Slice(keys, func(i, j int) bool { return keys[i].less(keys[j]) })
}
