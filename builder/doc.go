// SPDX-License-Identifier: MIT

// Package builder assembles deterministic core.Graph fixtures from small
// topology constructors.
//
// A Constructor mutates a graph using the resolved configuration; BuildGraph
// creates the graph and applies constructors in order:
//
//	g, err := builder.BuildGraph(nil,
//		[]builder.Option{builder.WithSeed(7)},
//		builder.Cliques(3, 4),
//		builder.Bridge(0, 4, 0.1),
//	)
//
// Vertex IDs come from the ID scheme (decimal by default). Edge weights come
// from the weight function (core.DefaultWeight by default). Randomized
// constructors require WithSeed or WithRand and are reproducible for a fixed
// seed.
//
// Errors:
//
//	ErrTooFewVertices     - a size parameter is below the constructor minimum.
//	ErrInvalidProbability - a probability lies outside [0, 1].
//	ErrNeedRandSource     - a randomized constructor has no RNG.
//	ErrConstructFailed    - a nil constructor or a failing core call.
package builder
