// SPDX-License-Identifier: MIT

package builder

import (
	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/codeclust/core"
)

// Path links vertices 0..n-1 in a chain. n >= 2.
func Path(n int) Constructor {
	return func(g *core.Graph, cfg Config) error {
		if err := validateMin("Path", "n", n, 2); err != nil {
			return err
		}
		for i := 0; i+1 < n; i++ {
			if err := cfg.connect(g, "Path", i, i+1); err != nil {
				return err
			}
		}

		return nil
	}
}

// Cycle is Path(n) closed by the edge (n-1, 0). n >= 3.
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg Config) error {
		if err := validateMin("Cycle", "n", n, 3); err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			if err := cfg.connect(g, "Cycle", i, (i+1)%n); err != nil {
				return err
			}
		}

		return nil
	}
}

// Star links hub 0 to leaves 1..n-1. n >= 2.
func Star(n int) Constructor {
	return func(g *core.Graph, cfg Config) error {
		if err := validateMin("Star", "n", n, 2); err != nil {
			return err
		}
		for i := 1; i < n; i++ {
			if err := cfg.connect(g, "Star", 0, i); err != nil {
				return err
			}
		}

		return nil
	}
}

// Complete links every pair of vertices 0..n-1. n >= 1; a single vertex is
// added without edges.
func Complete(n int) Constructor {
	return clique("Complete", 0, n)
}

// Cliques adds k disjoint complete graphs of size vertices each. Clique c
// owns indices c*size .. c*size+size-1.
func Cliques(k, size int) Constructor {
	return func(g *core.Graph, cfg Config) error {
		if err := validateMin("Cliques", "k", k, 1); err != nil {
			return err
		}
		for c := 0; c < k; c++ {
			if err := clique("Cliques", c*size, size)(g, cfg); err != nil {
				return err
			}
		}

		return nil
	}
}

func clique(method string, from, n int) Constructor {
	return func(g *core.Graph, cfg Config) error {
		if err := validateMin(method, "n", n, 1); err != nil {
			return err
		}
		if err := cfg.addVertices(g, method, from, n); err != nil {
			return err
		}
		for i := from; i < from+n; i++ {
			for j := i + 1; j < from+n; j++ {
				if err := cfg.connect(g, method, i, j); err != nil {
					return err
				}
			}
		}

		return nil
	}
}

// Bridge links vertex i to vertex j with weight w, ignoring the weight
// function.
func Bridge(i, j int, w float64) Constructor {
	return func(g *core.Graph, cfg Config) error {
		a, b := core.Vertex{ID: cfg.idFn(i)}, core.Vertex{ID: cfg.idFn(j)}
		if err := g.Connect(a, b, w); err != nil {
			return errors.Wrapf(errors.Mark(err, ErrConstructFailed), "Bridge: Connect(%s, %s)", a.ID, b.ID)
		}

		return nil
	}
}

// RandomSparse adds vertices 0..n-1 and includes each pair i < j
// independently with probability p. n >= 1, 0 <= p <= 1. An RNG is
// required when 0 < p < 1.
//
// Trials run in fixed (i, j) order, so a fixed seed yields a fixed graph.
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph, cfg Config) error {
		if err := validateMin("RandomSparse", "n", n, 1); err != nil {
			return err
		}
		if p < 0 || p > 1 {
			return errors.Wrapf(ErrInvalidProbability, "RandomSparse: p=%g", p)
		}
		if cfg.rng == nil && p > 0 && p < 1 {
			return errors.Wrap(ErrNeedRandSource, "RandomSparse")
		}
		if err := cfg.addVertices(g, "RandomSparse", 0, n); err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if p < 1 && (p == 0 || cfg.rng.Float64() >= p) {
					continue
				}
				if err := cfg.connect(g, "RandomSparse", i, j); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
