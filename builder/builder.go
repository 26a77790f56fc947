// SPDX-License-Identifier: MIT

package builder

import (
	"math/rand/v2"
	"strconv"

	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/codeclust/core"
)

// Sentinel errors for builder constructors. Callers branch with errors.Is.
var (
	ErrTooFewVertices     = errors.New("builder: parameter too small")
	ErrInvalidProbability = errors.New("builder: probability out of range")
	ErrNeedRandSource     = errors.New("builder: rng is required")
	ErrConstructFailed    = errors.New("builder: construction failed")
)

// IDFn maps a vertex index to its ID.
type IDFn func(int) string

// WeightFn draws an edge weight. rng is nil unless WithSeed or WithRand
// was given.
type WeightFn func(rng *rand.Rand) float64

// Config is the resolved BuildGraph configuration, passed by value to
// every Constructor.
type Config struct {
	idFn     IDFn
	rng      *rand.Rand
	weightFn WeightFn
}

// ID returns the vertex ID of index i.
func (c Config) ID(i int) string { return c.idFn(i) }

// Rand returns the configured RNG, or nil when none was given.
func (c Config) Rand() *rand.Rand { return c.rng }

// Weight draws the next edge weight.
func (c Config) Weight() float64 { return c.weightFn(c.rng) }

// Option configures a BuildGraph call.
type Option func(*Config)

// Constructor adds one topology to g. Callers outside this package may
// write their own using the Config accessors.
type Constructor func(g *core.Graph, cfg Config) error

func newConfig(opts ...Option) Config {
	cfg := Config{
		idFn:     DecimalID,
		weightFn: ConstantWeight(core.DefaultWeight),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// BuildGraph creates a graph with gopts and applies cons in order.
//
// Errors:
//   - ErrConstructFailed for a nil constructor.
//   - The first constructor error, wrapped.
//
// Complexity: the sum of the constructors' costs.
func BuildGraph(gopts []core.GraphOption, opts []Option, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph(gopts...)
	cfg := newConfig(opts...)
	for i, fn := range cons {
		if fn == nil {
			return nil, errors.Wrapf(ErrConstructFailed, "BuildGraph: nil constructor at index %d", i)
		}
		if err := fn(g, cfg); err != nil {
			return nil, errors.Wrap(err, "BuildGraph")
		}
	}

	return g, nil
}

// DecimalID returns "0", "1", "2", ...
func DecimalID(i int) string { return strconv.Itoa(i) }

// WithIDScheme sets the vertex ID scheme. It panics on nil.
func WithIDScheme(fn IDFn) Option {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}

	return func(c *Config) { c.idFn = fn }
}

// WithRand uses r for every random draw. It panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("builder: WithRand(nil)")
	}

	return func(c *Config) { c.rng = r }
}

// WithSeed seeds a PCG source for every random draw.
func WithSeed(seed uint64) Option {
	return func(c *Config) { c.rng = rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)) }
}

// WithWeightFn sets the edge weight function. It panics on nil.
func WithWeightFn(fn WeightFn) Option {
	if fn == nil {
		panic("builder: WithWeightFn(nil)")
	}

	return func(c *Config) { c.weightFn = fn }
}

// ConstantWeight always returns w.
func ConstantWeight(w float64) WeightFn {
	return func(*rand.Rand) float64 { return w }
}

// UniformWeight draws from [lo, hi). Without an RNG it returns the midpoint.
func UniformWeight(lo, hi float64) WeightFn {
	return func(rng *rand.Rand) float64 {
		if rng == nil {
			return (lo + hi) / 2
		}
		return lo + rng.Float64()*(hi-lo)
	}
}

func (c Config) connect(g *core.Graph, method string, i, j int) error {
	a, b := core.Vertex{ID: c.idFn(i)}, core.Vertex{ID: c.idFn(j)}
	if err := g.Connect(a, b, c.Weight()); err != nil {
		return errors.Wrapf(errors.Mark(err, ErrConstructFailed), "%s: Connect(%s, %s)", method, a.ID, b.ID)
	}

	return nil
}

func (c Config) addVertices(g *core.Graph, method string, from, n int) error {
	for i := from; i < from+n; i++ {
		if err := g.AddVertex(core.Vertex{ID: c.idFn(i)}); err != nil {
			return errors.Wrapf(errors.Mark(err, ErrConstructFailed), "%s: AddVertex(%s)", method, c.idFn(i))
		}
	}

	return nil
}

func validateMin(method, name string, v, minimum int) error {
	if v < minimum {
		return errors.Wrapf(ErrTooFewVertices, "%s: %s=%d < %d", method, name, v, minimum)
	}

	return nil
}
