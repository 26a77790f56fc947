// SPDX-License-Identifier: MIT
//
// File: cache.go
// Role: Memoizing Distance wrapper for expensive (remote) providers.
// Policy:
//   - d(x, x) = 0 without calling the inner provider.
//   - Keys are unordered pairs: d(a, b) and d(b, a) share one entry.
//   - Concurrent misses on the same pair collapse into one inner call.
//   - Errors are never cached.
//   - The shared inner call ignores any single caller's cancellation; each
//     caller stops waiting when its own ctx is done.

package metric

import (
	"cmp"
	"context"
	"fmt"
	"sync/atomic"

	"github.com/cockroachdb/errors"
	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/sync/singleflight"
)

// DefaultCacheSize is the number of pairs NewCache keeps when size < 1.
const DefaultCacheSize = 1 << 16

type pairKey[P cmp.Ordered] struct{ lo, hi P }

func keyOf[P cmp.Ordered](a, b P) pairKey[P] {
	if b < a {
		a, b = b, a
	}

	return pairKey[P]{lo: a, hi: b}
}

// Cache is a Distance that memoizes an inner Distance in an LRU.
type Cache[P cmp.Ordered] struct {
	inner  Distance[P]
	lru    *lru.Cache[pairKey[P], float64]
	group  singleflight.Group
	misses atomic.Int64
}

// NewCache wraps d with an LRU of the given size.
func NewCache[P cmp.Ordered](d Distance[P], size int) (*Cache[P], error) {
	if d == nil {
		return nil, ErrNilDistance
	}
	if size < 1 {
		size = DefaultCacheSize
	}
	l, err := lru.New[pairKey[P], float64](size)
	if err != nil {
		return nil, errors.Wrap(err, "metric: creating distance cache")
	}

	return &Cache[P]{inner: d, lru: l}, nil
}

// Distance returns the memoized d(a, b), calling the inner provider on a miss.
func (c *Cache[P]) Distance(ctx context.Context, a, b P) (float64, error) {
	if a == b {
		return 0, nil
	}
	key := keyOf(a, b)
	if d, ok := c.lru.Get(key); ok {
		return d, nil
	}

	shared := context.WithoutCancel(ctx)
	ch := c.group.DoChan(fmt.Sprintf("%#v\x00%#v", key.lo, key.hi), func() (any, error) {
		if d, ok := c.lru.Get(key); ok {
			return d, nil
		}
		c.misses.Add(1)
		d, err := c.inner.Distance(shared, key.lo, key.hi)
		if err != nil {
			return nil, err
		}
		c.lru.Add(key, d)
		return d, nil
	})

	select {
	case <-ctx.Done():
		return 0, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return 0, res.Err
		}
		return res.Val.(float64), nil
	}
}

// Len returns the number of cached pairs.
func (c *Cache[P]) Len() int { return c.lru.Len() }

// Misses returns how many times the inner provider was called.
func (c *Cache[P]) Misses() int64 { return c.misses.Load() }

// Purge drops every cached pair.
func (c *Cache[P]) Purge() { c.lru.Purge() }
