// SPDX-License-Identifier: MIT

package metric

import (
	"context"

	"github.com/cockroachdb/errors"
	"golang.org/x/time/rate"
)

// RateLimiter is a Distance that waits on a token bucket before every call
// to the inner provider.
type RateLimiter[P any] struct {
	inner   Distance[P]
	limiter *rate.Limiter
}

// RateLimited wraps d so that calls never exceed limiter's rate.
// Put it inside a Cache so that hits do not consume tokens.
func RateLimited[P any](d Distance[P], limiter *rate.Limiter) *RateLimiter[P] {
	return &RateLimiter[P]{inner: d, limiter: limiter}
}

// Distance waits for a token, then calls the inner provider.
func (r *RateLimiter[P]) Distance(ctx context.Context, a, b P) (float64, error) {
	if err := r.limiter.Wait(ctx); err != nil {
		return 0, errors.Wrap(err, "metric: rate limit wait")
	}

	return r.inner.Distance(ctx, a, b)
}
