// SPDX-License-Identifier: MIT

package hiagg

import (
	"context"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"
)

// pairwise calls fn for every 0 ≤ i ≤ j < n. Calls run concurrently, at most
// sem's weight at a time, and the first error cancels the context handed to
// the remaining calls. fn must only write state owned by the pair (i, j).
func pairwise(ctx context.Context, n int, sem *semaphore.Weighted, fn func(ctx context.Context, i, j int) error) error {
	g, gctx := errgroup.WithContext(ctx)
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			if err := sem.Acquire(gctx, 1); err != nil {
				// gctx is done: either a call failed or the caller gave up
				if werr := g.Wait(); werr != nil {
					return werr
				}
				return err
			}
			g.Go(func() error {
				defer sem.Release(1)
				return fn(gctx, i, j)
			})
		}
	}

	return g.Wait()
}
