package dets

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Multi-source fan-out. Enumerating the connected space of many source
// determinants is embarrassingly parallel: each source's generation is a
// pure function writing into its own output slot, so the workers share no
// mutable state and need no synchronization beyond the group join.

// ConnectedAll enumerates the connected determinants of every source in
// parallel and returns one DetArray per source, index-aligned with the
// input. The number of concurrent workers is capped at GOMAXPROCS. The
// context cancels remaining work; the first error (cancellation or a
// malformed source) aborts the group and is returned.
// Complexity: sum over sources of their Connected cost, divided across
// workers.
func ConnectedAll(ctx context.Context, sources []Det) ([]*DetArray, error) {
	results := make([]*DetArray, len(sources))

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for i := range sources {
		i := i
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			arr, err := Connected(&sources[i])
			if err != nil {
				return err
			}
			results[i] = arr

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}

// ConnectedAllConstrained is ConnectedAll with every source narrowed
// through one shared constraint and exclusive bound maxOrb.
func ConnectedAllConstrained(ctx context.Context, sources []Det, c Constraint, maxOrb int) ([]*DetArray, error) {
	results := make([]*DetArray, len(sources))

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for i := range sources {
		i := i
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			arr, err := ConnectedConstrained(&sources[i], c, maxOrb)
			if err != nil {
				return err
			}
			results[i] = arr

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}
