package solver

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/hailam/cubesolve/internal/cube"
)

// splitRoot dispatches one goroutine per candidate first move, each
// running try to completion, bounded to threads goroutines running at
// once via errgroup.Group.SetLimit — grounded on search.hpp's
// search_multi_thread, which gates its std::thread workers behind a
// condition variable on working_thread < thread_num. All of moves is
// always dispatched; only the concurrency is capped, not the set of
// first moves explored.
//
// Every try runs to completion; none is cancelled on a sibling's
// success. That costs the early-exit a first-to-finish scheme would
// give, but a first-to-finish winner depends on goroutine scheduling,
// which is exactly the nondeterminism solve must not expose: for a
// fixed thread count and fixed input, repeated runs must return the
// same move sequence. Once every try has reported in, splitRoot picks
// the lowest-indexed successful move in moves — a tiebreak fixed by
// the input, not by timing.
func splitRoot(ctx context.Context, threads int, moves []cube.Move, try func(ctx context.Context, m cube.Move) ([]cube.Move, bool)) ([]cube.Move, bool) {
	results := make([][]cube.Move, len(moves))
	succeeded := make([]bool, len(moves))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(threads)

	for i, m := range moves {
		i, m := i, m
		g.Go(func() error {
			result, ok := try(gctx, m)
			if ok {
				results[i] = result
				succeeded[i] = true
			}
			return nil
		})
	}
	_ = g.Wait() // workers never return an error; Wait only rendezvouses them

	for i, ok := range succeeded {
		if ok {
			return results[i], true
		}
	}
	return nil, false
}
