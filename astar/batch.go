package astar

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/gridstar/gridgraph"
)

// Query is one start/goal pair for SearchMany.
type Query struct {
	Start Coord
	Goal  Coord
}

// Outcome pairs a Query with its Result. Err holds per-query failures
// (ErrInvalidCoordinate, ErrNoPathFound, ErrStepLimit).
type Outcome struct {
	Query  Query
	Result Result
	Err    error
}

// SearchMany runs independent queries concurrently against one shared grid,
// one Engine per query, with at most limit searches in flight (limit <= 0
// means unbounded). Outcomes are returned in query order.
//
// Per-query search failures are recorded in Outcome.Err and do not stop the
// batch. Invalid options, a nil grid and context cancellation abort it.
// Live rendering is never used; OnStep hooks, if any, run concurrently.
func SearchMany(ctx context.Context, g *gridgraph.Grid, queries []Query, limit int, opts ...Option) ([]Outcome, error) {
	// Validate options once, up front.
	if _, err := NewFromGrid(g, opts...); err != nil {
		return nil, err
	}

	out := make([]Outcome, len(queries))
	eg, egCtx := errgroup.WithContext(ctx)
	if limit > 0 {
		eg.SetLimit(limit)
	}
	engineOpts := append(append(make([]Option, 0, len(opts)+1), opts...), WithContext(egCtx))

	for i, q := range queries {
		i, q := i, q
		eg.Go(func() error {
			e, err := NewFromGrid(g, engineOpts...)
			if err != nil {
				return err
			}
			res, err := e.Find(q.Start, q.Goal, false)
			out[i] = Outcome{Query: q, Result: res, Err: err}
			if err != nil && !queryFailure(err) {
				return fmt.Errorf("astar: query %d %v→%v: %w", i, q.Start, q.Goal, err)
			}

			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return out, err
	}

	return out, nil
}

// queryFailure reports whether err belongs to a single query rather than the batch.
func queryFailure(err error) bool {
	return errors.Is(err, ErrInvalidCoordinate) ||
		errors.Is(err, ErrNoPathFound) ||
		errors.Is(err, ErrStepLimit)
}
