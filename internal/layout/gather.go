package layout

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// gather runs fn for every item concurrently and returns the results in input
// order. Each task writes only its own slot of the result buffer; the buffer
// is read after the single Wait. The first error cancels the shared context
// and is returned without any results.
func gather[T, R any](ctx context.Context, limit int, items []T, fn func(ctx context.Context, item T) (R, error)) ([]R, error) {
	results := make([]R, len(items))
	if len(items) == 0 {
		return results, nil
	}

	g, gctx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}
	for i, item := range items {
		g.Go(func() error {
			out, err := fn(gctx, item)
			if err != nil {
				return err
			}
			results[i] = out
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
