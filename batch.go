package circstatx

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// CDFBatch evaluates dist at every point of xs concurrently and returns the
// results in input order. The first failure cancels the remaining work and is
// returned together with its index.
func (e *Evaluator) CDFBatch(ctx context.Context, dist VonMises, xs []float64) ([]float64, error) {
	return e.batch(ctx, xs, func(x float64) (float64, error) {
		return e.CDF(dist, x)
	})
}

// PDFBatch is CDFBatch for the density.
func (e *Evaluator) PDFBatch(ctx context.Context, dist VonMises, xs []float64) ([]float64, error) {
	return e.batch(ctx, xs, func(x float64) (float64, error) {
		return e.PDF(dist, x)
	})
}

func (e *Evaluator) batch(ctx context.Context, xs []float64, fn func(float64) (float64, error)) ([]float64, error) {
	out := make([]float64, len(xs))
	if len(xs) == 0 {
		return out, ctx.Err()
	}

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(e.concurrency)

	for i, x := range xs {
		if gCtx.Err() != nil {
			break
		}
		i, x := i, x
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			p, err := fn(x)
			if err != nil {
				return fmt.Errorf("point %d (x=%g): %w", i, x, err)
			}
			out[i] = p
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	// Wait succeeds when the loop stopped on a parent cancellation before
	// any goroutine observed it.
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
