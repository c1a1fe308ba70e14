package poxel

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Pair is one independent collision query.
type Pair struct {
	A  *Mask
	TA Matrix
	B  *Mask
	TB Matrix
}

// BatchOption configures CollideAll.
type BatchOption func(*batchOptions)

type batchOptions struct {
	workers  int
	detector *Detector
}

// WithWorkers limits how many pairs are evaluated at once.
// If n is 0 or negative, GOMAXPROCS is used.
func WithWorkers(n int) BatchOption {
	return func(o *batchOptions) {
		o.workers = n
	}
}

// WithDetector evaluates the pairs with d instead of the default detector.
func WithDetector(d *Detector) BatchOption {
	return func(o *batchOptions) {
		if d != nil {
			o.detector = d
		}
	}
}

// CollideAll evaluates every pair concurrently and returns the results in
// input order.
//
// Pairs are independent: each runs as an ordinary Collide call on its own
// goroutine, sharing the (read-only) masks. The first failing pair cancels
// the remaining work; its error names the pair index. Cancelling ctx stops
// scheduling new pairs and returns ctx.Err().
func CollideAll(ctx context.Context, pairs []Pair, opts ...BatchOption) ([]bool, error) {
	o := batchOptions{detector: defaultDetector}
	for _, opt := range opts {
		opt(&o)
	}
	if o.workers <= 0 {
		o.workers = runtime.GOMAXPROCS(0)
	}

	Logger().Info("poxel: batch collide", "pairs", len(pairs), "workers", o.workers)

	results := make([]bool, len(pairs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.workers)

	for i, p := range pairs {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			hit, err := o.detector.Collide(p.A, p.TA, p.B, p.TB)
			if err != nil {
				return fmt.Errorf("poxel: pair %d: %w", i, err)
			}
			results[i] = hit
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return results, nil
}
