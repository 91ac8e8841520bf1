package closest

import (
	"context"
	"fmt"
	"runtime"

	"github.com/soypat/closest/internal/diag"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Pair is an ordered pair of primitives for Batch.
type Pair struct {
	A, B Primitive
}

type batchConfig struct {
	workers int
}

// BatchOption configures Batch.
type BatchOption func(*batchConfig)

// WithWorkers limits the number of goroutines Batch runs at once.
// Values below 1 are ignored. The default is GOMAXPROCS.
func WithWorkers(n int) BatchOption {
	return func(c *batchConfig) {
		if n >= 1 {
			c.workers = n
		}
	}
}

// Batch computes Between for every pair concurrently. Results are in the
// order of pairs. The first failing pair or a cancelled context stops the
// batch and its error is returned.
func Batch(ctx context.Context, pairs []Pair, opts ...BatchOption) ([]Result, error) {
	cfg := batchConfig{workers: runtime.GOMAXPROCS(0)}
	for _, opt := range opts {
		opt(&cfg)
	}
	diag.L().Debug("batch start", zap.Int("pairs", len(pairs)), zap.Int("workers", cfg.workers))
	results := make([]Result, len(pairs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.workers)
	for i := range pairs {
		if gctx.Err() != nil {
			break
		}
		i := i
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			r, err := Between(pairs[i].A, pairs[i].B)
			if err != nil {
				return fmt.Errorf("pair %d: %w", i, err)
			}
			results[i] = r
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
