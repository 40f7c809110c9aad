package kdt

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Batch queries fan independent read-only searches out across CPUs. The
// tree is immutable, so no synchronization beyond the errgroup is needed.
// Results are positionally aligned with the queries slice.

// NearestBatch runs Nearest for every query concurrently.
func (m *KdMap[A, P, V]) NearestBatch(ctx context.Context, queries []P) ([]Entry[P, V], error) {
	results := make([]Entry[P, V], len(queries))

	err := m.runBatch(ctx, "nearest", len(queries), func(i int) error {
		p, v, err := m.Nearest(queries[i])
		if err != nil {
			return fmt.Errorf("query %d: %w", i, err)
		}
		results[i] = Entry[P, V]{Point: p, Value: v}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return results, nil
}

// KNearestBatch runs KNearest for every query concurrently.
func (m *KdMap[A, P, V]) KNearestBatch(ctx context.Context, k int, queries []P) ([][]Entry[P, V], error) {
	if k < 0 {
		err := fmt.Errorf("%w: %d", ErrInvalidK, k)
		m.logger.LogBatch("k-nearest", len(queries), err)
		return nil, err
	}

	results := make([][]Entry[P, V], len(queries))

	err := m.runBatch(ctx, "k-nearest", len(queries), func(i int) error {
		out, err := m.KNearest(k, queries[i])
		if err != nil {
			return fmt.Errorf("query %d: %w", i, err)
		}
		results[i] = out
		return nil
	})
	if err != nil {
		return nil, err
	}
	return results, nil
}

// InRadiusBatch runs InRadius for every query concurrently.
func (m *KdMap[A, P, V]) InRadiusBatch(ctx context.Context, radius A, queries []P) ([][]Entry[P, V], error) {
	if radius < 0 {
		err := fmt.Errorf("%w: %v", ErrNegativeRadius, radius)
		m.logger.LogBatch("in-radius", len(queries), err)
		return nil, err
	}

	results := make([][]Entry[P, V], len(queries))

	err := m.runBatch(ctx, "in-radius", len(queries), func(i int) error {
		out, err := m.InRadius(radius, queries[i])
		if err != nil {
			return fmt.Errorf("query %d: %w", i, err)
		}
		results[i] = out
		return nil
	})
	if err != nil {
		return nil, err
	}
	return results, nil
}

// runBatch executes fn(i) for each query index on a CPU-bound worker group,
// stopping at the first error or context cancellation.
func (m *KdMap[A, P, V]) runBatch(ctx context.Context, op string, n int, fn func(i int) error) error {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for i := 0; i < n; i++ {
		if err := ctx.Err(); err != nil {
			break
		}
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			return fn(i)
		})
	}

	err := g.Wait()
	if err == nil {
		err = ctx.Err()
	}
	m.logger.LogBatch(op, n, err)
	return err
}

// NearestBatch runs Nearest for every query concurrently.
func (t *KdTree[A, P]) NearestBatch(ctx context.Context, queries []P) ([]P, error) {
	entries, err := t.m.NearestBatch(ctx, queries)
	if err != nil {
		return nil, err
	}
	return points(entries), nil
}

// KNearestBatch runs KNearest for every query concurrently.
func (t *KdTree[A, P]) KNearestBatch(ctx context.Context, k int, queries []P) ([][]P, error) {
	nested, err := t.m.KNearestBatch(ctx, k, queries)
	if err != nil {
		return nil, err
	}
	out := make([][]P, len(nested))
	for i, entries := range nested {
		out[i] = points(entries)
	}
	return out, nil
}

// InRadiusBatch runs InRadius for every query concurrently.
func (t *KdTree[A, P]) InRadiusBatch(ctx context.Context, radius A, queries []P) ([][]P, error) {
	nested, err := t.m.InRadiusBatch(ctx, radius, queries)
	if err != nil {
		return nil, err
	}
	out := make([][]P, len(nested))
	for i, entries := range nested {
		out[i] = points(entries)
	}
	return out, nil
}
