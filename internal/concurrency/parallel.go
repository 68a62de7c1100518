// Package concurrency provides a bounded worker pool for fanning work
// out over a slice.
package concurrency

import (
	"context"
	"sync"
)

// Options configures the worker pool.
type Options struct {
	// MaxWorkers caps the number of goroutines running at once.
	MaxWorkers int
}

// DefaultOptions returns the pool configuration used by the catalog
// pipeline.
func DefaultOptions() Options {
	return Options{MaxWorkers: 8}
}

// ForEach runs fn once per item across at most MaxWorkers goroutines.
// Items are addressed by index so callers can write results into a
// pre-sized slice without further locking. Workers stop picking up new
// items once ctx is cancelled; the errors fn returned are collected in
// no particular order.
func ForEach[T any](
	ctx context.Context,
	items []T,
	opts Options,
	fn func(ctx context.Context, index int, item T) error,
) []error {
	if len(items) == 0 {
		return nil
	}

	workers := opts.MaxWorkers
	if workers <= 0 {
		workers = DefaultOptions().MaxWorkers
	}
	if workers > len(items) {
		workers = len(items)
	}

	jobs := make(chan int)
	errc := make(chan error, len(items))

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				if err := fn(ctx, i, items[i]); err != nil {
					errc <- err
				}
			}
		}()
	}

feed:
	for i := range items {
		select {
		case jobs <- i:
		case <-ctx.Done():
			errc <- ctx.Err()
			break feed
		}
	}
	close(jobs)

	wg.Wait()
	close(errc)

	var errs []error
	for err := range errc {
		errs = append(errs, err)
	}
	return errs
}
