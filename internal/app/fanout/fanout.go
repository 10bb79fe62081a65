// Package fanout runs independent fetches on a fixed pool of workers and joins
// their outcomes. Results keep the input order so callers can pair each one
// with the job that produced it and apply it from a single goroutine.
package fanout

import (
	"context"
	"errors"
	"sync"
)

// Result holds the outcome of one job. Either Value is set or Err is non-nil.
type Result[R any] struct {
	Value R
	Err   error
}

// Run executes fn for every job using at most workers goroutines and blocks
// until all jobs finish. A worker count below one is treated as one.
//
// Jobs not yet started when ctx is canceled are not run; their Result carries
// ctx.Err(). A job already running is expected to honor ctx itself.
func Run[T, R any](ctx context.Context, workers int, jobs []T, fn func(context.Context, T) (R, error)) []Result[R] {
	results := make([]Result[R], len(jobs))
	if len(jobs) == 0 {
		return results
	}
	workers = max(1, min(workers, len(jobs)))

	next := make(chan int)
	var wg sync.WaitGroup
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range next {
				if err := ctx.Err(); err != nil {
					results[i] = Result[R]{Err: err}
					continue
				}
				v, err := fn(ctx, jobs[i])
				results[i] = Result[R]{Value: v, Err: err}
			}
		}()
	}

	for i := range jobs {
		next <- i
	}
	close(next)
	wg.Wait()

	return results
}

// Err folds the failures in results into one error. It returns nil when every
// job succeeded and the sole error unchanged when exactly one failed, so
// callers can compare it directly. Several failures are joined in job order.
func Err[R any](results []Result[R]) error {
	var errs []error
	for _, r := range results {
		if r.Err != nil {
			errs = append(errs, r.Err)
		}
	}

	switch len(errs) {
	case 0:
		return nil
	case 1:
		return errs[0]
	default:
		return errors.Join(errs...)
	}
}
