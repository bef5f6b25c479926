// Package parallel implements cydec's chunk engine: splitting an array into
// fixed-size chunks, encoding/decoding each chunk independently with an
// order-preserving parallel map, and assembling/disassembling the
// MultiChunk frame around them.
//
// The concurrency shape is grounded on the worker-pool pattern other
// compression tooling in the retrieval pack uses for parallel block
// compression (e.g. errgroup.WithContext fanning out over fixed-size
// chunks before writing a block-indexed container) — generalized here to
// cydec's in-memory chunk index instead of a file format's block table.
package parallel

import (
	"golang.org/x/sync/errgroup"
)

// Executor is an order-preserving parallel map over a fixed number of
// independent units of work.
type Executor interface {
	// Map invokes fn(i) for every i in [0, n) concurrently and returns their
	// results in index order, regardless of completion order.
	//
	// If one or more invocations return an error, Map returns the error from
	// the lowest-indexed failing invocation; this makes failure
	// content-deterministic rather than schedule-dependent (ties broken by
	// chunk index ascending).
	Map(n int, fn func(i int) ([]byte, error)) ([][]byte, error)
}

// ErrgroupExecutor is the default Executor, backed by golang.org/x/sync/errgroup.
type ErrgroupExecutor struct{}

var _ Executor = ErrgroupExecutor{}

// NewExecutor creates the default work-stealing Executor.
func NewExecutor() ErrgroupExecutor {
	return ErrgroupExecutor{}
}

// Map implements Executor.
func (ErrgroupExecutor) Map(n int, fn func(i int) ([]byte, error)) ([][]byte, error) {
	if n == 0 {
		return nil, nil
	}

	results := make([][]byte, n)
	failures := make([]error, n)

	var g errgroup.Group
	for i := 0; i < n; i++ {
		g.Go(func() error {
			data, err := fn(i)
			if err != nil {
				// Record the failure by index rather than returning it, so a
				// slow-to-schedule early chunk can't be shadowed by a fast
				// later one: the caller always sees the lowest index's error.
				failures[i] = err
				return nil
			}

			results[i] = data

			return nil
		})
	}
	_ = g.Wait() // inner closures never return a non-nil error

	for i := 0; i < n; i++ {
		if failures[i] != nil {
			return nil, failures[i]
		}
	}

	return results, nil
}
