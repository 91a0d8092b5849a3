package executor

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"golang.org/x/sync/errgroup"
	"pkg.jsn.cam/swapstage/pkg/stage"
)

// MapOutput is everything the map phase produced.
type MapOutput struct {
	Records []stage.KeyValue
	Chunks  int
	Lines   int
}

// MapPhase drains chunks on parallelism goroutines. The first Map error stops
// the remaining goroutines and is returned.
func MapPhase(ctx context.Context, chunks <-chan []string, worker stage.Worker, parallelism int) (*MapOutput, error) {
	if parallelism <= 0 {
		return nil, ErrInvalidParallelism
	}

	var (
		mu  sync.Mutex
		out MapOutput
	)

	g, ctx := errgroup.WithContext(ctx)
	for range parallelism {
		g.Go(func() error {
			for {
				var chunk []string
				var ok bool
				select {
				case <-ctx.Done():
					return ctx.Err()
				case chunk, ok = <-chunks:
					if !ok {
						return nil
					}
				}

				var emitted []stage.KeyValue
				err := worker.Map(chunk, func(kv stage.KeyValue) {
					emitted = append(emitted, kv)
				})
				if err != nil {
					return fmt.Errorf("%w: %w", ErrMap, err)
				}

				mu.Lock()
				out.Records = append(out.Records, emitted...)
				out.Chunks++
				out.Lines += len(chunk)
				mu.Unlock()
			}
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &out, nil
}

// ReducePhase calls worker.Reduce for every group in ascending key order.
func ReducePhase(groups map[string][]string, worker stage.Worker) ([]stage.KeyValue, error) {
	keys := make([]string, 0, len(groups))
	for key := range groups {
		keys = append(keys, key)
	}
	slices.Sort(keys)

	var results []stage.KeyValue
	emitter := func(kv stage.KeyValue) {
		results = append(results, kv)
	}

	for _, key := range keys {
		if err := worker.Reduce(key, groups[key], emitter); err != nil {
			return nil, fmt.Errorf("%w: key %s: %w", ErrReduce, key, err)
		}
	}

	return results, nil
}
