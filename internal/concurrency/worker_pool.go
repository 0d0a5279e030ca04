package concurrency

import (
	"context"
	"sync"
)

// WorkerFn handles one fan-out index.
type WorkerFn func(ctx context.Context, index int)

// FanOut runs fn once for every index in [0, tasks) across its own goroutines
// and waits for all of them. Workers are expected to watch ctx themselves when
// they do anything blocking.
func FanOut(ctx context.Context, tasks int, fn WorkerFn) {
	var wg sync.WaitGroup
	for i := 0; i < tasks; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			fn(ctx, idx)
		}(i)
	}
	wg.Wait()
}
