// Package pool implements the heartbeat worker pool drill: a fixed set of
// workers tick on an interval until the run's duration elapses or the caller
// cancels. Every worker is joined before Run returns.
package pool

import (
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/advancedcpp/drillbox/internal/domain"
	"github.com/advancedcpp/drillbox/internal/drill"
)

const maxWorkers = 64

type Drill struct{}

func New() *Drill { return &Drill{} }

func (*Drill) Info() domain.DrillInfo {
	return domain.DrillInfo{
		ID:      "pool",
		Title:   "Heartbeat worker pool",
		Summary: "A fixed-size pool of ticking workers with bounded lifetime and cooperative shutdown",
		Topics:  []string{"goroutines", "context", "ticker"},
	}
}

func (*Drill) Run(ctx context.Context, p domain.Params, out io.Writer) (map[string]any, error) {
	workers, err := drill.IntParam(p, "workers", 4)
	if err != nil {
		return nil, err
	}
	if workers < 1 || workers > maxWorkers {
		return nil, &domain.OpError{
			Op:   "pool.params",
			Kind: domain.KindInvalidParam,
			Err:  fmt.Errorf("workers must be in [1,%d], got %d", maxWorkers, workers),
		}
	}

	interval, err := drill.DurationParam(p, "interval", 200*time.Millisecond)
	if err != nil {
		return nil, err
	}
	duration, err := drill.DurationParam(p, "duration", time.Second)
	if err != nil {
		return nil, err
	}

	// The pool's own lifetime is bounded; the deadline firing is normal
	// termination, not an error.
	runCtx, cancel := context.WithTimeout(ctx, duration)
	defer cancel()

	var mu sync.Mutex // guards perWorker and out
	perWorker := make([]int, workers)

	g, gctx := errgroup.WithContext(runCtx)
	for w := 0; w < workers; w++ {
		w := w
		g.Go(func() error {
			t := time.NewTicker(interval)
			defer t.Stop()
			for {
				select {
				case <-gctx.Done():
					return nil
				case <-t.C:
					mu.Lock()
					perWorker[w]++
					fmt.Fprintf(out, "worker %d: beat %d\n", w+1, perWorker[w])
					mu.Unlock()
				}
			}
		})
	}

	// Workers only return nil; Wait is the join point.
	_ = g.Wait()

	// Distinguish caller cancellation from the drill's own deadline.
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	total := 0
	for _, n := range perWorker {
		total += n
	}
	fmt.Fprintf(out, "pool done: %d workers, %d beats\n", workers, total)

	return map[string]any{
		"workers":    workers,
		"beats":      total,
		"per_worker": perWorker,
	}, nil
}
