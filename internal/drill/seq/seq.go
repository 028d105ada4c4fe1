// Package seq implements the alternating sequence drill: two workers share
// one counter and interleave odd and even values in strict increasing order.
package seq

import (
	"context"
	"fmt"
	"io"
	"sort"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/advancedcpp/drillbox/internal/domain"
	"github.com/advancedcpp/drillbox/internal/drill"
)

// sequencer is the shared synchronization object for one run. It is scoped
// to the Run call and handed to both workers by reference; there is no
// process-wide state.
type sequencer struct {
	mu   sync.Mutex
	cond *sync.Cond

	// next is the value whose owner may print. Invariant: while the lock is
	// held, next equals the smallest value not yet emitted.
	next int

	stopErr error
}

func newSequencer() *sequencer {
	s := &sequencer{next: 1}
	s.cond = sync.NewCond(&s.mu)
	return s
}

// turn blocks (without spinning) until the counter reaches want, runs emit
// under the lock, advances the counter, and wakes the other worker. It
// returns the stop cause if the sequencer was stopped while waiting.
func (s *sequencer) turn(want int, emit func()) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for s.next != want && s.stopErr == nil {
		s.cond.Wait()
	}
	if s.stopErr != nil {
		return s.stopErr
	}

	emit()
	s.next++
	s.cond.Broadcast()
	return nil
}

// stop wakes all waiters and makes every subsequent turn fail with cause.
func (s *sequencer) stop(cause error) {
	s.mu.Lock()
	if s.stopErr == nil {
		s.stopErr = cause
	}
	s.mu.Unlock()
	s.cond.Broadcast()
}

// Drill prints 1..limit in order, odd values from worker A and even values
// from worker B.
type Drill struct{}

func New() *Drill { return &Drill{} }

func (*Drill) Info() domain.DrillInfo {
	return domain.DrillInfo{
		ID:      "sequence",
		Title:   "Alternating sequence printer",
		Summary: "Two workers interleave odd and even numbers through a shared condition-guarded counter",
		Topics:  []string{"goroutines", "sync.Cond", "mutex"},
	}
}

func (*Drill) Run(ctx context.Context, p domain.Params, out io.Writer) (map[string]any, error) {
	limit, err := drill.IntParam(p, "limit", 20)
	if err != nil {
		return nil, err
	}
	if limit < 1 {
		return nil, &domain.OpError{
			Op:   "sequence.params",
			Kind: domain.KindInvalidParam,
			Err:  fmt.Errorf("limit must be >= 1, got %d", limit),
		}
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s := newSequencer()

	// Emissions happen under s.mu, so plain append is safe.
	emitted := make([]int, 0, limit)

	// Wake blocked workers if the caller cancels.
	watchDone := make(chan struct{})
	defer close(watchDone)
	go func() {
		select {
		case <-ctx.Done():
			s.stop(ctx.Err())
		case <-watchDone:
		}
	}()

	worker := func(label string, first int) func() error {
		return func() error {
			// Both workers agree on the same bound; with an odd limit one of
			// them simply finishes an iteration earlier and the final
			// broadcast has no remaining waiter.
			for i := first; i <= limit; i += 2 {
				err := s.turn(i, func() {
					fmt.Fprintf(out, "worker %s: %d\n", label, i)
					emitted = append(emitted, i)
				})
				if err != nil {
					return err
				}
			}
			return nil
		}
	}

	g := new(errgroup.Group)
	g.Go(worker("A", 1))
	g.Go(worker("B", 2))
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return map[string]any{
		"limit":    limit,
		"sequence": emitted,
		"ordered":  sort.IntsAreSorted(emitted),
	}, nil
}
