package collections

import (
	"context"
	"fmt"
	"io"

	"github.com/advancedcpp/drillbox/internal/domain"
	"github.com/advancedcpp/drillbox/internal/drill"
)

var defaultFifoValues = []int{10, 20, 30}

// Fifo walks through push/pop/drain on a queue.
type Fifo struct{}

func NewFifo() *Fifo { return &Fifo{} }

func (*Fifo) Info() domain.DrillInfo {
	return domain.DrillInfo{
		ID:      "fifo",
		Title:   "FIFO queue walkthrough",
		Summary: "Push values onto a queue, pop some, then drain front to back",
		Topics:  []string{"slices", "queues"},
	}
}

func (*Fifo) Run(_ context.Context, p domain.Params, out io.Writer) (map[string]any, error) {
	values, err := drill.IntsParam(p, "values", defaultFifoValues)
	if err != nil {
		return nil, err
	}
	pops, err := drill.IntParam(p, "pops", 1)
	if err != nil {
		return nil, err
	}
	if pops < 0 {
		pops = 0
	}
	if pops > len(values) {
		pops = len(values)
	}

	queue := make([]int, len(values))
	copy(queue, values)
	queue = queue[pops:]

	emptyBeforeDrain := len(queue) == 0
	if emptyBeforeDrain {
		fmt.Fprintln(out, "Queue is empty.")
	} else {
		fmt.Fprintln(out, "Queue is not empty.")
	}

	remaining := make([]int, len(queue))
	copy(remaining, queue)

	for len(queue) > 0 {
		fmt.Fprintf(out, "%d=>", queue[0])
		queue = queue[1:]
	}
	fmt.Fprintln(out)

	return map[string]any{
		"remaining":          remaining,
		"empty_before_drain": emptyBeforeDrain,
	}, nil
}
