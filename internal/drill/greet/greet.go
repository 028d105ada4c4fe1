// Package greet is the smallest concurrency drill: one goroutine writes a
// greeting and is joined before Run returns.
package greet

import (
	"context"
	"fmt"
	"io"

	"github.com/advancedcpp/drillbox/internal/domain"
	"github.com/advancedcpp/drillbox/internal/drill"
)

const defaultMessage = "Hello from a goroutine!"

type Drill struct{}

func New() *Drill { return &Drill{} }

func (*Drill) Info() domain.DrillInfo {
	return domain.DrillInfo{
		ID:      "greet",
		Title:   "Hello from a goroutine",
		Summary: "Spawn one goroutine, print a greeting, join it",
		Topics:  []string{"goroutines"},
	}
}

func (*Drill) Run(ctx context.Context, p domain.Params, out io.Writer) (map[string]any, error) {
	msg := drill.StringParam(p, "message", defaultMessage)

	done := make(chan struct{})
	go func() {
		defer close(done)
		fmt.Fprintln(out, msg)
	}()

	select {
	case <-done:
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	return map[string]any{"message": msg}, nil
}
