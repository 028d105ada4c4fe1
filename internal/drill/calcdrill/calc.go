// Package calcdrill wraps the four-operator calculator as a drill so suites
// can exercise and assert on it.
package calcdrill

import (
	"context"
	"fmt"
	"io"

	"github.com/advancedcpp/drillbox/internal/domain"
	"github.com/advancedcpp/drillbox/internal/drill"
)

type Drill struct{}

func New() *Drill { return &Drill{} }

func (*Drill) Info() domain.DrillInfo {
	return domain.DrillInfo{
		ID:      "calc",
		Title:   "Four-operator calculator",
		Summary: "Apply +, -, * or / to two operands with an explicit error taxonomy",
		Topics:  []string{"errors", "cli"},
	}
}

func (*Drill) Run(_ context.Context, p domain.Params, out io.Writer) (map[string]any, error) {
	rawA, err := drill.RequiredParam(p, "a")
	if err != nil {
		return nil, err
	}
	op, err := drill.RequiredParam(p, "op")
	if err != nil {
		return nil, err
	}
	rawB, err := drill.RequiredParam(p, "b")
	if err != nil {
		return nil, err
	}

	a, err := domain.ParseOperand(rawA)
	if err != nil {
		return nil, err
	}
	b, err := domain.ParseOperand(rawB)
	if err != nil {
		return nil, err
	}

	result, err := domain.Calculate(a, op, b)
	if err != nil {
		return nil, err
	}

	fmt.Fprintf(out, "Result: %g\n", result)

	return map[string]any{
		"a":      a,
		"b":      b,
		"op":     op,
		"result": result,
	}, nil
}
