// Package transform demonstrates first-class function values: slice and map
// transforms take plain funcs where other languages reach for functor
// objects or wrapped callables.
package transform

import (
	"context"
	"fmt"
	"io"
	"sort"
	"strconv"

	"github.com/advancedcpp/drillbox/internal/domain"
)

// Apply returns a new slice with f applied to each element.
func Apply(xs []int, f func(int) int) []int {
	out := make([]int, len(xs))
	for i, x := range xs {
		out[i] = f(x)
	}
	return out
}

// ApplyValues rewrites m's values in place using f.
func ApplyValues(m map[int]int, f func(int) int) {
	for k, v := range m {
		m[k] = f(v)
	}
}

// binaryOp is a named function type; any two-arg closure assigns to it.
type binaryOp func(a, b int) int

type Drill struct{}

func New() *Drill { return &Drill{} }

func (*Drill) Info() domain.DrillInfo {
	return domain.DrillInfo{
		ID:      "transform",
		Title:   "First-class function transforms",
		Summary: "Double a slice, increment a map's values, and sum through a named func type",
		Topics:  []string{"functions", "closures"},
	}
}

func (*Drill) Run(_ context.Context, _ domain.Params, out io.Writer) (map[string]any, error) {
	doubled := Apply([]int{1, 2, 3, 4, 5}, func(x int) int { return x * 2 })
	fmt.Fprint(out, "Doubled:")
	for _, v := range doubled {
		fmt.Fprintf(out, " %d", v)
	}
	fmt.Fprintln(out)

	m := map[int]int{1: 10, 2: 20, 3: 30}
	ApplyValues(m, func(x int) int { return x + 1 })

	keys := make([]int, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Ints(keys)

	mapAfter := make(map[string]int, len(m))
	for _, k := range keys {
		fmt.Fprintf(out, "%d: %d\n", k, m[k])
		mapAfter[strconv.Itoa(k)] = m[k]
	}

	var add binaryOp = func(a, b int) int { return a + b }
	sums := []int{add(5, 6), add(10, 15)}
	fmt.Fprintf(out, "Sum: %d\n", sums[0])
	fmt.Fprintf(out, "Sum (via func value): %d\n", sums[1])

	return map[string]any{
		"doubled":   doubled,
		"map_after": mapAfter,
		"sums":      sums,
	}, nil
}
