// Package collections holds the container walkthrough drills: set
// deduplication with membership probes, word frequency counting, and a FIFO
// queue.
package collections

import (
	"context"
	"fmt"
	"io"
	"sort"
	"strconv"

	"github.com/advancedcpp/drillbox/internal/domain"
	"github.com/advancedcpp/drillbox/internal/drill"
)

var (
	defaultUniqueValues = []int{10, 20, 10, 30, 40, 20, 50}
	defaultProbes       = []int{30, 60}
)

// Unique dedupes a list into a sorted set and answers membership probes.
type Unique struct{}

func NewUnique() *Unique { return &Unique{} }

func (*Unique) Info() domain.DrillInfo {
	return domain.DrillInfo{
		ID:      "unique",
		Title:   "Unique elements",
		Summary: "Deduplicate a list into a sorted set and probe membership",
		Topics:  []string{"maps", "sets"},
	}
}

func (*Unique) Run(_ context.Context, p domain.Params, out io.Writer) (map[string]any, error) {
	values, err := drill.IntsParam(p, "values", defaultUniqueValues)
	if err != nil {
		return nil, err
	}
	probes, err := drill.IntsParam(p, "find", defaultProbes)
	if err != nil {
		return nil, err
	}

	set := make(map[int]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}

	unique := make([]int, 0, len(set))
	for v := range set {
		unique = append(unique, v)
	}
	sort.Ints(unique)

	fmt.Fprint(out, "Unique elements:")
	for _, v := range unique {
		fmt.Fprintf(out, " %d", v)
	}
	fmt.Fprintln(out)

	found := make(map[string]bool, len(probes))
	for _, probe := range probes {
		_, ok := set[probe]
		found[strconv.Itoa(probe)] = ok
		if ok {
			fmt.Fprintf(out, "%d is in the set.\n", probe)
		} else {
			fmt.Fprintf(out, "%d is not in the set.\n", probe)
		}
	}

	return map[string]any{
		"unique": unique,
		"found":  found,
	}, nil
}
