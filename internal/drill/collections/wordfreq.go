package collections

import (
	"context"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/advancedcpp/drillbox/internal/domain"
	"github.com/advancedcpp/drillbox/internal/drill"
)

const defaultText = "hello world hello you are a man."

// WordFreq counts word occurrences in a text.
type WordFreq struct{}

func NewWordFreq() *WordFreq { return &WordFreq{} }

func (*WordFreq) Info() domain.DrillInfo {
	return domain.DrillInfo{
		ID:      "wordfreq",
		Title:   "Word frequency count",
		Summary: "Count word occurrences in a text and print them in sorted order",
		Topics:  []string{"maps", "strings"},
	}
}

func (*WordFreq) Run(_ context.Context, p domain.Params, out io.Writer) (map[string]any, error) {
	text := drill.StringParam(p, "text", defaultText)

	counts := map[string]int{}
	for _, word := range strings.Fields(text) {
		counts[word]++
	}

	words := make([]string, 0, len(counts))
	for w := range counts {
		words = append(words, w)
	}
	sort.Strings(words)

	for _, w := range words {
		fmt.Fprintf(out, "%s:%d\n", w, counts[w])
	}

	return map[string]any{
		"counts":   counts,
		"distinct": len(counts),
	}, nil
}
