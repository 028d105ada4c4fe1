// Package assert evaluates suite step assertions against drill reports.
package assert

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"

	"github.com/PaesslerAG/jsonpath"

	"github.com/advancedcpp/drillbox/internal/domain"
)

func MaxLatency(maxMs int, latencyMs int64) domain.AssertionResult {
	if latencyMs <= int64(maxMs) {
		return domain.AssertionResult{
			Name:    "max_ms",
			Passed:  true,
			Message: fmt.Sprintf("latency %dms <= %dms", latencyMs, maxMs),
		}
	}

	return domain.AssertionResult{
		Name:    "max_ms",
		Passed:  false,
		Message: fmt.Sprintf("expected latency <= %dms, got %dms", maxMs, latencyMs),
	}
}

// Evaluate applies the assertions spec against the report. JSONPath
// assertions run over the report's Data after a JSON round trip, so nested
// typed values (slices, int maps) traverse like any parsed document.
func Evaluate(spec domain.AssertionsSpec, rep domain.Report) []domain.AssertionResult {
	var out []domain.AssertionResult

	if spec.MaxLatencyMS != nil {
		out = append(out, MaxLatency(*spec.MaxLatencyMS, rep.LatencyMS))
	}

	if len(spec.JSONPath) == 0 {
		return out
	}

	exprs := make([]string, 0, len(spec.JSONPath))
	for e := range spec.JSONPath {
		exprs = append(exprs, e)
	}
	sort.Strings(exprs) // stable output for tests/UI

	doc, err := normalize(rep.Data)
	if err != nil {
		for _, expr := range exprs {
			out = append(out, domain.AssertionResult{
				Name:    "jsonpath " + expr,
				Passed:  false,
				Message: fmt.Sprintf("report data is not JSON-serializable: %v", err),
			})
		}
		return out
	}

	for _, expr := range exprs {
		a := spec.JSONPath[expr]

		val, getErr := jsonpath.Get(expr, doc)
		exists := getErr == nil && !isEmptyValue(val)

		if a.Exists {
			if exists {
				out = append(out, domain.AssertionResult{
					Name:    "jsonpath " + expr,
					Passed:  true,
					Message: fmt.Sprintf("%s exists", expr),
				})
			} else {
				out = append(out, domain.AssertionResult{
					Name:    "jsonpath " + expr,
					Passed:  false,
					Message: fmt.Sprintf("%s not found", expr),
				})
			}
		}

		if a.Equals != nil {
			if !exists {
				out = append(out, domain.AssertionResult{
					Name:    "jsonpath " + expr,
					Passed:  false,
					Message: fmt.Sprintf("expected %s == %q, but path not found", expr, *a.Equals),
				})
				continue
			}
			got := valueString(val)
			if got == *a.Equals {
				out = append(out, domain.AssertionResult{
					Name:    "jsonpath " + expr,
					Passed:  true,
					Message: fmt.Sprintf("%s == %q", expr, got),
				})
			} else {
				out = append(out, domain.AssertionResult{
					Name:    "jsonpath " + expr,
					Passed:  false,
					Message: fmt.Sprintf("expected %s == %q, got %q", expr, *a.Equals, got),
				})
			}
		}
	}

	return out
}

// normalize round-trips data through JSON so jsonpath sees only
// map[string]any / []any / float64 / string / bool nodes.
func normalize(data map[string]any) (any, error) {
	b, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}
	var doc any
	if err := json.Unmarshal(b, &doc); err != nil {
		return nil, err
	}
	return doc, nil
}

func isEmptyValue(v any) bool {
	return v == nil
}

func valueString(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	default:
		b, err := json.Marshal(t)
		if err != nil {
			return fmt.Sprint(t)
		}
		return string(b)
	}
}
