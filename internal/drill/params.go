package drill

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/advancedcpp/drillbox/internal/domain"
)

// StringParam returns p[key], or def when the key is absent or blank.
func StringParam(p domain.Params, key, def string) string {
	v := strings.TrimSpace(p[key])
	if v == "" {
		return def
	}
	return v
}

// RequiredParam returns p[key] or an invalid-param error when missing.
func RequiredParam(p domain.Params, key string) (string, error) {
	v := strings.TrimSpace(p[key])
	if v == "" {
		return "", paramErr(key, fmt.Errorf("parameter is required"))
	}
	return v, nil
}

// IntParam parses p[key] as an int, falling back to def when absent.
func IntParam(p domain.Params, key string, def int) (int, error) {
	raw := strings.TrimSpace(p[key])
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, paramErr(key, fmt.Errorf("expected integer, got %q", raw))
	}
	return v, nil
}

// DurationParam parses p[key] as a time.Duration (e.g. "200ms", "1s").
func DurationParam(p domain.Params, key string, def time.Duration) (time.Duration, error) {
	raw := strings.TrimSpace(p[key])
	if raw == "" {
		return def, nil
	}
	v, err := time.ParseDuration(raw)
	if err != nil {
		return 0, paramErr(key, fmt.Errorf("expected duration, got %q", raw))
	}
	if v <= 0 {
		return 0, paramErr(key, fmt.Errorf("duration must be positive, got %s", v))
	}
	return v, nil
}

// IntsParam parses p[key] as a comma-separated list of ints.
func IntsParam(p domain.Params, key string, def []int) ([]int, error) {
	raw := strings.TrimSpace(p[key])
	if raw == "" {
		out := make([]int, len(def))
		copy(out, def)
		return out, nil
	}

	parts := strings.Split(raw, ",")
	out := make([]int, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		v, err := strconv.Atoi(part)
		if err != nil {
			return nil, paramErr(key, fmt.Errorf("expected comma-separated integers, got %q", part))
		}
		out = append(out, v)
	}
	if len(out) == 0 {
		return nil, paramErr(key, fmt.Errorf("expected at least one integer"))
	}
	return out, nil
}

func paramErr(key string, err error) error {
	return &domain.OpError{
		Op:   "drill.params",
		Kind: domain.KindInvalidParam,
		Err:  fmt.Errorf("param %q: %w", key, err),
	}
}
