package pool

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/advancedcpp/drillbox/internal/domain"
)

func TestRun_BoundedAndJoined(t *testing.T) {
	var buf bytes.Buffer
	p := domain.Params{
		"workers":  "3",
		"interval": "10ms",
		"duration": "80ms",
	}

	data, err := New().Run(context.Background(), p, &buf)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := data["workers"].(int); got != 3 {
		t.Errorf("workers = %d, want 3", got)
	}

	perWorker := data["per_worker"].([]int)
	if len(perWorker) != 3 {
		t.Fatalf("expected 3 per-worker counters, got %d", len(perWorker))
	}

	beats := data["beats"].(int)
	if beats < 3 {
		t.Errorf("expected at least one beat per worker, got %d total", beats)
	}
	sum := 0
	for _, n := range perWorker {
		sum += n
	}
	if sum != beats {
		t.Errorf("per-worker counts sum to %d, total says %d", sum, beats)
	}
}

func TestRun_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var buf bytes.Buffer
	_, err := New().Run(ctx, domain.Params{"duration": "10s"}, &buf)
	if err == nil {
		t.Fatal("expected error")
	}
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

func TestRun_InvalidWorkers(t *testing.T) {
	var buf bytes.Buffer
	for _, w := range []string{"0", "-1", "1000"} {
		_, err := New().Run(context.Background(), domain.Params{"workers": w}, &buf)
		if err == nil {
			t.Errorf("workers=%s: expected error", w)
			continue
		}
		if !domain.IsKind(err, domain.KindInvalidParam) {
			t.Errorf("workers=%s: expected invalid_param kind, got %v", w, err)
		}
	}
}

func TestRun_InvalidInterval(t *testing.T) {
	var buf bytes.Buffer
	_, err := New().Run(context.Background(), domain.Params{"interval": "zero"}, &buf)
	if err == nil {
		t.Fatal("expected error")
	}
	if !domain.IsKind(err, domain.KindInvalidParam) {
		t.Errorf("expected invalid_param kind, got %v", err)
	}
}
