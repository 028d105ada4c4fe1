package runstore

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/advancedcpp/drillbox/internal/domain"
)

func fixedNow() time.Time {
	return time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
}

func TestSaveRun_WritesArtifact(t *testing.T) {
	root := t.TempDir()
	store := NewJSONStore(root, domain.DefaultConfig())

	started := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	run := domain.SuiteArtifact{
		SuiteName: "Smoke Suite",
		SuitePath: "suites/smoke.yaml",
		StartedAt: started,
		Results: []domain.StepResult{
			{Name: "s1", Drill: "calc"},
		},
	}

	id, err := store.SaveRun(run)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id != "20240101T120000Z_smoke-suite" {
		t.Errorf("unexpected id %q", id)
	}

	path := filepath.Join(root, "runs", id+".json")
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("artifact not written: %v", err)
	}

	var got domain.SuiteArtifact
	if err := json.Unmarshal(b, &got); err != nil {
		t.Fatalf("artifact is not valid JSON: %v", err)
	}
	if got.ID != id {
		t.Errorf("expected embedded id %q, got %q", id, got.ID)
	}
	if got.SuiteName != "Smoke Suite" {
		t.Errorf("unexpected suite name %q", got.SuiteName)
	}
	if len(got.Results) != 1 {
		t.Errorf("expected 1 result, got %d", len(got.Results))
	}

	if _, err := os.Stat(path + ".tmp"); !os.IsNotExist(err) {
		t.Error("expected temp file removed after rename")
	}
}

func TestSaveRun_FallsBackToFilenameAndNow(t *testing.T) {
	root := t.TempDir()
	store := NewJSONStore(root, domain.DefaultConfig(), WithNow(fixedNow))

	id, err := store.SaveRun(domain.SuiteArtifact{
		SuitePath: "suites/smoke.yaml",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id != "20240101T120000Z_smoke" {
		t.Errorf("unexpected id %q", id)
	}
}

func TestSaveRun_CustomRunsDir(t *testing.T) {
	root := t.TempDir()
	cfg := domain.DefaultConfig()
	cfg.Paths.RunsDir = "artifacts"
	store := NewJSONStore(root, cfg, WithNow(fixedNow))

	id, err := store.SaveRun(domain.SuiteArtifact{SuiteName: "x"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := os.Stat(filepath.Join(root, "artifacts", id+".json")); err != nil {
		t.Errorf("expected artifact under custom runs dir: %v", err)
	}
}

func TestSaveRun_Index(t *testing.T) {
	root := t.TempDir()
	store := NewJSONStore(root, domain.DefaultConfig(), WithNow(fixedNow), WithIndex(true))

	if _, err := store.SaveRun(domain.SuiteArtifact{SuiteName: "a"}); err != nil {
		t.Fatal(err)
	}
	if _, err := store.SaveRun(domain.SuiteArtifact{SuiteName: "b"}); err != nil {
		t.Fatal(err)
	}

	b, err := os.ReadFile(filepath.Join(root, "runs", "index.jsonl"))
	if err != nil {
		t.Fatalf("index not written: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(b)), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 index lines, got %d", len(lines))
	}
	for _, line := range lines {
		var entry map[string]any
		if err := json.Unmarshal([]byte(line), &entry); err != nil {
			t.Fatalf("index line is not JSON: %v", err)
		}
		if entry["id"] == "" {
			t.Errorf("expected id in index entry: %s", line)
		}
	}
}

func TestSlugify(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Smoke Suite", "smoke-suite"},
		{"  spaced  ", "spaced"},
		{"a/b\\c", "a-b-c"},
		{"UPPER123", "upper123"},
		{"***", ""},
		{"", ""},
	}
	for _, tt := range tests {
		if got := slugify(tt.in); got != tt.want {
			t.Errorf("slugify(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
