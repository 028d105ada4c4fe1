package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/advancedcpp/drillbox/internal/domain"
	"github.com/advancedcpp/drillbox/internal/infra/yamlsuite"
)

func TestRootCommandRegistersSubcommands(t *testing.T) {
	root := newRootCmd()

	want := []string{"list", "run", "calc", "suite", "validate", "version"}
	got := map[string]bool{}
	for _, sub := range root.Commands() {
		got[sub.Name()] = true
	}
	for _, name := range want {
		if !got[name] {
			t.Errorf("expected subcommand %q registered", name)
		}
	}
	if !root.SilenceUsage {
		t.Error("expected SilenceUsage on root")
	}
	if root.PersistentFlags().Lookup("debug") == nil {
		t.Error("expected persistent --debug flag")
	}
}

func TestBuiltinCatalogHasAllDrills(t *testing.T) {
	catalog := builtinCatalog()

	want := []string{"calc", "greet", "sequence", "pool", "unique", "wordfreq", "fifo", "transform"}
	for _, id := range want {
		if _, ok := catalog.Lookup(id); !ok {
			t.Errorf("expected drill %q in catalog", id)
		}
	}
	if got := len(catalog.All()); got != len(want) {
		t.Errorf("expected %d drills, got %d", len(want), got)
	}
}

func TestSuiteRunFlags(t *testing.T) {
	c := suiteRunCmd()

	for _, name := range []string{"workspace", "suite", "no-save", "format"} {
		if c.Flags().Lookup(name) == nil {
			t.Errorf("expected flag --%s", name)
		}
	}
}

func TestRunCmdFlags(t *testing.T) {
	c := runCmd()
	if c.Flags().Lookup("param") == nil {
		t.Error("expected flag --param")
	}
	if c.Flags().Lookup("format") == nil {
		t.Error("expected flag --format")
	}
}

func TestParseParams(t *testing.T) {
	tests := []struct {
		name    string
		in      []string
		want    domain.Params
		wantErr bool
	}{
		{"empty", nil, domain.Params{}, false},
		{"single", []string{"limit=10"}, domain.Params{"limit": "10"}, false},
		{"value with equals", []string{"expr=a=b"}, domain.Params{"expr": "a=b"}, false},
		{"empty value", []string{"k="}, domain.Params{"k": ""}, false},
		{"missing equals", []string{"oops"}, nil, true},
		{"empty key", []string{"=v"}, nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseParams(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, got)
			}
			for k, v := range tt.want {
				if got[k] != v {
					t.Errorf("expected %s=%q, got %q", k, v, got[k])
				}
			}
		})
	}
}

func TestLooksLikePath(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"demo", false},
		{"demo.yaml", false},
		{"./demo.yaml", true},
		{"suites/demo.yaml", true},
		{`sub\demo.yaml`, true},
		{".hidden", true},
	}
	for _, tt := range tests {
		if got := looksLikePath(tt.in); got != tt.want {
			t.Errorf("looksLikePath(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestHasYAMLExt(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"demo.yaml", true},
		{"demo.yml", true},
		{"DEMO.YAML", true},
		{"demo", false},
		{"demo.json", false},
	}
	for _, tt := range tests {
		if got := hasYAMLExt(tt.in); got != tt.want {
			t.Errorf("hasYAMLExt(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestResolveSuitePath(t *testing.T) {
	root := t.TempDir()
	suitesDir := filepath.Join(root, "suites")
	if err := os.MkdirAll(suitesDir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(suitesDir, "smoke.yaml"), []byte("name: Smoke Drills\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	ws := &workspaceCtx{
		root:   root,
		cfg:    domain.DefaultConfig(),
		suites: yamlsuite.NewLoader(),
	}

	wantFile := filepath.Join(suitesDir, "smoke.yaml")

	tests := []struct {
		name string
		arg  string
		want string
	}{
		{"bare name", "smoke", wantFile},
		{"file name", "smoke.yaml", wantFile},
		{"relative path", "suites/smoke.yaml", wantFile},
		{"suite name field", "Smoke Drills", wantFile},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := resolveSuitePath(ws, tt.arg)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}

	if _, err := resolveSuitePath(ws, "nope"); err == nil {
		t.Error("expected error for unknown suite")
	}
	if _, err := resolveSuitePath(ws, "  "); err == nil {
		t.Error("expected error for empty suite arg")
	}
}

func TestIsStepFailed(t *testing.T) {
	ok := domain.StepResult{
		Assertions: []domain.AssertionResult{{Passed: true}},
		Extracts:   []domain.ExtractResult{{Success: true}},
	}
	if isStepFailed(ok) {
		t.Error("expected passing step")
	}

	withErr := domain.StepResult{
		Report: domain.Report{Error: &domain.RunError{Kind: domain.RunErrorExec}},
	}
	if !isStepFailed(withErr) {
		t.Error("expected failed step on run error")
	}

	withAssert := domain.StepResult{
		Assertions: []domain.AssertionResult{{Passed: false}},
	}
	if !isStepFailed(withAssert) {
		t.Error("expected failed step on failed assertion")
	}

	withExtract := domain.StepResult{
		Extracts: []domain.ExtractResult{{Success: false}},
	}
	if !isStepFailed(withExtract) {
		t.Error("expected failed step on failed extract")
	}
}

func TestCountFailures(t *testing.T) {
	res := domain.SuiteResult{
		Results: []domain.StepResult{
			{},
			{Report: domain.Report{Error: &domain.RunError{}}},
			{Assertions: []domain.AssertionResult{{Passed: false}}},
		},
	}
	if got := countFailures(res); got != 2 {
		t.Errorf("expected 2 failures, got %d", got)
	}
}

func TestPrintSuite_JSONIncludesRunID(t *testing.T) {
	res := domain.SuiteResult{
		SuiteName: "smoke",
		StartedAt: time.Now(),
		EndedAt:   time.Now(),
	}

	var buf bytes.Buffer
	if err := printSuite(&buf, res, "run-1", "json"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, `"run_id": "run-1"`) {
		t.Errorf("expected run_id in output:\n%s", out)
	}
	if !strings.Contains(out, `"smoke"`) {
		t.Errorf("expected suite name in output:\n%s", out)
	}
}

func TestPrintSuite_Pretty(t *testing.T) {
	res := domain.SuiteResult{
		SuiteName: "smoke",
		StartedAt: time.Now(),
		EndedAt:   time.Now(),
		Results: []domain.StepResult{
			{
				Name:  "alternation",
				Drill: "sequence",
				Assertions: []domain.AssertionResult{
					{Name: "max_ms", Passed: true, Message: "latency 1ms <= 100ms"},
				},
			},
		},
	}

	var buf bytes.Buffer
	if err := printSuite(&buf, res, "", "pretty"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"smoke", "[OK] alternation (sequence)", "1 pass / 0 fail"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in output:\n%s", want, out)
		}
	}
	if strings.Contains(out, "Run ID:") {
		t.Errorf("expected no run id line without id:\n%s", out)
	}
}

func TestPrintSuite_UnsupportedFormat(t *testing.T) {
	var buf bytes.Buffer
	if err := printSuite(&buf, domain.SuiteResult{}, "", "yaml"); err == nil {
		t.Fatal("expected error for unsupported format")
	}
}

func TestPrintReport_Formats(t *testing.T) {
	rep := domain.Report{
		DrillID:   "calc",
		LatencyMS: 2,
		Output:    "Result: 10\n",
		Data:      map[string]any{"result": 10.0},
	}

	var pretty bytes.Buffer
	if err := printReport(&pretty, rep, "pretty"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, want := range []string{"Drill:    calc", "Status:   OK", "result = 10"} {
		if !strings.Contains(pretty.String(), want) {
			t.Errorf("expected %q in pretty output:\n%s", want, pretty.String())
		}
	}

	var asJSON bytes.Buffer
	if err := printReport(&asJSON, rep, "json"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(asJSON.String(), `"drill": "calc"`) {
		t.Errorf("expected drill id in json output:\n%s", asJSON.String())
	}

	if err := printReport(&bytes.Buffer{}, rep, "xml"); err == nil {
		t.Fatal("expected error for unsupported format")
	}
}
