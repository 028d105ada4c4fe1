package yamlsuite

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/advancedcpp/drillbox/internal/domain"
)

func writeSuite(t *testing.T, dir, name, body string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	if err := os.WriteFile(p, []byte(body), 0o644); err != nil {
		t.Fatalf("write suite: %v", err)
	}
	return p
}

func TestLoadSuite_FullDocument(t *testing.T) {
	body := `
name: smoke
vars:
  limit: "6"
steps:
  - name: alternation
    drill: sequence
    params:
      limit: "10"
    assert:
      max_ms: 2000
      jsonpath:
        "$.ordered":
          exists: true
          equals: "true"
    extract:
      last: "$.sequence[-1:]"
  - name: sums
    drill: calc
`
	p := writeSuite(t, t.TempDir(), "smoke.yaml", body)

	l := NewLoader()
	got, err := l.LoadSuite(p)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	maxMS := 2000
	equals := "true"
	want := domain.Suite{
		Name: "smoke",
		Vars: domain.Params{"limit": "6"},
		Steps: []domain.StepSpec{
			{
				Name:   "alternation",
				Drill:  "sequence",
				Params: domain.Params{"limit": "10"},
				Assert: domain.AssertionsSpec{
					MaxLatencyMS: &maxMS,
					JSONPath: map[string]domain.JSONPathAssertion{
						"$.ordered": {Exists: true, Equals: &equals},
					},
				},
				Extract: domain.ExtractSpec{"last": "$.sequence[-1:]"},
			},
			{
				Name:    "sums",
				Drill:   "calc",
				Params:  domain.Params{},
				Assert:  domain.AssertionsSpec{JSONPath: map[string]domain.JSONPathAssertion{}},
				Extract: domain.ExtractSpec{},
			},
		},
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("suite mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadSuite_MissingFile(t *testing.T) {
	l := NewLoader()
	_, err := l.LoadSuite(filepath.Join(t.TempDir(), "nope.yaml"))
	if !domain.IsKind(err, domain.KindNotFound) {
		t.Fatalf("expected not_found, got %v", err)
	}
}

func TestLoadSuite_MalformedYAML(t *testing.T) {
	p := writeSuite(t, t.TempDir(), "bad.yaml", "name: [unclosed")
	l := NewLoader()
	_, err := l.LoadSuite(p)
	if !domain.IsKind(err, domain.KindInvalidSuite) {
		t.Fatalf("expected invalid_suite, got %v", err)
	}
}

func TestLoadSuite_Validation(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"missing suite name", "steps:\n  - name: a\n    drill: calc\n"},
		{"missing step name", "name: s\nsteps:\n  - drill: calc\n"},
		{"missing step drill", "name: s\nsteps:\n  - name: a\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := writeSuite(t, t.TempDir(), "s.yaml", tt.body)
			l := NewLoader()
			_, err := l.LoadSuite(p)
			if !domain.IsKind(err, domain.KindInvalidSuite) {
				t.Fatalf("expected invalid_suite, got %v", err)
			}
		})
	}
}

func TestListSuites(t *testing.T) {
	root := t.TempDir()
	dir := filepath.Join(root, "suites")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}

	writeSuite(t, dir, "b.yaml", "name: bravo\n")
	writeSuite(t, dir, "a.yml", "name: alpha\n")
	writeSuite(t, dir, "noname.yaml", "steps: []\n")
	writeSuite(t, dir, "readme.txt", "not a suite")

	l := NewLoader()
	refs, err := l.ListSuites(root)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var names []string
	for _, r := range refs {
		names = append(names, r.Name)
	}
	want := []string{"alpha", "bravo", "noname"}
	if diff := cmp.Diff(want, names); diff != "" {
		t.Errorf("names mismatch (-want +got):\n%s", diff)
	}
}

func TestListSuites_MissingDir(t *testing.T) {
	l := NewLoader(WithSuitesDir("elsewhere"))
	_, err := l.ListSuites(t.TempDir())
	if !domain.IsKind(err, domain.KindNotFound) {
		t.Fatalf("expected not_found, got %v", err)
	}
}
