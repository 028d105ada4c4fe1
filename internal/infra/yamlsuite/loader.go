// Package yamlsuite loads suite definitions from yaml files.
package yamlsuite

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/advancedcpp/drillbox/internal/domain"
	"github.com/advancedcpp/drillbox/internal/ports"
)

type Loader struct {
	suitesDir string
}

type Option func(*Loader)

func WithSuitesDir(dir string) Option {
	return func(l *Loader) { l.suitesDir = dir }
}

func NewLoader(opts ...Option) *Loader {
	l := &Loader{suitesDir: "suites"}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

var _ ports.SuiteLoader = (*Loader)(nil)

func (l *Loader) LoadSuite(path string) (domain.Suite, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return domain.Suite{}, &domain.OpError{
			Op:   "yamlsuite.load",
			Kind: domain.KindNotFound,
			Path: path,
			Err:  err,
		}
	}

	var ys yamlSuite
	if err := yaml.Unmarshal(b, &ys); err != nil {
		return domain.Suite{}, &domain.OpError{
			Op:   "yamlsuite.load",
			Kind: domain.KindInvalidSuite,
			Path: path,
			Err:  err,
		}
	}

	return mapAndValidate(path, ys)
}

func (l *Loader) ListSuites(root string) ([]domain.SuiteRef, error) {
	dir := filepath.Join(root, l.suitesDir)
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, &domain.OpError{
			Op:   "yamlsuite.list",
			Kind: domain.KindNotFound,
			Path: dir,
			Err:  err,
		}
	}

	var refs []domain.SuiteRef
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		if !strings.HasSuffix(name, ".yaml") && !strings.HasSuffix(name, ".yml") {
			continue
		}

		p := filepath.Join(dir, name)
		n, _ := readSuiteName(p)
		if strings.TrimSpace(n) == "" {
			n = strings.TrimSuffix(name, filepath.Ext(name))
		}

		refs = append(refs, domain.SuiteRef{Name: n, Path: p})
	}

	sort.Slice(refs, func(i, j int) bool { return refs[i].Name < refs[j].Name })
	return refs, nil
}

func readSuiteName(path string) (string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	var v struct {
		Name string `yaml:"name"`
	}
	if err := yaml.Unmarshal(b, &v); err != nil {
		return "", err
	}
	return v.Name, nil
}

type yamlSuite struct {
	Name  string            `yaml:"name"`
	Vars  map[string]string `yaml:"vars"`
	Steps []yamlStep        `yaml:"steps"`
}

type yamlStep struct {
	Name    string            `yaml:"name"`
	Drill   string            `yaml:"drill"`
	Params  map[string]string `yaml:"params"`
	Assert  yamlAssertions    `yaml:"assert"`
	Extract map[string]string `yaml:"extract"`
}

type yamlAssertions struct {
	MaxMS    *int                             `yaml:"max_ms"`
	JSONPath map[string]yamlJSONPathAssertion `yaml:"jsonpath"`
}

type yamlJSONPathAssertion struct {
	Exists bool    `yaml:"exists"`
	Equals *string `yaml:"equals"`
}

func mapAndValidate(path string, ys yamlSuite) (domain.Suite, error) {
	if strings.TrimSpace(ys.Name) == "" {
		return domain.Suite{}, invalidField(path, "name", "suite name is required")
	}

	suite := domain.Suite{
		Name:  ys.Name,
		Vars:  domain.Params(ys.Vars),
		Steps: make([]domain.StepSpec, 0, len(ys.Steps)),
	}
	if suite.Vars == nil {
		suite.Vars = domain.Params{}
	}

	for i, s := range ys.Steps {
		fieldPrefix := fmt.Sprintf("steps[%d]", i)

		if strings.TrimSpace(s.Name) == "" {
			return domain.Suite{}, invalidField(path, fieldPrefix+".name", "step name is required")
		}
		if strings.TrimSpace(s.Drill) == "" {
			return domain.Suite{}, invalidField(path, fieldPrefix+".drill", "step drill is required")
		}

		step := domain.StepSpec{
			Name:   s.Name,
			Drill:  strings.TrimSpace(s.Drill),
			Params: domain.Params(s.Params),
			Assert: domain.AssertionsSpec{
				MaxLatencyMS: s.Assert.MaxMS,
				JSONPath:     mapJSONPath(s.Assert.JSONPath),
			},
			Extract: domain.ExtractSpec(s.Extract),
		}

		if step.Params == nil {
			step.Params = domain.Params{}
		}
		if step.Assert.JSONPath == nil {
			step.Assert.JSONPath = map[string]domain.JSONPathAssertion{}
		}
		if step.Extract == nil {
			step.Extract = domain.ExtractSpec{}
		}

		suite.Steps = append(suite.Steps, step)
	}

	return suite, nil
}

func mapJSONPath(in map[string]yamlJSONPathAssertion) map[string]domain.JSONPathAssertion {
	if in == nil {
		return nil
	}
	out := make(map[string]domain.JSONPathAssertion, len(in))
	for k, v := range in {
		out[k] = domain.JSONPathAssertion{Exists: v.Exists, Equals: v.Equals}
	}
	return out
}

func invalidField(path, field, msg string) error {
	return &domain.OpError{
		Op:   "yamlsuite.validate",
		Kind: domain.KindInvalidSuite,
		Path: path,
		Err:  fmt.Errorf("field %s: %s", field, msg),
	}
}
