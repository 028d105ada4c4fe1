package workspace

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/advancedcpp/drillbox/internal/domain"
)

type yamlConfig struct {
	Paths struct {
		Suites string `yaml:"suites"`
		Runs   string `yaml:"runs"`
	} `yaml:"paths"`
	Defaults struct {
		Format string `yaml:"format"`
	} `yaml:"defaults"`
}

// LoadConfig reads drillbox.yaml under root. A missing file yields the
// defaults; a malformed one is an error.
func LoadConfig(root string) (domain.Config, error) {
	cfg := domain.DefaultConfig()

	path := filepath.Join(root, "drillbox.yaml")
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return domain.Config{}, &domain.OpError{
			Op:   "workspace.loadconfig",
			Kind: domain.KindExecution,
			Path: path,
			Err:  err,
		}
	}

	var yc yamlConfig
	if err := yaml.Unmarshal(b, &yc); err != nil {
		return domain.Config{}, &domain.OpError{
			Op:   "workspace.loadconfig",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}

	if v := strings.TrimSpace(yc.Paths.Suites); v != "" {
		cfg.Paths.SuitesDir = v
	}
	if v := strings.TrimSpace(yc.Paths.Runs); v != "" {
		cfg.Paths.RunsDir = v
	}
	if v := strings.TrimSpace(yc.Defaults.Format); v != "" {
		cfg.Defaults.Format = v
	}

	return cfg, nil
}
