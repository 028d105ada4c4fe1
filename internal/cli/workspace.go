package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/advancedcpp/drillbox/internal/domain"
	"github.com/advancedcpp/drillbox/internal/infra/runstore"
	"github.com/advancedcpp/drillbox/internal/infra/workspace"
	"github.com/advancedcpp/drillbox/internal/infra/yamlsuite"
	"github.com/advancedcpp/drillbox/internal/ports"
)

type workspaceCtx struct {
	root string
	cfg  domain.Config

	suites ports.SuiteLoader
	store  ports.ArtifactStore
}

func loadWorkspace(workspaceFlag string) (*workspaceCtx, error) {
	root, err := resolveWorkspaceRoot(workspaceFlag)
	if err != nil {
		return nil, err
	}

	cfg, err := workspace.LoadConfig(root)
	if err != nil {
		return nil, err
	}

	loader := yamlsuite.NewLoader(
		yamlsuite.WithSuitesDir(cfg.Paths.SuitesDir),
	)

	store := runstore.NewJSONStore(root, cfg, runstore.WithIndex(true))

	return &workspaceCtx{
		root:   root,
		cfg:    cfg,
		suites: loader,
		store:  store,
	}, nil
}

func resolveWorkspaceRoot(workspaceFlag string) (string, error) {
	w := strings.TrimSpace(workspaceFlag)
	if w != "" {
		abs, err := filepath.Abs(w)
		if err != nil {
			return "", fmt.Errorf("invalid workspace path: %w", err)
		}
		return abs, nil
	}

	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("get working directory: %w", err)
	}

	// No drillbox.yaml marker anywhere up the tree: fall back to the
	// current directory with default paths.
	locator := workspace.NewFinder()
	root, err := locator.FindRoot(wd)
	if err != nil {
		return wd, nil
	}
	return root, nil
}

func resolveSuitePath(ws *workspaceCtx, arg string) (string, error) {
	in := strings.TrimSpace(arg)
	if in == "" {
		return "", fmt.Errorf("suite is required (use --suite or -s)")
	}

	// If arg looks like a path (contains separators), resolve relative to
	// the workspace root.
	if looksLikePath(in) {
		p := in
		if !filepath.IsAbs(p) {
			p = filepath.Join(ws.root, p)
		}
		return filepath.Clean(p), nil
	}

	suitesDir := filepath.Join(ws.root, ws.cfg.Paths.SuitesDir)

	// "smoke.yaml" -> file under the suites dir.
	if hasYAMLExt(in) {
		p := filepath.Join(suitesDir, in)
		if fileExists(p) {
			return p, nil
		}
	}

	// "smoke" -> smoke.yaml / smoke.yml under the suites dir.
	p1 := filepath.Join(suitesDir, in+".yaml")
	if fileExists(p1) {
		return p1, nil
	}
	p2 := filepath.Join(suitesDir, in+".yml")
	if fileExists(p2) {
		return p2, nil
	}

	// As a last resort: match by the suite "name" field.
	refs, err := ws.suites.ListSuites(ws.root)
	if err == nil {
		for _, r := range refs {
			if strings.EqualFold(r.Name, in) {
				return r.Path, nil
			}
		}
	}

	return "", fmt.Errorf("suite %q not found in %q", in, suitesDir)
}

func looksLikePath(s string) bool {
	return strings.ContainsAny(s, `/\`) || strings.HasPrefix(s, ".")
}

func hasYAMLExt(s string) bool {
	ext := strings.ToLower(filepath.Ext(s))
	return ext == ".yaml" || ext == ".yml"
}

func fileExists(p string) bool {
	info, err := os.Stat(p)
	return err == nil && !info.IsDir()
}
