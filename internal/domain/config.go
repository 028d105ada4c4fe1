package domain

// ConfigPaths holds workspace-relative directory names.
type ConfigPaths struct {
	SuitesDir string
	RunsDir   string
}

// ConfigDefaults holds fallback values for CLI flags.
type ConfigDefaults struct {
	Format string // pretty|json
}

// Config is the workspace configuration loaded from drillbox.yaml.
type Config struct {
	Paths    ConfigPaths
	Defaults ConfigDefaults
}

// DefaultConfig returns the configuration used when no drillbox.yaml exists.
func DefaultConfig() Config {
	return Config{
		Paths: ConfigPaths{
			SuitesDir: "suites",
			RunsDir:   "runs",
		},
		Defaults: ConfigDefaults{
			Format: "pretty",
		},
	}
}
