package cli

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/advancedcpp/drillbox/internal/infra/logger"
	"github.com/advancedcpp/drillbox/internal/infra/workspace"
	"github.com/advancedcpp/drillbox/internal/ui/tui"
)

func Execute() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var debug bool

	cmd := &cobra.Command{
		Use:          "drillbox",
		Short:        "Drillbox — runnable Go concurrency and collection drills",
		SilenceUsage: true,
		RunE: func(_ *cobra.Command, _ []string) error {
			wd, err := os.Getwd()
			if err != nil {
				wd = "."
			}
			wd, _ = filepath.Abs(wd)

			finder := workspace.NewFinder()

			logRoot := wd
			if root, ferr := finder.FindRoot(wd); ferr == nil && root != "" {
				logRoot = root
			}

			logCfg := logger.Config{
				Root:  logRoot,
				Debug: debug,
			}
			if debug {
				logCfg.Console = os.Stderr
			}
			cleanup, _ := logger.Setup(logCfg)
			if cleanup != nil {
				defer func() { _ = cleanup() }()
			}

			deps := tui.Deps{
				Catalog:          builtinCatalog(),
				WorkspaceLocator: finder,
				Logger:           logger.L(),
				Debug:            debug,
			}

			return tui.Run(deps)
		},
	}

	cmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable verbose logging to .drillbox/logs/drillbox.log")

	cmd.AddCommand(
		listCmd(),
		runCmd(),
		calcCmd(),
		suiteCmd(),
		validateCmd(),
		versionCmd(),
	)
	return cmd
}
