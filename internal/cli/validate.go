package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func validateCmd() *cobra.Command {
	var workspaceFlag string
	var suite string

	c := &cobra.Command{
		Use:   "validate",
		Short: "Load and validate a suite without running it",
		RunE: func(_ *cobra.Command, _ []string) error {
			ws, err := loadWorkspace(workspaceFlag)
			if err != nil {
				return err
			}

			suitePath, err := resolveSuitePath(ws, suite)
			if err != nil {
				return err
			}

			s, err := ws.suites.LoadSuite(suitePath)
			if err != nil {
				return err
			}

			catalog := builtinCatalog()
			unknown := 0
			for _, step := range s.Steps {
				if _, ok := catalog.Lookup(step.Drill); !ok {
					unknown++
					fmt.Printf("step %q references unknown drill %q\n", step.Name, step.Drill)
				}
			}
			if unknown > 0 {
				return fmt.Errorf("suite %q invalid: %d unknown drill(s)", s.Name, unknown)
			}

			fmt.Printf("Suite %q is valid (%d step(s))\n", s.Name, len(s.Steps))
			return nil
		},
	}

	c.Flags().StringVarP(&workspaceFlag, "workspace", "w", "", "Workspace root (optional; autodetected if omitted)")
	c.Flags().StringVarP(&suite, "suite", "s", "", "Suite name or path (required)")

	_ = c.MarkFlagRequired("suite")
	return c
}
