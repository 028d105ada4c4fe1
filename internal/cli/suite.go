package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/advancedcpp/drillbox/internal/domain"
	"github.com/advancedcpp/drillbox/internal/usecase"
)

func suiteCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "suite",
		Short: "Run and inspect drill suites",
	}

	c.AddCommand(suiteRunCmd())
	c.AddCommand(suiteListCmd())
	return c
}

func suiteRunCmd() *cobra.Command {
	var workspaceFlag string
	var suite string
	var noSave bool
	var format string

	c := &cobra.Command{
		Use:   "run",
		Short: "Run a suite of drills with assertions and extraction",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ws, err := loadWorkspace(workspaceFlag)
			if err != nil {
				return err
			}

			suitePath, err := resolveSuitePath(ws, suite)
			if err != nil {
				return err
			}

			store := ws.store
			if noSave {
				store = nil
			}

			uc := usecase.NewRunSuite(ws.suites, builtinCatalog(), store)

			res, runID, err := uc.Execute(cmd.Context(), suitePath)
			if err != nil {
				// Print what we can even when the run itself errored.
				_ = printSuite(os.Stdout, res, runID, format)
				return err
			}

			if err := printSuite(os.Stdout, res, runID, format); err != nil {
				return err
			}

			fails := countFailures(res)
			if fails > 0 {
				return fmt.Errorf("suite failed (%d failed step(s))", fails)
			}
			return nil
		},
	}

	c.Flags().StringVarP(&workspaceFlag, "workspace", "w", "", "Workspace root (optional; autodetected if omitted)")
	c.Flags().StringVarP(&suite, "suite", "s", "", "Suite name or path (required)")
	c.Flags().BoolVar(&noSave, "no-save", false, "Do not save run artifact under runs/")
	c.Flags().StringVar(&format, "format", "pretty", "Output format: pretty|json")

	_ = c.MarkFlagRequired("suite")
	return c
}

func suiteListCmd() *cobra.Command {
	var workspaceFlag string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List suites in the workspace",
		RunE: func(_ *cobra.Command, _ []string) error {
			ws, err := loadWorkspace(workspaceFlag)
			if err != nil {
				return err
			}

			refs, err := ws.suites.ListSuites(ws.root)
			if err != nil {
				return err
			}

			if len(refs) == 0 {
				fmt.Println("(no suites found)")
				return nil
			}

			fmt.Printf("Workspace: %s\n\n", ws.root)
			for _, r := range refs {
				rel, _ := filepath.Rel(ws.root, r.Path)
				fmt.Printf("- %s  (%s)\n", r.Name, rel)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&workspaceFlag, "workspace", "w", "", "Workspace root (optional; autodetected if omitted)")
	return cmd
}

func printSuite(w io.Writer, res domain.SuiteResult, runID string, format string) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		// Include runID (optional) as a wrapper to avoid changing the
		// domain model.
		payload := map[string]any{
			"run_id": runID,
			"run":    res,
		}
		return enc.Encode(payload)
	case "pretty", "":
		printPrettySuite(w, res, runID)
		return nil
	default:
		return fmt.Errorf("unsupported format %q (expected pretty|json)", format)
	}
}

func printPrettySuite(w io.Writer, res domain.SuiteResult, runID string) {
	total := res.EndedAt.Sub(res.StartedAt)
	if res.StartedAt.IsZero() || res.EndedAt.IsZero() {
		total = 0
	}

	fmt.Fprintf(w, "Suite:    %s\n", res.SuiteName)
	fmt.Fprintf(w, "Started:  %s\n", res.StartedAt.Format(time.RFC3339))
	fmt.Fprintf(w, "Ended:    %s\n", res.EndedAt.Format(time.RFC3339))
	fmt.Fprintf(w, "Duration: %s\n", total)
	if runID != "" {
		fmt.Fprintf(w, "Run ID:   %s\n", runID)
	}
	fmt.Fprintln(w)

	for _, r := range res.Results {
		status := "OK"
		if isStepFailed(r) {
			status = "FAIL"
		}

		fmt.Fprintf(w, "- [%s] %s (%s) %dms\n", status, r.Name, r.Drill, r.Report.LatencyMS)

		if r.Report.Error != nil {
			fmt.Fprintf(w, "  error: %s (%s)\n", r.Report.Error.Message, r.Report.Error.Kind)
		}

		if len(r.Assertions) > 0 {
			pass, fail := countAssertionPassFail(r.Assertions)
			fmt.Fprintf(w, "  assertions: %d pass / %d fail\n", pass, fail)
			for _, a := range r.Assertions {
				mark := "✓"
				if !a.Passed {
					mark = "✗"
				}
				fmt.Fprintf(w, "    %s %s — %s\n", mark, a.Name, a.Message)
			}
		}

		if len(r.Extracts) > 0 {
			ok, bad := countExtractPassFail(r.Extracts)
			fmt.Fprintf(w, "  extracts: %d ok / %d fail\n", ok, bad)
			for _, e := range r.Extracts {
				mark := "✓"
				if !e.Success {
					mark = "✗"
				}
				fmt.Fprintf(w, "    %s %s — %s\n", mark, e.Name, e.Message)
			}
		}

		if len(r.Extracted) > 0 {
			fmt.Fprintf(w, "  extracted vars:\n")
			for k, v := range r.Extracted {
				fmt.Fprintf(w, "    - %s = %s\n", k, v)
			}
		}

		fmt.Fprintln(w)
	}
}

func countFailures(res domain.SuiteResult) int {
	n := 0
	for _, r := range res.Results {
		if isStepFailed(r) {
			n++
		}
	}
	return n
}

func isStepFailed(r domain.StepResult) bool {
	if r.Report.Error != nil {
		return true
	}
	for _, a := range r.Assertions {
		if !a.Passed {
			return true
		}
	}
	for _, e := range r.Extracts {
		if !e.Success {
			return true
		}
	}
	return false
}

func countAssertionPassFail(in []domain.AssertionResult) (pass int, fail int) {
	for _, a := range in {
		if a.Passed {
			pass++
		} else {
			fail++
		}
	}
	return pass, fail
}

func countExtractPassFail(in []domain.ExtractResult) (ok int, bad int) {
	for _, e := range in {
		if e.Success {
			ok++
		} else {
			bad++
		}
	}
	return ok, bad
}
