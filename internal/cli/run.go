package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/advancedcpp/drillbox/internal/domain"
	"github.com/advancedcpp/drillbox/internal/usecase"
)

func runCmd() *cobra.Command {
	var params []string
	var format string

	c := &cobra.Command{
		Use:   "run <drill>",
		Short: "Run a single drill and print its report",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog := builtinCatalog()
			d, ok := catalog.Lookup(args[0])
			if !ok {
				ids := make([]string, 0)
				for _, known := range catalog.All() {
					ids = append(ids, known.Info().ID)
				}
				return fmt.Errorf("unknown drill %q (available: %s)", args[0], strings.Join(ids, ", "))
			}

			p, err := parseParams(params)
			if err != nil {
				return err
			}

			// Drill output streams to stdout as it is produced; the report
			// follows once the run ends.
			report := usecase.ExecuteDrill(cmd.Context(), d, p, os.Stdout)

			if err := printReport(os.Stdout, report, format); err != nil {
				return err
			}
			if report.Failed() {
				return fmt.Errorf("drill %s failed: %s", report.DrillID, report.Error.Message)
			}
			return nil
		},
	}

	c.Flags().StringArrayVarP(&params, "param", "p", nil, "Drill parameter as key=value (repeatable)")
	c.Flags().StringVar(&format, "format", "pretty", "Output format: pretty|json")
	return c
}

func parseParams(in []string) (domain.Params, error) {
	out := domain.Params{}
	for _, kv := range in {
		k, v, ok := strings.Cut(kv, "=")
		k = strings.TrimSpace(k)
		if !ok || k == "" {
			return nil, fmt.Errorf("invalid --param %q (expected key=value)", kv)
		}
		out[k] = v
	}
	return out, nil
}

func printReport(w io.Writer, report domain.Report, format string) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	case "pretty", "":
		printPrettyReport(w, report)
		return nil
	default:
		return fmt.Errorf("unsupported format %q (expected pretty|json)", format)
	}
}

func printPrettyReport(w io.Writer, report domain.Report) {
	status := "OK"
	if report.Failed() {
		status = "FAIL"
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "Drill:    %s\n", report.DrillID)
	fmt.Fprintf(w, "Status:   %s\n", status)
	fmt.Fprintf(w, "Started:  %s\n", report.StartedAt.Format(time.RFC3339))
	fmt.Fprintf(w, "Duration: %dms\n", report.LatencyMS)

	if report.Error != nil {
		fmt.Fprintf(w, "Error:    %s (%s)\n", report.Error.Message, report.Error.Kind)
	}

	if len(report.Data) > 0 {
		keys := make([]string, 0, len(report.Data))
		for k := range report.Data {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		fmt.Fprintln(w, "Data:")
		for _, k := range keys {
			fmt.Fprintf(w, "  %s = %v\n", k, report.Data[k])
		}
	}
}
