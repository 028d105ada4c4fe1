package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List available drills",
		RunE: func(_ *cobra.Command, _ []string) error {
			for _, d := range builtinCatalog().All() {
				info := d.Info()
				fmt.Printf("- %-10s %s\n", info.ID, info.Summary)
				if len(info.Topics) > 0 {
					fmt.Printf("  %s\n", strings.Join(info.Topics, ", "))
				}
			}
			return nil
		},
	}
}
