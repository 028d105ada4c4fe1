package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/advancedcpp/drillbox/internal/domain"
)

func calcCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "calc <num1> <operator> <num2>",
		Short: "Four-operator calculator (+, -, *, /)",
		Args:  cobra.ExactArgs(3),
		RunE: func(_ *cobra.Command, args []string) error {
			a, err := domain.ParseOperand(args[0])
			if err != nil {
				return err
			}
			b, err := domain.ParseOperand(args[2])
			if err != nil {
				return err
			}

			// Any calculator error propagates out of RunE: cobra writes it
			// to stderr and Execute maps it to a non-zero exit status.
			result, err := domain.Calculate(a, args[1], b)
			if err != nil {
				return err
			}

			fmt.Printf("Result: %g\n", result)
			return nil
		},
	}
}
