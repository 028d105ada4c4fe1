package domain

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Calculator error sentinels. Message wording is part of the CLI contract:
// callers grep for "Division by zero" / "Invalid operator" in stderr.
var (
	ErrDivisionByZero      = errors.New("Division by zero is not allowed")
	ErrUnsupportedOperator = errors.New("Invalid operator: supported are +, -, *, /")
	ErrMalformedNumber     = errors.New("malformed numeric argument")
)

// Calculate applies one of the four arithmetic operators to a and b.
func Calculate(a float64, op string, b float64) (float64, error) {
	switch op {
	case "+":
		return a + b, nil
	case "-":
		return a - b, nil
	case "*":
		return a * b, nil
	case "/":
		if b == 0 {
			return 0, &OpError{
				Op:   "calc.divide",
				Kind: KindCalc,
				Err:  ErrDivisionByZero,
			}
		}
		return a / b, nil
	default:
		return 0, &OpError{
			Op:   "calc.operator",
			Kind: KindCalc,
			Err:  fmt.Errorf("%w (got %q)", ErrUnsupportedOperator, op),
		}
	}
}

// ParseOperand converts a CLI argument into an operand.
func ParseOperand(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, &OpError{
			Op:   "calc.parse",
			Kind: KindCalc,
			Err:  fmt.Errorf("%w: %q", ErrMalformedNumber, s),
		}
	}
	return v, nil
}
