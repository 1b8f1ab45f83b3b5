package ast

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// ErrDivisionByZero is returned by Evaluate when a divisor evaluates to 0.
var ErrDivisionByZero = errors.New("division by zero")

// Evaluate computes the value of e. Arithmetic is exact decimal arithmetic,
// so 40 / 3 is 13.3333333333333333 rather than the truncated integer 13.
func Evaluate(e Expression) (decimal.Decimal, error) {
	switch e := e.(type) {
	case *Constant:
		switch v := e.Value.(type) {
		case Integer:
			return decimal.NewFromInt(int64(v)), nil
		default:
			return decimal.Zero, fmt.Errorf("unsupported literal %T", v)
		}

	case *Binary:
		left, err := Evaluate(e.Left)
		if err != nil {
			return decimal.Zero, err
		}
		right, err := Evaluate(e.Right)
		if err != nil {
			return decimal.Zero, err
		}

		switch e.Op {
		case Add:
			return left.Add(right), nil
		case Subtract:
			return left.Sub(right), nil
		case Multiply:
			return left.Mul(right), nil
		case Divide:
			if right.IsZero() {
				return decimal.Zero, fmt.Errorf("%s: %w", e, ErrDivisionByZero)
			}
			return left.Div(right), nil
		}
		return decimal.Zero, fmt.Errorf("unsupported operator %s", e.Op)
	}

	return decimal.Zero, fmt.Errorf("unsupported expression %T", e)
}
