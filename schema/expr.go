package schema

import (
	"fmt"
	"math"

	"github.com/expr-lang/expr"
)

// Expression scalars evaluate the raw value as an expression instead
// of parsing it literally, so sizes and rates can be written as
// "64 * 1024 * 1024" or "2 ** 20" in any backend.

// IntExpr accepts an expression producing an integer.
func IntExpr() Node[int64] {
	return Scalar("integer expression", func(raw string) (int64, error) {
		res, err := evalExpr(raw)
		if err != nil {
			return 0, err
		}
		switch v := res.(type) {
		case int:
			return int64(v), nil
		case int64:
			return v, nil
		case float64:
			if v == math.Trunc(v) {
				return int64(v), nil
			}
		}
		return 0, fmt.Errorf("Expected an integer expression, %q produced %v.", raw, res)
	})
}

// FloatExpr accepts an expression producing a number.
func FloatExpr() Node[float64] {
	return Scalar("numeric expression", func(raw string) (float64, error) {
		res, err := evalExpr(raw)
		if err != nil {
			return 0, err
		}
		switch v := res.(type) {
		case int:
			return float64(v), nil
		case int64:
			return float64(v), nil
		case float64:
			return v, nil
		}
		return 0, fmt.Errorf("Expected a numeric expression, %q produced %v.", raw, res)
	})
}

// BoolExpr accepts an expression producing a boolean.
func BoolExpr() Node[bool] {
	return Scalar("boolean expression", func(raw string) (bool, error) {
		res, err := evalExpr(raw)
		if err != nil {
			return false, err
		}
		if v, ok := res.(bool); ok {
			return v, nil
		}
		return false, fmt.Errorf("Expected a boolean expression, %q produced %v.", raw, res)
	})
}

func evalExpr(raw string) (any, error) {
	prg, err := expr.Compile(raw)
	if err != nil {
		return nil, fmt.Errorf("Bad expression %q: %v.", raw, err)
	}
	res, err := expr.Run(prg, map[string]any{})
	if err != nil {
		return nil, fmt.Errorf("Bad expression %q: %v.", raw, err)
	}
	return res, nil
}
