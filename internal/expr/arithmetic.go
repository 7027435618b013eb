package expr

import (
	"math"

	"github.com/cockroachdb/errors"
	"github.com/lpil/nushell/internal/environment"
	"github.com/lpil/nushell/internal/scanner"
	"github.com/lpil/nushell/internal/types"
)

var (
	// ErrDivisionByZero is returned when dividing by zero or taking the remainder of a division by zero.
	ErrDivisionByZero = errors.New("division by zero")
	// ErrIntegerOverflow is returned when the result of an integer operation doesn't fit in 64 bits.
	ErrIntegerOverflow = errors.New("integer overflow")
)

// IsArithmeticOperator returns true if e is one of
// +, -, *, /, or % operators.
func IsArithmeticOperator(op Operator) bool {
	_, ok := op.(*arithmeticOperator)
	return ok
}

type arithmeticOperator struct {
	*simpleOperator
}

func (op *arithmeticOperator) Eval(env *environment.Environment) (types.Value, error) {
	return op.simpleOperator.eval(env, func(a, b types.Value) (types.Value, error) {
		if op.Tok == scanner.ADD && a.Type() == types.TypeText && b.Type() == types.TypeText {
			return types.NewTextValue(types.AsString(a) + types.AsString(b)), nil
		}

		if !a.Type().IsNumber() || !b.Type().IsNumber() {
			return NullLiteral, errors.Errorf("cannot apply %s to %s and %s", op.Tok, a.Type(), b.Type())
		}

		if a.Type() == types.TypeInteger && b.Type() == types.TypeInteger {
			return op.evalIntegers(types.AsInt64(a), types.AsInt64(b))
		}

		return op.evalDoubles(toFloat64(a), toFloat64(b))
	})
}

func (op *arithmeticOperator) evalIntegers(x, y int64) (types.Value, error) {
	switch op.Tok {
	case scanner.ADD:
		if isAddOverflow(x, y, math.MinInt64, math.MaxInt64) {
			return NullLiteral, errors.Wrapf(ErrIntegerOverflow, "%d + %d", x, y)
		}
		return types.NewIntegerValue(x + y), nil
	case scanner.SUB:
		if isSubOverflow(x, y, math.MinInt64, math.MaxInt64) {
			return NullLiteral, errors.Wrapf(ErrIntegerOverflow, "%d - %d", x, y)
		}
		return types.NewIntegerValue(x - y), nil
	case scanner.MUL:
		if isMulOverflow(x, y, math.MinInt64, math.MaxInt64) {
			return NullLiteral, errors.Wrapf(ErrIntegerOverflow, "%d * %d", x, y)
		}
		return types.NewIntegerValue(x * y), nil
	case scanner.DIV:
		if y == 0 {
			return NullLiteral, errors.WithStack(ErrDivisionByZero)
		}
		if x == math.MinInt64 && y == -1 {
			return NullLiteral, errors.Wrapf(ErrIntegerOverflow, "%d / %d", x, y)
		}
		if x%y != 0 {
			return types.NewDoubleValue(float64(x) / float64(y)), nil
		}
		return types.NewIntegerValue(x / y), nil
	case scanner.MOD:
		if y == 0 {
			return NullLiteral, errors.WithStack(ErrDivisionByZero)
		}
		return types.NewIntegerValue(x % y), nil
	}

	panic("unknown arithmetic token")
}

func (op *arithmeticOperator) evalDoubles(x, y float64) (types.Value, error) {
	switch op.Tok {
	case scanner.ADD:
		return types.NewDoubleValue(x + y), nil
	case scanner.SUB:
		return types.NewDoubleValue(x - y), nil
	case scanner.MUL:
		return types.NewDoubleValue(x * y), nil
	case scanner.DIV:
		if y == 0 {
			return NullLiteral, errors.WithStack(ErrDivisionByZero)
		}
		return types.NewDoubleValue(x / y), nil
	case scanner.MOD:
		if y == 0 {
			return NullLiteral, errors.WithStack(ErrDivisionByZero)
		}
		return types.NewDoubleValue(math.Mod(x, y)), nil
	}

	panic("unknown arithmetic token")
}

func isAddOverflow[T int32 | int64](left, right, min, max T) bool {
	if right > 0 {
		return left > max-right
	}

	return left < min-right
}

func isSubOverflow[T int32 | int64](left, right, min, max T) bool {
	if right > 0 {
		return left < min+right
	}

	return left > max+right
}

func isMulOverflow[T int32 | int64](left, right, min, max T) bool {
	// zero multiplication cannot overflow
	if left == 0 || right == 0 {
		return false
	}

	if left > 0 {
		if right > 0 {
			return left > max/right
		}
		return right < min/left
	}

	if right > 0 {
		return left < min/right
	}
	// both negative: the product is positive
	return left < max/right
}

func toFloat64(v types.Value) float64 {
	if v.Type() == types.TypeInteger {
		return float64(types.AsInt64(v))
	}

	return types.AsFloat64(v)
}

// Add creates an expression thats evaluates to the result of a + b.
func Add(a, b Expr) Expr {
	return &arithmeticOperator{&simpleOperator{a, b, scanner.ADD}}
}

// Sub creates an expression thats evaluates to the result of a - b.
func Sub(a, b Expr) Expr {
	return &arithmeticOperator{&simpleOperator{a, b, scanner.SUB}}
}

// Mul creates an expression thats evaluates to the result of a * b.
func Mul(a, b Expr) Expr {
	return &arithmeticOperator{&simpleOperator{a, b, scanner.MUL}}
}

// Div creates an expression thats evaluates to the result of a / b.
func Div(a, b Expr) Expr {
	return &arithmeticOperator{&simpleOperator{a, b, scanner.DIV}}
}

// Mod creates an expression thats evaluates to the result of a % b.
func Mod(a, b Expr) Expr {
	return &arithmeticOperator{&simpleOperator{a, b, scanner.MOD}}
}
