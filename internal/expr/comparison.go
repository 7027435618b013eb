package expr

import (
	"fmt"

	"github.com/lpil/nushell/internal/environment"
	"github.com/lpil/nushell/internal/scanner"
	"github.com/lpil/nushell/internal/types"
)

// A cmpOp is a comparison operator.
type cmpOp struct {
	*simpleOperator
}

// newCmpOp creates a comparison operator.
func newCmpOp(a, b Expr, t scanner.Token) *cmpOp {
	return &cmpOp{&simpleOperator{a, b, t}}
}

// Eval compares a and b together using the operator specified when constructing the CmpOp
// and returns the result of the comparison.
// Equality never fails, ordering values of different kinds does.
func (op *cmpOp) Eval(env *environment.Environment) (types.Value, error) {
	return op.simpleOperator.eval(env, func(a, b types.Value) (types.Value, error) {
		ok, err := op.compare(a, b)
		if err != nil {
			return NullLiteral, err
		}
		if ok {
			return TrueLiteral, nil
		}

		return FalseLiteral, nil
	})
}

func (op *cmpOp) compare(l, r types.Value) (bool, error) {
	switch op.Tok {
	case scanner.EQ:
		return types.Equal(l, r), nil
	case scanner.NEQ:
		return !types.Equal(l, r), nil
	}

	c, err := types.Compare(l, r)
	if err != nil {
		return false, err
	}

	switch op.Tok {
	case scanner.GT:
		return c > 0, nil
	case scanner.GTE:
		return c >= 0, nil
	case scanner.LT:
		return c < 0, nil
	case scanner.LTE:
		return c <= 0, nil
	default:
		panic(fmt.Sprintf("unknown token %v", op.Tok))
	}
}

// Eq creates an expression that returns true if a equals b.
func Eq(a, b Expr) Expr {
	return newCmpOp(a, b, scanner.EQ)
}

// Neq creates an expression that returns true if a does not equal b.
func Neq(a, b Expr) Expr {
	return newCmpOp(a, b, scanner.NEQ)
}

// Gt creates an expression that returns true if a is greater than b.
func Gt(a, b Expr) Expr {
	return newCmpOp(a, b, scanner.GT)
}

// Gte creates an expression that returns true if a is greater than or equal to b.
func Gte(a, b Expr) Expr {
	return newCmpOp(a, b, scanner.GTE)
}

// Lt creates an expression that returns true if a is lesser than b.
func Lt(a, b Expr) Expr {
	return newCmpOp(a, b, scanner.LT)
}

// Lte creates an expression that returns true if a is lesser than or equal to b.
func Lte(a, b Expr) Expr {
	return newCmpOp(a, b, scanner.LTE)
}

// IsComparisonOperator returns true if e is one of
// ==, !=, >, >=, <, <= operators.
func IsComparisonOperator(op Operator) bool {
	_, ok := op.(*cmpOp)
	return ok
}
