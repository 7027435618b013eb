package expr

import (
	"fmt"

	"github.com/lpil/nushell/internal/environment"
	"github.com/lpil/nushell/internal/scanner"
	"github.com/lpil/nushell/internal/types"
)

// AndOp is the And operator.
type AndOp struct {
	*simpleOperator
}

// And creates an expression that evaluates a && b and returns true if both are true.
// Both operands must evaluate to booleans.
func And(a, b Expr) Expr {
	return &AndOp{&simpleOperator{a, b, scanner.AND}}
}

// Eval implements the Expr interface. b is not evaluated if a is false.
func (op *AndOp) Eval(env *environment.Environment) (types.Value, error) {
	s, err := op.a.Eval(env)
	if err != nil {
		return FalseLiteral, err
	}
	ok, err := expectBoolean(s, op.a)
	if !ok || err != nil {
		return FalseLiteral, err
	}

	s, err = op.b.Eval(env)
	if err != nil {
		return FalseLiteral, err
	}
	ok, err = expectBoolean(s, op.b)
	if !ok || err != nil {
		return FalseLiteral, err
	}

	return TrueLiteral, nil
}

// OrOp is the Or operator.
type OrOp struct {
	*simpleOperator
}

// Or creates an expression that first evaluates a, returns true if true, then evaluates b.
// Both operands must evaluate to booleans.
func Or(a, b Expr) Expr {
	return &OrOp{&simpleOperator{a, b, scanner.OR}}
}

// Eval implements the Expr interface. b is not evaluated if a is true.
func (op *OrOp) Eval(env *environment.Environment) (types.Value, error) {
	s, err := op.a.Eval(env)
	if err != nil {
		return FalseLiteral, err
	}
	ok, err := expectBoolean(s, op.a)
	if err != nil {
		return FalseLiteral, err
	}
	if ok {
		return TrueLiteral, nil
	}

	s, err = op.b.Eval(env)
	if err != nil {
		return FalseLiteral, err
	}
	ok, err = expectBoolean(s, op.b)
	if err != nil {
		return FalseLiteral, err
	}
	if ok {
		return TrueLiteral, nil
	}

	return FalseLiteral, nil
}

// NotOp is the ! unary operator.
type NotOp struct {
	E Expr
}

// Not creates an expression that returns true if e is false.
func Not(e Expr) Expr {
	return &NotOp{E: e}
}

// Eval implements the Expr interface.
func (op *NotOp) Eval(env *environment.Environment) (types.Value, error) {
	s, err := op.E.Eval(env)
	if err != nil {
		return FalseLiteral, err
	}

	ok, err := expectBoolean(s, op.E)
	if err != nil {
		return FalseLiteral, err
	}
	if ok {
		return FalseLiteral, nil
	}

	return TrueLiteral, nil
}

// String implements the fmt.Stringer interface.
func (op *NotOp) String() string {
	return fmt.Sprintf("!%v", op.E)
}
