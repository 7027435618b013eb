package expr

import (
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/lpil/nushell/internal/environment"
	"github.com/lpil/nushell/internal/types"
)

var (
	TrueLiteral  = types.NewBooleanValue(true)
	FalseLiteral = types.NewBooleanValue(false)
	NullLiteral  = types.NewNullValue()
)

// An Expr evaluates to a value.
type Expr interface {
	Eval(*environment.Environment) (types.Value, error)
	String() string
}

// An EvalError is returned when an expression cannot be evaluated against an item.
type EvalError struct {
	Expr Expr
	Err  error
}

func (e *EvalError) Error() string {
	return fmt.Sprintf("cannot evaluate %s: %v", e.Expr, e.Err)
}

func (e *EvalError) Unwrap() error {
	return e.Err
}

// Evaluate evaluates e against item. Functions are resolved through reg,
// variables and environment bindings through scope.
// Any failure is returned as an *EvalError.
func Evaluate(e Expr, reg environment.Registry, item types.Value, scope *environment.Scope) (types.Value, error) {
	v, err := e.Eval(environment.New(reg, scope, item))
	if err != nil {
		return nil, &EvalError{Expr: e, Err: err}
	}

	return v, nil
}

// Parentheses is a special expression which turns
// any sub-expression as unary.
// It hides the underlying operator, if any, from the parser
// so that it doesn't get reordered by precedence.
type Parentheses struct {
	E Expr
}

// Eval calls the underlying expression Eval method.
func (p Parentheses) Eval(env *environment.Environment) (types.Value, error) {
	return p.E.Eval(env)
}

func (p Parentheses) String() string {
	return fmt.Sprintf("(%v)", p.E)
}

func expectBoolean(v types.Value, side Expr) (bool, error) {
	if v.Type() != types.TypeBoolean {
		return false, errors.Errorf("%s must evaluate to a boolean, got %s", side, v.Type())
	}

	return types.AsBool(v), nil
}
