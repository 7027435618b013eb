package expr

import (
	"fmt"

	"github.com/lpil/nushell/internal/environment"
	"github.com/lpil/nushell/internal/scanner"
	"github.com/lpil/nushell/internal/types"
)

type simpleOperator struct {
	a, b Expr
	Tok  scanner.Token
}

func (op *simpleOperator) Precedence() int {
	return op.Tok.Precedence()
}

func (op *simpleOperator) LeftHand() Expr {
	return op.a
}

func (op *simpleOperator) RightHand() Expr {
	return op.b
}

func (op *simpleOperator) SetLeftHandExpr(a Expr) {
	op.a = a
}

func (op *simpleOperator) SetRightHandExpr(b Expr) {
	op.b = b
}

func (op *simpleOperator) Token() scanner.Token {
	return op.Tok
}

func (op *simpleOperator) eval(env *environment.Environment, fn func(a, b types.Value) (types.Value, error)) (types.Value, error) {
	va, err := op.a.Eval(env)
	if err != nil {
		return NullLiteral, err
	}

	vb, err := op.b.Eval(env)
	if err != nil {
		return NullLiteral, err
	}

	return fn(va, vb)
}

func (op *simpleOperator) String() string {
	return fmt.Sprintf("%v %v %v", op.a, op.Tok, op.b)
}

// An Operator is a binary expression that
// takes two operands and executes an operation on them.
type Operator interface {
	Expr

	Precedence() int
	LeftHand() Expr
	RightHand() Expr
	SetLeftHandExpr(Expr)
	SetRightHandExpr(Expr)
	Token() scanner.Token
}
