package expr

import (
	"strings"

	"github.com/lpil/nushell/internal/environment"
	"github.com/lpil/nushell/internal/types"
)

// A LiteralValue represents a literal value of any type defined by the types package.
type LiteralValue struct {
	Value types.Value
}

// String implements the fmt.Stringer interface.
func (v LiteralValue) String() string {
	return v.Value.String()
}

// Eval returns l. It implements the Expr interface.
func (v LiteralValue) Eval(*environment.Environment) (types.Value, error) {
	return v.Value, nil
}

// LiteralExprList is a list of expressions.
type LiteralExprList []Expr

// String implements the fmt.Stringer interface.
func (l LiteralExprList) String() string {
	var b strings.Builder

	b.WriteRune('[')
	for i, e := range l {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(e.String())
	}
	b.WriteRune(']')

	return b.String()
}

// Eval evaluates all the expressions and returns a list. It implements the Expr interface.
func (l LiteralExprList) Eval(env *environment.Environment) (types.Value, error) {
	var err error
	values := make([]types.Value, len(l))
	for i, e := range l {
		values[i], err = e.Eval(env)
		if err != nil {
			return NullLiteral, err
		}
	}

	return types.NewListValue(values...), nil
}
