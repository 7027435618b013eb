package expr

import (
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/lpil/nushell/internal/environment"
	"github.com/lpil/nushell/internal/types"
)

// ErrUnknownFunction is returned when a function call cannot be resolved.
var ErrUnknownFunction = errors.New("unknown function")

// A FunctionCall calls a function of the registry with the result of its arguments.
// The function is resolved at evaluation time.
type FunctionCall struct {
	Name string
	Args []Expr
}

func (f *FunctionCall) Eval(env *environment.Environment) (types.Value, error) {
	fn, ok := env.GetFunc(f.Name)
	if !ok {
		return NullLiteral, errors.Wrapf(ErrUnknownFunction, "%s()", f.Name)
	}

	args := make([]types.Value, len(f.Args))
	for i, a := range f.Args {
		v, err := a.Eval(env)
		if err != nil {
			return NullLiteral, err
		}
		args[i] = v
	}

	return fn(args...)
}

func (f *FunctionCall) String() string {
	var sb strings.Builder

	sb.WriteString(f.Name)
	sb.WriteByte('(')
	for i, a := range f.Args {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(a.String())
	}
	sb.WriteByte(')')

	return sb.String()
}
