package expr

import (
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/lpil/nushell/internal/environment"
	"github.com/lpil/nushell/internal/types"
)

// A Variable is a named value of the scope.
// Two names are reserved: $it is the current item and $env
// is a record of the environment bindings.
type Variable string

const (
	ItVariable  Variable = "it"
	EnvVariable Variable = "env"
)

func (v Variable) String() string {
	return "$" + string(v)
}

func (v Variable) Eval(env *environment.Environment) (types.Value, error) {
	switch v {
	case ItVariable:
		it, ok := env.GetItem()
		if !ok {
			return NullLiteral, errors.New("$it is only available inside a pipeline")
		}
		return it, nil
	case EnvVariable:
		return env.GetScope().EnvRecord(), nil
	}

	val, ok := env.GetVar(string(v))
	if !ok {
		return NullLiteral, errors.Errorf("variable %s not found", v)
	}

	return val, nil
}

// A Path reads nested columns of the value returned by an expression, e.g. $it.size.
type Path struct {
	E       Expr
	Members []string
}

func (p Path) String() string {
	var sb strings.Builder

	sb.WriteString(p.E.String())
	for _, m := range p.Members {
		sb.WriteByte('.')
		sb.WriteString(m)
	}

	return sb.String()
}

func (p Path) Eval(env *environment.Environment) (types.Value, error) {
	v, err := p.E.Eval(env)
	if err != nil {
		return NullLiteral, err
	}

	for _, m := range p.Members {
		v, err = getMember(v, m)
		if err != nil {
			return NullLiteral, err
		}
	}

	return v, nil
}
