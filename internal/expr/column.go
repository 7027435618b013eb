package expr

import (
	"github.com/cockroachdb/errors"
	"github.com/lpil/nushell/internal/environment"
	"github.com/lpil/nushell/internal/types"
)

// Column reads a column of the current item, which must be a record.
// A bare word in a condition, such as size in "size > 10", is a column.
type Column string

func (c Column) String() string {
	return string(c)
}

func (c Column) Eval(env *environment.Environment) (types.Value, error) {
	it, ok := env.GetItem()
	if !ok {
		return NullLiteral, errors.Errorf("cannot read column %q outside of a pipeline", string(c))
	}

	return getMember(it, string(c))
}

func getMember(v types.Value, name string) (types.Value, error) {
	if v.Type() != types.TypeRecord {
		return NullLiteral, errors.Errorf("cannot read column %q of a %s value", name, v.Type())
	}

	return types.AsRecord(v).Get(name)
}
