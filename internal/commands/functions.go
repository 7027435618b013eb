package commands

import (
	"math"
	"strings"
	"unicode/utf8"

	"github.com/cockroachdb/errors"
	"github.com/lpil/nushell/internal/types"
)

// A function definition checks the number of arguments before calling fn.
type definition struct {
	name  string
	arity int
	fn    func(args ...types.Value) (types.Value, error)
}

func (d *definition) call(args ...types.Value) (types.Value, error) {
	if len(args) != d.arity {
		return nil, errors.Errorf("%s() takes %d argument(s), not %d", d.name, d.arity, len(args))
	}

	return d.fn(args...)
}

var builtinFunctions = map[string]*definition{
	"len":       {name: "len", arity: 1, fn: length},
	"lower":     {name: "lower", arity: 1, fn: lower},
	"upper":     {name: "upper", arity: 1, fn: upper},
	"abs":       {name: "abs", arity: 1, fn: abs},
	"date":      {name: "date", arity: 1, fn: date},
	"not":       {name: "not", arity: 1, fn: not},
	"from-json": {name: "from-json", arity: 1, fn: fromJSON},
}

// length returns the number of characters of a text,
// the number of elements of a list or the number of columns of a record.
func length(args ...types.Value) (types.Value, error) {
	v := args[0]

	switch v.Type() {
	case types.TypeText:
		return types.NewIntegerValue(int64(utf8.RuneCountInString(types.AsString(v)))), nil
	case types.TypeList:
		return types.NewIntegerValue(int64(types.AsList(v).Len())), nil
	case types.TypeRecord:
		return types.NewIntegerValue(int64(types.AsRecord(v).Len())), nil
	}

	return nil, errors.Errorf("len() expects a text, a list or a record, got %s", v.Type())
}

// lower returns the lower-case version of a text. Other values return null.
func lower(args ...types.Value) (types.Value, error) {
	if args[0].Type() != types.TypeText {
		return types.NewNullValue(), nil
	}

	return types.NewTextValue(strings.ToLower(types.AsString(args[0]))), nil
}

// upper returns the upper-case version of a text. Other values return null.
func upper(args ...types.Value) (types.Value, error) {
	if args[0].Type() != types.TypeText {
		return types.NewNullValue(), nil
	}

	return types.NewTextValue(strings.ToUpper(types.AsString(args[0]))), nil
}

func abs(args ...types.Value) (types.Value, error) {
	v := args[0]

	switch v.Type() {
	case types.TypeInteger:
		x := types.AsInt64(v)
		if x == math.MinInt64 {
			return nil, errors.New("abs() overflows")
		}
		if x < 0 {
			x = -x
		}
		return types.NewIntegerValue(x), nil
	case types.TypeDouble:
		return types.NewDoubleValue(math.Abs(types.AsFloat64(v))), nil
	}

	return nil, errors.Errorf("abs() expects a number, got %s", v.Type())
}

// date parses a text into a timestamp.
func date(args ...types.Value) (types.Value, error) {
	v := args[0]

	switch v.Type() {
	case types.TypeTimestamp:
		return v, nil
	case types.TypeText:
		t, err := types.ParseTimestamp(types.AsString(v))
		if err != nil {
			return nil, err
		}
		return types.NewTimestampValue(t), nil
	}

	return nil, errors.Errorf("date() expects a text, got %s", v.Type())
}

// not returns true if its argument is the zero value of its type, or null.
func not(args ...types.Value) (types.Value, error) {
	ok, err := types.IsTruthy(args[0])
	if err != nil {
		return nil, err
	}

	return types.NewBooleanValue(!ok), nil
}

// fromJSON parses a JSON text.
func fromJSON(args ...types.Value) (types.Value, error) {
	if args[0].Type() != types.TypeText {
		return nil, errors.Errorf("from-json() expects a text, got %s", args[0].Type())
	}

	return types.ParseJSON([]byte(types.AsString(args[0])))
}
