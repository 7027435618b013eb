package commands_test

import (
	"testing"
	"time"

	"github.com/lpil/nushell/internal/commands"
	"github.com/lpil/nushell/internal/expr"
	"github.com/lpil/nushell/internal/parser"
	"github.com/lpil/nushell/internal/testutil"
	"github.com/lpil/nushell/internal/types"
	"github.com/stretchr/testify/require"
)

func TestFunctions(t *testing.T) {
	reg := commands.Default()
	item := testutil.MakeValue(t, `{"name": "Foo", "tags": ["a", "b"], "n": -3}`)

	tests := []struct {
		expr  string
		res   types.Value
		fails bool
	}{
		{"len(name)", types.NewIntegerValue(3), false},
		{"len('héllo')", types.NewIntegerValue(5), false},
		{"len(tags)", types.NewIntegerValue(2), false},
		{"len($it)", types.NewIntegerValue(3), false},
		{"len(1)", nil, true},
		{"len()", nil, true},
		{"len(1, 2)", nil, true},
		{"lower(name)", types.NewTextValue("foo"), false},
		{"upper(name)", types.NewTextValue("FOO"), false},
		{"lower(1)", types.NewNullValue(), false},
		{"abs(n)", types.NewIntegerValue(3), false},
		{"abs(-2.5)", types.NewDoubleValue(2.5), false},
		{"abs(name)", nil, true},
		{"date('2024-01-02')", types.NewTimestampValue(time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)), false},
		{"date('2024-01-02T10:20:30Z') > date('2024-01-02')", types.NewBooleanValue(true), false},
		{"date('not a date')", nil, true},
		{"date(1)", nil, true},
		{"not(0)", types.NewBooleanValue(true), false},
		{"not(1)", types.NewBooleanValue(false), false},
		{"not('')", types.NewBooleanValue(true), false},
		{"not(null)", types.NewBooleanValue(true), false},
		{"not(tags)", types.NewBooleanValue(false), false},
		{"from-json('[1, 2]')", types.NewListValue(types.NewIntegerValue(1), types.NewIntegerValue(2)), false},
		{"from-json('{')", nil, true},
		{"from-json(1)", nil, true},
	}

	for _, test := range tests {
		t.Run(test.expr, func(t *testing.T) {
			v, err := expr.Evaluate(parser.MustParseExpr(test.expr), reg, item, nil)
			if test.fails {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Truef(t, types.Equal(test.res, v), "expected %s, got %s", test.res, v)
		})
	}
}
