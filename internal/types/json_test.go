package types_test

import (
	"testing"

	"github.com/lpil/nushell/internal/types"
	"github.com/stretchr/testify/require"
)

func TestParseJSON(t *testing.T) {
	tests := []struct {
		name     string
		data     string
		expected types.Value
		fails    bool
	}{
		{"null", `null`, types.NewNullValue(), false},
		{"bool", `true`, types.NewBooleanValue(true), false},
		{"int", `10`, types.NewIntegerValue(10), false},
		{"double", `10.5`, types.NewDoubleValue(10.5), false},
		{"text", `"a\"b"`, types.NewTextValue(`a"b`), false},
		{"list", `[1, "a", [true]]`, types.NewListValue(
			types.NewIntegerValue(1),
			types.NewTextValue("a"),
			types.NewListValue(types.NewBooleanValue(true)),
		), false},
		{"record", `{"b": 1, "a": {"c": null}}`, types.NewRecordValue().
			Add("b", types.NewIntegerValue(1)).
			Add("a", types.NewRecordValue().Add("c", types.NewNullValue())), false},
		{"invalid", `{"a": }`, nil, true},
		{"empty", ``, nil, true},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			v, err := types.ParseJSON([]byte(test.data))
			if test.fails {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.True(t, types.Equal(test.expected, v), "expected %s, got %s", test.expected, v)
		})
	}
}

func TestMarshalJSON(t *testing.T) {
	v := types.NewRecordValue().
		Add("b", types.NewIntegerValue(1)).
		Add("a", types.NewListValue(types.NewTextValue("x"), types.NewNullValue(), types.NewDoubleValue(1.5)))

	data, err := v.MarshalJSON()
	require.NoError(t, err)
	require.Equal(t, `{"b":1,"a":["x",null,1.5]}`, string(data))

	back, err := types.ParseJSON(data)
	require.NoError(t, err)
	require.True(t, types.Equal(v, back))
}
