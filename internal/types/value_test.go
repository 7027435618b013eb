package types_test

import (
	"math"
	"testing"
	"time"

	"github.com/lpil/nushell/internal/types"
	"github.com/stretchr/testify/require"
)

func TestValueString(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name     string
		value    types.Value
		expected string
	}{
		{"null", types.NewNullValue(), "null"},
		{"bool", types.NewBooleanValue(true), "true"},
		{"int", types.NewIntegerValue(10), "10"},
		{"double", types.NewDoubleValue(10.0), "10.0"},
		{"double", types.NewDoubleValue(10.1), "10.1"},
		{"double", types.NewDoubleValue(math.MaxFloat64), "1.7976931348623157e+308"},
		{"text", types.NewTextValue("bar"), `"bar"`},
		{"time", types.NewTimestampValue(now), now.UTC().Format(time.RFC3339Nano)},
		{"list", types.NewListValue(types.NewIntegerValue(1), types.NewTextValue("a")), `[1, "a"]`},
		{"record", types.NewRecordValue(
			types.Field{Name: "a", Value: types.NewIntegerValue(1)},
			types.Field{Name: "b", Value: types.NewNullValue()},
		), `{a: 1, b: null}`},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			require.Equal(t, test.expected, test.value.String())
		})
	}
}

func TestIsTrue(t *testing.T) {
	tests := []struct {
		value    types.Value
		expected bool
	}{
		{types.NewBooleanValue(true), true},
		{types.NewBooleanValue(false), false},
		{types.NewIntegerValue(1), false},
		{types.NewTextValue("true"), false},
		{types.NewNullValue(), false},
		{nil, false},
	}

	for _, test := range tests {
		require.Equal(t, test.expected, types.IsTrue(test.value), "%v", test.value)
	}
}

func TestIsTruthy(t *testing.T) {
	tests := []struct {
		value    types.Value
		expected bool
	}{
		{types.NewBooleanValue(true), true},
		{types.NewBooleanValue(false), false},
		{types.NewIntegerValue(1), true},
		{types.NewIntegerValue(0), false},
		{types.NewTextValue(""), false},
		{types.NewTextValue("a"), true},
		{types.NewListValue(), false},
		{types.NewNullValue(), false},
	}

	for _, test := range tests {
		ok, err := types.IsTruthy(test.value)
		require.NoError(t, err)
		require.Equal(t, test.expected, ok, "%v", test.value)
	}
}

func TestRecordGet(t *testing.T) {
	r := types.NewRecordValue().
		Add("a", types.NewIntegerValue(1)).
		Add("b", types.NewIntegerValue(2)).
		Add("a", types.NewIntegerValue(3))

	require.Equal(t, 2, r.Len())

	v, err := r.Get("a")
	require.NoError(t, err)
	require.Equal(t, types.NewIntegerValue(3), v)

	_, err = r.Get("c")
	require.ErrorIs(t, err, types.ErrColumnNotFound)
}

func TestParseTimestamp(t *testing.T) {
	ts, err := types.ParseTimestamp("2021-03-04 05:06:07")
	require.NoError(t, err)
	require.Equal(t, time.Date(2021, 3, 4, 5, 6, 7, 0, time.UTC), ts.UTC())

	_, err = types.ParseTimestamp("not a date")
	require.Error(t, err)
}
