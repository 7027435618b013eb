package testutil

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/lpil/nushell/internal/types"
	"github.com/stretchr/testify/require"
)

// MakeValue parses a JSON value.
func MakeValue(t testing.TB, js string) types.Value {
	t.Helper()

	v, err := types.ParseJSON([]byte(js))
	require.NoError(t, err)

	return v
}

// MakeValues parses each JSON value.
func MakeValues(t testing.TB, js ...string) []types.Value {
	t.Helper()

	values := make([]types.Value, 0, len(js))
	for _, s := range js {
		values = append(values, MakeValue(t, s))
	}

	return values
}

// Ints returns a list of integer values.
func Ints(xs ...int64) []types.Value {
	values := make([]types.Value, 0, len(xs))
	for _, x := range xs {
		values = append(values, types.NewIntegerValue(x))
	}

	return values
}

// ValueComparer compares values with types.Equal.
var ValueComparer = cmp.Comparer(types.Equal)

// RequireValuesEq fails the test if want and got don't hold the same values, in the same order.
// A nil slice equals an empty one.
func RequireValuesEq(t testing.TB, want, got []types.Value) {
	t.Helper()

	if diff := cmp.Diff(want, got, ValueComparer, cmpopts.EquateEmpty()); diff != "" {
		require.Failf(t, "values mismatch", "(-want +got):\n%s", diff)
	}
}
