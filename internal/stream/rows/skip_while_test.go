package rows_test

import (
	"bytes"
	"context"
	"math"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/lpil/nushell/internal/environment"
	"github.com/lpil/nushell/internal/parser"
	"github.com/lpil/nushell/internal/stream"
	"github.com/lpil/nushell/internal/stream/rows"
	"github.com/lpil/nushell/internal/testutil"
	"github.com/lpil/nushell/internal/types"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

type funcs map[string]environment.Func

func (f funcs) GetFunc(name string) (environment.Func, bool) {
	fn, ok := f[name]
	return fn, ok
}

// countingRegistry exposes check(x, max), which returns x < max and counts its calls.
func countingRegistry(calls *int) funcs {
	return funcs{
		"check": func(args ...types.Value) (types.Value, error) {
			*calls++
			c, err := types.Compare(args[0], args[1])
			if err != nil {
				return nil, err
			}
			return types.NewBooleanValue(c < 0), nil
		},
	}
}

func TestSkipWhile(t *testing.T) {
	tests := []struct {
		name  string
		cond  string
		scope *environment.Scope
		in    []types.Value
		want  []types.Value
	}{
		{"prefix", "$it < 3", nil, testutil.Ints(1, 2, 3, 4, 1), testutil.Ints(3, 4, 1)},
		{"empty input", "$it < 3", nil, nil, nil},
		{"all true", "$it < 10", nil, testutil.Ints(1, 2, 3), nil},
		{"first false", "$it > 10", nil, testutil.Ints(1, 20, 3), testutil.Ints(1, 20, 3)},
		{"always failing", "$it.size > 1", nil, testutil.Ints(1, 2, 3), testutil.Ints(1, 2, 3)},
		{"non boolean result", "$it", nil, testutil.Ints(1, 2), testutil.Ints(1, 2)},
		{"null result", "null", nil, testutil.Ints(1, 2), testutil.Ints(1, 2)},
		{"overflow fails open", "$it + 1 > $it", nil, testutil.Ints(1, math.MaxInt64, 2), testutil.Ints(math.MaxInt64, 2)},
		{"scope variable", "$it < $limit", environment.NewScope(map[string]types.Value{"limit": types.NewIntegerValue(2)}, nil), testutil.Ints(1, 2, 3), testutil.Ints(2, 3)},
		{
			"records",
			"size < 10",
			nil,
			testutil.MakeValues(t, `{"name": "a", "size": 1}`, `{"name": "b", "size": 12}`, `{"name": "c", "size": 2}`),
			testutil.MakeValues(t, `{"name": "b", "size": 12}`, `{"name": "c", "size": 2}`),
		},
		{
			"missing column fails open",
			"size < 10",
			nil,
			testutil.MakeValues(t, `{"size": 1}`, `{"name": "b"}`, `{"size": 2}`),
			testutil.MakeValues(t, `{"name": "b"}`, `{"size": 2}`),
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			s := stream.New(stream.Values(test.in...)).
				Pipe(rows.SkipWhile(parser.MustParseExpr(test.cond), nil, test.scope))

			testutil.RequireStreamEq(t, test.want, s)
		})
	}

	t.Run("String", func(t *testing.T) {
		require.Equal(t, "rows.SkipWhile($it < 3)", rows.SkipWhile(parser.MustParseExpr("$it < 3"), nil, nil).String())
	})
}

func TestSkipWhileEvaluations(t *testing.T) {
	t.Run("stops evaluating once passing", func(t *testing.T) {
		var calls int
		s := stream.New(stream.Values(testutil.Ints(1, 2, 3, 4, 1)...)).
			Pipe(rows.SkipWhile(parser.MustParseExpr("check($it, 3)"), countingRegistry(&calls), nil))

		testutil.RequireStreamEq(t, testutil.Ints(3, 4, 1), s)
		require.Equal(t, 3, calls)
	})

	t.Run("no evaluation on empty input", func(t *testing.T) {
		var calls int
		s := stream.New(stream.Empty()).
			Pipe(rows.SkipWhile(parser.MustParseExpr("check($it, 3)"), countingRegistry(&calls), nil))

		testutil.RequireStreamEq(t, nil, s)
		require.Zero(t, calls)
	})

	t.Run("function errors fail open", func(t *testing.T) {
		reg := funcs{"boom": func(...types.Value) (types.Value, error) {
			return nil, errors.New("boom")
		}}
		s := stream.New(stream.Values(testutil.Ints(1, 2)...)).
			Pipe(rows.SkipWhile(parser.MustParseExpr("boom($it)"), reg, nil))

		testutil.RequireStreamEq(t, testutil.Ints(1, 2), s)
	})

	t.Run("unknown function fails open", func(t *testing.T) {
		s := stream.New(stream.Values(testutil.Ints(1, 2)...)).
			Pipe(rows.SkipWhile(parser.MustParseExpr("nope($it)"), funcs{}, nil))

		testutil.RequireStreamEq(t, testutil.Ints(1, 2), s)
	})
}

func TestSkipWhileLaziness(t *testing.T) {
	t.Run("consumer stops pulling", func(t *testing.T) {
		src := testutil.Counting(testutil.Ints(1, 2, 3, 4, 1)...)
		s := stream.New(src).Pipe(rows.SkipWhile(parser.MustParseExpr("$it < 3"), nil, nil))

		var got []types.Value
		err := s.Iterate(context.Background(), func(v types.Value) error {
			got = append(got, v)
			return stream.ErrStreamClosed
		})
		require.NoError(t, err)
		testutil.RequireValuesEq(t, testutil.Ints(3), got)
		require.Equal(t, 3, src.Pulls)
	})

	t.Run("unbounded input", func(t *testing.T) {
		src := testutil.Generate(func(i int64) (types.Value, error) {
			return types.NewIntegerValue(i), nil
		})
		s := stream.New(src).
			Pipe(rows.SkipWhile(parser.MustParseExpr("$it < 5"), nil, nil)).
			Pipe(rows.Take(3))

		testutil.RequireStreamEq(t, testutil.Ints(5, 6, 7), s)
	})

	t.Run("upstream error", func(t *testing.T) {
		boom := errors.New("boom")
		src := testutil.Generate(func(i int64) (types.Value, error) {
			if i == 2 {
				return nil, boom
			}
			return types.NewIntegerValue(i), nil
		})
		s := stream.New(src).Pipe(rows.SkipWhile(parser.MustParseExpr("$it < 1"), nil, nil))

		got, err := s.Collect(context.Background())
		require.ErrorIs(t, err, boom)
		require.Nil(t, got)
	})

	t.Run("canceled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		op := stream.Pipe(stream.Values(testutil.Ints(1)...), rows.SkipWhile(parser.MustParseExpr("$it < 3"), nil, nil))
		_, err := op.Next(ctx)
		require.ErrorIs(t, err, context.Canceled)
	})
}

func TestSkipWhileTrace(t *testing.T) {
	var buf bytes.Buffer
	ctx := zerolog.New(&buf).Level(zerolog.DebugLevel).WithContext(context.Background())

	op := stream.Pipe(stream.Values(testutil.Ints(1)...), rows.SkipWhile(parser.MustParseExpr("$it.size"), nil, nil))
	v, err := op.Next(ctx)
	require.NoError(t, err)
	require.Equal(t, types.NewIntegerValue(1), v)
	require.Contains(t, buf.String(), "no longer skipping")
	require.Contains(t, buf.String(), `"condition":"$it.size"`)
}
