package shell_test

import (
	"context"
	"testing"

	"github.com/lpil/nushell/internal/command"
	"github.com/lpil/nushell/internal/commands"
	"github.com/lpil/nushell/internal/environment"
	"github.com/lpil/nushell/internal/parser"
	"github.com/lpil/nushell/internal/shell"
	"github.com/lpil/nushell/internal/stream"
	"github.com/lpil/nushell/internal/testutil"
	"github.com/lpil/nushell/internal/testutil/assert"
	"github.com/lpil/nushell/internal/types"
	"github.com/stretchr/testify/require"
)

func newShell() *shell.Shell {
	scope := environment.NewScope(
		map[string]types.Value{"limit": types.NewIntegerValue(3)},
		map[string]string{"USER": "nu"},
	)

	return shell.New(commands.Default(), scope)
}

func TestRun(t *testing.T) {
	tests := []struct {
		name  string
		src   string
		input []types.Value
		want  []types.Value
	}{
		{"skip-while", "echo 1 2 3 4 1 | skip-while $it < 3", nil, testutil.Ints(3, 4, 1)},
		{"skip-while block", "echo 1 2 3 4 1 | skip-while { $it < 3 }", nil, testutil.Ints(3, 4, 1)},
		{"skip-while on input", "skip-while $it < 3", testutil.Ints(1, 2, 3, 4, 1), testutil.Ints(3, 4, 1)},
		{"skip-while on empty input", "skip-while $it < 3", nil, nil},
		{"skip-while everything", "echo 1 2 | skip-while $it < 10", nil, nil},
		{"skip-while failing condition", "echo 1 2 3 | skip-while $it.size > 1", nil, testutil.Ints(1, 2, 3)},
		{"skip-while with variable", "echo 1 2 3 4 | skip-while $it < $limit", nil, testutil.Ints(3, 4)},
		{"skip-while with function", "echo 'a' 'bb' 'ccc' 'a' | skip-while len($it) < 2", nil, []types.Value{
			types.NewTextValue("bb"), types.NewTextValue("ccc"), types.NewTextValue("a"),
		}},
		{"skip-while then first", "echo 1 2 3 4 1 | skip-while $it < 3 | first 2", nil, testutil.Ints(3, 4)},
		{"chained skip-while", "echo 1 2 3 4 1 | skip-while $it < 2 | skip-while $it < 4", nil, testutil.Ints(4, 1)},
		{"expression head", "[1 2 3 4 1] | skip-while $it < 3", nil, testutil.Ints(3, 4, 1)},
		{"scalar head", "1 + 1", nil, testutil.Ints(2)},
		{"env", "$env.USER", nil, []types.Value{types.NewTextValue("nu")}},
		{"where", "echo 1 2 3 4 1 | where $it >= $limit", nil, testutil.Ints(3, 4)},
		{"skip", "echo 1 2 3 | skip 2", nil, testutil.Ints(3)},
		{"source replaces input", "echo 9", testutil.Ints(1, 2), testutil.Ints(9)},
		{"statements", "echo 1 | first; echo 2 3", nil, testutil.Ints(2, 3)},
		{"empty program", "", testutil.Ints(1), testutil.Ints(1)},
		{"empty program without input", "", nil, nil},
		{"records", "skip-while size < 10 | where name != 'c'", testutil.MakeValues(t,
			`{"name": "a", "size": 1}`,
			`{"name": "b", "size": 20}`,
			`{"name": "c", "size": 3}`,
			`{"name": "d", "size": 1}`,
		), testutil.MakeValues(t,
			`{"name": "b", "size": 20}`,
			`{"name": "d", "size": 1}`,
		)},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			var input stream.Operator
			if test.input != nil {
				input = stream.Values(test.input...)
			}

			s, err := newShell().Run(context.Background(), test.src, input)
			assert.NoError(t, err)
			defer s.Close()

			testutil.RequireStreamEq(t, test.want, s)
		})
	}
}

func TestRunErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		is   error
	}{
		{"block with two statements", "echo 1 | skip-while { $it < 1; $it > 2 }", command.ErrInvalidArgument},
		{"block with a command", "echo 1 | skip-while { echo 1 }", command.ErrInvalidArgument},
		{"empty block", "echo 1 | skip-while { }", command.ErrInvalidArgument},
		{"piped condition", "echo 1 | skip-while { $it | $it }", command.ErrInvalidArgument},
		{"where with two statements", "echo 1 | where { $it; $it }", command.ErrInvalidArgument},
		{"expression in the middle", "echo 1 | $it", command.ErrInvalidArgument},
		{"first with text", "echo 1 | first 'a'", command.ErrInvalidArgument},
		{"skip with negative", "echo 1 | skip -1", command.ErrInvalidArgument},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := newShell().Run(context.Background(), test.src, nil)
			assert.ErrorIs(t, err, test.is)
		})
	}

	t.Run("parse error", func(t *testing.T) {
		_, err := newShell().Run(context.Background(), "echo 1 | skip-while", nil)
		var perr *parser.ParseError
		require.ErrorAs(t, err, &perr)
	})

	t.Run("argument evaluation", func(t *testing.T) {
		_, err := newShell().Run(context.Background(), "echo $notFound", nil)
		require.Error(t, err)
	})

	t.Run("failing earlier statement", func(t *testing.T) {
		_, err := newShell().Run(context.Background(), "echo 1 0 | where 1 / $it > 0; echo 1", nil)
		require.Error(t, err)
	})
}

// A malformed condition is rejected before anything is read from the input.
func TestRunValidatesBeforeStreaming(t *testing.T) {
	src := testutil.Counting(testutil.Ints(1, 2, 3)...)

	_, err := newShell().Run(context.Background(), "skip-while { echo 1 }", src)
	require.ErrorIs(t, err, command.ErrInvalidArgument)
	require.Zero(t, src.Pulls)
}

func TestRunIsLazy(t *testing.T) {
	src := testutil.Generate(func(i int64) (types.Value, error) {
		return types.NewIntegerValue(i), nil
	})

	s, err := newShell().Run(context.Background(), "skip-while $it < 1000 | first 3", src)
	require.NoError(t, err)
	defer s.Close()

	require.Equal(t, "testutil.Generate() | rows.SkipWhile($it < 1000) | rows.Take(3)", s.String())
	testutil.RequireStreamEq(t, testutil.Ints(1000, 1001, 1002), s)
}

func TestRunClosesInputOnError(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"parse error", "skip-while"},
		{"bad condition after a filter", "where $it > 0 | skip-while { echo 1 }"},
		{"argument evaluation", "where $it > 0 | first $nope"},
		{"expression in the middle", "where $it > 0 | $it"},
		{"failing earlier statement", "echo 1 0 | where 1 / $it > 0; skip-while $it < 1"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			src := testutil.Counting(testutil.Ints(1, 2, 3)...)

			_, err := newShell().Run(context.Background(), test.src, src)
			require.Error(t, err)
			require.True(t, src.Closed)
			require.Zero(t, src.Pulls)
		})
	}

	t.Run("source command", func(t *testing.T) {
		src := testutil.Counting(testutil.Ints(1, 2, 3)...)

		s, err := newShell().Run(context.Background(), "echo 9", src)
		assert.NoError(t, err)
		defer s.Close()

		require.True(t, src.Closed)
		testutil.RequireStreamEq(t, testutil.Ints(9), s)
	})
}
