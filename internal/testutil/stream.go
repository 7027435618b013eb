package testutil

import (
	"context"
	"testing"

	"github.com/lpil/nushell/internal/stream"
	"github.com/lpil/nushell/internal/types"
	"github.com/stretchr/testify/require"
)

// A CountingOperator emits values and records how many times it was pulled.
type CountingOperator struct {
	*stream.ValuesOperator
	Pulls  int
	Closed bool
}

// Counting returns a source that counts its pulls.
func Counting(values ...types.Value) *CountingOperator {
	return &CountingOperator{ValuesOperator: stream.Values(values...)}
}

func (op *CountingOperator) Next(ctx context.Context) (types.Value, error) {
	op.Pulls++
	return op.ValuesOperator.Next(ctx)
}

func (op *CountingOperator) Close() error {
	op.Closed = true
	return nil
}

// A FuncOperator emits the values returned by a function, forever,
// until the function returns an error.
type FuncOperator struct {
	stream.BaseOperator
	Fn func(i int64) (types.Value, error)
	i  int64
}

// Generate returns an unbounded source.
func Generate(fn func(i int64) (types.Value, error)) *FuncOperator {
	return &FuncOperator{Fn: fn}
}

func (op *FuncOperator) Next(ctx context.Context) (types.Value, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	v, err := op.Fn(op.i)
	op.i++
	return v, err
}

func (op *FuncOperator) String() string {
	return "testutil.Generate()"
}

// RequireStreamEq collects the stream and compares it with want.
func RequireStreamEq(t testing.TB, want []types.Value, s *stream.Stream) {
	t.Helper()

	got, err := s.Collect(context.Background())
	require.NoError(t, err)
	RequireValuesEq(t, want, got)
}
