package stream

import (
	"context"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/lpil/nushell/internal/types"
)

// A ValuesOperator emits a fixed list of values.
// It ignores any previous operator.
type ValuesOperator struct {
	BaseOperator
	Values []types.Value
	i      int
}

// Values emits the given values, in order.
func Values(values ...types.Value) *ValuesOperator {
	return &ValuesOperator{Values: values}
}

func (op *ValuesOperator) Next(ctx context.Context) (types.Value, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if op.i >= len(op.Values) {
		return nil, errors.WithStack(ErrStreamClosed)
	}

	v := op.Values[op.i]
	op.i++
	return v, nil
}

func (op *ValuesOperator) Close() error {
	return nil
}

func (op *ValuesOperator) String() string {
	var sb strings.Builder

	sb.WriteString("stream.Values(")
	for i, v := range op.Values {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(v.String())
	}
	sb.WriteByte(')')

	return sb.String()
}

// A ChannelOperator emits the values sent to a channel by another goroutine.
// The stream ends when the channel is closed.
type ChannelOperator struct {
	BaseOperator
	C <-chan types.Value
}

// Channel emits the values received from c.
func Channel(c <-chan types.Value) *ChannelOperator {
	return &ChannelOperator{C: c}
}

func (op *ChannelOperator) Next(ctx context.Context) (types.Value, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case v, ok := <-op.C:
		if !ok {
			return nil, errors.WithStack(ErrStreamClosed)
		}
		return v, nil
	}
}

func (op *ChannelOperator) Close() error {
	return nil
}

func (op *ChannelOperator) String() string {
	return "stream.Channel()"
}

// An EmptyOperator is a stream without values.
type EmptyOperator struct {
	BaseOperator
}

func Empty() *EmptyOperator {
	return &EmptyOperator{}
}

func (op *EmptyOperator) Next(context.Context) (types.Value, error) {
	return nil, errors.WithStack(ErrStreamClosed)
}

func (op *EmptyOperator) Close() error {
	return nil
}

func (op *EmptyOperator) String() string {
	return "stream.Empty()"
}
