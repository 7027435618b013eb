package stream

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/lpil/nushell/internal/types"
)

// ErrStreamClosed is used to indicate that a stream must be closed.
var ErrStreamClosed = errors.New("stream closed")

// An Operator is a stage of a pipeline.
// Each call to Next pulls from the previous operator only as much as needed
// to return one value. Once the stream is exhausted, Next returns ErrStreamClosed.
// If the consumer stops calling Next, the whole chain stops too: no operator
// reads ahead of what it was asked for.
type Operator interface {
	Next(ctx context.Context) (types.Value, error)
	Close() error
	SetPrev(prev Operator)
	GetPrev() Operator
	String() string
}

// Pipe chains the operators together and returns the last one.
func Pipe(ops ...Operator) Operator {
	for i := len(ops) - 1; i > 0; i-- {
		ops[i].SetPrev(ops[i-1])
	}

	return ops[len(ops)-1]
}

// IsClosed reports whether err marks the end of a stream.
func IsClosed(err error) bool {
	return errors.Is(err, ErrStreamClosed)
}

type BaseOperator struct {
	Prev Operator
}

func (op *BaseOperator) SetPrev(o Operator) {
	op.Prev = o
}

func (op *BaseOperator) GetPrev() Operator {
	return op.Prev
}

// Pull returns the next value of the previous operator.
// An operator without input is an empty stream.
func (op *BaseOperator) Pull(ctx context.Context) (types.Value, error) {
	if op.Prev == nil {
		return nil, errors.WithStack(ErrStreamClosed)
	}

	return op.Prev.Next(ctx)
}

// Close closes the previous operator, if any.
func (op *BaseOperator) Close() error {
	if op.Prev == nil {
		return nil
	}

	return op.Prev.Close()
}
