package stream

import (
	"context"
	"strings"

	"github.com/lpil/nushell/internal/types"
)

// A Stream is a chain of operators. Its last operator is the output of the stream.
type Stream struct {
	Op Operator
}

func New(op Operator) *Stream {
	return &Stream{Op: op}
}

func (s *Stream) Pipe(op Operator) *Stream {
	if s == nil || s.Op == nil {
		return New(op)
	}
	s.Op = Pipe(s.Op, op)
	return s
}

// Iterate pulls every value of the stream and calls fn for each of them.
// If fn returns ErrStreamClosed, the iteration stops and Iterate returns nil:
// nothing else is pulled from the stream.
func (s *Stream) Iterate(ctx context.Context, fn func(v types.Value) error) error {
	if s == nil || s.Op == nil {
		return nil
	}

	for {
		v, err := s.Op.Next(ctx)
		if err != nil {
			if IsClosed(err) {
				return nil
			}
			return err
		}

		if err := fn(v); err != nil {
			if IsClosed(err) {
				return nil
			}
			return err
		}
	}
}

// Collect returns all the values of the stream.
func (s *Stream) Collect(ctx context.Context) ([]types.Value, error) {
	var values []types.Value

	err := s.Iterate(ctx, func(v types.Value) error {
		values = append(values, v)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return values, nil
}

// Close closes every operator of the stream.
func (s *Stream) Close() error {
	if s == nil || s.Op == nil {
		return nil
	}

	return s.Op.Close()
}

func (s *Stream) First() Operator {
	n := s.Op

	for n != nil && n.GetPrev() != nil {
		n = n.GetPrev()
	}

	return n
}

func (s *Stream) String() string {
	if s == nil || s.Op == nil {
		return ""
	}

	var ops []string
	for op := s.Op; op != nil; op = op.GetPrev() {
		ops = append(ops, op.String())
	}

	var sb strings.Builder
	for i := len(ops) - 1; i >= 0; i-- {
		if sb.Len() != 0 {
			sb.WriteString(" | ")
		}
		sb.WriteString(ops[i])
	}

	return sb.String()
}
