package rows

import (
	"context"
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/lpil/nushell/internal/stream"
	"github.com/lpil/nushell/internal/types"
)

// A TakeOperator closes the stream after a certain number of values.
type TakeOperator struct {
	stream.BaseOperator
	N     int64
	count int64
}

// Take closes the stream after n values have passed through the operator.
func Take(n int64) *TakeOperator {
	return &TakeOperator{N: n}
}

func (op *TakeOperator) Next(ctx context.Context) (types.Value, error) {
	if op.count >= op.N {
		return nil, errors.WithStack(stream.ErrStreamClosed)
	}

	v, err := op.Pull(ctx)
	if err != nil {
		return nil, err
	}

	op.count++
	return v, nil
}

func (op *TakeOperator) String() string {
	return fmt.Sprintf("rows.Take(%d)", op.N)
}
