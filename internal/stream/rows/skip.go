package rows

import (
	"context"
	"fmt"

	"github.com/lpil/nushell/internal/stream"
	"github.com/lpil/nushell/internal/types"
)

// A SkipOperator skips the n first values of the stream.
type SkipOperator struct {
	stream.BaseOperator
	N       int64
	skipped int64
}

// Skip ignores the first n values of the stream.
func Skip(n int64) *SkipOperator {
	return &SkipOperator{N: n}
}

func (op *SkipOperator) Next(ctx context.Context) (types.Value, error) {
	for op.skipped < op.N {
		if _, err := op.Pull(ctx); err != nil {
			return nil, err
		}
		op.skipped++
	}

	return op.Pull(ctx)
}

func (op *SkipOperator) String() string {
	return fmt.Sprintf("rows.Skip(%d)", op.N)
}
