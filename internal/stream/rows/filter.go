package rows

import (
	"context"
	"fmt"

	"github.com/lpil/nushell/internal/environment"
	"github.com/lpil/nushell/internal/expr"
	"github.com/lpil/nushell/internal/stream"
	"github.com/lpil/nushell/internal/types"
)

// A FilterOperator filters values based on a given expression.
type FilterOperator struct {
	stream.BaseOperator
	E        expr.Expr
	Registry environment.Registry
	Scope    *environment.Scope
}

// Filter evaluates e for each incoming value and filters any value whose result is not true.
// Unlike SkipWhile, evaluation errors interrupt the stream.
func Filter(e expr.Expr, reg environment.Registry, scope *environment.Scope) *FilterOperator {
	return &FilterOperator{E: e, Registry: reg, Scope: scope}
}

func (op *FilterOperator) Next(ctx context.Context) (types.Value, error) {
	for {
		v, err := op.Pull(ctx)
		if err != nil {
			return nil, err
		}

		res, err := expr.Evaluate(op.E, op.Registry, v, op.Scope)
		if err != nil {
			return nil, err
		}

		if types.IsTrue(res) {
			return v, nil
		}
	}
}

func (op *FilterOperator) String() string {
	return fmt.Sprintf("rows.Filter(%s)", op.E)
}
