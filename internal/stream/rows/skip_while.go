package rows

import (
	"context"
	"fmt"

	"github.com/lpil/nushell/internal/environment"
	"github.com/lpil/nushell/internal/expr"
	"github.com/lpil/nushell/internal/stream"
	"github.com/lpil/nushell/internal/types"
	"github.com/rs/zerolog"
)

type phase uint8

const (
	skipping phase = iota
	passing
)

// A SkipWhileOperator drops the values of the stream as long as
// a condition is true, then lets every remaining value through.
type SkipWhileOperator struct {
	stream.BaseOperator
	E        expr.Expr
	Registry environment.Registry
	Scope    *environment.Scope

	phase phase
}

// SkipWhile skips the leading values for which e evaluates to true.
// The first value for which e is not true, or cannot be evaluated,
// is emitted and e is never evaluated again.
func SkipWhile(e expr.Expr, reg environment.Registry, scope *environment.Scope) *SkipWhileOperator {
	return &SkipWhileOperator{E: e, Registry: reg, Scope: scope}
}

func (op *SkipWhileOperator) Next(ctx context.Context) (types.Value, error) {
	for {
		v, err := op.Pull(ctx)
		if err != nil {
			return nil, err
		}

		if op.phase == passing {
			return v, nil
		}

		if op.skip(ctx, v) {
			continue
		}

		op.phase = passing
		return v, nil
	}
}

// skip evaluates the condition against v.
// Evaluation errors end the skipping phase, like a false condition.
func (op *SkipWhileOperator) skip(ctx context.Context, v types.Value) bool {
	logger := zerolog.Ctx(ctx)

	res, err := expr.Evaluate(op.E, op.Registry, v, op.Scope)
	if err != nil {
		logger.Debug().
			Err(err).
			Stringer("item", v).
			Str("condition", op.E.String()).
			Msg("skip-while: condition failed, no longer skipping")
		return false
	}

	ok := types.IsTrue(res)
	logger.Trace().
		Stringer("item", v).
		Stringer("result", res).
		Bool("skip", ok).
		Msg("skip-while")

	return ok
}

func (op *SkipWhileOperator) String() string {
	return fmt.Sprintf("rows.SkipWhile(%s)", op.E)
}
