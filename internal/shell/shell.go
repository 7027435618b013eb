// Package shell runs pipelines written in the pipeline language.
package shell

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/lpil/nushell/internal/command"
	"github.com/lpil/nushell/internal/environment"
	"github.com/lpil/nushell/internal/expr"
	"github.com/lpil/nushell/internal/hir"
	"github.com/lpil/nushell/internal/parser"
	"github.com/lpil/nushell/internal/stream"
	"github.com/lpil/nushell/internal/types"
	"github.com/rs/zerolog"
	"go.uber.org/multierr"
)

// A Shell parses and runs pipelines against a registry of commands.
type Shell struct {
	Registry *command.Registry
	Scope    *environment.Scope
}

func New(reg *command.Registry, scope *environment.Scope) *Shell {
	return &Shell{Registry: reg, Scope: scope}
}

// Run parses src and returns the stream of its last statement.
// The statements before it are run to completion, without input.
// input feeds the last statement and may be nil.
// The caller must close the returned stream. On error, input is closed.
func (sh *Shell) Run(ctx context.Context, src string, input stream.Operator) (*stream.Stream, error) {
	block, err := parser.ParseBlock(src, sh.Registry)
	if err != nil {
		return nil, multierr.Append(err, closeOp(input))
	}

	return sh.RunBlock(ctx, block, input)
}

// RunBlock runs an already parsed block. On error, input is closed.
func (sh *Shell) RunBlock(ctx context.Context, block *hir.Block, input stream.Operator) (*stream.Stream, error) {
	if block.Len() == 0 {
		if input == nil {
			input = stream.Empty()
		}
		return stream.New(input), nil
	}

	last := block.Len() - 1
	for _, pl := range block.Statements[:last] {
		s, err := sh.pipeline(ctx, pl, nil)
		if err == nil {
			_, err = s.Collect(ctx)
			err = multierr.Append(err, s.Close())
		}
		if err != nil {
			return nil, multierr.Append(err, closeOp(input))
		}
	}

	return sh.pipeline(ctx, block.Statements[last], input)
}

// pipeline invokes every command of pl and chains their operators.
// Arguments are evaluated once, here, before any value flows.
// If a command fails, the operators chained so far are closed.
func (sh *Shell) pipeline(ctx context.Context, pl *hir.Pipeline, input stream.Operator) (*stream.Stream, error) {
	s := stream.New(input)
	fail := func(err error) (*stream.Stream, error) {
		return nil, multierr.Append(err, s.Close())
	}

	for i, c := range pl.Commands {
		switch c := c.(type) {
		case *hir.ExprCommand:
			if i > 0 {
				return fail(command.InvalidArgument("Unexpected expression", "expressions can only start a pipeline", c.Span()))
			}

			v, err := expr.Evaluate(c.Expr, sh.Registry, nil, sh.Scope)
			if err != nil {
				return fail(err)
			}
			if err := s.Close(); err != nil {
				return nil, err
			}
			s = stream.New(stream.Values(types.Items(v)...))
		case *hir.InternalCommand:
			op, isFilter, err := sh.invoke(ctx, c)
			if err != nil {
				return fail(err)
			}

			if isFilter {
				s = s.Pipe(op)
			} else {
				// the command produces its own values, its input is never read
				if err := s.Close(); err != nil {
					return nil, multierr.Append(err, op.Close())
				}
				s = stream.New(op)
			}
		default:
			return fail(errors.Errorf("unsupported command %s", c))
		}
	}

	zerolog.Ctx(ctx).Debug().Stringer("stream", s).Msg("pipeline ready")
	return s, nil
}

func closeOp(op stream.Operator) error {
	if op == nil {
		return nil
	}

	return op.Close()
}

func (sh *Shell) invoke(ctx context.Context, c *hir.InternalCommand) (stream.Operator, bool, error) {
	cmd, ok := sh.Registry.Get(c.Name)
	if !ok {
		return nil, false, errors.Errorf("unknown command %q", c.Name)
	}

	call := command.CallInfo{
		Name:     c.Name,
		Scope:    sh.Scope,
		Registry: sh.Registry,
		Span:     c.CallSpan,
	}

	for _, a := range c.Args {
		v, err := expr.Evaluate(a.Expr, sh.Registry, nil, sh.Scope)
		if err != nil {
			return nil, false, err
		}
		call.Args = append(call.Args, command.Arg{Value: v, Span: a.Span})
	}

	op, err := cmd.Run(ctx, &call)
	if err != nil {
		return nil, false, errors.Wrapf(err, "%s", c.Name)
	}

	return op, cmd.Signature().IsFilter, nil
}
