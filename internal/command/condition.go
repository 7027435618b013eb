package command

import (
	"github.com/lpil/nushell/internal/expr"
	"github.com/lpil/nushell/internal/hir"
	"github.com/lpil/nushell/internal/types"
)

// Condition extracts the expression of a condition argument.
// The argument must be a block made of a single statement,
// itself made of a single bare expression.
func Condition(arg Arg) (expr.Expr, error) {
	invalid := func() error {
		return InvalidArgument("Expected a condition", "expected a condition", arg.Span)
	}

	if arg.Value == nil || arg.Value.Type() != types.TypeBlock {
		return nil, invalid()
	}

	block := hir.AsBlock(arg.Value)
	if block == nil || block.Len() != 1 {
		return nil, invalid()
	}

	cmds := block.Statements[0].Commands
	if len(cmds) == 0 {
		return nil, invalid()
	}

	ec, ok := cmds[0].(*hir.ExprCommand)
	if !ok || len(cmds) != 1 {
		return nil, invalid()
	}

	return ec.Expr, nil
}
