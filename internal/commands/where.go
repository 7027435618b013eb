package commands

import (
	"context"

	"github.com/lpil/nushell/internal/command"
	"github.com/lpil/nushell/internal/stream"
	"github.com/lpil/nushell/internal/stream/rows"
)

// Where keeps the rows matching a condition.
type Where struct{}

func (Where) Name() string {
	return "where"
}

func (Where) Signature() *command.Signature {
	return command.NewSignature("where").
		Required("condition", command.ShapeMath, "the condition that rows must match").
		Filter()
}

func (Where) Usage() string {
	return "Filter rows matching the condition."
}

func (Where) Examples() []command.Example {
	return []command.Example{
		{
			Description: "Keep the numbers greater than 2",
			Example:     "echo 1 2 3 4 1 | where $it > 2",
			Result:      ints(3, 4),
		},
	}
}

func (Where) Run(_ context.Context, call *command.CallInfo) (stream.Operator, error) {
	arg, err := call.ExpectNth(0)
	if err != nil {
		return nil, err
	}

	cond, err := command.Condition(arg)
	if err != nil {
		return nil, err
	}

	return rows.Filter(cond, call.Registry, call.Scope), nil
}
