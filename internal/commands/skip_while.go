package commands

import (
	"context"

	"github.com/lpil/nushell/internal/command"
	"github.com/lpil/nushell/internal/stream"
	"github.com/lpil/nushell/internal/stream/rows"
	"github.com/lpil/nushell/internal/types"
)

// SkipWhile skips the leading rows of its input while a condition holds.
type SkipWhile struct{}

func (SkipWhile) Name() string {
	return "skip-while"
}

func (SkipWhile) Signature() *command.Signature {
	return command.NewSignature("skip-while").
		Required("condition", command.ShapeMath, "the condition that must be met to continue skipping").
		Filter()
}

func (SkipWhile) Usage() string {
	return "Skips rows while the condition matches."
}

func (SkipWhile) Examples() []command.Example {
	return []command.Example{
		{
			Description: "Skip the leading numbers lower than 3",
			Example:     "echo 1 2 3 4 1 | skip-while $it < 3",
			Result:      ints(3, 4, 1),
		},
		{
			Description: "Skip while the element is negative",
			Example:     "echo [-2 0 2 -1] | skip-while { $it < 0 }",
			Result:      ints(0, 2, -1),
		},
		{
			Description: "Skip the small files",
			Example:     `echo from-json('[{"name": "a", "size": 1}, {"name": "b", "size": 20}, {"name": "c", "size": 3}]') | skip-while size < 10`,
			Result: []types.Value{
				types.NewRecordValue().Add("name", types.NewTextValue("b")).Add("size", types.NewIntegerValue(20)),
				types.NewRecordValue().Add("name", types.NewTextValue("c")).Add("size", types.NewIntegerValue(3)),
			},
		},
	}
}

// Run binds the condition once, before any row is read.
func (SkipWhile) Run(_ context.Context, call *command.CallInfo) (stream.Operator, error) {
	arg, err := call.ExpectNth(0)
	if err != nil {
		return nil, err
	}

	cond, err := command.Condition(arg)
	if err != nil {
		return nil, err
	}

	return rows.SkipWhile(cond, call.Registry, call.Scope), nil
}
