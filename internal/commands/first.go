package commands

import (
	"context"

	"github.com/lpil/nushell/internal/command"
	"github.com/lpil/nushell/internal/stream"
	"github.com/lpil/nushell/internal/stream/rows"
)

// First keeps the first rows of its input.
type First struct{}

func (First) Name() string {
	return "first"
}

func (First) Signature() *command.Signature {
	return command.NewSignature("first").
		Optional("rows", command.ShapeInt, "starting from the front, the number of rows to return").
		Filter()
}

func (First) Usage() string {
	return "Show only the first number of rows."
}

func (First) Examples() []command.Example {
	return []command.Example{
		{
			Description: "Return the first item",
			Example:     "echo 1 2 3 | first",
			Result:      ints(1),
		},
		{
			Description: "Return the first 2 items",
			Example:     "echo 1 2 3 | first 2",
			Result:      ints(1, 2),
		},
	}
}

func (First) Run(_ context.Context, call *command.CallInfo) (stream.Operator, error) {
	n, err := call.OptionalInt(0, 1)
	if err != nil {
		return nil, err
	}

	return rows.Take(n), nil
}

// Skip drops the first rows of its input.
type Skip struct{}

func (Skip) Name() string {
	return "skip"
}

func (Skip) Signature() *command.Signature {
	return command.NewSignature("skip").
		Optional("rows", command.ShapeInt, "how many rows to skip").
		Filter()
}

func (Skip) Usage() string {
	return "Skip some number of rows."
}

func (Skip) Examples() []command.Example {
	return []command.Example{
		{
			Description: "Skip the first row",
			Example:     "echo 1 2 3 | skip",
			Result:      ints(2, 3),
		},
		{
			Description: "Skip the first 2 rows",
			Example:     "echo 1 2 3 | skip 2",
			Result:      ints(3),
		},
	}
}

func (Skip) Run(_ context.Context, call *command.CallInfo) (stream.Operator, error) {
	n, err := call.OptionalInt(0, 1)
	if err != nil {
		return nil, err
	}

	return rows.Skip(n), nil
}
