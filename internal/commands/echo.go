package commands

import (
	"context"

	"github.com/lpil/nushell/internal/command"
	"github.com/lpil/nushell/internal/stream"
	"github.com/lpil/nushell/internal/types"
)

// Echo emits its arguments. Lists are flattened.
type Echo struct{}

func (Echo) Name() string {
	return "echo"
}

func (Echo) Signature() *command.Signature {
	return command.NewSignature("echo").
		RestArgs("rest", command.ShapeAny, "the values to echo")
}

func (Echo) Usage() string {
	return "Echo the arguments back to the user."
}

func (Echo) Examples() []command.Example {
	return []command.Example{
		{
			Description: "Put a list of numbers in the pipeline",
			Example:     "echo 1 2 3",
			Result:      ints(1, 2, 3),
		},
		{
			Description: "Lists are flattened into the pipeline",
			Example:     "echo [1 2] 3",
			Result:      ints(1, 2, 3),
		},
	}
}

func (Echo) Run(_ context.Context, call *command.CallInfo) (stream.Operator, error) {
	var values []types.Value
	for _, arg := range call.Args {
		values = append(values, types.Items(arg.Value)...)
	}

	return stream.Values(values...), nil
}

func ints(xs ...int64) []types.Value {
	values := make([]types.Value, 0, len(xs))
	for _, x := range xs {
		values = append(values, types.NewIntegerValue(x))
	}

	return values
}
