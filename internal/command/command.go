// Package command defines the commands of a pipeline and how they are called.
package command

import (
	"context"
	"sort"

	"github.com/cockroachdb/errors"
	"github.com/lpil/nushell/internal/environment"
	"github.com/lpil/nushell/internal/scanner"
	"github.com/lpil/nushell/internal/stream"
	"github.com/lpil/nushell/internal/types"
)

// A Command is a stage of a pipeline.
// Run is called once per invocation, before any value flows through the pipeline.
// It validates the arguments and returns the operator that will be piped
// after the input of the command.
type Command interface {
	Name() string
	Signature() *Signature
	Usage() string
	Examples() []Example
	Run(ctx context.Context, call *CallInfo) (stream.Operator, error)
}

// An Example documents a command. Examples are run by the tests.
type Example struct {
	Description string
	Example     string
	Result      []types.Value
}

// An Arg is an evaluated argument of a command call.
type Arg struct {
	Value types.Value
	Span  scanner.Span
}

// CallInfo holds everything a command receives when it is invoked.
type CallInfo struct {
	Name     string
	Args     []Arg
	Scope    *environment.Scope
	Registry environment.Registry
	Span     scanner.Span
}

// Nth returns the i-th positional argument, if present.
func (c *CallInfo) Nth(i int) (Arg, bool) {
	if i < 0 || i >= len(c.Args) {
		return Arg{}, false
	}

	return c.Args[i], true
}

// ExpectNth returns the i-th positional argument or an error if it is missing.
func (c *CallInfo) ExpectNth(i int) (Arg, error) {
	arg, ok := c.Nth(i)
	if !ok {
		return Arg{}, InvalidArgument("Missing argument", "missing argument", c.Span)
	}

	return arg, nil
}

// OptionalInt returns the i-th argument as an integer, or def if it is missing.
func (c *CallInfo) OptionalInt(i int, def int64) (int64, error) {
	arg, ok := c.Nth(i)
	if !ok {
		return def, nil
	}

	if arg.Value.Type() != types.TypeInteger {
		return 0, InvalidArgument("Expected an integer", "expected an integer, got "+arg.Value.Type().String(), arg.Span)
	}

	n := types.AsInt64(arg.Value)
	if n < 0 {
		return 0, InvalidArgument("Expected a positive integer", "negative integer", arg.Span)
	}

	return n, nil
}

// A Registry holds the commands and the functions available to a pipeline.
// It must not be modified once pipelines are running.
type Registry struct {
	commands map[string]Command
	funcs    map[string]environment.Func
}

var _ environment.Registry = (*Registry)(nil)

func NewRegistry() *Registry {
	return &Registry{
		commands: make(map[string]Command),
		funcs:    make(map[string]environment.Func),
	}
}

// Add registers commands. Names must be unique.
func (r *Registry) Add(cmds ...Command) error {
	for _, c := range cmds {
		if _, ok := r.commands[c.Name()]; ok {
			return errors.Errorf("command %q already registered", c.Name())
		}
		r.commands[c.Name()] = c
	}

	return nil
}

// AddFunc registers a function callable from expressions.
func (r *Registry) AddFunc(name string, fn environment.Func) error {
	if _, ok := r.funcs[name]; ok {
		return errors.Errorf("function %q already registered", name)
	}
	r.funcs[name] = fn

	return nil
}

func (r *Registry) Get(name string) (Command, bool) {
	c, ok := r.commands[name]
	return c, ok
}

// Signature returns the signature of a command.
func (r *Registry) Signature(name string) (*Signature, bool) {
	c, ok := r.commands[name]
	if !ok {
		return nil, false
	}

	return c.Signature(), true
}

func (r *Registry) GetFunc(name string) (environment.Func, bool) {
	fn, ok := r.funcs[name]
	return fn, ok
}

// Names returns the sorted names of the commands.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.commands))
	for n := range r.commands {
		names = append(names, n)
	}
	sort.Strings(names)

	return names
}

// FuncNames returns the sorted names of the functions.
func (r *Registry) FuncNames() []string {
	names := make([]string, 0, len(r.funcs))
	for n := range r.funcs {
		names = append(names, n)
	}
	sort.Strings(names)

	return names
}
