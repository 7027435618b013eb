package environment

import (
	"sort"

	"github.com/lpil/nushell/internal/types"
)

// Func is a function that can be called from an expression.
type Func func(args ...types.Value) (types.Value, error)

// A Registry resolves the functions called by expressions.
type Registry interface {
	GetFunc(name string) (Func, bool)
}

// Scope holds the variables and environment bindings captured when a command is invoked.
// A Scope must not be modified once it has been handed to a command.
type Scope struct {
	Vars map[string]types.Value
	Env  map[string]string
}

// NewScope returns a scope over the given bindings. Nil maps are allowed.
func NewScope(vars map[string]types.Value, env map[string]string) *Scope {
	return &Scope{Vars: vars, Env: env}
}

// GetVar returns the value of a variable.
func (s *Scope) GetVar(name string) (types.Value, bool) {
	if s == nil {
		return nil, false
	}

	v, ok := s.Vars[name]
	return v, ok
}

// GetEnv returns the value of an environment binding.
func (s *Scope) GetEnv(name string) (string, bool) {
	if s == nil {
		return "", false
	}

	v, ok := s.Env[name]
	return v, ok
}

// EnvRecord returns the environment bindings as a record, sorted by name.
func (s *Scope) EnvRecord() *types.RecordValue {
	r := types.NewRecordValue()
	if s == nil {
		return r
	}

	names := make([]string, 0, len(s.Env))
	for k := range s.Env {
		names = append(names, k)
	}
	sort.Strings(names)

	for _, k := range names {
		r.Add(k, types.NewTextValue(s.Env[k]))
	}

	return r
}

// Environment contains information about the context in which
// an expression is evaluated.
type Environment struct {
	registry Registry
	scope    *Scope
	item     types.Value
}

func New(reg Registry, scope *Scope, item types.Value) *Environment {
	env := Environment{
		registry: reg,
		scope:    scope,
		item:     item,
	}

	return &env
}

// GetItem returns the item currently flowing through the pipeline, if any.
func (e *Environment) GetItem() (types.Value, bool) {
	return e.item, e.item != nil
}

func (e *Environment) GetVar(name string) (types.Value, bool) {
	return e.scope.GetVar(name)
}

func (e *Environment) GetEnv(name string) (string, bool) {
	return e.scope.GetEnv(name)
}

func (e *Environment) GetFunc(name string) (Func, bool) {
	if e.registry == nil {
		return nil, false
	}

	return e.registry.GetFunc(name)
}

func (e *Environment) GetScope() *Scope {
	return e.scope
}
