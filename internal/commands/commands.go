// Package commands contains the builtin commands and functions.
package commands

import (
	"github.com/lpil/nushell/internal/command"
)

// Default returns a registry holding every builtin command and function.
func Default() *command.Registry {
	r := command.NewRegistry()

	err := r.Add(
		Echo{},
		SkipWhile{},
		Where{},
		First{},
		Skip{},
	)
	if err != nil {
		panic(err)
	}

	for name, def := range builtinFunctions {
		if err := r.AddFunc(name, def.call); err != nil {
			panic(err)
		}
	}

	return r
}
