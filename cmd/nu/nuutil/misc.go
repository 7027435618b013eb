package nuutil

import (
	"os"
	"strings"

	"github.com/mattn/go-isatty"
)

// CanReadFromStandardInput reports whether stdin is a pipe or a file
// rather than a terminal.
func CanReadFromStandardInput() bool {
	fd := os.Stdin.Fd()
	return !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd)
}

// Environ returns the process environment as a map.
func Environ() map[string]string {
	env := make(map[string]string)
	for _, kv := range os.Environ() {
		k, v, ok := strings.Cut(kv, "=")
		if ok {
			env[k] = v
		}
	}

	return env
}
