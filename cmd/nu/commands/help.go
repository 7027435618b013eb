package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/agnivade/levenshtein"
	"github.com/cockroachdb/errors"
	"github.com/lpil/nushell/internal/command"
	"github.com/lpil/nushell/internal/commands"
	"github.com/urfave/cli/v2"
)

// NewHelpCommand returns a cli command that documents the pipeline commands.
func NewHelpCommand() *cli.Command {
	return &cli.Command{
		Name:      "help",
		Usage:     "Describe the pipeline commands",
		UsageText: "nu help [command]",
		Action: func(c *cli.Context) error {
			reg := commands.Default()

			name := c.Args().First()
			if name == "" {
				return listCommands(c.App.Writer, reg)
			}

			cmd, ok := reg.Get(name)
			if !ok {
				if s := suggestions(reg, name); len(s) > 0 {
					return errors.Errorf("unknown command %q, did you mean %s?", name, strings.Join(s, " or "))
				}
				return errors.Errorf("unknown command %q", name)
			}

			return describe(c.App.Writer, cmd)
		},
	}
}

// suggestions returns the commands whose name is close to in.
func suggestions(reg *command.Registry, in string) []string {
	var names []string
	for _, name := range reg.Names() {
		// input should be at least half the command size to get a suggestion.
		if levenshtein.ComputeDistance(name, in) < len(name)/2 {
			names = append(names, name)
		}
	}

	return names
}

func listCommands(w io.Writer, reg *command.Registry) error {
	var sb strings.Builder

	sb.WriteString("Commands:\n")
	for _, name := range reg.Names() {
		cmd, _ := reg.Get(name)
		fmt.Fprintf(&sb, "  %-12s %s\n", name, cmd.Usage())
	}

	sb.WriteString("\nFunctions:\n  ")
	sb.WriteString(strings.Join(reg.FuncNames(), ", "))
	sb.WriteByte('\n')

	_, err := io.WriteString(w, sb.String())
	return err
}

func describe(w io.Writer, cmd command.Command) error {
	var sb strings.Builder

	sb.WriteString(cmd.Usage())
	sb.WriteString("\n\nUsage:\n  > ")
	sb.WriteString(cmd.Signature().String())
	sb.WriteByte('\n')

	sig := cmd.Signature()
	if len(sig.Positional) > 0 || sig.Rest != nil {
		sb.WriteString("\nParameters:\n")
		for _, p := range sig.Positional {
			fmt.Fprintf(&sb, "  %s <%s>: %s\n", p.Name, p.Shape, p.Description)
		}
		if sig.Rest != nil {
			fmt.Fprintf(&sb, "  ...%s <%s>: %s\n", sig.Rest.Name, sig.Rest.Shape, sig.Rest.Description)
		}
	}

	if ex := cmd.Examples(); len(ex) > 0 {
		sb.WriteString("\nExamples:\n")
		for _, e := range ex {
			fmt.Fprintf(&sb, "  %s\n  > %s\n\n", e.Description, e.Example)
		}
	}

	_, err := io.WriteString(w, sb.String())
	return err
}
