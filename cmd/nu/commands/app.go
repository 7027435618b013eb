package commands

import (
	"context"
	"maps"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/cockroachdb/errors"
	"github.com/lpil/nushell/cmd/nu/nuutil"
	"github.com/lpil/nushell/internal/commands"
	"github.com/lpil/nushell/internal/config"
	"github.com/lpil/nushell/internal/environment"
	"github.com/lpil/nushell/internal/logger"
	"github.com/lpil/nushell/internal/shell"
	"github.com/urfave/cli/v2"
)

// NewApp creates the nu CLI app.
func NewApp() *cli.App {
	app := cli.NewApp()
	app.Name = "nu"
	app.Usage = "Run a pipeline over a stream of JSON values"
	app.UsageText = "nu [options] <pipeline>"
	app.EnableBashCompletion = true
	// --var values are JSON and may contain commas
	app.DisableSliceFlagSeparator = true

	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Usage:   "path of a YAML configuration file",
			EnvVars: []string{"NU_CONFIG"},
		},
		&cli.StringFlag{
			Name:  "log-level",
			Usage: "trace, debug, info, warn, error or disabled",
		},
		&cli.StringSliceFlag{
			Name:  "var",
			Usage: "declare a variable, as name=json",
		},
	}

	app.Commands = []*cli.Command{
		NewHelpCommand(),
	}

	// inject cancelable context to all commands
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, os.Interrupt, syscall.SIGTERM)

	ctx, cancel := context.WithCancel(context.Background())

	go func() {
		defer cancel()
		<-ch
	}()

	for i := range app.Commands {
		action := app.Commands[i].Action
		app.Commands[i].Action = func(c *cli.Context) error {
			c.Context = ctx
			return action(c)
		}
	}

	// Root command
	app.Action = func(c *cli.Context) error {
		c.Context = ctx

		src := strings.Join(c.Args().Slice(), " ")
		if strings.TrimSpace(src) == "" {
			return cli.ShowAppHelp(c)
		}

		sh, err := newShell(c)
		if err != nil {
			return err
		}

		if nuutil.CanReadFromStandardInput() {
			return nuutil.Exec(c.Context, sh, src, os.Stdin, c.App.Writer)
		}

		return nuutil.Exec(c.Context, sh, src, nil, c.App.Writer)
	}

	app.After = func(c *cli.Context) error {
		cancel()
		return nil
	}

	return app
}

// newShell loads the configuration, installs the logger in the context
// and returns a shell with the builtin commands.
func newShell(c *cli.Context) (*shell.Shell, error) {
	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return nil, err
	}
	if lvl := c.String("log-level"); lvl != "" {
		cfg.Log.Level = strings.ToLower(lvl)
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
	}

	l, err := logger.New(cfg.Log, c.App.ErrWriter)
	if err != nil {
		return nil, err
	}
	c.Context = l.WithContext(c.Context)

	vars, err := nuutil.ParseVars(declarations(cfg.Vars))
	if err != nil {
		return nil, errors.Wrap(err, "config")
	}
	flagVars, err := nuutil.ParseVars(c.StringSlice("var"))
	if err != nil {
		return nil, err
	}
	maps.Copy(vars, flagVars)

	scope := environment.NewScope(vars, nuutil.Environ())
	return shell.New(commands.Default(), scope), nil
}

func declarations(vars map[string]string) []string {
	decls := make([]string, 0, len(vars))
	for k, v := range vars {
		decls = append(decls, k+"="+v)
	}
	return decls
}
