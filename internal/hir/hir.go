// Package hir describes parsed pipelines: blocks made of statements, statements made of
// classified commands.
package hir

import (
	"strings"

	"github.com/lpil/nushell/internal/expr"
	"github.com/lpil/nushell/internal/scanner"
)

// A Block is a list of statements, such as the body of { ... } or a whole program.
type Block struct {
	Statements []*Pipeline
	Span       scanner.Span
}

func (b *Block) Len() int {
	return len(b.Statements)
}

func (b *Block) String() string {
	var sb strings.Builder

	for i, s := range b.Statements {
		if i > 0 {
			sb.WriteString("; ")
		}
		sb.WriteString(s.String())
	}

	return sb.String()
}

// A Pipeline is a statement: a list of commands whose outputs feed each other.
type Pipeline struct {
	Commands []ClassifiedCommand
	Span     scanner.Span
}

func (p *Pipeline) String() string {
	var sb strings.Builder

	for i, c := range p.Commands {
		if i > 0 {
			sb.WriteString(" | ")
		}
		sb.WriteString(c.String())
	}

	return sb.String()
}

// A ClassifiedCommand is an element of a pipeline.
// It is either an *ExprCommand or an *InternalCommand.
type ClassifiedCommand interface {
	Span() scanner.Span
	String() string

	classified()
}

// An ExprCommand is a pipeline element made of a single bare expression.
type ExprCommand struct {
	Expr     expr.Expr
	ExprSpan scanner.Span
}

func (c *ExprCommand) Span() scanner.Span { return c.ExprSpan }
func (c *ExprCommand) String() string     { return c.Expr.String() }
func (*ExprCommand) classified()          {}

// An InternalCommand is a call to a command of the registry.
type InternalCommand struct {
	Name     string
	NameSpan scanner.Span
	Args     []Arg
	CallSpan scanner.Span
}

// An Arg is an unevaluated argument of a command call.
type Arg struct {
	Expr expr.Expr
	Span scanner.Span
}

func (c *InternalCommand) Span() scanner.Span { return c.CallSpan }

func (c *InternalCommand) String() string {
	var sb strings.Builder

	sb.WriteString(c.Name)
	for _, a := range c.Args {
		sb.WriteByte(' ')
		sb.WriteString(a.Expr.String())
	}

	return sb.String()
}

func (*InternalCommand) classified() {}
