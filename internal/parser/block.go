package parser

import (
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/lpil/nushell/internal/command"
	"github.com/lpil/nushell/internal/hir"
	"github.com/lpil/nushell/internal/scanner"
)

// parseStatements parses statements separated by newlines or semicolons
// until the end token is found.
func (p *Parser) parseStatements(start scanner.Pos, end scanner.Token) (*hir.Block, error) {
	var block hir.Block

	for {
		ti := p.Scan()
		switch ti.Tok {
		case scanner.NEWLINE, scanner.SEMICOLON:
			continue
		case end:
			block.Span = scanner.Span{Start: start, End: ti.End}
			return &block, nil
		case scanner.EOF:
			return nil, newParseError(scanner.Tokstr(ti.Tok, ti.Lit), []string{end.String()}, ti.Pos)
		}
		p.Unscan()

		pl, err := p.parsePipeline()
		if err != nil {
			return nil, err
		}
		block.Statements = append(block.Statements, pl)

		switch ti := p.peek(); ti.Tok {
		case scanner.NEWLINE, scanner.SEMICOLON, scanner.EOF, end:
		default:
			return nil, newParseError(scanner.Tokstr(ti.Tok, ti.Lit), []string{"|", ";", "newline", end.String()}, ti.Pos)
		}
	}
}

// parsePipeline parses commands separated by pipes.
// A newline is allowed after a pipe.
func (p *Parser) parsePipeline() (*hir.Pipeline, error) {
	var pl hir.Pipeline

	for {
		cmd, err := p.parseCommand()
		if err != nil {
			return nil, err
		}
		pl.Commands = append(pl.Commands, cmd)

		if ti := p.Scan(); ti.Tok != scanner.PIPE {
			p.Unscan()
			break
		}
		p.skipNewlines()
	}

	pl.Span = pl.Commands[0].Span().Merge(pl.Commands[len(pl.Commands)-1].Span())
	return &pl, nil
}

// parseCommand parses one element of a pipeline.
// A word naming a known command starts a command call,
// anything else is a bare expression.
func (p *Parser) parseCommand() (hir.ClassifiedCommand, error) {
	ti := p.Scan()
	if ti.Tok == scanner.IDENT && p.sigs != nil {
		if next := p.peek(); next.Tok != scanner.LPAREN || next.Pos.Offset != ti.End.Offset {
			if sig, ok := p.sigs.Signature(ti.Lit); ok {
				return p.parseInternalCommand(ti, sig)
			}
		}
	}
	p.Unscan()

	e, err := p.ParseExpr()
	if err != nil {
		return nil, err
	}

	return &hir.ExprCommand{Expr: e, ExprSpan: p.spanFrom(ti.Pos)}, nil
}

// parseInternalCommand parses the arguments of a command call according to its signature.
func (p *Parser) parseInternalCommand(name scanner.TokenInfo, sig *command.Signature) (*hir.InternalCommand, error) {
	call := hir.InternalCommand{
		Name:     name.Lit,
		NameSpan: name.Span(),
	}

	for _, pos := range sig.Positional {
		if p.atElementEnd() {
			if pos.Required {
				return nil, errors.WithStack(&ParseError{
					Message: fmt.Sprintf("missing argument <%s> of %s", pos.Name, sig.Name),
					Pos:     p.peek().Pos,
				})
			}
			break
		}

		arg, err := p.parseArg(pos.Shape)
		if err != nil {
			return nil, err
		}
		call.Args = append(call.Args, arg)
	}

	if sig.Rest != nil {
		for !p.atElementEnd() {
			arg, err := p.parseArg(sig.Rest.Shape)
			if err != nil {
				return nil, err
			}
			call.Args = append(call.Args, arg)
		}
	}

	if !p.atElementEnd() {
		ti := p.peek()
		return nil, newParseError(scanner.Tokstr(ti.Tok, ti.Lit), []string{"|", ";", "newline"}, ti.Pos)
	}

	call.CallSpan = p.spanFrom(name.Pos)
	return &call, nil
}

// parseArg parses a single argument of the given shape.
func (p *Parser) parseArg(shape command.SyntaxShape) (hir.Arg, error) {
	start := p.peek()

	switch shape {
	case command.ShapeMath:
		if start.Tok == scanner.LBRACKET {
			break
		}

		// The rest of the call is a single expression, which becomes
		// the only statement of a block.
		e, err := p.ParseExpr()
		if err != nil {
			return hir.Arg{}, err
		}
		span := p.spanFrom(start.Pos)
		block := hir.Block{
			Statements: []*hir.Pipeline{{
				Commands: []hir.ClassifiedCommand{&hir.ExprCommand{Expr: e, ExprSpan: span}},
				Span:     span,
			}},
			Span: span,
		}
		return hir.Arg{Expr: &hir.BlockExpr{Block: &block}, Span: span}, nil
	case command.ShapeBlock:
		if start.Tok != scanner.LBRACKET {
			return hir.Arg{}, newParseError(scanner.Tokstr(start.Tok, start.Lit), []string{"{"}, start.Pos)
		}
	}

	e, err := p.parseUnaryExpr()
	if err != nil {
		return hir.Arg{}, err
	}

	return hir.Arg{Expr: e, Span: p.spanFrom(start.Pos)}, nil
}

// atElementEnd reports whether the next token ends the current pipeline element.
func (p *Parser) atElementEnd() bool {
	switch p.peek().Tok {
	case scanner.PIPE, scanner.NEWLINE, scanner.SEMICOLON, scanner.RBRACKET, scanner.EOF:
		return true
	}

	return false
}
