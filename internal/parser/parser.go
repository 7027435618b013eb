// Package parser turns source text into expressions and blocks of pipelines.
package parser

import (
	"fmt"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/lpil/nushell/internal/command"
	"github.com/lpil/nushell/internal/expr"
	"github.com/lpil/nushell/internal/hir"
	"github.com/lpil/nushell/internal/scanner"
)

// A SignatureLookup returns the signature of the commands known to the parser.
// Words that don't name a command are read as expressions.
type SignatureLookup interface {
	Signature(name string) (*command.Signature, bool)
}

// Parser represents a parser of the pipeline language.
type Parser struct {
	tokens []scanner.TokenInfo
	i      int
	sigs   SignatureLookup
}

// NewParser returns a new instance of Parser.
// sigs may be nil, in which case every pipeline element is an expression.
func NewParser(s string, sigs SignatureLookup) *Parser {
	return &Parser{tokens: scanner.ScanAll(strings.NewReader(s)), sigs: sigs}
}

// ParseBlock parses a whole program.
func ParseBlock(s string, sigs SignatureLookup) (*hir.Block, error) {
	return NewParser(s, sigs).ParseBlock()
}

// ParseExpr parses an expression.
func ParseExpr(s string) (expr.Expr, error) {
	p := NewParser(s, nil)

	e, err := p.ParseExpr()
	if err != nil {
		return nil, err
	}

	if ti := p.Scan(); ti.Tok != scanner.EOF {
		return nil, newParseError(scanner.Tokstr(ti.Tok, ti.Lit), []string{"EOF"}, ti.Pos)
	}

	return e, nil
}

// MustParseExpr calls ParseExpr and panics if it returns an error.
func MustParseExpr(s string) expr.Expr {
	e, err := ParseExpr(s)
	if err != nil {
		panic(err)
	}

	return e
}

// ParseBlock parses statements until the end of the input.
func (p *Parser) ParseBlock() (*hir.Block, error) {
	return p.parseStatements(scanner.Pos{}, scanner.EOF)
}

// Scan returns the next token.
// Once the input is exhausted, it keeps returning EOF.
func (p *Parser) Scan() scanner.TokenInfo {
	ti := p.peek()
	p.i++
	return ti
}

// Unscan pushes the previously read token back.
func (p *Parser) Unscan() {
	p.i--
}

func (p *Parser) peek() scanner.TokenInfo {
	return p.tokens[min(p.i, len(p.tokens)-1)]
}

// prev returns the last read token.
func (p *Parser) prev() scanner.TokenInfo {
	if p.i == 0 {
		return scanner.TokenInfo{}
	}
	return p.tokens[min(p.i-1, len(p.tokens)-1)]
}

// spanFrom returns the span going from start to the end of the last read token.
func (p *Parser) spanFrom(start scanner.Pos) scanner.Span {
	return scanner.Span{Start: start, End: p.prev().End}
}

// ParseTokens parses all the given tokens one after the other.
// It returns an error if one of the token is missing.
func (p *Parser) ParseTokens(tokens ...scanner.Token) error {
	for _, t := range tokens {
		if ti := p.Scan(); ti.Tok != t {
			return newParseError(scanner.Tokstr(ti.Tok, ti.Lit), []string{t.String()}, ti.Pos)
		}
	}

	return nil
}

func (p *Parser) skipNewlines() {
	for p.peek().Tok == scanner.NEWLINE {
		p.i++
	}
}

// ParseError represents an error that occurred during parsing.
type ParseError struct {
	Message  string
	Found    string
	Expected []string
	Pos      scanner.Pos
}

// newParseError returns a new instance of ParseError.
func newParseError(found string, expected []string, pos scanner.Pos) error {
	return errors.WithStack(&ParseError{Found: found, Expected: expected, Pos: pos})
}

// Error returns the string representation of the error.
func (e *ParseError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s at line %d, char %d", e.Message, e.Pos.Line+1, e.Pos.Char+1)
	}
	return fmt.Sprintf("found %s, expected %s at line %d, char %d", e.Found, strings.Join(e.Expected, ", "), e.Pos.Line+1, e.Pos.Char+1)
}
