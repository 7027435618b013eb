package scanner

import (
	"strings"
)

// Token is a lexical token of the pipeline language.
type Token int

// These are a comprehensive list of pipeline language tokens.
const (
	// ILLEGAL Token, EOF, WS are special tokens.
	ILLEGAL Token = iota
	EOF
	WS
	NEWLINE
	COMMENT

	literalBeg
	// IDENT and the following are literal tokens.
	IDENT     // main, skip-while
	VARIABLE  // $it
	NUMBER    // 12345.67
	INTEGER   // 12345
	STRING    // "abc"
	BADSTRING // "abc
	BADESCAPE // \q
	TRUE      // true
	FALSE     // false
	NULL      // null
	literalEnd

	operatorBeg
	// ADD and the following are binary operators
	ADD // +
	SUB // -
	MUL // *
	DIV // /
	MOD // %

	AND // &&
	OR  // ||

	EQ  // ==
	NEQ // !=
	LT  // <
	LTE // <=
	GT  // >
	GTE // >=
	operatorEnd

	NOT       // !
	LPAREN    // (
	RPAREN    // )
	LBRACKET  // {
	RBRACKET  // }
	LSBRACKET // [
	RSBRACKET // ]
	COMMA     // ,
	DOT       // .
	PIPE      // |
	SEMICOLON // ;
)

var tokens = [...]string{
	ILLEGAL: "ILLEGAL",
	EOF:     "EOF",
	WS:      "WS",
	NEWLINE: "NEWLINE",
	COMMENT: "COMMENT",

	IDENT:     "IDENT",
	VARIABLE:  "VARIABLE",
	NUMBER:    "NUMBER",
	INTEGER:   "INTEGER",
	STRING:    "STRING",
	BADSTRING: "BADSTRING",
	BADESCAPE: "BADESCAPE",
	TRUE:      "true",
	FALSE:     "false",
	NULL:      "null",

	ADD: "+",
	SUB: "-",
	MUL: "*",
	DIV: "/",
	MOD: "%",

	AND: "&&",
	OR:  "||",

	EQ:  "==",
	NEQ: "!=",
	LT:  "<",
	LTE: "<=",
	GT:  ">",
	GTE: ">=",

	NOT:       "!",
	LPAREN:    "(",
	RPAREN:    ")",
	LBRACKET:  "{",
	RBRACKET:  "}",
	LSBRACKET: "[",
	RSBRACKET: "]",
	COMMA:     ",",
	DOT:       ".",
	PIPE:      "|",
	SEMICOLON: ";",
}

var keywords map[string]Token

func init() {
	keywords = map[string]Token{
		"true":  TRUE,
		"false": FALSE,
		"null":  NULL,
	}
}

// String returns the string representation of the token.
func (tok Token) String() string {
	if tok >= 0 && tok < Token(len(tokens)) {
		return tokens[tok]
	}
	return ""
}

// Precedence returns the operator precedence of the binary operator token.
func (tok Token) Precedence() int {
	switch tok {
	case OR:
		return 1
	case AND:
		return 2
	case EQ, NEQ, LT, LTE, GT, GTE:
		return 3
	case ADD, SUB:
		return 4
	case MUL, DIV, MOD:
		return 5
	}
	return 0
}

// IsOperator returns true for operator tokens.
func (tok Token) IsOperator() bool { return tok > operatorBeg && tok < operatorEnd }

// IsLiteral returns true for literal tokens.
func (tok Token) IsLiteral() bool { return tok > literalBeg && tok < literalEnd }

// Tokstr returns a literal if provided, otherwise returns the token string.
func Tokstr(tok Token, lit string) string {
	if lit != "" {
		return lit
	}
	return tok.String()
}

// Lookup returns the token associated with a given string.
func Lookup(ident string) Token {
	if tok, ok := keywords[strings.ToLower(ident)]; ok {
		return tok
	}
	return IDENT
}

// Pos specifies the line and character position of a token.
// The Char and Line are both zero-based indexes, Offset is the zero-based rune offset
// from the start of the source.
type Pos struct {
	Line   int
	Char   int
	Offset int
}

// A Span is the portion of the source a syntax element was read from.
type Span struct {
	Start Pos
	End   Pos
}

// Len returns the number of runes covered by the span.
func (s Span) Len() int {
	return s.End.Offset - s.Start.Offset
}

// Merge returns the smallest span covering both s and o.
func (s Span) Merge(o Span) Span {
	if o.Start.Offset < s.Start.Offset {
		s.Start = o.Start
	}
	if o.End.Offset > s.End.Offset {
		s.End = o.End
	}
	return s
}

// TokenInfo holds information about a token.
type TokenInfo struct {
	Tok Token
	Pos Pos
	End Pos
	Lit string
}

// Span returns the span covered by the token.
func (ti TokenInfo) Span() Span {
	return Span{Start: ti.Pos, End: ti.End}
}
