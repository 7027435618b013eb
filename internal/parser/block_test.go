package parser_test

import (
	"testing"

	"github.com/lpil/nushell/internal/command"
	"github.com/lpil/nushell/internal/expr"
	"github.com/lpil/nushell/internal/hir"
	"github.com/lpil/nushell/internal/parser"
	"github.com/lpil/nushell/internal/types"
	"github.com/stretchr/testify/require"
)

type signatures map[string]*command.Signature

func (s signatures) Signature(name string) (*command.Signature, bool) {
	sig, ok := s[name]
	return sig, ok
}

var testSigs = signatures{
	"echo":       command.NewSignature("echo").RestArgs("rest", command.ShapeAny, "the values to echo"),
	"skip-while": command.NewSignature("skip-while").Required("condition", command.ShapeMath, "the condition").Filter(),
	"first":      command.NewSignature("first").Optional("rows", command.ShapeInt, "the number of rows").Filter(),
	"each":       command.NewSignature("each").Required("block", command.ShapeBlock, "the block").Filter(),
}

func TestParseBlock(t *testing.T) {
	tests := []struct {
		name       string
		s          string
		statements int
		str        string
	}{
		{"empty", "", 0, ""},
		{"only separators", " ;\n ; ", 0, ""},
		{"single command", "echo 1 2", 1, "echo 1 2"},
		{"pipeline", "echo 1 2 | skip-while $it < 3 | first 2", 1, "echo 1 2 | skip-while { $it < 3 } | first 2"},
		{"explicit block", "echo 1 | skip-while { $it < 3 }", 1, "echo 1 | skip-while { $it < 3 }"},
		{"command in block", "echo 1 | skip-while { echo 1 }", 1, "echo 1 | skip-while { echo 1 }"},
		{"optional argument", "echo 1 | first", 1, "echo 1 | first"},
		{"expression head", "[1 2 3] | skip-while $it < 2", 1, "[1, 2, 3] | skip-while { $it < 2 }"},
		{"statements", "echo 1; echo 2\necho 3", 3, "echo 1; echo 2; echo 3"},
		{"newline after pipe", "echo 1 |\n  first", 1, "echo 1 | first"},
		{"comments", "echo 1 # one\n# nothing\necho 2", 2, "echo 1; echo 2"},
		{"function named like a command", "first(1)", 1, "first(1)"},
		{"block argument", "echo 1 | each { $it + 1 }", 1, "echo 1 | each { $it + 1 }"},
		{"unknown word is a column", "size > 1", 1, "size > 1"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			b, err := parser.ParseBlock(test.s, testSigs)
			require.NoError(t, err)
			require.Equal(t, test.statements, b.Len())
			require.Equal(t, test.str, b.String())
		})
	}
}

func TestParseBlockClassification(t *testing.T) {
	b, err := parser.ParseBlock("echo 1 2 | skip-while $it < 3", testSigs)
	require.NoError(t, err)
	require.Len(t, b.Statements, 1)

	cmds := b.Statements[0].Commands
	require.Len(t, cmds, 2)

	echo, ok := cmds[0].(*hir.InternalCommand)
	require.True(t, ok)
	require.Equal(t, "echo", echo.Name)
	require.Len(t, echo.Args, 2)

	sw, ok := cmds[1].(*hir.InternalCommand)
	require.True(t, ok)
	require.Equal(t, "skip-while", sw.Name)
	require.Len(t, sw.Args, 1)

	// the condition is wrapped into a block of one bare expression
	be, ok := sw.Args[0].Expr.(*hir.BlockExpr)
	require.True(t, ok)
	require.Equal(t, 1, be.Block.Len())
	require.Len(t, be.Block.Statements[0].Commands, 1)
	ec, ok := be.Block.Statements[0].Commands[0].(*hir.ExprCommand)
	require.True(t, ok)
	require.Equal(t, expr.Lt(expr.Variable("it"), expr.LiteralValue{Value: types.NewIntegerValue(3)}), ec.Expr)

	// spans
	require.Equal(t, 22, sw.Args[0].Span.Start.Offset)
	require.Equal(t, 29, sw.Args[0].Span.End.Offset)
	require.Equal(t, 11, sw.CallSpan.Start.Offset)
	require.Equal(t, 29, sw.CallSpan.End.Offset)
	require.Equal(t, 11, sw.NameSpan.Start.Offset)
	require.Equal(t, 21, sw.NameSpan.End.Offset)
}

func TestParseBlockWithoutSignatures(t *testing.T) {
	b, err := parser.ParseBlock("echo", nil)
	require.NoError(t, err)

	_, ok := b.Statements[0].Commands[0].(*hir.ExprCommand)
	require.True(t, ok)
}

func TestParseBlockErrors(t *testing.T) {
	tests := []struct {
		name string
		s    string
		msg  string
	}{
		{"missing condition", "echo 1 | skip-while", "missing argument <condition> of skip-while at line 1, char 20"},
		{"missing condition before comment", "echo 1 | skip-while # later", "missing argument <condition> of skip-while at line 1, char 28"},
		{"missing condition before pipe", "skip-while | first", "missing argument <condition> of skip-while at line 1, char 12"},
		{"too many arguments", "first 1 2", "found 2, expected |, ;, newline at line 1, char 9"},
		{"trailing tokens after condition", "skip-while $it < 3 4", "found 4, expected |, ;, newline at line 1, char 20"},
		{"unclosed block", "skip-while { $it < 3", "found EOF, expected } at line 1, char 21"},
		{"stray bracket", "echo 1 }", "found }, expected |, ;, newline, EOF at line 1, char 8"},
		{"block expected", "each $it", "found it, expected { at line 1, char 6"},
		{"empty pipeline element", "echo 1 | | first", "found |, expected expression at line 1, char 10"},
		{"trailing expression tokens", "1 2", "found 2, expected |, ;, newline, EOF at line 1, char 3"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := parser.ParseBlock(test.s, testSigs)
			var perr *parser.ParseError
			require.ErrorAs(t, err, &perr)
			require.Equal(t, test.msg, perr.Error())
		})
	}
}
