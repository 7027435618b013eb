package parser

import (
	"strconv"

	"github.com/cockroachdb/errors"
	"github.com/lpil/nushell/internal/environment"
	"github.com/lpil/nushell/internal/expr"
	"github.com/lpil/nushell/internal/hir"
	"github.com/lpil/nushell/internal/scanner"
	"github.com/lpil/nushell/internal/types"
)

type dummyOperator struct {
	rightHand expr.Expr
}

func (d *dummyOperator) Token() scanner.Token { panic("not implemented") }
func (d *dummyOperator) Eval(*environment.Environment) (types.Value, error) {
	panic("not implemented")
}
func (d *dummyOperator) String() string               { panic("not implemented") }
func (d *dummyOperator) Precedence() int              { panic("not implemented") }
func (d *dummyOperator) LeftHand() expr.Expr          { panic("not implemented") }
func (d *dummyOperator) RightHand() expr.Expr         { return d.rightHand }
func (d *dummyOperator) SetLeftHandExpr(e expr.Expr)  { panic("not implemented") }
func (d *dummyOperator) SetRightHandExpr(e expr.Expr) { d.rightHand = e }

// ParseExpr parses an expression.
func (p *Parser) ParseExpr() (e expr.Expr, err error) {
	return p.parseExprWithMinPrecedence(0)
}

func (p *Parser) parseExprWithMinPrecedence(precedence int) (e expr.Expr, err error) {
	// Dummy root node.
	var root expr.Operator = new(dummyOperator)

	// Parse a non-binary expression type to start.
	// This variable will always be the root of the expression tree.
	e, err = p.parseUnaryExpr()
	if err != nil {
		return nil, err
	}
	root.SetRightHandExpr(e)

	// Loop over operations and unary exprs and build a tree based on precedence.
	for {
		// If the next token is NOT an operator then return the expression.
		op, tok := p.parseOperator(precedence)
		if tok == 0 {
			return root.RightHand(), nil
		}

		var rhs expr.Expr

		if rhs, err = p.parseUnaryExpr(); err != nil {
			return nil, err
		}

		// Find the right spot in the tree to add the new expression by
		// descending the RHS of the expression tree until we reach the last
		// BinaryExpr or a BinaryExpr whose RHS has an operator with
		// precedence >= the operator being added.
		for node := root; ; {
			p, ok := node.RightHand().(expr.Operator)
			if !ok || p.Precedence() >= tok.Precedence() {
				// Add the new expression here and break.
				node.SetRightHandExpr(op(node.RightHand(), rhs))
				break
			}
			node = p
		}
	}
}

func (p *Parser) parseOperator(minPrecedence int) (func(lhs, rhs expr.Expr) expr.Expr, scanner.Token) {
	p.splitNegativeNumber()

	ti := p.Scan()
	if !ti.Tok.IsOperator() || ti.Tok.Precedence() < minPrecedence {
		p.Unscan()
		return nil, 0
	}

	switch ti.Tok {
	case scanner.EQ:
		return expr.Eq, ti.Tok
	case scanner.NEQ:
		return expr.Neq, ti.Tok
	case scanner.GT:
		return expr.Gt, ti.Tok
	case scanner.GTE:
		return expr.Gte, ti.Tok
	case scanner.LT:
		return expr.Lt, ti.Tok
	case scanner.LTE:
		return expr.Lte, ti.Tok
	case scanner.AND:
		return expr.And, ti.Tok
	case scanner.OR:
		return expr.Or, ti.Tok
	case scanner.ADD:
		return expr.Add, ti.Tok
	case scanner.SUB:
		return expr.Sub, ti.Tok
	case scanner.MUL:
		return expr.Mul, ti.Tok
	case scanner.DIV:
		return expr.Div, ti.Tok
	case scanner.MOD:
		return expr.Mod, ti.Tok
	}

	panic("unknown operator " + ti.Tok.String())
}

// splitNegativeNumber turns a number glued to the previous operand, as in len($it)-1,
// into a subtraction. A spaced out number, as in "echo 1 -1", stays negative.
func (p *Parser) splitNegativeNumber() {
	next := p.peek()
	if next.Tok != scanner.INTEGER && next.Tok != scanner.NUMBER {
		return
	}
	if len(next.Lit) < 2 || next.Lit[0] != '-' || p.prev().End.Offset != next.Pos.Offset {
		return
	}

	sub := scanner.TokenInfo{Tok: scanner.SUB, Pos: next.Pos, End: next.Pos, Lit: "-"}
	sub.End.Char++
	sub.End.Offset++

	num := next
	num.Lit = next.Lit[1:]
	num.Pos = sub.End

	tokens := make([]scanner.TokenInfo, 0, len(p.tokens)+1)
	tokens = append(tokens, p.tokens[:p.i]...)
	tokens = append(tokens, sub, num)
	tokens = append(tokens, p.tokens[p.i+1:]...)
	p.tokens = tokens
}

// parseUnaryExpr parses an non-binary expression.
func (p *Parser) parseUnaryExpr() (expr.Expr, error) {
	ti := p.Scan()
	switch ti.Tok {
	case scanner.VARIABLE:
		return p.parsePath(expr.Variable(ti.Lit)), nil
	case scanner.IDENT:
		if next := p.peek(); next.Tok == scanner.LPAREN && next.Pos.Offset == ti.End.Offset {
			return p.parseFunction(ti.Lit)
		}
		return p.parsePath(expr.Column(ti.Lit)), nil
	case scanner.STRING:
		return expr.LiteralValue{Value: types.NewTextValue(ti.Lit)}, nil
	case scanner.BADSTRING:
		return nil, errors.WithStack(&ParseError{Message: "unterminated string", Pos: ti.Pos})
	case scanner.BADESCAPE:
		return nil, errors.WithStack(&ParseError{Message: "invalid escape sequence", Pos: ti.Pos})
	case scanner.NUMBER:
		v, err := strconv.ParseFloat(ti.Lit, 64)
		if err != nil {
			return nil, errors.WithStack(&ParseError{Message: "unable to parse number", Pos: ti.Pos})
		}
		return expr.LiteralValue{Value: types.NewDoubleValue(v)}, nil
	case scanner.INTEGER:
		v, err := strconv.ParseInt(ti.Lit, 10, 64)
		if err != nil {
			// The literal may be too large to fit in an int64, parse it as a double.
			f, err := strconv.ParseFloat(ti.Lit, 64)
			if err != nil {
				return nil, errors.WithStack(&ParseError{Message: "unable to parse integer", Pos: ti.Pos})
			}
			return expr.LiteralValue{Value: types.NewDoubleValue(f)}, nil
		}
		return expr.LiteralValue{Value: types.NewIntegerValue(v)}, nil
	case scanner.TRUE, scanner.FALSE:
		return expr.LiteralValue{Value: types.NewBooleanValue(ti.Tok == scanner.TRUE)}, nil
	case scanner.NULL:
		return expr.LiteralValue{Value: types.NewNullValue()}, nil
	case scanner.NOT:
		e, err := p.parseUnaryExpr()
		if err != nil {
			return nil, err
		}
		return expr.Not(e), nil
	case scanner.LPAREN:
		e, err := p.ParseExpr()
		if err != nil {
			return nil, err
		}
		if err := p.ParseTokens(scanner.RPAREN); err != nil {
			return nil, err
		}
		return expr.Parentheses{E: e}, nil
	case scanner.LSBRACKET:
		return p.parseList()
	case scanner.LBRACKET:
		p.Unscan()
		return p.parseBlockLiteral()
	}

	return nil, newParseError(scanner.Tokstr(ti.Tok, ti.Lit), []string{"expression"}, ti.Pos)
}

// parsePath parses the members following e, as in $it.size.
func (p *Parser) parsePath(e expr.Expr) expr.Expr {
	var members []string

	for {
		dot := p.peek()
		if dot.Tok != scanner.DOT || dot.Pos.Offset != p.prev().End.Offset {
			break
		}
		p.Scan()

		ident := p.Scan()
		if ident.Tok != scanner.IDENT {
			p.Unscan()
			p.Unscan()
			break
		}
		members = append(members, ident.Lit)
	}

	if len(members) == 0 {
		return e
	}

	return expr.Path{E: e, Members: members}
}

// parseFunction parses the arguments of a function call: name(arg, ...).
func (p *Parser) parseFunction(name string) (expr.Expr, error) {
	if err := p.ParseTokens(scanner.LPAREN); err != nil {
		return nil, err
	}

	fn := expr.FunctionCall{Name: name}

	if ti := p.Scan(); ti.Tok == scanner.RPAREN {
		return &fn, nil
	}
	p.Unscan()

	for {
		e, err := p.ParseExpr()
		if err != nil {
			return nil, err
		}
		fn.Args = append(fn.Args, e)

		ti := p.Scan()
		switch ti.Tok {
		case scanner.COMMA:
			continue
		case scanner.RPAREN:
			return &fn, nil
		}

		return nil, newParseError(scanner.Tokstr(ti.Tok, ti.Lit), []string{",", ")"}, ti.Pos)
	}
}

// parseList parses a list literal. Elements are separated by commas or spaces
// and may span multiple lines.
func (p *Parser) parseList() (expr.Expr, error) {
	var list expr.LiteralExprList

	for {
		p.skipNewlines()

		ti := p.Scan()
		switch ti.Tok {
		case scanner.RSBRACKET:
			return list, nil
		case scanner.COMMA:
			if len(list) > 0 {
				continue
			}
			return nil, newParseError(scanner.Tokstr(ti.Tok, ti.Lit), []string{"expression", "]"}, ti.Pos)
		case scanner.EOF:
			return nil, newParseError(scanner.Tokstr(ti.Tok, ti.Lit), []string{"]"}, ti.Pos)
		}
		p.Unscan()

		e, err := p.ParseExpr()
		if err != nil {
			return nil, err
		}
		list = append(list, e)
	}
}

// parseBlockLiteral parses a block between brackets.
func (p *Parser) parseBlockLiteral() (*hir.BlockExpr, error) {
	start := p.Scan()
	if start.Tok != scanner.LBRACKET {
		return nil, newParseError(scanner.Tokstr(start.Tok, start.Lit), []string{"{"}, start.Pos)
	}

	block, err := p.parseStatements(start.Pos, scanner.RBRACKET)
	if err != nil {
		return nil, err
	}

	return &hir.BlockExpr{Block: block}, nil
}
