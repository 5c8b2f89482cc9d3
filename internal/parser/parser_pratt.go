package parser

import (
	"py2smt/internal/ast"
)

var binaryPrecedence = map[string]int{
	"or":  1,
	"and": 2,
	"==": 3, "!=": 3,
	"<": 3, "<=": 3, ">": 3, ">=": 3,
	"+": 4, "-": 4,
	"*": 5, "/": 5, "%": 5, "//": 5,
	"**": 6,
}

// notPrecedence places 'not' between the boolean connectives and the
// comparisons, so "not a == b" parses as "not (a == b)".
const notPrecedence = 3

func (p *Parser) parseExpr() ast.Expr {
	return p.parsePrattExpr(0)
}

func (p *Parser) parsePrattExpr(minPrec int) ast.Expr {
	expr := p.parsePrefixExpr()

	for {
		tok := p.peek()
		prec, ok := binaryPrecedence[tok.Lexeme]
		if !ok || prec < minPrec {
			break
		}

		p.advance()
		right := p.parsePrattExpr(prec + 1)

		expr = &ast.BinaryExpr{
			Pos:    expr.NodePos(),
			EndPos: right.NodeEndPos(),
			Op:     tok.Lexeme,
			Left:   expr,
			Right:  right,
		}
	}

	return expr
}

func (p *Parser) parsePrefixExpr() ast.Expr {
	if p.match(NOT) {
		op := p.previous()
		value := p.parsePrattExpr(notPrecedence)
		return &ast.UnaryExpr{
			Pos:    p.makePos(op),
			EndPos: value.NodeEndPos(),
			Op:     "not",
			Value:  value,
		}
	}

	if p.match(MINUS) {
		op := p.previous()
		value := p.parsePrefixExpr()
		return &ast.UnaryExpr{
			Pos:    p.makePos(op),
			EndPos: value.NodeEndPos(),
			Op:     "-",
			Value:  value,
		}
	}

	return p.parsePostfixExpr(p.parsePrimaryExpr())
}

// parsePostfixExpr handles call suffixes. Calls are outside the
// translatable subset but parsing them keeps diagnostics precise.
func (p *Parser) parsePostfixExpr(expr ast.Expr) ast.Expr {
	for p.check(LEFT_PAREN) {
		p.advance()
		args := p.parseExprList()
		end := p.consume(RIGHT_PAREN, "expected ')' after arguments")
		expr = &ast.CallExpr{
			Pos:    expr.NodePos(),
			EndPos: p.makeEndPos(end),
			Callee: expr,
			Args:   args,
		}
	}
	return expr
}

func (p *Parser) parsePrimaryExpr() ast.Expr {
	if p.match(NUMBER) {
		tok := p.previous()
		return &ast.LiteralExpr{
			Pos:    p.makePos(tok),
			EndPos: p.makeEndPos(tok),
			Kind:   ast.NumberLit,
			Value:  tok.Lexeme,
		}
	}

	if p.match(STRING) {
		tok := p.previous()
		return &ast.LiteralExpr{
			Pos:    p.makePos(tok),
			EndPos: p.makeEndPos(tok),
			Kind:   ast.StringLit,
			Value:  tok.Lexeme,
		}
	}

	if p.match(TRUE, FALSE) {
		tok := p.previous()
		return &ast.LiteralExpr{
			Pos:    p.makePos(tok),
			EndPos: p.makeEndPos(tok),
			Kind:   ast.BoolLit,
			Value:  tok.Lexeme,
		}
	}

	if p.match(NONE) {
		tok := p.previous()
		return &ast.LiteralExpr{
			Pos:    p.makePos(tok),
			EndPos: p.makeEndPos(tok),
			Kind:   ast.NoneLit,
			Value:  tok.Lexeme,
		}
	}

	if p.match(IDENTIFIER) {
		tok := p.previous()
		return &ast.IdentExpr{
			Pos:    p.makePos(tok),
			EndPos: p.makeEndPos(tok),
			Name:   tok.Lexeme,
		}
	}

	if p.match(LEFT_PAREN) {
		l := p.previous()
		value := p.parsePrattExpr(0)
		if p.check(COMMA) {
			p.errorAtCurrent("tuple expressions are not supported")
			for p.match(COMMA) && !p.check(RIGHT_PAREN) && !p.isAtEnd() {
				p.parsePrattExpr(0)
			}
		}
		r := p.consume(RIGHT_PAREN, "expected ')'")
		return &ast.ParenExpr{
			Pos:    p.makePos(l),
			EndPos: p.makeEndPos(r),
			Value:  value,
		}
	}

	tok := p.peek()
	p.errorAtCurrent("unexpected token in expression")
	bad := &ast.BadExpr{
		Pos:     p.makePos(tok),
		EndPos:  p.makeEndPos(tok),
		Message: "unexpected token in expression: " + tok.Lexeme,
	}
	p.advance()
	return bad
}

func (p *Parser) parseExprList() []ast.Expr {
	var args []ast.Expr
	if p.check(RIGHT_PAREN) {
		return args
	}

	for {
		args = append(args, p.parsePrattExpr(0))
		if !p.match(COMMA) {
			break
		}
	}

	return args
}
