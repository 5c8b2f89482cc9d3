package parser

import "py2smt/internal/ast"

type Parser struct {
	filename string
	tokens   []Token
	current  int
	errors   []ParseError
}

func NewParser(filename string, tokens []Token) *Parser {
	return &Parser{
		filename: filename,
		tokens:   tokens,
	}
}

func (p *Parser) ParseModule() *ast.Module {
	module := &ast.Module{}

	p.skipNewlines()
	if !p.isAtEnd() {
		module.Pos = p.makePos(p.peek())
	}

	for !p.isAtEnd() {
		if p.check(DEF) {
			if fn := p.parseFunctionDef(); fn != nil {
				module.Functions = append(module.Functions, fn)
				module.EndPos = fn.EndPos
			}
		} else {
			p.errorAtCurrent("expected a function definition at top level")
			p.synchronize()
		}
		p.skipNewlines()
	}

	return module
}

func (p *Parser) parseFunctionDef() *ast.FunctionDef {
	startToken := p.consume(DEF, "expected 'def' keyword")

	name, ok := p.consumeIdent("expected function name after 'def'")
	if !ok {
		p.synchronize()
		return nil
	}

	params := p.parseParameters()
	p.consume(COLON, "expected ':' after function signature")
	body := p.parseSuite()

	endPos := p.makePos(p.previous())
	if len(body) > 0 {
		endPos = body[len(body)-1].NodeEndPos()
	}

	return &ast.FunctionDef{
		Pos:    p.makePos(startToken),
		EndPos: endPos,
		Name:   name,
		Params: params,
		Body:   body,
	}
}

func (p *Parser) parseParameters() []*ast.Param {
	p.consume(LEFT_PAREN, "expected '(' after function name")
	var params []*ast.Param

	for !p.check(RIGHT_PAREN) && !p.isAtEnd() {
		name, ok := p.consumeIdent("expected parameter name")
		if !ok {
			break
		}
		params = append(params, &ast.Param{
			Pos:    name.Pos,
			EndPos: name.EndPos,
			Name:   name,
		})
		if !p.match(COMMA) {
			break
		}
	}

	p.consume(RIGHT_PAREN, "expected ')' after parameter list")
	return params
}

// parseSuite parses the statements governed by a ':'. The block form is
// a NEWLINE followed by an indented group; the inline form is one or
// more ';'-separated simple statements on the same line. An inline suite
// ends without consuming a following 'elif'/'else' so the enclosing
// conditional can pick the chain back up.
func (p *Parser) parseSuite() []ast.Stmt {
	if p.match(NEWLINE) {
		p.consume(INDENT, "expected an indented block")
		var stmts []ast.Stmt
		for !p.check(DEDENT) && !p.isAtEnd() {
			stmts = append(stmts, p.parseStatement()...)
		}
		p.consume(DEDENT, "expected dedent to close block")
		return stmts
	}

	var stmts []ast.Stmt
	for {
		stmts = append(stmts, p.parseSimpleStmt())
		if p.match(SEMICOLON) {
			if p.check(ELIF) || p.check(ELSE) || p.check(NEWLINE) || p.isAtEnd() {
				break
			}
			continue
		}
		break
	}
	if p.check(ELIF) || p.check(ELSE) {
		return stmts
	}
	if !p.isAtEnd() {
		p.match(NEWLINE)
	}
	return stmts
}

// parseStatement parses one source line's worth of statements. Compound
// statements yield a single node; a simple line may carry several
// ';'-separated statements.
func (p *Parser) parseStatement() []ast.Stmt {
	switch {
	case p.check(IF):
		return []ast.Stmt{p.parseIfStmt()}
	case p.check(WHILE):
		return []ast.Stmt{p.parseWhileStmt()}
	case p.check(FOR):
		return []ast.Stmt{p.parseForStmt()}
	case p.check(NEWLINE):
		p.advance()
		return nil
	default:
		var stmts []ast.Stmt
		for {
			stmts = append(stmts, p.parseSimpleStmt())
			if p.match(SEMICOLON) && !p.check(NEWLINE) && !p.isAtEnd() {
				continue
			}
			break
		}
		if !p.isAtEnd() {
			p.match(NEWLINE)
		}
		return stmts
	}
}

func (p *Parser) parseIfStmt() *ast.IfStmt {
	start := p.consume(IF, "expected 'if'")

	branches := []*ast.Branch{p.parseBranch(start)}
	for p.check(ELIF) {
		tok := p.advance()
		branches = append(branches, p.parseBranch(tok))
	}

	var elseBody []ast.Stmt
	if p.match(ELSE) {
		p.consume(COLON, "expected ':' after 'else'")
		elseBody = p.parseSuite()
		if elseBody == nil {
			elseBody = []ast.Stmt{}
		}
	}

	endPos := p.makePos(p.previous())
	if n := len(elseBody); n > 0 {
		endPos = elseBody[n-1].NodeEndPos()
	} else if body := branches[len(branches)-1].Body; len(body) > 0 {
		endPos = body[len(body)-1].NodeEndPos()
	}

	return &ast.IfStmt{
		Pos:      p.makePos(start),
		EndPos:   endPos,
		Branches: branches,
		Else:     elseBody,
	}
}

func (p *Parser) parseBranch(start Token) *ast.Branch {
	cond := p.parseExpr()
	p.consume(COLON, "expected ':' after condition")
	body := p.parseSuite()

	endPos := cond.NodeEndPos()
	if len(body) > 0 {
		endPos = body[len(body)-1].NodeEndPos()
	}

	return &ast.Branch{
		Pos:    p.makePos(start),
		EndPos: endPos,
		Cond:   cond,
		Body:   body,
	}
}

func (p *Parser) parseWhileStmt() *ast.WhileStmt {
	start := p.consume(WHILE, "expected 'while'")
	cond := p.parseExpr()
	p.consume(COLON, "expected ':' after loop condition")
	body := p.parseSuite()

	return &ast.WhileStmt{
		Pos:    p.makePos(start),
		EndPos: p.makePos(p.previous()),
		Cond:   cond,
		Body:   body,
	}
}

func (p *Parser) parseForStmt() *ast.ForStmt {
	start := p.consume(FOR, "expected 'for'")
	target, _ := p.consumeIdent("expected loop variable after 'for'")
	p.consume(IN, "expected 'in' in for statement")
	iter := p.parseExpr()
	p.consume(COLON, "expected ':' after for clause")
	body := p.parseSuite()

	return &ast.ForStmt{
		Pos:    p.makePos(start),
		EndPos: p.makePos(p.previous()),
		Target: target,
		Iter:   iter,
		Body:   body,
	}
}

func (p *Parser) parseSimpleStmt() ast.Stmt {
	if p.check(RETURN) {
		return p.parseReturnStmt()
	}
	if p.check(PASS) {
		tok := p.advance()
		return &ast.PassStmt{Pos: p.makePos(tok), EndPos: p.makeEndPos(tok)}
	}

	expr := p.parseExpr()

	if isAugAssignOperator(p.peek()) {
		return p.parseAugAssign(expr)
	}

	if p.check(EQUAL) {
		return p.parseAssign(expr)
	}

	return &ast.ExprStmt{
		Pos:    expr.NodePos(),
		EndPos: expr.NodeEndPos(),
		Expr:   expr,
	}
}

func (p *Parser) parseReturnStmt() *ast.ReturnStmt {
	start := p.consume(RETURN, "expected 'return'")

	var value ast.Expr
	if !p.check(NEWLINE) && !p.check(SEMICOLON) && !p.isAtEnd() {
		value = p.parseExpr()
	}

	endPos := p.makeEndPos(start)
	if value != nil {
		endPos = value.NodeEndPos()
	}

	return &ast.ReturnStmt{
		Pos:    p.makePos(start),
		EndPos: endPos,
		Value:  value,
	}
}

// parseAssign handles "name = expr" and chained targets
// ("a = b = expr"). Chains parse into one statement with several
// targets; the translator decides whether that is acceptable.
func (p *Parser) parseAssign(first ast.Expr) ast.Stmt {
	target, ok := exprAsTarget(first)
	if !ok {
		p.errorAtCurrent("cannot assign to this expression")
		p.advance()
		value := p.parseExpr()
		return &ast.BadStmt{
			Pos:     first.NodePos(),
			EndPos:  value.NodeEndPos(),
			Message: "invalid assignment target",
		}
	}

	targets := []ast.Ident{target}
	p.consume(EQUAL, "expected '='")
	value := p.parseExpr()

	for p.check(EQUAL) {
		next, ok := exprAsTarget(value)
		if !ok {
			p.errorAtCurrent("cannot chain assignment through this expression")
			break
		}
		targets = append(targets, next)
		p.advance()
		value = p.parseExpr()
	}

	return &ast.AssignStmt{
		Pos:     first.NodePos(),
		EndPos:  value.NodeEndPos(),
		Targets: targets,
		Value:   value,
	}
}

func (p *Parser) parseAugAssign(first ast.Expr) ast.Stmt {
	opTok := p.advance()

	target, ok := exprAsTarget(first)
	if !ok {
		p.errorAtCurrent("cannot assign to this expression")
	}

	value := p.parseExpr()
	return &ast.AugAssignStmt{
		Pos:    first.NodePos(),
		EndPos: value.NodeEndPos(),
		Target: target,
		Op:     opTok.Lexeme,
		Value:  value,
	}
}

func exprAsTarget(expr ast.Expr) (ast.Ident, bool) {
	ident, ok := expr.(*ast.IdentExpr)
	if !ok {
		return ast.Ident{Value: "error"}, false
	}
	return ast.Ident{
		Pos:    ident.Pos,
		EndPos: ident.EndPos,
		Value:  ident.Name,
	}, true
}

func isAugAssignOperator(tok Token) bool {
	switch tok.Type {
	case PLUS_EQUAL, MINUS_EQUAL, STAR_EQUAL, SLASH_EQUAL, PERCENT_EQUAL:
		return true
	default:
		return false
	}
}

func (p *Parser) skipNewlines() {
	for p.check(NEWLINE) {
		p.advance()
	}
}

func (p *Parser) synchronize() {
	p.advance()

	for !p.isAtEnd() {
		if p.previous().Type == NEWLINE {
			return
		}

		switch p.peek().Type {
		case DEF, DEDENT:
			return
		}

		p.advance()
	}
}
