package parser

import (
	"mirc/internal/ast"
	"mirc/internal/diag"
	"mirc/internal/token"
)

// parseIf parses `if expr { block } (elif expr { block })* (else { block })?`.
// A bare 'elif'/'else' at the start of a statement (i.e. not immediately
// following this function's own arm chain) is reported as
// FloatingElif/FloatingElse by parseStmt, which never dispatches here for
// those tokens; inside an expression parseAtom rejects them as InvalidTok.
func (p *Parser) parseIf() (*ast.Node, bool) {
	start := p.cur().Pos()

	var arms []ast.IfArm
	p.advance() // 'if'
	arm, ok := p.parseIfArm()
	if !ok {
		return nil, false
	}
	arms = append(arms, arm)

	for p.at(token.KwElif) {
		p.advance()
		arm, ok := p.parseIfArm()
		if !ok {
			return nil, false
		}
		arms = append(arms, arm)
	}

	var elseBody []*ast.Node
	if p.at(token.KwElse) {
		p.advance()
		body, ok := p.parseBlock()
		if !ok {
			return nil, false
		}
		elseBody = body
	}

	return &ast.Node{
		Kind: ast.If, Pos: start,
		If: ast.IfPayload{Arms: arms, Else: elseBody},
	}, true
}

func (p *Parser) parseIfArm() (ast.IfArm, bool) {
	cond, ok := p.parseExpr()
	if !ok {
		return ast.IfArm{}, false
	}
	body, ok := p.parseBlock()
	if !ok {
		return ast.IfArm{}, false
	}
	return ast.IfArm{Cond: cond, Body: body}, true
}

// checkFloating reports FloatingElif/FloatingElse for a stray arm keyword
// encountered by parseStmt with no preceding 'if' to attach to.
func (p *Parser) checkFloating() bool {
	switch p.cur().Kind {
	case token.KwElif:
		diag.NewError(p.reporter, diag.FloatingElif, p.cur().Pos(), "'elif' without a preceding 'if'").Emit()
		return true
	case token.KwElse:
		diag.NewError(p.reporter, diag.FloatingElse, p.cur().Pos(), "'else' without a preceding 'if'").Emit()
		return true
	}
	return false
}
