package parser

import (
	"mirc/internal/ast"
	"mirc/internal/token"
)

// parseStmt parses one statement: let, store, return, if, or a bare
// expression evaluated for effect.
func (p *Parser) parseStmt() (*ast.Node, bool) {
	switch {
	case p.at(token.KwLet):
		return p.parseLet()
	case p.at(token.KwReturn):
		return p.parseReturn()
	case p.at(token.KwIf):
		return p.parseIf()
	case p.at(token.KwFn):
		return p.parseFn() // always NestedFnDef: parseStmt only runs inside a body
	case p.at(token.Ident) && p.peekIsAssign():
		return p.parseStore()
	case p.checkFloating():
		return nil, false
	default:
		return p.parseExpr()
	}
}

func (p *Parser) peekIsAssign() bool {
	if p.pos+1 >= len(p.toks) {
		return false
	}
	return p.toks[p.pos+1].Kind == token.Assign
}

// parseLet parses `let [mut] name [: type] = expr`.
func (p *Parser) parseLet() (*ast.Node, bool) {
	start := p.cur().Pos()
	p.advance() // 'let'

	isMut := false
	if p.at(token.KwMut) {
		isMut = true
		p.advance()
	}

	nameTok, ok := p.expect(token.Ident)
	if !ok {
		return nil, false
	}

	typeName := ""
	if p.at(token.Colon) {
		p.advance()
		typeTok, ok := p.expect(token.Ident)
		if !ok {
			return nil, false
		}
		typeName = typeTok.Lexeme
	}

	if _, ok := p.expect(token.Assign); !ok {
		return nil, false
	}
	init, ok := p.parseExpr()
	if !ok {
		return nil, false
	}

	return &ast.Node{
		Kind: ast.Let, Pos: start,
		Let: ast.LetPayload{Name: nameTok.Lexeme, IsMut: isMut, Init: init, TypeName: typeName},
	}, true
}

// parseStore parses `name = expr`.
func (p *Parser) parseStore() (*ast.Node, bool) {
	nameTok := p.advance()
	p.advance() // '='
	expr, ok := p.parseExpr()
	if !ok {
		return nil, false
	}
	return &ast.Node{
		Kind: ast.Store, Pos: nameTok.Pos(),
		Store: ast.StorePayload{Name: nameTok.Lexeme, Expr: expr},
	}, true
}

// parseReturn parses `return expr`.
func (p *Parser) parseReturn() (*ast.Node, bool) {
	start := p.cur().Pos()
	p.advance() // 'return'
	expr, ok := p.parseExpr()
	if !ok {
		return nil, false
	}
	return &ast.Node{Kind: ast.Return, Pos: start, Inner: expr}, true
}
