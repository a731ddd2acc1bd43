package parser

import (
	"mirc/internal/ast"
	"mirc/internal/diag"
	"mirc/internal/token"
)

// parseFn parses `fn name(args) [: type] { block }`. Nested function
// definitions are rejected with NestedFnDef.
func (p *Parser) parseFn() (*ast.Node, bool) {
	start := p.cur().Pos()
	p.advance() // 'fn'

	if p.nested {
		diag.NewError(p.reporter, diag.NestedFnDef, start, "nested function definitions are disallowed").Emit()
		return nil, false
	}

	nameTok, ok := p.expect(token.Ident)
	if !ok {
		return nil, false
	}

	if _, ok := p.expect(token.LParen); !ok {
		return nil, false
	}
	var params []string
	for !p.at(token.RParen) {
		argTok, ok := p.expect(token.Ident)
		if !ok {
			return nil, false
		}
		params = append(params, argTok.Lexeme)
		if p.at(token.Comma) {
			p.advance()
		}
	}
	p.advance() // ')'

	retType := ""
	if p.at(token.Colon) {
		p.advance()
		typeTok, ok := p.expect(token.Ident)
		if !ok {
			return nil, false
		}
		retType = typeTok.Lexeme
	}

	p.nested = true
	body, ok := p.parseBlock()
	p.nested = false
	if !ok {
		return nil, false
	}

	return &ast.Node{
		Kind: ast.Fn,
		Pos:  start,
		Fn: ast.FnPayload{
			Name:       nameTok.Lexeme,
			Params:     params,
			ReturnType: retType,
			Body:       body,
		},
	}, true
}

// parseBlock parses `{ stmt* }`, skipping newlines between statements.
func (p *Parser) parseBlock() ([]*ast.Node, bool) {
	if _, ok := p.expect(token.LBrace); !ok {
		return nil, false
	}
	p.skipNewlines()
	var stmts []*ast.Node
	for !p.at(token.RBrace) {
		stmt, ok := p.parseStmt()
		if !ok {
			return nil, false
		}
		stmts = append(stmts, stmt)
		p.skipNewlines()
	}
	p.advance() // '}'
	return stmts, true
}
