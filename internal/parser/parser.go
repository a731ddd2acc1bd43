// Package parser implements a recursive-descent parser with an
// operator-precedence expression rule over the token stream produced by
// internal/lexer.
package parser

import (
	"mirc/internal/ast"
	"mirc/internal/diag"
	"mirc/internal/source"
	"mirc/internal/token"
)

// Parser consumes a fixed token slice and builds an AST.
type Parser struct {
	toks     []token.Token
	pos      int
	reporter diag.Reporter

	fnNames map[string]source.Position // for MultipleFunctionDefinitions
	nested  bool                       // true while inside a function body, for NestedFnDef
}

// New constructs a Parser over toks (which must end with a token.EOF).
func New(toks []token.Token, r diag.Reporter) *Parser {
	return &Parser{toks: toks, reporter: r, fnNames: make(map[string]source.Position)}
}

func (p *Parser) cur() token.Token {
	return p.toks[p.pos]
}

func (p *Parser) at(k token.Kind) bool {
	return p.cur().Kind == k
}

func (p *Parser) advance() token.Token {
	t := p.toks[p.pos]
	if p.pos < len(p.toks)-1 {
		p.pos++
	}
	return t
}

// skipNewlines consumes zero or more Newline tokens; newlines between
// statements are insignificant and never required before '}'.
func (p *Parser) skipNewlines() {
	for p.at(token.Newline) {
		p.advance()
	}
}

func (p *Parser) expect(k token.Kind) (token.Token, bool) {
	if !p.at(k) {
		diag.NewError(p.reporter, diagCodeForExpect, p.cur().Pos(),
			"unexpected token: expected %s, found %s", k, p.cur().Kind).Emit()
		return token.Token{}, false
	}
	return p.advance(), true
}

// diagCodeForExpect reuses InvalidTok for generic "expected X, found Y"
// syntax errors; the language's error catalog has no separate generic
// syntax-error code.
const diagCodeForExpect = diag.InvalidTok

// ParseFile parses an entire token stream into top-level function
// definitions. Only `fn` definitions are valid at the top level.
func (p *Parser) ParseFile() ([]*ast.Node, bool) {
	var fns []*ast.Node
	p.skipNewlines()
	for !p.at(token.EOF) {
		if !p.at(token.KwFn) {
			diag.NewError(p.reporter, diag.NonModuleLevelStatement, p.cur().Pos(),
				"unexpected module level statement").Emit()
			return nil, false
		}
		fn, ok := p.parseFn()
		if !ok {
			return nil, false
		}
		if prevPos, dup := p.fnNames[fn.Fn.Name]; dup {
			diag.NewError(p.reporter, diag.MultipleFunctionDefinitions, fn.Pos,
				"function '%s' is defined more than once", fn.Fn.Name).
				WithSite(prevPos, "first defined here").Emit()
			return nil, false
		}
		p.fnNames[fn.Fn.Name] = fn.Pos
		fns = append(fns, fn)
		p.skipNewlines()
	}
	return fns, true
}
