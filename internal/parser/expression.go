package parser

import (
	"mirc/internal/ast"
	"mirc/internal/diag"
	"mirc/internal/token"
)

// precedence levels, lowest to highest, for the binary operators this
// language has. Assign sits below Comparison in the language's precedence
// table but never appears inside expression parsing itself — `name = expr`
// is recognized as a statement shape before the expression parser runs
// (see parseStmt), so it never needs a binding power here.
const (
	precNone = iota
	precComparison
	precSum
)

func binOpPrecedence(k token.Kind) (ast.BinaryOp, int, bool) {
	switch k {
	case token.EqEq:
		return ast.OpEq, precComparison, true
	case token.BangEq:
		return ast.OpNe, precComparison, true
	case token.Plus:
		return ast.OpAdd, precSum, true
	default:
		return 0, 0, false
	}
}

// parseExpr parses a full expression using precedence climbing.
func (p *Parser) parseExpr() (*ast.Node, bool) {
	return p.parseBinary(precNone)
}

func (p *Parser) parseBinary(minPrec int) (*ast.Node, bool) {
	left, ok := p.parseUnary()
	if !ok {
		return nil, false
	}
	for {
		op, prec, isOp := binOpPrecedence(p.cur().Kind)
		if !isOp || prec <= minPrec {
			return left, true
		}
		opPos := p.cur().Pos()
		p.advance()
		right, ok := p.parseBinary(prec)
		if !ok {
			return nil, false
		}
		left = &ast.Node{
			Kind: ast.Binary,
			Pos:  left.Pos.Cover(right.Pos),
			Binary: ast.BinaryPayload{
				Left: left, Op: op, Right: right, OpPos: opPos,
			},
		}
	}
}

// parseUnary handles the prefix '&' (reference) and '*' (dereference)
// operators, which bind tighter than any binary operator.
func (p *Parser) parseUnary() (*ast.Node, bool) {
	switch p.cur().Kind {
	case token.Amp:
		pos := p.cur().Pos()
		p.advance()
		inner, ok := p.parseUnary()
		if !ok {
			return nil, false
		}
		return &ast.Node{Kind: ast.Reference, Pos: pos, Inner: inner}, true
	case token.Star:
		pos := p.cur().Pos()
		p.advance()
		inner, ok := p.parseUnary()
		if !ok {
			return nil, false
		}
		return &ast.Node{Kind: ast.Dereference, Pos: pos, Inner: inner}, true
	default:
		return p.parseAtom()
	}
}

func (p *Parser) parseAtom() (*ast.Node, bool) {
	tok := p.cur()
	switch {
	case tok.Kind.IsIntLit():
		p.advance()
		return &ast.Node{
			Kind: ast.IntLit, Pos: tok.Pos(),
			IntLit: ast.IntLitPayload{Text: tok.Lexeme, BasicKind: intLitBasicKind(tok.Kind)},
		}, true
	case tok.Kind == token.KwTrue:
		p.advance()
		return &ast.Node{Kind: ast.BoolLit, Pos: tok.Pos(), BoolLit: true}, true
	case tok.Kind == token.KwFalse:
		p.advance()
		return &ast.Node{Kind: ast.BoolLit, Pos: tok.Pos(), BoolLit: false}, true
	case tok.Kind == token.LParen:
		p.advance()
		inner, ok := p.parseExpr()
		if !ok {
			return nil, false
		}
		if _, ok := p.expect(token.RParen); !ok {
			return nil, false
		}
		return inner, true
	case tok.Kind == token.Ident:
		p.advance()
		if p.at(token.LParen) {
			return p.parseCallArgs(tok)
		}
		return &ast.Node{Kind: ast.Ident, Pos: tok.Pos(), Ident: tok.Lexeme}, true
	case tok.Kind == token.KwIf:
		return p.parseIf()
	default:
		diag.NewError(p.reporter, diag.InvalidTok, tok.Pos(), "unexpected token in expression: %s", tok.Kind).Emit()
		return nil, false
	}
}

func (p *Parser) parseCallArgs(nameTok token.Token) (*ast.Node, bool) {
	p.advance() // '('
	var args []*ast.Node
	for !p.at(token.RParen) {
		arg, ok := p.parseExpr()
		if !ok {
			return nil, false
		}
		args = append(args, arg)
		if p.at(token.Comma) {
			p.advance()
		}
	}
	endTok := p.cur()
	p.advance() // ')'
	return &ast.Node{
		Kind: ast.Call, Pos: nameTok.Pos().Cover(endTok.Pos()),
		Call: ast.CallPayload{Name: nameTok.Lexeme, Args: args},
	}, true
}

func intLitBasicKind(k token.Kind) string {
	switch k {
	case token.IntLitI8:
		return "i8"
	case token.IntLitI16:
		return "i16"
	case token.IntLitI32:
		return "i32"
	case token.IntLitI64:
		return "i64"
	case token.IntLitI128:
		return "i128"
	case token.IntLitU8:
		return "u8"
	case token.IntLitU16:
		return "u16"
	case token.IntLitU32:
		return "u32"
	case token.IntLitU64:
		return "u64"
	case token.IntLitU128:
		return "u128"
	default:
		return ""
	}
}
