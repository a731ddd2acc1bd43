// Package lexer turns source text into a token.Token stream with
// unicode-width-correct column tracking.
package lexer

import (
	"strings"

	"mirc/internal/diag"
	"mirc/internal/source"
	"mirc/internal/token"
)

const punctAndWhitespace = " \t\r\n+=&*(){},:!"

// Lexer scans a single source file into tokens.
type Lexer struct {
	cur      *cursor
	reporter diag.Reporter
}

// New constructs a Lexer over src, reporting fatal lex errors to r.
func New(src string, r diag.Reporter) *Lexer {
	return &Lexer{cur: newCursor([]rune(src)), reporter: r}
}

// Tokenize scans the whole input and returns every token, always ending
// with a terminal EOF. It reports at most one diagnostic: the lexer design
// does not attempt error recovery (see the error-handling design), so it
// stops at the first invalid token.
func (l *Lexer) Tokenize() ([]token.Token, bool) {
	var out []token.Token
	for {
		tok, ok := l.Next()
		if !ok {
			return out, false
		}
		out = append(out, tok)
		if tok.Kind == token.EOF {
			return out, true
		}
	}
}

// Next scans and returns the next token. ok is false once a fatal lex
// diagnostic has been reported.
func (l *Lexer) Next() (token.Token, bool) {
	l.skipSpacesAndComments()

	startLine, startCol := l.cur.line, l.cur.col

	if l.cur.atEnd() {
		pos := source.New(startLine, startCol, startCol)
		return token.Token{Kind: token.EOF, Start: pos, End: pos}, true
	}

	r := l.cur.peek()

	switch {
	case r == '\n':
		l.cur.advance()
		pos := source.New(startLine, startCol, startCol+1)
		return token.Token{Kind: token.Newline, Lexeme: "\n", Start: pos, End: pos}, true
	case isDigit(r):
		return l.scanNumber(startLine, startCol)
	case isIdentStart(r):
		return l.scanIdentOrKeyword(startLine, startCol)
	default:
		return l.scanOperator(startLine, startCol)
	}
}

func (l *Lexer) skipSpacesAndComments() {
	for !l.cur.atEnd() {
		r := l.cur.peek()
		if r == ' ' || r == '\t' || r == '\r' {
			l.cur.advance()
			continue
		}
		break
	}
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isIdentStart(r rune) bool {
	return !strings.ContainsRune(punctAndWhitespace, r) && !isDigit(r)
}

func isIdentCont(r rune) bool {
	return !strings.ContainsRune(punctAndWhitespace, r)
}

func (l *Lexer) scanIdentOrKeyword(line, startCol int) (token.Token, bool) {
	var b strings.Builder
	for !l.cur.atEnd() && isIdentCont(l.cur.peek()) {
		b.WriteRune(l.cur.advance())
	}
	lexeme := b.String()
	kind := token.Ident
	if kw, ok := token.LookupKeyword(lexeme); ok {
		kind = kw
	}
	pos := source.New(line, startCol, l.cur.col)
	return token.Token{Kind: kind, Lexeme: lexeme, Start: pos, End: pos}, true
}

func (l *Lexer) scanOperator(line, startCol int) (token.Token, bool) {
	r := l.cur.advance()
	single := func(k token.Kind) (token.Token, bool) {
		pos := source.New(line, startCol, l.cur.col)
		return token.Token{Kind: k, Lexeme: string(r), Start: pos, End: pos}, true
	}

	switch r {
	case '+':
		return single(token.Plus)
	case '&':
		return single(token.Amp)
	case '*':
		return single(token.Star)
	case '(':
		return single(token.LParen)
	case ')':
		return single(token.RParen)
	case '{':
		return single(token.LBrace)
	case '}':
		return single(token.RBrace)
	case ',':
		return single(token.Comma)
	case ':':
		return single(token.Colon)
	case '=':
		if l.cur.peek() == '=' {
			l.cur.advance()
			pos := source.New(line, startCol, l.cur.col)
			return token.Token{Kind: token.EqEq, Lexeme: "==", Start: pos, End: pos}, true
		}
		return single(token.Assign)
	case '!':
		if l.cur.peek() == '=' {
			l.cur.advance()
			pos := source.New(line, startCol, l.cur.col)
			return token.Token{Kind: token.BangEq, Lexeme: "!=", Start: pos, End: pos}, true
		}
		fallthrough
	default:
		pos := source.New(line, startCol, l.cur.col)
		diag.NewError(l.reporter, diag.InvalidTok, pos, "invalid token encountered: %q", string(r)).Emit()
		return token.Token{}, false
	}
}
