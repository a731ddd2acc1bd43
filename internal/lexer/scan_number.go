package lexer

import (
	"strings"

	"mirc/internal/diag"
	"mirc/internal/source"
	"mirc/internal/token"
)

// scanNumber reads `[0-9_]+ ( [iu](8|16|32|64|128) )?`. The digits (with
// underscores stripped) become the token lexeme; width/sign classification
// happens here via the suffix, or defaults to i32 when absent. An
// unrecognized `iN`/`uN` width is InvalidSpecifiedNumericType.
func (l *Lexer) scanNumber(line, startCol int) (token.Token, bool) {
	var digits strings.Builder
	for !l.cur.atEnd() && (isDigit(l.cur.peek()) || l.cur.peek() == '_') {
		r := l.cur.advance()
		if r != '_' {
			digits.WriteRune(r)
		}
	}

	kind := token.IntLitI32
	if l.cur.peek() == 'i' || l.cur.peek() == 'u' {
		suffixCol := l.cur.col
		var suffix strings.Builder
		suffix.WriteRune(l.cur.advance())
		for !l.cur.atEnd() && isDigit(l.cur.peek()) {
			suffix.WriteRune(l.cur.advance())
		}
		k, ok := token.LookupIntSuffix(suffix.String())
		if !ok {
			pos := source.New(line, suffixCol, l.cur.col)
			diag.NewError(l.reporter, diag.InvalidSpecifiedNumericType, pos,
				"invalid literal suffix %q", suffix.String()).Emit()
			return token.Token{}, false
		}
		kind = k
	}

	pos := source.New(line, startCol, l.cur.col)
	return token.Token{Kind: kind, Lexeme: digits.String(), Start: pos, End: pos}, true
}
