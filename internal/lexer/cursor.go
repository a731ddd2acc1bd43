package lexer

import "golang.org/x/text/width"

// runeWidth returns the display-column width of r: 2 for East-Asian wide or
// fullwidth runes, 1 for everything else, including tabs and other
// control runes.
func runeWidth(r rune) int {
	switch width.LookupRune(r).Kind() {
	case width.EastAsianWide, width.EastAsianFullwidth:
		return 2
	default:
		return 1
	}
}

// cursor walks a rune slice while tracking 0-based line and display-column
// position. Advancing past '\n' resets the column and bumps the line.
type cursor struct {
	runes []rune
	pos   int // index into runes
	line  int
	col   int
}

func newCursor(src []rune) *cursor {
	return &cursor{runes: src}
}

func (c *cursor) atEnd() bool {
	return c.pos >= len(c.runes)
}

func (c *cursor) peek() rune {
	if c.atEnd() {
		return 0
	}
	return c.runes[c.pos]
}

func (c *cursor) peekAt(offset int) rune {
	idx := c.pos + offset
	if idx < 0 || idx >= len(c.runes) {
		return 0
	}
	return c.runes[idx]
}

// advance consumes the current rune and returns it, updating line/col.
func (c *cursor) advance() rune {
	r := c.runes[c.pos]
	c.pos++
	if r == '\n' {
		c.line++
		c.col = 0
	} else {
		c.col += runeWidth(r)
	}
	return r
}
