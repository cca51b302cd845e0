package linecalc

import (
	"unicode"
	"unicode/utf8"
)

// eof is returned by the cursor when there is no more input on the line.
const eof rune = -1

// cursor is a read position within a single line.
type cursor struct {
	src string
	// off is the byte offset of the next rune. It is always in [0, len(src)].
	off int
	// col is the 1-based rune position of the next rune.
	col int
}

func newCursor(src string) *cursor {
	return &cursor{src: src, col: 1}
}

// peek returns the next rune without consuming it, or eof at the end of the
// line. Invalid UTF-8 is returned as utf8.RuneError.
func (c *cursor) peek() rune {
	if c.off >= len(c.src) {
		return eof
	}
	r, _ := utf8.DecodeRuneInString(c.src[c.off:])
	return r
}

// advance consumes and returns the next rune. At the end of the line, it
// returns eof and does not move.
func (c *cursor) advance() rune {
	if c.off >= len(c.src) {
		return eof
	}
	r, sz := utf8.DecodeRuneInString(c.src[c.off:])
	c.off += sz
	c.col++
	return r
}

// skipSpace consumes all consecutive whitespace.
func (c *cursor) skipSpace() {
	for unicode.IsSpace(c.peek()) {
		c.advance()
	}
}

func isLetter(r rune) bool {
	return r != eof && unicode.IsLetter(r)
}

func isIdentRune(r rune) bool {
	return r == '_' || isLetter(r) || (r != eof && unicode.IsDigit(r))
}

// isDigit reports whether r is an ASCII decimal digit. Other Unicode digits
// may appear in identifiers but never in numbers.
func isDigit(r rune) bool {
	return '0' <= r && r <= '9'
}
