package tagspec

import (
	"strings"
	"unicode"
)

const (
	symEquals    = '='
	symSeparator = ';'
	symEscape    = '\\'
	quoteChars   = "\"'"
)

// cursor is a position over a rune buffer. All lookahead goes through
// save/restore so a failed peek never moves the read position.
type cursor struct {
	buf []rune
	pos int
}

func newCursor(s string) *cursor {
	return &cursor{buf: []rune(s)}
}

// peek returns the rune at the read position without consuming it.
func (c *cursor) peek() (rune, bool) {
	if c.pos >= len(c.buf) {
		return 0, false
	}
	return c.buf[c.pos], true
}

// advance consumes and returns the rune at the read position.
func (c *cursor) advance() (rune, bool) {
	r, ok := c.peek()
	if ok {
		c.pos++
	}
	return r, ok
}

// unread pushes the last consumed rune back.
func (c *cursor) unread() {
	if c.pos > 0 {
		c.pos--
	}
}

func (c *cursor) save() int {
	return c.pos
}

func (c *cursor) restore(pos int) {
	c.pos = pos
}

func (c *cursor) skipSpace() {
	for r, ok := c.peek(); ok && unicode.IsSpace(r); r, ok = c.peek() {
		c.pos++
	}
}

// exhausted reports whether only whitespace remains.
func (c *cursor) exhausted() bool {
	pos := c.save()
	defer c.restore(pos)

	c.skipSpace()
	_, ok := c.peek()
	return !ok
}

// peekIsOneOf reports whether the next non-space rune is in set. The read
// position is left untouched, and end of input reports false.
func (c *cursor) peekIsOneOf(set string) bool {
	pos := c.save()
	defer c.restore(pos)

	c.skipSpace()
	r, ok := c.peek()
	return ok && strings.ContainsRune(set, r)
}
