package tagspec

import (
	"strings"
)

// scanName reads a tag name up to the first unescaped '='. The '=' itself is
// left unconsumed. "\=" produces a literal '=' and any other rune, including a
// lone backslash, is copied as is. Surrounding whitespace is trimmed.
func (c *cursor) scanName() (string, error) {
	start := c.save()

	var name strings.Builder
	for {
		r, ok := c.advance()
		if !ok {
			return "", &ParseError{Offset: start, Err: ErrMalformedName}
		}

		if r == symEquals {
			c.unread()
			return strings.TrimSpace(name.String()), nil
		}

		if r == symEscape {
			if next, ok := c.peek(); ok && next == symEquals {
				c.advance()
				name.WriteRune(symEquals)
				continue
			}
		}

		name.WriteRune(r)
	}
}

// scanValues reads the value list of one entry. A leading quote selects the
// quoted-list form, anything else is a single scalar running to the next ';'.
func (c *cursor) scanValues() (values []string, quoted bool, err error) {
	if !c.peekIsOneOf(quoteChars) {
		return []string{c.scanScalar()}, false, nil
	}

	for c.peekIsOneOf(quoteChars) {
		value, err := c.scanQuoted()
		if err != nil {
			return nil, true, err
		}
		values = append(values, value)
	}

	return values, true, nil
}

// scanScalar reads raw runes up to the next ';' or end of input and trims the
// result. The ';' is not consumed.
func (c *cursor) scanScalar() string {
	start := c.save()
	for r, ok := c.peek(); ok && r != symSeparator; r, ok = c.peek() {
		c.advance()
	}
	return strings.TrimSpace(string(c.buf[start:c.pos]))
}

// scanQuoted reads one quoted string. The closing quote must match the opening
// one and a backslash escapes whatever rune follows it.
func (c *cursor) scanQuoted() (string, error) {
	c.skipSpace()

	start := c.save()
	quote, _ := c.advance()

	var value strings.Builder
	for {
		r, ok := c.advance()
		if !ok {
			return "", &ParseError{Offset: start, Err: ErrUnterminatedQuote}
		}

		switch r {
		case quote:
			return value.String(), nil
		case symEscape:
			next, ok := c.advance()
			if !ok {
				return "", &ParseError{Offset: start, Err: ErrUnterminatedQuote}
			}
			value.WriteRune(next)
		default:
			value.WriteRune(r)
		}
	}
}

// endQuotedList checks what follows a quoted value list: optional whitespace,
// then ';' or end of input.
func (c *cursor) endQuotedList() error {
	c.skipSpace()
	if r, ok := c.peek(); ok && r != symSeparator {
		return &ParseError{Offset: c.pos, Err: ErrTrailingContent}
	}
	return nil
}
