package tagspec

import (
	"testing"
)

func TestCursorPeekIsOneOf(t *testing.T) {
	tests := []struct {
		name  string
		input string
		pos   int
		set   string
		want  bool
	}{
		{name: "next rune in set", input: `"a"`, set: quoteChars, want: true},
		{name: "skips whitespace", input: "  \t'a'", set: quoteChars, want: true},
		{name: "next rune not in set", input: "abc", set: quoteChars, want: false},
		{name: "end of input", input: "", set: quoteChars, want: false},
		{name: "only whitespace left", input: "x   ", pos: 1, set: quoteChars, want: false},
		{name: "from middle of input", input: `ab;"c"`, pos: 3, set: quoteChars, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newCursor(tt.input)
			c.pos = tt.pos

			if got := c.peekIsOneOf(tt.set); got != tt.want {
				t.Errorf("peekIsOneOf(%q) = %v, want %v", tt.set, got, tt.want)
			}
			if c.pos != tt.pos {
				t.Errorf("peekIsOneOf moved cursor from %d to %d", tt.pos, c.pos)
			}
		})
	}
}

func TestCursorSaveRestore(t *testing.T) {
	c := newCursor("héllo")

	pos := c.save()
	for range 3 {
		c.advance()
	}
	if r, _ := c.peek(); r != 'l' {
		t.Fatalf("peek() = %q after three advances, want 'l'", r)
	}

	c.restore(pos)
	if r, _ := c.peek(); r != 'h' {
		t.Errorf("peek() = %q after restore, want 'h'", r)
	}
}

func TestCursorAdvancePastEnd(t *testing.T) {
	c := newCursor("a")

	if r, ok := c.advance(); !ok || r != 'a' {
		t.Fatalf("advance() = %q, %v", r, ok)
	}
	if _, ok := c.advance(); ok {
		t.Error("advance() succeeded past end of input")
	}
	if c.pos != 1 {
		t.Errorf("pos = %d after advancing past end, want 1", c.pos)
	}
	if !c.exhausted() {
		t.Error("exhausted() = false at end of input")
	}
}

func TestScanNameLeavesEquals(t *testing.T) {
	c := newCursor(` A\=B =x`)

	name, err := c.scanName()
	if err != nil {
		t.Fatalf("scanName() error = %v", err)
	}
	if name != "A=B" {
		t.Errorf("scanName() = %q, want %q", name, "A=B")
	}
	if r, _ := c.peek(); r != '=' {
		t.Errorf("next rune = %q, want '='", r)
	}
}
