package tagspec

import (
	"strings"
)

// Scanner reads entries from a tag specification one at a time.
//
// It follows the bufio.Scanner pattern: call Scan until it returns false,
// then check Err. A nil Err means the input was consumed completely.
//
//	s := tagspec.NewScanner(`ARTIST=Nina Simone;GENRE="Jazz" "Soul"`)
//	for s.Scan() {
//		fmt.Println(s.Entry())
//	}
//	if err := s.Err(); err != nil {
//		return err
//	}
type Scanner struct {
	c     *cursor
	entry Entry
	err   error
	done  bool
}

// NewScanner returns a Scanner over s.
func NewScanner(s string) *Scanner {
	return &Scanner{c: newCursor(s)}
}

// Scan advances to the next entry. It returns false at the end of input or on
// the first parse failure; the failure is available from Err.
func (s *Scanner) Scan() bool {
	if s.done {
		return false
	}

	// Trailing whitespace after the last separator is not an entry.
	if s.c.exhausted() {
		return s.stop(nil)
	}

	name, err := s.c.scanName()
	if err != nil {
		return s.stop(err)
	}

	// scanName leaves the '=' in place.
	s.c.advance()

	values, quoted, err := s.c.scanValues()
	if err != nil {
		return s.stop(err)
	}

	if quoted {
		if err := s.c.endQuotedList(); err != nil {
			return s.stop(err)
		}
	}

	if r, ok := s.c.peek(); ok && r == symSeparator {
		s.c.advance()
	}

	s.entry = Entry{Name: name, Values: values}
	return true
}

// Entry returns the entry produced by the last successful Scan.
func (s *Scanner) Entry() Entry {
	return s.entry
}

// Err returns the parse failure that stopped scanning, if any.
func (s *Scanner) Err() error {
	return s.err
}

// Offset returns the current rune offset into the input.
func (s *Scanner) Offset() int {
	return s.c.pos
}

func (s *Scanner) stop(err error) bool {
	s.done = true
	s.err = err
	s.entry = Entry{}
	return false
}

// Parse scans every entry in s. On failure the entries read before the
// failing one are returned together with a *ParseError.
func Parse(s string) ([]Entry, error) {
	var entries []Entry

	scanner := NewScanner(s)
	for scanner.Scan() {
		entries = append(entries, scanner.Entry())
	}

	return entries, scanner.Err()
}

// ParseNames splits a ';'-separated list of bare tag names, as given to
// --get. Names are trimmed and empty names are dropped.
func ParseNames(s string) []string {
	var names []string
	for _, name := range strings.Split(s, string(symSeparator)) {
		if name = strings.TrimSpace(name); name != "" {
			names = append(names, name)
		}
	}
	return names
}
