package tagspec

import (
	"slices"
	"strings"
)

// Entry is one tag name with the values assigned to it.
type Entry struct {
	Name   string
	Values []string // Never nil; order is significant
}

// NewEntry returns an Entry holding a copy of values.
func NewEntry(name string, values ...string) Entry {
	if values == nil {
		return Entry{Name: name, Values: []string{}}
	}
	return Entry{Name: name, Values: slices.Clone(values)}
}

// StringList returns the values in order, ready to be stored as a
// multi-valued tag.
func (e Entry) StringList() []string {
	list := make([]string, 0, len(e.Values))
	return append(list, e.Values...)
}

// String renders the entry for display as NAME = 'v1' 'v2'. Apostrophes in
// values are written as \'. The output is not meant to be parsed back.
func (e Entry) String() string {
	var b strings.Builder
	b.WriteString(e.Name)
	b.WriteString(" =")

	for _, value := range e.Values {
		b.WriteString(" '")
		b.WriteString(strings.ReplaceAll(value, "'", `\'`))
		b.WriteByte('\'')
	}

	return b.String()
}
