// Package tags holds the property map of one audio file: tag names mapped
// to ordered lists of values.
package tags

import (
	"iter"
	"maps"
	"slices"
	"strings"

	"github.com/jfmyers9/tagger/internal/tagspec"
)

// PropertyMap maps tag names to their values.
//
// Names are case-insensitive and stored upper-case, so "artist" and "ARTIST"
// are the same key. Iteration is in name order. The zero value is an empty
// map ready to use.
type PropertyMap struct {
	props map[string][]string
}

// NewPropertyMap returns a map holding the given entries, applied in order.
func NewPropertyMap(entries ...tagspec.Entry) *PropertyMap {
	m := &PropertyMap{}
	m.Apply(entries...)
	return m
}

// Key returns the canonical form of a tag name.
func Key(name string) string {
	return strings.ToUpper(name)
}

// Len returns the number of tags.
func (m *PropertyMap) Len() int {
	return len(m.props)
}

// Get returns a copy of the values for name and whether the tag exists.
func (m *PropertyMap) Get(name string) ([]string, bool) {
	values, ok := m.props[Key(name)]
	if !ok {
		return nil, false
	}
	return slices.Clone(values), true
}

// Set replaces the values of name, inserting the tag if absent.
func (m *PropertyMap) Set(name string, values []string) {
	if m.props == nil {
		m.props = make(map[string][]string)
	}
	if values == nil {
		values = []string{}
	}
	m.props[Key(name)] = slices.Clone(values)
}

// Delete removes name from the map.
func (m *PropertyMap) Delete(name string) {
	delete(m.props, Key(name))
}

// Names returns the tag names in order.
func (m *PropertyMap) Names() []string {
	return slices.Sorted(maps.Keys(m.props))
}

// All iterates over tags in name order. The yielded slices must not be
// modified.
func (m *PropertyMap) All() iter.Seq2[string, []string] {
	return func(yield func(string, []string) bool) {
		for _, name := range m.Names() {
			if !yield(name, m.props[name]) {
				return
			}
		}
	}
}

// Lookup returns the tag as an entry.
func (m *PropertyMap) Lookup(name string) (tagspec.Entry, bool) {
	values, ok := m.props[Key(name)]
	if !ok {
		return tagspec.Entry{}, false
	}
	return FromProperty(Key(name), values), true
}

// Entries returns every tag as an entry, in name order.
func (m *PropertyMap) Entries() []tagspec.Entry {
	entries := make([]tagspec.Entry, 0, m.Len())
	for name, values := range m.All() {
		entries = append(entries, FromProperty(name, values))
	}
	return entries
}

// Apply merges parsed entries into the map. An existing tag has its whole
// value list replaced; a missing tag is inserted. Applying the same entries
// twice leaves the map as applying them once.
func (m *PropertyMap) Apply(entries ...tagspec.Entry) {
	for _, entry := range entries {
		m.Set(entry.Name, entry.StringList())
	}
}

// Clone returns a deep copy of the map.
func (m *PropertyMap) Clone() *PropertyMap {
	c := &PropertyMap{}
	for name, values := range m.props {
		c.Set(name, values)
	}
	return c
}

// Equal reports whether both maps hold the same tags with the same values in
// the same order.
func (m *PropertyMap) Equal(other *PropertyMap) bool {
	return maps.EqualFunc(m.props, other.props, func(a, b []string) bool {
		return slices.Equal(a, b)
	})
}

// FromProperty builds an entry from one tag of a property map. The name is
// taken as is and the values are copied in order.
func FromProperty(name string, values []string) tagspec.Entry {
	return tagspec.NewEntry(name, values...)
}
