// Package bimap provides immutable two-way tables between human-readable
// names and native enum values.
//
// Tables are built once at package initialization and never mutated, so a
// *Map may be read from any number of goroutines without locking. Lookups
// are case-sensitive and report failure with a false second result instead
// of a zero value.
package bimap

import "fmt"

// Entry is one (name, value) pair of a table.
type Entry[K, V comparable] struct {
	Name  K
	Value V
}

// E is shorthand for constructing an Entry in table literals.
func E[K, V comparable](name K, value V) Entry[K, V] {
	return Entry[K, V]{Name: name, Value: value}
}

// Map is an ordered, immutable bidirectional table.
type Map[K, V comparable] struct {
	entries []Entry[K, V]
	byName  map[K]int
	byValue map[V]int

	sparse   bool
	sentinel V
}

// New builds a table from entries in declaration order.
// It panics if two entries share a name or a value.
func New[K, V comparable](entries ...Entry[K, V]) *Map[K, V] {
	m := &Map[K, V]{}
	m.init(entries)
	return m
}

// NewSparse builds a table in which entries whose value equals sentinel
// are declared but unsupported on this platform.
//
// Placeholders keep their declaration slot so numbering stays stable across
// platforms. They are exempt from value uniqueness, Find reports them as
// missing, ReverseFind(sentinel) always fails and Scan never matches them.
// Names must still be unique.
func NewSparse[K, V comparable](sentinel V, entries ...Entry[K, V]) *Map[K, V] {
	m := &Map[K, V]{sparse: true, sentinel: sentinel}
	m.init(entries)
	return m
}

func (m *Map[K, V]) init(entries []Entry[K, V]) {
	m.entries = append([]Entry[K, V](nil), entries...)
	m.byName = make(map[K]int, len(entries))
	m.byValue = make(map[V]int, len(entries))

	for i, e := range m.entries {
		if j, dup := m.byName[e.Name]; dup {
			panic(fmt.Sprintf("bimap: duplicate name %v (entries %d and %d)", e.Name, j, i))
		}
		m.byName[e.Name] = i

		if m.isPlaceholder(e.Value) {
			continue
		}
		if j, dup := m.byValue[e.Value]; dup {
			panic(fmt.Sprintf("bimap: duplicate value %v for %v and %v", e.Value, m.entries[j].Name, e.Name))
		}
		m.byValue[e.Value] = i
	}
}

func (m *Map[K, V]) isPlaceholder(v V) bool {
	return m.sparse && v == m.sentinel
}

// Find returns the value declared for name.
func (m *Map[K, V]) Find(name K) (V, bool) {
	i, ok := m.byName[name]
	if !ok || m.isPlaceholder(m.entries[i].Value) {
		var zero V
		return zero, false
	}
	return m.entries[i].Value, true
}

// ReverseFind returns the name declared for value.
func (m *Map[K, V]) ReverseFind(value V) (K, bool) {
	i, ok := m.byValue[value]
	if !ok {
		var zero K
		return zero, false
	}
	return m.entries[i].Name, true
}

// At returns the entry declared at slot i. It reports false for slots out
// of range and for placeholders.
func (m *Map[K, V]) At(i int) (Entry[K, V], bool) {
	if i < 0 || i >= len(m.entries) || m.isPlaceholder(m.entries[i].Value) {
		return Entry[K, V]{}, false
	}
	return m.entries[i], true
}

// Names returns every declared name in declaration order, placeholders
// included. The returned slice is a copy.
func (m *Map[K, V]) Names() []K {
	names := make([]K, len(m.entries))
	for i, e := range m.entries {
		names[i] = e.Name
	}
	return names
}

// SupportedNames returns the names whose value is not a placeholder.
func (m *Map[K, V]) SupportedNames() []K {
	names := make([]K, 0, len(m.byValue))
	for _, e := range m.entries {
		if !m.isPlaceholder(e.Value) {
			names = append(names, e.Name)
		}
	}
	return names
}

// Entries returns a copy of the table in declaration order.
func (m *Map[K, V]) Entries() []Entry[K, V] {
	return append([]Entry[K, V](nil), m.entries...)
}

// Len returns the number of declared entries, placeholders included.
func (m *Map[K, V]) Len() int {
	return len(m.entries)
}

// Scan walks the table in declaration order and returns the first
// supported entry for which match reports true. Placeholders are skipped.
func (m *Map[K, V]) Scan(match func(V) bool) (Entry[K, V], bool) {
	for _, e := range m.entries {
		if m.isPlaceholder(e.Value) {
			continue
		}
		if match(e.Value) {
			return e, true
		}
	}
	return Entry[K, V]{}, false
}
