package tree

import (
	"fmt"
	"strconv"
)

// NameValuePair is one attribute entry. Values are dynamically-typed
// scalars: strings, booleans, integers or floats.
type NameValuePair struct {
	Name  string
	Value any
}

// NameMap is an ordered collection of name/value pairs with a per-name
// bucket index. Duplicate names are allowed; lookups return the earliest
// inserted pair for a name.
type NameMap struct {
	pairs []*NameValuePair
	index map[string][]*NameValuePair
}

func NewNameMap() *NameMap {
	return &NameMap{index: make(map[string][]*NameValuePair)}
}

func (m *NameMap) Len() int { return len(m.pairs) }

// Add appends the pair, creating its name bucket when absent. The index is
// allocated on first write so a zero-value NameMap is usable.
func (m *NameMap) Add(p *NameValuePair) {
	if m.index == nil {
		m.index = make(map[string][]*NameValuePair)
	}
	m.pairs = append(m.pairs, p)
	m.index[p.Name] = append(m.index[p.Name], p)
}

// Delete removes the pair by identity from its bucket and from the ordered
// sequence; empty buckets are dropped from the index.
func (m *NameMap) Delete(p *NameValuePair) error {
	bucket := m.index[p.Name]
	bi := -1
	for i, q := range bucket {
		if q == p {
			bi = i
			break
		}
	}
	if bi < 0 {
		return fmt.Errorf("delete %q: %w", p.Name, ErrNotFound)
	}
	bucket = append(bucket[:bi], bucket[bi+1:]...)
	if len(bucket) == 0 {
		delete(m.index, p.Name)
	} else {
		m.index[p.Name] = bucket
	}
	for i, q := range m.pairs {
		if q == p {
			m.pairs = append(m.pairs[:i], m.pairs[i+1:]...)
			break
		}
	}
	return nil
}

// Find returns the earliest inserted pair with the given name.
func (m *NameMap) Find(name string) (*NameValuePair, error) {
	bucket := m.index[name]
	if len(bucket) == 0 {
		return nil, fmt.Errorf("find %q: %w", name, ErrNotFound)
	}
	return bucket[0], nil
}

func (m *NameMap) Exists(name string) bool {
	return len(m.index[name]) > 0
}

// ByIndex returns the pair at the given position in insertion order.
func (m *NameMap) ByIndex(i int) (*NameValuePair, error) {
	if i < 0 || i >= len(m.pairs) {
		return nil, boundsErr("by index", i, len(m.pairs))
	}
	return m.pairs[i], nil
}

// SetByIndex replaces the value of the pair at the given position.
func (m *NameMap) SetByIndex(i int, v any) error {
	p, err := m.ByIndex(i)
	if err != nil {
		return err
	}
	p.Value = v
	return nil
}

// ByName returns the value of the earliest pair with the given name.
func (m *NameMap) ByName(name string) (any, error) {
	p, err := m.Find(name)
	if err != nil {
		return nil, err
	}
	return p.Value, nil
}

// SetByName mutates the earliest pair with the given name in place, or
// appends a new pair when the name is absent. No duplicate is created for
// an existing name.
func (m *NameMap) SetByName(name string, v any) {
	if p, err := m.Find(name); err == nil {
		p.Value = v
		return
	}
	m.Add(&NameValuePair{Name: name, Value: v})
}

// Match reports whether a pair with the given name exists and its value
// compares equal to v under the scalar coercion rules.
func (m *NameMap) Match(name string, v any) bool {
	p, err := m.Find(name)
	if err != nil {
		return false
	}
	return valueEqual(p.Value, v)
}

// Merge upserts every pair of other, in other's order: existing names keep
// their slot in m, new names append in other's order.
func (m *NameMap) Merge(other *NameMap) {
	for _, p := range other.pairs {
		m.SetByName(p.Name, p.Value)
	}
}

// Pairs returns the pairs in insertion order. The slice must not be
// modified.
func (m *NameMap) Pairs() []*NameValuePair { return m.pairs }

// CompareEqual reports whether data satisfies every constraint in equals.
// equals is a subset constraint: data may carry extra pairs.
func CompareEqual(data, equals *NameMap) bool {
	for _, p := range equals.pairs {
		if !data.Match(p.Name, p.Value) {
			return false
		}
	}
	return true
}

// CompareNotEqual reports whether every constraint in notEquals individually
// fails against data.
func CompareNotEqual(data, notEquals *NameMap) bool {
	for _, p := range notEquals.pairs {
		if data.Match(p.Name, p.Value) {
			return false
		}
	}
	return true
}

// CompareNameValue is the conjunction of the constraint sets that are
// present (nil means absent). With both sets absent it reports false.
func CompareNameValue(data, equals, notEquals *NameMap) bool {
	if equals == nil && notEquals == nil {
		return false
	}
	if equals != nil && !CompareEqual(data, equals) {
		return false
	}
	if notEquals != nil && !CompareNotEqual(data, notEquals) {
		return false
	}
	return true
}

// valueEqual compares two scalar values with the coercions of the dynamic
// value model: numbers compare numerically across integer and float types,
// and values of differing types compare by their canonical text form.
func valueEqual(a, b any) bool {
	if a == nil || b == nil {
		return a == b
	}
	if af, ok := toFloat(a); ok {
		if bf, ok := toFloat(b); ok {
			return af == bf
		}
	}
	if a == b {
		return true
	}
	return scalarString(a) == scalarString(b)
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	default:
		return 0, false
	}
}

func scalarString(v any) string {
	switch s := v.(type) {
	case string:
		return s
	case bool:
		return strconv.FormatBool(s)
	case float64:
		return strconv.FormatFloat(s, 'g', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(s), 'g', -1, 32)
	default:
		return fmt.Sprint(v)
	}
}
