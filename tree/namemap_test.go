package tree

import (
	"errors"
	"testing"
)

func TestNameMapDuplicateNames(t *testing.T) {
	m := NewNameMap()
	first := &NameValuePair{Name: "x", Value: 1}
	second := &NameValuePair{Name: "x", Value: 2}
	m.Add(first)
	m.Add(second)

	got, err := m.Find("x")
	if err != nil || got != first {
		t.Fatalf("Find(x) = %v, %v, want earliest pair", got, err)
	}

	if err := m.Delete(first); err != nil {
		t.Fatalf("Delete(first) = %v", err)
	}
	got, err = m.Find("x")
	if err != nil || got != second {
		t.Errorf("Find(x) after delete = %v, %v, want second pair", got, err)
	}

	if err := m.Delete(second); err != nil {
		t.Fatalf("Delete(second) = %v", err)
	}
	if m.Exists("x") {
		t.Error("empty bucket should be removed from the index")
	}
	if err := m.Delete(second); !errors.Is(err, ErrNotFound) {
		t.Errorf("Delete(gone) = %v, want ErrNotFound", err)
	}
}

func TestNameMapZeroValue(t *testing.T) {
	var m NameMap
	m.Add(&NameValuePair{Name: "x", Value: 1})
	m.SetByName("y", 2)

	if v, err := m.ByName("x"); err != nil || v != 1 {
		t.Errorf("ByName(x) = %v, %v, want 1", v, err)
	}
	if !m.Exists("y") {
		t.Error("SetByName on a zero-value map should insert")
	}
}

func TestNameMapByIndex(t *testing.T) {
	m := NewNameMap()
	m.Add(&NameValuePair{Name: "a", Value: 1})
	m.Add(&NameValuePair{Name: "b", Value: 2})

	p, err := m.ByIndex(1)
	if err != nil || p.Name != "b" {
		t.Errorf("ByIndex(1) = %v, %v", p, err)
	}
	if _, err := m.ByIndex(2); !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("ByIndex(2) = %v, want ErrOutOfBounds", err)
	}
	if err := m.SetByIndex(0, 10); err != nil {
		t.Fatalf("SetByIndex(0) = %v", err)
	}
	if v, _ := m.ByName("a"); v != 10 {
		t.Errorf("ByName(a) = %v, want 10", v)
	}
	if err := m.SetByIndex(-1, 0); !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("SetByIndex(-1) = %v, want ErrOutOfBounds", err)
	}
}

func TestSetByNameUpserts(t *testing.T) {
	m := NewNameMap()
	m.SetByName("n", 1)
	m.SetByName("n", 2)

	if m.Len() != 1 {
		t.Fatalf("Len() = %d, want exactly one pair", m.Len())
	}
	if v, err := m.ByName("n"); err != nil || v != 2 {
		t.Errorf("ByName(n) = %v, %v, want latest value", v, err)
	}
	if _, err := m.ByName("missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("ByName(missing) = %v, want ErrNotFound", err)
	}
}

func TestMatchCoercions(t *testing.T) {
	m := NewNameMap()
	m.SetByName("count", 3)
	m.SetByName("ratio", 1.5)
	m.SetByName("title", "Demo")
	m.SetByName("bold", true)

	tests := []struct {
		name  string
		value any
		want  bool
	}{
		{"count", 3, true},
		{"count", int64(3), true},
		{"count", 3.0, true},
		{"count", 4, false},
		{"ratio", 1.5, true},
		{"title", "Demo", true},
		{"title", "demo", false},
		{"bold", true, true},
		{"bold", "true", true},
		{"absent", 1, false},
	}
	for _, tt := range tests {
		if got := m.Match(tt.name, tt.value); got != tt.want {
			t.Errorf("Match(%q, %v) = %v, want %v", tt.name, tt.value, got, tt.want)
		}
	}
}

func TestMerge(t *testing.T) {
	m := NewNameMap()
	m.Add(&NameValuePair{Name: "a", Value: 1})
	m.Add(&NameValuePair{Name: "b", Value: 2})

	other := NewNameMap()
	other.Add(&NameValuePair{Name: "b", Value: 20})
	other.Add(&NameValuePair{Name: "c", Value: 30})

	m.Merge(other)

	if m.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", m.Len())
	}
	// Existing names keep their slot; new names append in other's order.
	wantNames := []string{"a", "b", "c"}
	for i, want := range wantNames {
		p, err := m.ByIndex(i)
		if err != nil || p.Name != want {
			t.Errorf("pair %d = %v, want name %q", i, p, want)
		}
	}
	if v, _ := m.ByName("b"); v != 20 {
		t.Errorf("ByName(b) = %v, want merged value 20", v)
	}
}

func TestCompareEqual(t *testing.T) {
	data := NewNameMap()
	data.SetByName("a", 1)
	data.SetByName("b", 2)
	data.SetByName("extra", "ignored")

	equals := NewNameMap()
	equals.SetByName("a", 1)
	equals.SetByName("b", 2)
	if !CompareEqual(data, equals) {
		t.Error("subset constraint should match")
	}

	equals.SetByName("b", 3)
	if CompareEqual(data, equals) {
		t.Error("mismatching constraint should fail")
	}
}

func TestCompareNotEqual(t *testing.T) {
	data := NewNameMap()
	data.SetByName("a", 1)

	notEquals := NewNameMap()
	notEquals.SetByName("a", 2)
	notEquals.SetByName("b", 1)
	if !CompareNotEqual(data, notEquals) {
		t.Error("every constraint fails individually, so the check should pass")
	}

	notEquals.SetByName("a", 1)
	if CompareNotEqual(data, notEquals) {
		t.Error("a matching constraint should fail the check")
	}
}

func TestCompareNameValue(t *testing.T) {
	data := NewNameMap()
	data.SetByName("a", 1)

	equals := NewNameMap()
	equals.SetByName("a", 1)
	notEquals := NewNameMap()
	notEquals.SetByName("a", 2)

	tests := []struct {
		name      string
		equals    *NameMap
		notEquals *NameMap
		want      bool
	}{
		{"both present and satisfied", equals, notEquals, true},
		{"only equals", equals, nil, true},
		{"only not-equals", nil, notEquals, true},
		{"both absent is a mismatch", nil, nil, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CompareNameValue(data, tt.equals, tt.notEquals); got != tt.want {
				t.Errorf("CompareNameValue() = %v, want %v", got, tt.want)
			}
		})
	}
}
