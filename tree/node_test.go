package tree

import (
	"errors"
	"testing"
)

func TestAddDeleteCount(t *testing.T) {
	root := NewNode(nil)

	a := NewNode(root)
	b := NewNode(root)
	c := NewNode(root)
	if got := root.CountChildren(); got != 3 {
		t.Fatalf("CountChildren() = %d, want 3", got)
	}

	if err := root.Delete(b); err != nil {
		t.Fatalf("Delete(b) = %v", err)
	}
	if got := root.CountChildren(); got != 2 {
		t.Errorf("CountChildren() = %d, want 2", got)
	}

	// Order of remaining siblings is preserved.
	first, _ := root.ChildByNumber(0)
	second, _ := root.ChildByNumber(1)
	if first != Node(a) || second != Node(c) {
		t.Error("sibling order not preserved after delete")
	}
}

func TestDeleteReadOnly(t *testing.T) {
	root := NewNode(nil)
	child := NewNode(root)
	child.SetReadOnly(true)

	err := root.Delete(child)
	if !errors.Is(err, ErrReadOnly) {
		t.Fatalf("Delete(readonly) = %v, want ErrReadOnly", err)
	}
	if root.CountChildren() != 1 {
		t.Error("children changed by failed delete")
	}
}

func TestDeleteErrors(t *testing.T) {
	root := NewNode(nil)
	stranger := NewNode(nil)

	if err := root.Delete(stranger); !errors.Is(err, ErrEmptySet) {
		t.Errorf("Delete on empty = %v, want ErrEmptySet", err)
	}

	NewNode(root)
	if err := root.Delete(stranger); !errors.Is(err, ErrNotFound) {
		t.Errorf("Delete(stranger) = %v, want ErrNotFound", err)
	}
}

func TestDeleteDestroysSubtree(t *testing.T) {
	root := NewNode(nil)
	child := NewNode(root)
	grandchild := NewNode(child)

	if err := root.Delete(child); err != nil {
		t.Fatalf("Delete(child) = %v", err)
	}
	if child.HasChildren() {
		t.Error("deleted child still has children")
	}
	if grandchild.Owner() != nil {
		t.Error("destroyed grandchild still has an owner")
	}
}

func TestChildByNumber(t *testing.T) {
	root := NewNode(nil)
	a := NewNode(root)
	b := NewNode(root)

	tests := []struct {
		index int
		want  Node
		fails bool
	}{
		{0, a, false},
		{1, b, false},
		{-1, nil, true},
		{2, nil, true},
	}
	for _, tt := range tests {
		got, err := root.ChildByNumber(tt.index)
		if tt.fails {
			if !errors.Is(err, ErrOutOfBounds) {
				t.Errorf("ChildByNumber(%d) err = %v, want ErrOutOfBounds", tt.index, err)
			}
			continue
		}
		if err != nil || got != tt.want {
			t.Errorf("ChildByNumber(%d) = %v, %v", tt.index, got, err)
		}
	}
}

func TestPurge(t *testing.T) {
	root := NewNode(nil)
	NewNode(root)
	NewNode(root)

	root.Purge()
	if root.HasChildren() {
		t.Error("Purge left children behind")
	}
	if !root.IsBeforeFirst() {
		t.Error("cursor not reset by Purge")
	}
}

func TestMyIndex(t *testing.T) {
	root := NewNode(nil)
	NewNode(root)
	b := NewNode(root)
	NewNode(root)

	root.First()
	root.Next()
	before := root.cursor

	if got := b.MyIndex(); got != 1 {
		t.Errorf("MyIndex() = %d, want 1", got)
	}
	if root.cursor != before {
		t.Error("MyIndex disturbed the owner's cursor")
	}
	if got := root.MyIndex(); got != 0 {
		t.Errorf("MyIndex() on root = %d, want 0", got)
	}
}

func TestFindRoot(t *testing.T) {
	root := NewNode(nil)
	child := NewNode(root)
	grandchild := NewNode(child)

	if got := grandchild.FindRoot(); got != Node(root) {
		t.Error("FindRoot did not reach the root")
	}
	if got := root.FindRoot(); got != Node(root) {
		t.Error("FindRoot on root should return self")
	}
}

func TestFindUppermost(t *testing.T) {
	root := NewNode(nil)
	root.SetTypeName("Block")
	mid := NewNode(root)
	mid.SetTypeName("Block")
	leaf := NewNode(mid)
	leaf.SetTypeName("Text")

	if got := leaf.FindUppermost("Block"); got != Node(root) {
		t.Error("FindUppermost should climb the matching owner chain to the highest ancestor")
	}
	if got := mid.FindUppermost("Block"); got != Node(root) {
		t.Error("FindUppermost should climb to the highest matching ancestor")
	}
}

func TestFindUppermostOwnerMismatch(t *testing.T) {
	root := NewNode(nil)
	root.SetTypeName("Doc")
	leaf := NewNode(root)
	leaf.SetTypeName("Text")

	if got := leaf.FindUppermost("Block"); got != Node(leaf) {
		t.Error("FindUppermost should return self when owner does not match")
	}
}

func TestFindOfType(t *testing.T) {
	root := NewNode(nil)
	a := NewNode(root)
	a.SetTypeName("Text")
	b := NewNode(root)
	b.SetTypeName("Section")

	got, err := root.FindOfType("Section")
	if err != nil || got != Node(b) {
		t.Errorf("FindOfType(Section) = %v, %v", got, err)
	}
	if _, err := root.FindOfType("Image"); !errors.Is(err, ErrNotFound) {
		t.Errorf("FindOfType(Image) err = %v, want ErrNotFound", err)
	}
}

func TestFindClosest(t *testing.T) {
	root := NewNode(nil)
	root.SetTypeName("Document")
	section := NewNode(root)
	section.SetTypeName("Section")
	text := NewNode(section)
	text.SetTypeName("Text")

	t.Run("matches self first", func(t *testing.T) {
		got, err := text.FindClosestOfType("Text")
		if err != nil || got != Node(text) {
			t.Errorf("FindClosestOfType(Text) = %v, %v", got, err)
		}
	})

	t.Run("climbs to ancestor", func(t *testing.T) {
		got, err := text.FindClosestOfType("Document")
		if err != nil || got != Node(root) {
			t.Errorf("FindClosestOfType(Document) = %v, %v", got, err)
		}
	})

	t.Run("not found at root", func(t *testing.T) {
		_, err := text.FindClosestOfType("Table")
		if !errors.Is(err, ErrNotFound) {
			t.Errorf("err = %v, want ErrNotFound", err)
		}
	})
}

func TestCapabilities(t *testing.T) {
	n := NewNode(nil)
	if n.IsCapable("render") {
		t.Error("fresh node should not be capable")
	}
	n.SetCapability("render", true)
	if !n.IsCapable("render") {
		t.Error("capability not set")
	}
	n.SetCapability("render", false)
	if n.IsCapable("render") {
		t.Error("capability not cleared")
	}
}

func TestAppendChildNoFactory(t *testing.T) {
	root := NewNode(nil)
	if _, err := root.AppendChild("Text"); !errors.Is(err, ErrNotFound) {
		t.Errorf("AppendChild without factory = %v, want ErrNotFound", err)
	}
}

// Read-only children survive delete while their siblings are removed.
func TestReadOnlySiblingScenario(t *testing.T) {
	factory := NewClassFactory()
	factory.Register("Foo", func(owner Node) Node { return NewNode(owner) })

	root := NewNode(nil)
	root.SetFactory(factory)

	a, err := root.AppendChild("Foo")
	if err != nil {
		t.Fatalf("AppendChild(Foo) = %v", err)
	}

	b := NewNode(nil)
	b.SetReadOnly(true)
	root.AddChild(b)

	if err := root.Delete(b); !errors.Is(err, ErrReadOnly) {
		t.Fatalf("Delete(B) = %v, want ErrReadOnly", err)
	}
	if err := root.Delete(a); err != nil {
		t.Fatalf("Delete(A) = %v", err)
	}
	if got := root.CountChildren(); got != 1 {
		t.Errorf("CountChildren() = %d, want 1", got)
	}
	only, _ := root.ChildByNumber(0)
	if only != Node(b) {
		t.Error("remaining child should be B")
	}
}

func TestAfterLoadAllPostOrder(t *testing.T) {
	var order []string

	factory := NewClassFactory()
	factory.SetDefault(func(owner Node) Node {
		n := &recordingNode{order: &order}
		n.Init(n, owner)
		return n
	})

	root := mustBuild(t, factory, "root", nil)
	a := mustBuild(t, factory, "a", root)
	mustBuild(t, factory, "a1", a)
	mustBuild(t, factory, "b", root)

	if err := AfterLoadAll(root); err != nil {
		t.Fatalf("AfterLoadAll() = %v", err)
	}
	want := []string{"a1", "a", "b", "root"}
	if len(order) != len(want) {
		t.Fatalf("got %d AfterLoad calls, want %d", len(order), len(want))
	}
	for i := range want {
		if order[i] != want[i] {
			t.Errorf("order[%d] = %q, want %q", i, order[i], want[i])
		}
	}
}

type recordingNode struct {
	BaseNode
	order *[]string
}

func (n *recordingNode) AfterLoad() error {
	*n.order = append(*n.order, n.TypeName())
	return nil
}

func mustBuild(t *testing.T, f *ClassFactory, typeName string, owner Node) Node {
	t.Helper()
	n, err := f.Build(typeName, owner)
	if err != nil {
		t.Fatalf("Build(%q) = %v", typeName, err)
	}
	return n
}
