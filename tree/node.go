// Package tree implements the ownership tree underlying parsed documents.
// Nodes are constructed polymorphically by type name through a ClassFactory,
// own their children exclusively, and keep a per-node cursor for stream-style
// traversal of the child sequence. Trees are not safe for concurrent use.
package tree

import "fmt"

// Node is implemented by every tree participant. One base implementation
// (BaseNode) carries all structural state; specializations embed it and
// register themselves through Init so the tree always hands back the
// concrete type that was constructed.
type Node interface {
	// Base returns the embedded BaseNode carrying the structural state.
	Base() *BaseNode

	// AfterLoad runs deferred initialization once the whole tree has been
	// materialized. It is invoked post-order by AfterLoadAll.
	AfterLoad() error
}

// Named is implemented by nodes that carry a name (see NamedNode).
type Named interface {
	Node
	Name() string
}

// Attributed is implemented by nodes that own attribute storage
// (see PropertiesNode).
type Attributed interface {
	Node
	Attributes() *NameMap
}

// Predicate selects nodes during ancestor-ward searches.
type Predicate func(Node) bool

// Cursor sentinel states. Positions in [0, len(children)) address a child
// directly; the sentinels mark the states just outside either end.
const (
	cursorBeforeFirst = -1
	cursorAfterLast   = -2
)

// BaseNode is the single base implementation of Node. The owner reference is
// non-owning and used only for upward navigation; children are owned
// exclusively and destroyed recursively with their parent.
type BaseNode struct {
	self     Node
	owner    Node
	children []Node
	cursor   int
	readOnly bool
	caps     map[string]bool
	factory  *ClassFactory
	typeName string
}

// NewNode constructs a plain node. If owner is non-nil the node is appended
// to the owner's children as part of construction.
func NewNode(owner Node) *BaseNode {
	n := &BaseNode{}
	n.Init(n, owner)
	return n
}

// Init wires a node into the tree: self must be the outermost concrete type
// (the one embedding BaseNode) so that children hand back what was built.
// Specialization constructors call Init exactly once.
func (b *BaseNode) Init(self, owner Node) {
	b.self = self
	b.owner = owner
	b.cursor = cursorBeforeFirst
	if owner != nil {
		ob := owner.Base()
		ob.children = append(ob.children, self)
		if b.factory == nil {
			b.factory = ob.factory
		}
	}
}

func (b *BaseNode) Base() *BaseNode { return b }

// AfterLoad is a no-op on the base node.
func (b *BaseNode) AfterLoad() error { return nil }

// Owner returns the owning node, or nil at the root.
func (b *BaseNode) Owner() Node { return b.owner }

// TypeName returns the type-name tag under which this node was built.
func (b *BaseNode) TypeName() string { return b.typeName }

// SetTypeName tags the node with a type name. The factory does this
// automatically for nodes it builds.
func (b *BaseNode) SetTypeName(name string) { b.typeName = name }

func (b *BaseNode) IsReadOnly() bool   { return b.readOnly }
func (b *BaseNode) SetReadOnly(v bool) { b.readOnly = v }

func (b *BaseNode) Factory() *ClassFactory     { return b.factory }
func (b *BaseNode) SetFactory(f *ClassFactory) { b.factory = f }

// IsCapable reports whether the node carries the given capability tag.
func (b *BaseNode) IsCapable(tag string) bool { return b.caps[tag] }

// SetCapability adds or removes a capability tag.
func (b *BaseNode) SetCapability(tag string, on bool) {
	if on {
		if b.caps == nil {
			b.caps = make(map[string]bool)
		}
		b.caps[tag] = true
		return
	}
	delete(b.caps, tag)
}

func (b *BaseNode) HasChildren() bool  { return len(b.children) > 0 }
func (b *BaseNode) CountChildren() int { return len(b.children) }

// AppendChild builds a child of the named type through the bound factory.
// It fails when no factory is bound.
func (b *BaseNode) AppendChild(typeName string) (Node, error) {
	if b.factory == nil {
		return nil, fmt.Errorf("append child %q: %w: no factory bound", typeName, ErrNotFound)
	}
	return b.factory.Build(typeName, b.self)
}

// AddChild appends an already-constructed node and returns it. The node must
// not be owned elsewhere; ownership transfers to this node.
func (b *BaseNode) AddChild(n Node) Node {
	n.Base().owner = b.self
	b.children = append(b.children, n)
	return n
}

// Delete removes the given child, destroying its whole subtree. The child is
// located by identity; the structure is left unchanged on failure.
func (b *BaseNode) Delete(n Node) error {
	if len(b.children) == 0 {
		return fmt.Errorf("delete: %w", ErrEmptySet)
	}
	idx := b.indexOf(n)
	if idx < 0 {
		return fmt.Errorf("delete: %w", ErrNotFound)
	}
	if n.Base().readOnly {
		return fmt.Errorf("delete: %w", ErrReadOnly)
	}
	n.Base().destroy()
	b.children = append(b.children[:idx], b.children[idx+1:]...)
	if b.cursor >= 0 {
		if b.cursor > idx {
			b.cursor--
		}
		if b.cursor >= len(b.children) {
			b.cursor = cursorAfterLast
		}
	}
	return nil
}

// Purge destroys and clears all children.
func (b *BaseNode) Purge() {
	for _, c := range b.children {
		c.Base().destroy()
	}
	b.children = nil
	b.cursor = cursorBeforeFirst
}

// destroy tears down the subtree rooted at this node, breaking the
// owner/child cycles so detached nodes cannot be navigated back into
// the tree.
func (b *BaseNode) destroy() {
	for _, c := range b.children {
		c.Base().destroy()
	}
	b.children = nil
	b.owner = nil
	b.cursor = cursorBeforeFirst
}

func (b *BaseNode) indexOf(n Node) int {
	for i, c := range b.children {
		if c == n {
			return i
		}
	}
	return -1
}

// ChildByNumber returns the child at the given index.
func (b *BaseNode) ChildByNumber(i int) (Node, error) {
	if i < 0 || i >= len(b.children) {
		return nil, boundsErr("child by number", i, len(b.children))
	}
	return b.children[i], nil
}

// MyIndex returns this node's position among the owner's children, found by
// identity scan without disturbing the owner's cursor. Returns 0 when the
// node has no owner.
func (b *BaseNode) MyIndex() int {
	if b.owner == nil {
		return 0
	}
	idx := b.owner.Base().indexOf(b.self)
	if idx < 0 {
		return 0
	}
	return idx
}

// FindRoot walks the owner chain to the node with no owner.
func (b *BaseNode) FindRoot() Node {
	n := b.self
	for n.Base().owner != nil {
		n = n.Base().owner
	}
	return n
}

// FindUppermost walks upward while the owner carries the given type name and
// returns the highest matching ancestor, or self when the owner does not
// match.
func (b *BaseNode) FindUppermost(typeName string) Node {
	n := b.self
	for {
		o := n.Base().owner
		if o == nil || o.Base().typeName != typeName {
			return n
		}
		n = o
	}
}

// FindOfType returns the first direct child tagged with the given type name.
func (b *BaseNode) FindOfType(typeName string) (Node, error) {
	for _, c := range b.children {
		if c.Base().typeName == typeName {
			return c, nil
		}
	}
	return nil, fmt.Errorf("find of type %q: %w", typeName, ErrNotFound)
}

// FindClosest tests this node and then each ancestor against the predicate,
// terminating not-found at the root.
func (b *BaseNode) FindClosest(pred Predicate) (Node, error) {
	for n := b.self; n != nil; n = n.Base().owner {
		if pred(n) {
			return n, nil
		}
	}
	return nil, fmt.Errorf("find closest: %w", ErrNotFound)
}

// FindClosestOfType is FindClosest matching on the type-name tag.
func (b *BaseNode) FindClosestOfType(typeName string) (Node, error) {
	n, err := b.FindClosest(func(n Node) bool {
		return n.Base().typeName == typeName
	})
	if err != nil {
		return nil, fmt.Errorf("find closest of type %q: %w", typeName, ErrNotFound)
	}
	return n, nil
}

// FindChildByName returns the first direct child that carries the given name.
func (b *BaseNode) FindChildByName(name string) (Node, error) {
	for _, c := range b.children {
		if nn, ok := c.(Named); ok && nn.Name() == name {
			return c, nil
		}
	}
	return nil, fmt.Errorf("find child by name %q: %w", name, ErrNotFound)
}

// FindChildByNameValue returns the first direct child whose attributes match
// the given name/value pair.
func (b *BaseNode) FindChildByNameValue(name string, value any) (Node, error) {
	for _, c := range b.children {
		if an, ok := c.(Attributed); ok && an.Attributes().Match(name, value) {
			return c, nil
		}
	}
	return nil, fmt.Errorf("find child by name %q value %v: %w", name, value, ErrNotFound)
}

// AfterLoadAll invokes AfterLoad once per node, post-order depth-first, after
// the whole tree has been materialized.
func AfterLoadAll(root Node) error {
	for _, c := range root.Base().children {
		if err := AfterLoadAll(c); err != nil {
			return err
		}
	}
	return root.AfterLoad()
}
