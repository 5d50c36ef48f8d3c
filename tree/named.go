package tree

import (
	"fmt"
	"strings"
)

// numericalRootName is the marker used in place of the root in
// ancestor-index paths.
const numericalRootName = "$ROOT$"

// CapAttributes tags nodes that own attribute storage. PropertiesNode sets
// it during construction; consumers dispatch on the tag without inspecting
// the concrete type.
const CapAttributes = "attributes"

// NamedNode is a node that carries a name and supports name-path queries.
type NamedNode struct {
	BaseNode
	name string
}

// NewNamedNode constructs a named node attached to owner.
func NewNamedNode(owner Node, name string) *NamedNode {
	n := &NamedNode{name: name}
	n.Init(n, owner)
	return n
}

func (n *NamedNode) Name() string        { return n.name }
func (n *NamedNode) SetName(name string) { n.name = name }

// named lets embedders (PropertiesNode) satisfy the named-node checks used
// by the path builders.
func (n *NamedNode) named() *NamedNode { return n }

type namedNoder interface {
	named() *NamedNode
}

// NumericalName returns the ancestor-index path from the root, e.g.
// "$ROOT$.[2].[0]": each node on the path contributes its index among its
// owner's children while the owner is also a named node.
func (n *NamedNode) NumericalName() string {
	if n.owner == nil {
		return numericalRootName
	}
	parts := []string{fmt.Sprintf("[%d]", n.MyIndex())}
	cur := n.self
	for {
		owner := cur.Base().owner
		if owner == nil {
			break
		}
		if _, ok := owner.(namedNoder); !ok {
			break
		}
		if owner.Base().owner == nil {
			break
		}
		parts = append([]string{fmt.Sprintf("[%d]", owner.Base().MyIndex())}, parts...)
		cur = owner
	}
	return numericalRootName + "." + strings.Join(parts, ".")
}

// IndexedName returns the ancestor-name path joined by ".". The owner's
// contribution is emitted only when the owner and the owner's owner are both
// named nodes, so the path omits the root; otherwise just this node's own
// name is returned.
func (n *NamedNode) IndexedName() string {
	owner, ok := ownerAsNamed(&n.BaseNode)
	if !ok {
		return n.name
	}
	if _, ok := ownerAsNamed(&owner.BaseNode); !ok {
		return n.name
	}
	return owner.IndexedName() + "." + n.name
}

func ownerAsNamed(b *BaseNode) (*NamedNode, bool) {
	if b.owner == nil {
		return nil, false
	}
	nn, ok := b.owner.(namedNoder)
	if !ok {
		return nil, false
	}
	return nn.named(), true
}

// Find returns the direct child with the given name, compared
// case-insensitively.
func (n *NamedNode) Find(name string) (Node, error) {
	for _, c := range n.children {
		if cn, ok := c.(Named); ok && strings.EqualFold(cn.Name(), name) {
			return c, nil
		}
	}
	return nil, fmt.Errorf("find %q in %q: %w", name, n.IndexedName(), ErrNotFound)
}

// HasChildNamed reports whether a direct child carries exactly the given
// name. Unlike Find, the comparison is case-sensitive.
func (n *NamedNode) HasChildNamed(name string) bool {
	for _, c := range n.children {
		if cn, ok := c.(Named); ok && cn.Name() == name {
			return true
		}
	}
	return false
}

// PropertiesNode is a named node that owns a NameMap for attribute storage.
// The map is created with the node and lives as long as it does.
type PropertiesNode struct {
	NamedNode
	attrs *NameMap
}

// NewPropertiesNode constructs a properties node attached to owner.
func NewPropertiesNode(owner Node, name string) *PropertiesNode {
	n := &PropertiesNode{attrs: NewNameMap()}
	n.name = name
	n.Init(n, owner)
	n.SetCapability(CapAttributes, true)
	return n
}

func (n *PropertiesNode) Attributes() *NameMap { return n.attrs }
