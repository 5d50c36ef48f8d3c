package tree

import "fmt"

// Constructor builds a node attached to the given owner.
type Constructor func(owner Node) Node

// ClassFactory maps type-name strings to node constructors, replacing
// runtime type introspection with an explicit registry. A factory may be
// shared by many nodes; it is referenced, never owned.
type ClassFactory struct {
	registry           map[string]Constructor
	defaultConstructor Constructor
}

func NewClassFactory() *ClassFactory {
	return &ClassFactory{registry: make(map[string]Constructor)}
}

// Register binds a constructor to a type name. The latest registration
// under a given name wins.
func (f *ClassFactory) Register(typeName string, ctor Constructor) {
	f.registry[typeName] = ctor
}

// SetDefault installs the fallback constructor used for unregistered
// type names.
func (f *ClassFactory) SetDefault(ctor Constructor) {
	f.defaultConstructor = ctor
}

// IsRegisteredClass reports whether a constructor is registered under the
// given type name. The default constructor does not count.
func (f *ClassFactory) IsRegisteredClass(typeName string) bool {
	_, ok := f.registry[typeName]
	return ok
}

// Build constructs a node of the registered type bound to owner, tagging it
// with the requested type name and this factory. Unregistered names fall
// back to the default constructor; Build fails only when neither is
// available.
func (f *ClassFactory) Build(typeName string, owner Node) (Node, error) {
	ctor := f.registry[typeName]
	if ctor == nil {
		ctor = f.defaultConstructor
	}
	if ctor == nil {
		return nil, fmt.Errorf("build %q: %w: no constructor registered and no default", typeName, ErrNotFound)
	}
	n := ctor(owner)
	nb := n.Base()
	nb.typeName = typeName
	nb.factory = f
	return n, nil
}
