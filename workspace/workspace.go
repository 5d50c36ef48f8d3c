// Package workspace tracks a set of loaded tik documents and serves them
// over the Language Server Protocol.
package workspace

import (
	"os"
	"sort"

	"github.com/jorgealdojr/opentik/markup"
	"github.com/jorgealdojr/opentik/tree"
)

// Document is one loaded source file. Root is nil when the last load
// failed; Err keeps the failure for diagnostics.
type Document struct {
	Path      string
	Root      tree.Node
	Positions map[tree.Node]markup.Position
	Err       error
}

// Workspace maps document paths to their loaded trees. All documents share
// one class factory.
type Workspace struct {
	factory *tree.ClassFactory
	docs    map[string]*Document
}

// New creates a workspace. A nil factory falls back to the default one,
// which accepts any element type.
func New(factory *tree.ClassFactory) *Workspace {
	if factory == nil {
		factory = markup.DefaultFactory()
	}
	return &Workspace{
		factory: factory,
		docs:    make(map[string]*Document),
	}
}

// Update (re)loads a document from the given content.
func (w *Workspace) Update(path string, content []byte) *Document {
	loader := markup.NewLoader(w.factory)
	root, err := loader.Load(content, path)
	doc := &Document{
		Path:      path,
		Root:      root,
		Positions: loader.Positions(),
		Err:       err,
	}
	w.docs[path] = doc
	return doc
}

// ScanFile loads a document from disk.
func (w *Workspace) ScanFile(path string) (*Document, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return w.Update(path, content), nil
}

// Get returns the loaded document, or nil.
func (w *Workspace) Get(path string) *Document {
	return w.docs[path]
}

// Remove drops a document from the workspace.
func (w *Workspace) Remove(path string) {
	delete(w.docs, path)
}

// Paths lists the loaded document paths in stable order.
func (w *Workspace) Paths() []string {
	paths := make([]string, 0, len(w.docs))
	for p := range w.docs {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}

// Symbol is a document outline entry derived from the tree: one per node,
// nested like the tree, located where the loader saw the element.
type Symbol struct {
	Name     string
	TypeName string
	Line     int
	Column   int
	Children []Symbol
}

// Symbols returns the outline of a loaded document.
func (w *Workspace) Symbols(path string) []Symbol {
	doc := w.Get(path)
	if doc == nil || doc.Root == nil {
		return nil
	}
	return []Symbol{symbolFor(doc, doc.Root)}
}

func symbolFor(doc *Document, n tree.Node) Symbol {
	sym := Symbol{
		Name:     symbolName(n),
		TypeName: n.Base().TypeName(),
	}
	if pos, ok := doc.Positions[n]; ok {
		sym.Line = pos.Line
		sym.Column = pos.Column
	}
	for i := 0; i < n.Base().CountChildren(); i++ {
		child, err := n.Base().ChildByNumber(i)
		if err != nil {
			break
		}
		sym.Children = append(sym.Children, symbolFor(doc, child))
	}
	return sym
}

func symbolName(n tree.Node) string {
	if nn, ok := n.(tree.Named); ok && nn.Name() != "" {
		return nn.Name()
	}
	if tn := n.Base().TypeName(); tn != "" {
		return tn
	}
	return "(node)"
}
