package tree

// Visitor receives depth-first traversal events from Walk. The hooks are
// shape-dependent: sibling hooks fire only around children that have
// siblings, the single-child hooks around an only child, and OnNoChild on
// leaves. This lets a renderer inject separators only between true siblings.
type Visitor interface {
	// Process is called on every node before its children are visited.
	Process(n Node)

	// Hooks for nodes with more than one child.
	OnBeforeAllChildren(n Node)
	OnBeforeChild(child Node)
	OnAfterChild(child Node)
	OnAfterAllChildren(n Node)

	// Hooks for nodes with exactly one child.
	OnBeforeSingleChild(child Node)
	OnAfterSingleChild(child Node)

	// Hook for leaves.
	OnNoChild(n Node)
}

// BaseVisitor implements every hook as a no-op. Embed it and override only
// the hooks of interest.
type BaseVisitor struct{}

func (BaseVisitor) Process(Node)             {}
func (BaseVisitor) OnBeforeAllChildren(Node) {}
func (BaseVisitor) OnBeforeChild(Node)       {}
func (BaseVisitor) OnAfterChild(Node)        {}
func (BaseVisitor) OnAfterAllChildren(Node)  {}
func (BaseVisitor) OnBeforeSingleChild(Node) {}
func (BaseVisitor) OnAfterSingleChild(Node)  {}
func (BaseVisitor) OnNoChild(Node)           {}

// Walk drives v depth-first over the tree rooted at n: Process first, then
// the shape-dependent hooks around the recursion into each child.
func Walk(v Visitor, n Node) {
	v.Process(n)
	b := n.Base()
	switch len(b.children) {
	case 0:
		v.OnNoChild(n)
	case 1:
		child := b.children[0]
		v.OnBeforeSingleChild(child)
		Walk(v, child)
		v.OnAfterSingleChild(child)
	default:
		v.OnBeforeAllChildren(n)
		for _, child := range b.children {
			v.OnBeforeChild(child)
			Walk(v, child)
			v.OnAfterChild(child)
		}
		v.OnAfterAllChildren(n)
	}
}
