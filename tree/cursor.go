package tree

// Cursor state machine over the child sequence. Valid states are
// BeforeFirst, At(i) for i in [0, count) and AfterLast. First/Last/Next/
// Previous move between states, clamping into the sentinels when stepping
// past either end; the accessors fail with ErrOutOfBounds when the target
// position is invalid.

// First moves the cursor to the first child, or to BeforeFirst when the node
// has no children.
func (b *BaseNode) First() {
	if len(b.children) == 0 {
		b.cursor = cursorBeforeFirst
		return
	}
	b.cursor = 0
}

// Last moves the cursor to the last child, or to AfterLast when the node has
// no children.
func (b *BaseNode) Last() {
	if len(b.children) == 0 {
		b.cursor = cursorAfterLast
		return
	}
	b.cursor = len(b.children) - 1
}

// Next advances the cursor, clamping into AfterLast when stepping past the
// last child.
func (b *BaseNode) Next() {
	switch b.cursor {
	case cursorAfterLast:
	case cursorBeforeFirst:
		if len(b.children) == 0 {
			b.cursor = cursorAfterLast
			return
		}
		b.cursor = 0
	default:
		if b.cursor+1 >= len(b.children) {
			b.cursor = cursorAfterLast
			return
		}
		b.cursor++
	}
}

// Previous retreats the cursor, clamping into BeforeFirst when stepping past
// the first child.
func (b *BaseNode) Previous() {
	switch b.cursor {
	case cursorBeforeFirst:
	case cursorAfterLast:
		if len(b.children) == 0 {
			b.cursor = cursorBeforeFirst
			return
		}
		b.cursor = len(b.children) - 1
	default:
		if b.cursor == 0 {
			b.cursor = cursorBeforeFirst
			return
		}
		b.cursor--
	}
}

func (b *BaseNode) IsBeforeFirst() bool { return b.cursor == cursorBeforeFirst }
func (b *BaseNode) IsAfterLast() bool   { return b.cursor == cursorAfterLast }

func (b *BaseNode) IsAtFirst() bool {
	return len(b.children) > 0 && b.cursor == 0
}

func (b *BaseNode) IsAtLast() bool {
	return len(b.children) > 0 && b.cursor == len(b.children)-1
}

func (b *BaseNode) IsAtMiddle() bool {
	return b.cursor > 0 && b.cursor < len(b.children)-1
}

// triedIndex maps the cursor state to the index an accessor would touch,
// offset by delta, for error reporting.
func (b *BaseNode) triedIndex(delta int) int {
	switch b.cursor {
	case cursorBeforeFirst:
		return -1 + delta
	case cursorAfterLast:
		return len(b.children) + delta
	default:
		return b.cursor + delta
	}
}

func (b *BaseNode) childAt(op string, i int) (Node, error) {
	if i < 0 || i >= len(b.children) {
		return nil, boundsErr(op, i, len(b.children))
	}
	return b.children[i], nil
}

// Current returns the child under the cursor.
func (b *BaseNode) Current() (Node, error) {
	return b.childAt("current", b.triedIndex(0))
}

// NextChild returns the child just after the cursor without moving it.
func (b *BaseNode) NextChild() (Node, error) {
	return b.childAt("next", b.triedIndex(1))
}

// PreviousChild returns the child just before the cursor without moving it.
func (b *BaseNode) PreviousChild() (Node, error) {
	return b.childAt("previous", b.triedIndex(-1))
}

// FirstChild returns the first child without moving the cursor.
func (b *BaseNode) FirstChild() (Node, error) {
	return b.childAt("first", 0)
}

// LastChild returns the last child without moving the cursor.
func (b *BaseNode) LastChild() (Node, error) {
	return b.childAt("last", len(b.children)-1)
}

// CurrentAndAdvance reads the child under the cursor and then advances,
// supporting stream-style consumption of the child sequence.
func (b *BaseNode) CurrentAndAdvance() (Node, error) {
	n, err := b.Current()
	if err != nil {
		return nil, err
	}
	b.Next()
	return n, nil
}

// CurrentAndRetreat reads the child under the cursor and then retreats.
func (b *BaseNode) CurrentAndRetreat() (Node, error) {
	n, err := b.Current()
	if err != nil {
		return nil, err
	}
	b.Previous()
	return n, nil
}
