package format

import (
	"fmt"
	"io"
	"strings"

	"github.com/jorgealdojr/opentik/tree"
)

// LineEncoder writes one tab-separated row per node, followed by one "attr"
// row per attribute pair in insertion order. Rows flatten the tree in
// depth-first order.
type LineEncoder struct {
	w    io.Writer
	root tree.Node
}

func NewLineEncoder(w io.Writer) *LineEncoder {
	return &LineEncoder{w: w}
}

func (e *LineEncoder) Encode(root tree.Node) error {
	e.root = root
	text, err := e.MarshalText()
	if err != nil {
		return err
	}
	_, err = e.w.Write(text)
	return err
}

func (e *LineEncoder) MarshalText() ([]byte, error) {
	var sb strings.Builder
	v := &lineVisitor{sb: &sb}
	tree.Walk(v, e.root)
	return []byte(sb.String()), nil
}

type lineVisitor struct {
	tree.BaseVisitor
	sb *strings.Builder
}

func (v *lineVisitor) Process(n tree.Node) {
	fmt.Fprintf(v.sb, "node\t%s\t%s\t%d\n",
		typeNameStr(n),
		nodeNameStr(n),
		n.Base().CountChildren(),
	)
	an, ok := n.(tree.Attributed)
	if !ok {
		return
	}
	for _, p := range an.Attributes().Pairs() {
		fmt.Fprintf(v.sb, "attr\t%s\t%s\n", p.Name, valueStr(p.Value))
	}
}

func typeNameStr(n tree.Node) string {
	if tn := n.Base().TypeName(); tn != "" {
		return tn
	}
	return "-"
}

func nodeNameStr(n tree.Node) string {
	nn, ok := n.(tree.Named)
	if !ok || nn.Name() == "" {
		return "-"
	}
	return nn.Name()
}

func valueStr(v any) string {
	if v == nil {
		return "null"
	}
	return fmt.Sprintf("%v", v)
}
