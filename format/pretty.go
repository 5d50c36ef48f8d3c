package format

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/jorgealdojr/opentik/tree"
)

// PrettyEncoder writes an indented tree dump. Type names and attribute
// values are colored unless color is disabled (color.NoColor also applies).
type PrettyEncoder struct {
	w    io.Writer
	root tree.Node

	typeColor  *color.Color
	nameColor  *color.Color
	valueColor *color.Color
}

func NewPrettyEncoder(w io.Writer) *PrettyEncoder {
	return &PrettyEncoder{
		w:          w,
		typeColor:  color.New(color.FgCyan),
		nameColor:  color.New(color.FgYellow),
		valueColor: color.New(color.Faint),
	}
}

// DisableColor forces plain output regardless of terminal detection.
func (e *PrettyEncoder) DisableColor() {
	e.typeColor.DisableColor()
	e.nameColor.DisableColor()
	e.valueColor.DisableColor()
}

func (e *PrettyEncoder) Encode(root tree.Node) error {
	e.root = root
	text, err := e.MarshalText()
	if err != nil {
		return err
	}
	_, err = e.w.Write(text)
	return err
}

func (e *PrettyEncoder) MarshalText() ([]byte, error) {
	var sb strings.Builder
	v := &prettyVisitor{enc: e, sb: &sb}
	tree.Walk(v, e.root)
	return []byte(sb.String()), nil
}

// prettyVisitor tracks depth through the shape hooks: both the sibling and
// the single-child hooks bracket one level of nesting.
type prettyVisitor struct {
	tree.BaseVisitor
	enc   *PrettyEncoder
	sb    *strings.Builder
	depth int
}

func (v *prettyVisitor) Process(n tree.Node) {
	v.sb.WriteString(strings.Repeat("  ", v.depth))
	v.sb.WriteString(v.enc.typeColor.Sprint(typeNameStr(n)))
	if name := nodeNameStr(n); name != "-" {
		v.sb.WriteByte(' ')
		v.sb.WriteString(v.enc.nameColor.Sprint(name))
	}
	if an, ok := n.(tree.Attributed); ok {
		for _, p := range an.Attributes().Pairs() {
			fmt.Fprintf(v.sb, " %s=%s", p.Name, v.enc.valueColor.Sprint(valueStr(p.Value)))
		}
	}
	v.sb.WriteByte('\n')
}

func (v *prettyVisitor) OnBeforeAllChildren(tree.Node) { v.depth++ }
func (v *prettyVisitor) OnAfterAllChildren(tree.Node)  { v.depth-- }
func (v *prettyVisitor) OnBeforeSingleChild(tree.Node) { v.depth++ }
func (v *prettyVisitor) OnAfterSingleChild(tree.Node)  { v.depth-- }
