// Package format renders ownership trees as text: a tab-separated line
// format for tooling, and an indented pretty form for people.
package format

import (
	"encoding"

	"github.com/jorgealdojr/opentik/tree"
)

type Encoder interface {
	encoding.TextMarshaler
	Encode(root tree.Node) error
}
