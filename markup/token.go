// Package markup parses brace-structured tik documents into the ownership
// tree. Each element drives the class factory with its type name; attribute
// lists populate the node's NameMap.
package markup

// Position is a location in a source document.
type Position struct {
	File   string
	Offset int
	Line   int
	Column int
}

type TokenKind int

const (
	TokenEOF TokenKind = iota
	TokenError

	TokenIdent
	TokenString
	TokenNumber
	TokenTrue
	TokenFalse
	TokenNull

	TokenLBrace
	TokenRBrace
	TokenAssign
)

var tokenKindNames = map[TokenKind]string{
	TokenEOF:    "EOF",
	TokenError:  "Error",
	TokenIdent:  "Ident",
	TokenString: "String",
	TokenNumber: "Number",
	TokenTrue:   "True",
	TokenFalse:  "False",
	TokenNull:   "Null",
	TokenLBrace: "LBrace",
	TokenRBrace: "RBrace",
	TokenAssign: "Assign",
}

func (k TokenKind) String() string {
	if name, ok := tokenKindNames[k]; ok {
		return name
	}
	return "Unknown"
}

type Token struct {
	Kind    TokenKind
	Literal string
	Pos     Position
}
