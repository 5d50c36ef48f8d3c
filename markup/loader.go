package markup

import (
	"fmt"
	"os"
	"strconv"

	"github.com/jorgealdojr/opentik/tree"
)

// NameSetter is implemented by nodes whose name can be assigned by the
// loader (the "name" attribute).
type NameSetter interface {
	tree.Node
	SetName(string)
}

// DefaultFactory returns a factory whose default constructor builds a
// PropertiesNode, so any element type parses without prior registration.
func DefaultFactory() *tree.ClassFactory {
	f := tree.NewClassFactory()
	f.SetDefault(func(owner tree.Node) tree.Node {
		return tree.NewPropertiesNode(owner, "")
	})
	return f
}

// Loader builds an ownership tree from tik markup, constructing one node per
// element through the class factory.
type Loader struct {
	factory   *tree.ClassFactory
	lexer     *Lexer
	tok       Token
	ahead     Token
	positions map[tree.Node]Position
}

func NewLoader(factory *tree.ClassFactory) *Loader {
	return &Loader{factory: factory}
}

// Positions reports where each node of the last loaded document was
// declared. The tree carries no positions itself; this side table is the
// loader-supplied location context.
func (l *Loader) Positions() map[tree.Node]Position { return l.positions }

// LoadFile reads and loads one document.
func (l *Loader) LoadFile(path string) (tree.Node, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return l.Load(data, path)
}

// Load parses src into a tree rooted at the document's single top-level
// element. After the tree is materialized the AfterLoad hook runs once per
// node, post-order.
func (l *Loader) Load(src []byte, path string) (tree.Node, error) {
	l.lexer = NewLexer(src, path)
	l.positions = make(map[tree.Node]Position)
	l.next()
	l.next()

	root, err := l.element(nil)
	if err != nil {
		return nil, err
	}
	if l.tok.Kind != TokenEOF {
		return nil, errAt(l.tok.Pos, fmt.Errorf("unexpected %q after document root", l.tok.Literal))
	}
	if err := tree.AfterLoadAll(root); err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}
	return root, nil
}

// next shifts the two-token lookahead window.
func (l *Loader) next() {
	l.tok = l.ahead
	l.ahead = l.lexer.NextToken()
}

func (l *Loader) element(owner tree.Node) (tree.Node, error) {
	if l.tok.Kind == TokenError {
		return nil, errAt(l.tok.Pos, fmt.Errorf("bad token: %s", l.tok.Literal))
	}
	if l.tok.Kind != TokenIdent {
		return nil, errAt(l.tok.Pos, fmt.Errorf("expected element type name, got %s", l.tok.Kind))
	}
	typeName := l.tok.Literal
	pos := l.tok.Pos
	l.next()

	node, err := l.factory.Build(typeName, owner)
	if err != nil {
		return nil, errAt(pos, err)
	}
	l.positions[node] = pos

	if err := l.attributes(node, typeName); err != nil {
		return nil, err
	}
	if l.tok.Kind == TokenLBrace {
		if err := l.block(node); err != nil {
			return nil, err
		}
	}
	return node, nil
}

func (l *Loader) attributes(node tree.Node, typeName string) error {
	for l.tok.Kind == TokenIdent && l.ahead.Kind == TokenAssign {
		name := l.tok.Literal
		pos := l.tok.Pos
		l.next() // attribute name
		l.next() // '='

		value, err := l.scalar()
		if err != nil {
			return err
		}

		if name == "name" {
			if ns, ok := node.(NameSetter); ok {
				if s, ok := value.(string); ok {
					ns.SetName(s)
				}
			}
		}
		an, ok := node.(tree.Attributed)
		if !ok || !node.Base().IsCapable(tree.CapAttributes) {
			return errAt(pos, fmt.Errorf("type %q does not accept attributes", typeName))
		}
		an.Attributes().SetByName(name, value)
	}
	return nil
}

func (l *Loader) scalar() (any, error) {
	tok := l.tok
	switch tok.Kind {
	case TokenString:
		l.next()
		return tok.Literal, nil
	case TokenNumber:
		l.next()
		if i, err := strconv.ParseInt(tok.Literal, 10, 64); err == nil {
			return i, nil
		}
		f, err := strconv.ParseFloat(tok.Literal, 64)
		if err != nil {
			return nil, errAt(tok.Pos, fmt.Errorf("bad number %q", tok.Literal))
		}
		return f, nil
	case TokenTrue:
		l.next()
		return true, nil
	case TokenFalse:
		l.next()
		return false, nil
	case TokenNull:
		l.next()
		return nil, nil
	case TokenError:
		return nil, errAt(tok.Pos, fmt.Errorf("bad token: %s", tok.Literal))
	default:
		return nil, errAt(tok.Pos, fmt.Errorf("expected attribute value, got %s", tok.Kind))
	}
}

func (l *Loader) block(node tree.Node) error {
	open := l.tok.Pos
	l.next() // '{'
	for {
		switch l.tok.Kind {
		case TokenRBrace:
			l.next()
			return nil
		case TokenEOF:
			return errAt(open, fmt.Errorf("unclosed block"))
		default:
			if _, err := l.element(node); err != nil {
				return err
			}
		}
	}
}
