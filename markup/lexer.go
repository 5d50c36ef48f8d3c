package markup

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

type Lexer struct {
	input  []byte
	file   string
	pos    int
	line   int
	column int
}

func NewLexer(input []byte, file string) *Lexer {
	return &Lexer{
		input:  input,
		file:   file,
		pos:    0,
		line:   1,
		column: 1,
	}
}

func (l *Lexer) Position() Position {
	return Position{
		File:   l.file,
		Offset: l.pos,
		Line:   l.line,
		Column: l.column,
	}
}

func (l *Lexer) peek() byte {
	if l.pos >= len(l.input) {
		return 0
	}
	return l.input[l.pos]
}

func (l *Lexer) advance() byte {
	if l.pos >= len(l.input) {
		return 0
	}
	ch := l.input[l.pos]
	l.pos++
	if ch == '\n' {
		l.line++
		l.column = 1
	} else {
		l.column++
	}
	return ch
}

// skipBlanks consumes whitespace and # line comments.
func (l *Lexer) skipBlanks() {
	for {
		switch l.peek() {
		case ' ', '\t', '\r', '\n':
			l.advance()
		case '#':
			for l.peek() != '\n' && l.pos < len(l.input) {
				l.advance()
			}
		default:
			return
		}
	}
}

func (l *Lexer) NextToken() Token {
	l.skipBlanks()
	startPos := l.Position()

	if l.pos >= len(l.input) {
		return Token{Kind: TokenEOF, Pos: startPos}
	}

	ch := l.peek()
	switch {
	case ch == '{':
		l.advance()
		return Token{Kind: TokenLBrace, Literal: "{", Pos: startPos}
	case ch == '}':
		l.advance()
		return Token{Kind: TokenRBrace, Literal: "}", Pos: startPos}
	case ch == '=':
		l.advance()
		return Token{Kind: TokenAssign, Literal: "=", Pos: startPos}
	case ch == '"':
		return l.lexString(startPos)
	case ch == '-' || (ch >= '0' && ch <= '9'):
		return l.lexNumber(startPos)
	case isIdentStart(ch):
		return l.lexIdent(startPos)
	default:
		l.advance()
		return Token{Kind: TokenError, Literal: string(ch), Pos: startPos}
	}
}

func (l *Lexer) lexString(startPos Position) Token {
	l.advance() // opening quote
	var sb strings.Builder
	for {
		if l.pos >= len(l.input) || l.peek() == '\n' {
			return Token{Kind: TokenError, Literal: "unterminated string", Pos: startPos}
		}
		ch := l.advance()
		switch ch {
		case '"':
			return Token{Kind: TokenString, Literal: sb.String(), Pos: startPos}
		case '\\':
			esc := l.advance()
			switch esc {
			case '"':
				sb.WriteByte('"')
			case '\\':
				sb.WriteByte('\\')
			case 'n':
				sb.WriteByte('\n')
			case 't':
				sb.WriteByte('\t')
			default:
				return Token{Kind: TokenError, Literal: "bad escape \\" + string(esc), Pos: startPos}
			}
		default:
			sb.WriteByte(ch)
		}
	}
}

func (l *Lexer) lexNumber(startPos Position) Token {
	start := l.pos
	if l.peek() == '-' {
		l.advance()
	}
	for l.peek() >= '0' && l.peek() <= '9' {
		l.advance()
	}
	if l.peek() == '.' {
		l.advance()
		for l.peek() >= '0' && l.peek() <= '9' {
			l.advance()
		}
	}
	return Token{Kind: TokenNumber, Literal: string(l.input[start:l.pos]), Pos: startPos}
}

func (l *Lexer) lexIdent(startPos Position) Token {
	start := l.pos
	for l.pos < len(l.input) {
		r, size := utf8.DecodeRune(l.input[l.pos:])
		if !isIdentPart(r) {
			break
		}
		for i := 0; i < size; i++ {
			l.advance()
		}
	}
	literal := string(l.input[start:l.pos])
	switch literal {
	case "true":
		return Token{Kind: TokenTrue, Literal: literal, Pos: startPos}
	case "false":
		return Token{Kind: TokenFalse, Literal: literal, Pos: startPos}
	case "null":
		return Token{Kind: TokenNull, Literal: literal, Pos: startPos}
	}
	return Token{Kind: TokenIdent, Literal: literal, Pos: startPos}
}

func isIdentStart(ch byte) bool {
	return ch == '_' || (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') || ch >= utf8.RuneSelf
}

func isIdentPart(r rune) bool {
	return r == '_' || r == '-' || unicode.IsLetter(r) || unicode.IsDigit(r)
}
