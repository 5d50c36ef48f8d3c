package markup

import "fmt"

// ParseError annotates a failure with the row/column context of the element
// being loaded. The tree itself tracks no source positions; the loader is
// the one that knows where each structural failure happened.
type ParseError struct {
	Path   string
	Line   int
	Column int
	Err    error
}

func (e *ParseError) Error() string {
	if e.Line == 0 {
		return fmt.Sprintf("%s: %v", e.Path, e.Err)
	}
	return fmt.Sprintf("%s:%d:%d: %v", e.Path, e.Line, e.Column, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

func errAt(pos Position, err error) error {
	return &ParseError{
		Path:   pos.File,
		Line:   pos.Line,
		Column: pos.Column,
		Err:    err,
	}
}
