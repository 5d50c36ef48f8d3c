package tree

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfBounds reports cursor or index access beyond the valid range.
	ErrOutOfBounds = errors.New("out of bounds")

	// ErrReadOnly reports an attempt to delete a protected node.
	ErrReadOnly = errors.New("read only")

	// ErrNotFound reports a failed delete, find or name lookup.
	ErrNotFound = errors.New("not found")

	// ErrEmptySet reports a delete attempted on a node with no children.
	ErrEmptySet = errors.New("empty set")
)

// boundsErr builds an out-of-bounds error that reports the valid range and
// the index that was tried, or "no children" when the sequence is empty.
func boundsErr(op string, tried, count int) error {
	if count == 0 {
		return fmt.Errorf("%s: %w: no children", op, ErrOutOfBounds)
	}
	return fmt.Errorf("%s: %w: index %d outside [0, %d]", op, ErrOutOfBounds, tried, count-1)
}
