package markup

import (
	"errors"
	"fmt"
)

// ErrInvalidSize is wrapped by TagError when a [size=N] value is not an integer.
var ErrInvalidSize = errors.New("markup: invalid size value")

// TagError reports a tag whose value could not be interpreted.
type TagError struct {
	// Tag is the full tag body, without brackets.
	Tag string

	// Pos is the byte offset of the opening bracket in the markup.
	Pos int

	Err error
}

func (e *TagError) Error() string {
	return fmt.Sprintf("markup: tag [%s] at byte %d: %v", e.Tag, e.Pos, e.Err)
}

func (e *TagError) Unwrap() error {
	return e.Err
}
