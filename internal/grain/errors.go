package grain

import (
	"errors"
	"fmt"
)

var (
	// ErrFieldNotFilled indicates an operation that needs every cell to belong
	// to a grain was called on a field with empty cells.
	ErrFieldNotFilled = errors.New("grain: field is not filled")
	// ErrMalformedHeader indicates a text field without a "<width> <height>" header.
	ErrMalformedHeader = errors.New("grain: malformed size header")
	// ErrMalformedLine indicates a text line that is not "<x> <y> <state>".
	ErrMalformedLine = errors.New("grain: malformed line")
	// ErrOutOfBounds indicates a text line addressing a cell outside the field.
	ErrOutOfBounds = errors.New("grain: coordinates out of bounds")
)

// LineError reports a skipped line of a text import. Line is 1-based.
type LineError struct {
	Line int
	Text string
	Err  error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("line %d %q: %v", e.Line, e.Text, e.Err)
}

func (e *LineError) Unwrap() error { return e.Err }
