package format

import (
	"errors"
	"fmt"
)

var (
	// ErrBadMagic indicates one of the two container signatures was missing.
	ErrBadMagic = errors.New("format: bad magic")
	// ErrUnexpectedEOF indicates the buffer ended before a fixed-size region
	// or a string terminator.
	ErrUnexpectedEOF = errors.New("format: unexpected end of input")
	// ErrTagMismatch indicates a tagged field's marker was not at the cursor.
	ErrTagMismatch = errors.New("format: tag mismatch")
)

// ParseError reports a fatal container failure together with the byte offset
// and section where it was detected.
type ParseError struct {
	Offset  int
	Section string
	Err     error
}

func (e *ParseError) Error() string {
	if e == nil {
		return "<nil>"
	}
	return fmt.Sprintf("stel: %s at offset %d: %v", e.Section, e.Offset, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
