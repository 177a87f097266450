// Package buf contains the bounds-checked byte helpers the format decoders
// are built from.
//
// The cursor functions treat the input slice itself as the cursor: each one
// returns the unconsumed remainder first and the consumed bytes second, so
// parsers thread the remainder through a sequence of calls:
//
//	rest, _, err := buf.Tag(b, magic)
//	rest, header, err = buf.Take(rest, 14)
//	rest, body := buf.TakeTillByte(rest, 0x33)
//
// Returned slices alias the input. None of the functions allocate.
package buf

import (
	"bytes"
	"errors"
)

var (
	// ErrUnexpectedBytes indicates the input did not start with the expected literal.
	ErrUnexpectedBytes = errors.New("buf: unexpected bytes")
	// ErrUnexpectedEOF indicates the input ended before the requested bytes.
	ErrUnexpectedEOF = errors.New("buf: unexpected end of input")
)

// Tag consumes lit from the front of b. It fails with ErrUnexpectedBytes when
// b does not start with lit, including when b is shorter than lit.
func Tag(b, lit []byte) (rest, matched []byte, err error) {
	if !bytes.HasPrefix(b, lit) {
		return b, nil, ErrUnexpectedBytes
	}
	return b[len(lit):], b[:len(lit)], nil
}

// Take consumes exactly n bytes from the front of b. It fails with
// ErrUnexpectedEOF when fewer than n bytes remain or n is negative.
func Take(b []byte, n int) (rest, taken []byte, err error) {
	taken, ok := Slice(b, 0, n)
	if !ok {
		return b, nil, ErrUnexpectedEOF
	}
	return b[n:], taken, nil
}

// TakeTill consumes the longest prefix of b on which stop reports false.
// It never fails: an empty prefix and the whole of b are both valid results.
func TakeTill(b []byte, stop func(byte) bool) (rest, taken []byte) {
	for i, c := range b {
		if stop(c) {
			return b[i:], b[:i]
		}
	}
	return b[len(b):], b
}

// TakeTillByte is TakeTill with stop matching a single byte value.
func TakeTillByte(b []byte, stop byte) (rest, taken []byte) {
	i := bytes.IndexByte(b, stop)
	if i < 0 {
		return b[len(b):], b
	}
	return b[i:], b[:i]
}
