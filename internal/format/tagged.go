package format

import (
	"fmt"

	"github.com/joshuapare/stelkit/internal/buf"
)

// ReadTaggedString decodes one tagged field: the literal tag, a payload of
// any bytes other than NUL, and the NUL terminator. On success it returns the
// input following the terminator and the decoded payload.
//
// Errors wrap ErrTagMismatch when the tag is not at the front of b, and
// ErrUnexpectedEOF when the input ends before the terminator. On failure the
// returned remainder is b itself.
func ReadTaggedString(b, tag []byte, dec TextDecoder) (rest []byte, text string, err error) {
	rest, _, err = buf.Tag(b, tag)
	if err != nil {
		return b, "", fmt.Errorf("tag % X: %w", tag, ErrTagMismatch)
	}
	rest, payload := buf.TakeTillByte(rest, StringTerminator)
	rest, _, err = buf.Tag(rest, terminator)
	if err != nil {
		return b, "", fmt.Errorf("tag % X: unterminated string: %w", tag, ErrUnexpectedEOF)
	}
	return rest, dec.Decode(payload), nil
}
