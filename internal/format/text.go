package format

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/unicode"
)

// DefaultEncoding is the label used when no text encoding is configured.
const DefaultEncoding = "utf-8"

// TextDecoder converts tagged-string payloads to UTF-8. Decoding is lossy and
// never fails: bytes that are invalid in the source encoding become U+FFFD.
//
// The zero value decodes UTF-8.
type TextDecoder struct {
	name string
	enc  encoding.Encoding
}

// NewTextDecoder returns a decoder for the WHATWG encoding label, for example
// "utf-8", "windows-1252", "latin1" or "shift_jis". An empty label selects
// DefaultEncoding.
func NewTextDecoder(label string) (TextDecoder, error) {
	if label == "" {
		label = DefaultEncoding
	}
	enc, err := htmlindex.Get(label)
	if err != nil {
		return TextDecoder{}, fmt.Errorf("text encoding %q: %w", label, err)
	}
	name, err := htmlindex.Name(enc)
	if err != nil {
		return TextDecoder{}, fmt.Errorf("text encoding %q: %w", label, err)
	}
	if name == DefaultEncoding {
		return TextDecoder{}, nil
	}
	return TextDecoder{name: name, enc: enc}, nil
}

// Name returns the canonical label of the decoder's encoding.
func (d TextDecoder) Name() string {
	if d.enc == nil {
		return DefaultEncoding
	}
	return d.name
}

// Decode converts b to a UTF-8 string.
func (d TextDecoder) Decode(b []byte) string {
	if len(b) == 0 {
		return ""
	}
	enc := d.enc
	if enc == nil {
		// Fast path: well-formed UTF-8 needs no transformation.
		if utf8.Valid(b) {
			return string(b)
		}
		enc = unicode.UTF8
	}
	// Decoders carry state, so each call gets its own.
	out, err := enc.NewDecoder().Bytes(b)
	if err != nil {
		return strings.ToValidUTF8(string(b), string(utf8.RuneError))
	}
	return string(out)
}
