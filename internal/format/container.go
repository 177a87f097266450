package format

import (
	"bytes"

	"github.com/joshuapare/stelkit/internal/buf"
)

// Options controls container decoding. The zero value decodes tagged strings
// as UTF-8.
type Options struct {
	Decoder TextDecoder
}

// Container is a decoded STEL file. Every region is a copy owned by the
// Container, so it stays valid after the input buffer is released.
type Container struct {
	// HeaderA is the opaque region after magic A. Always HeaderASize bytes.
	HeaderA []byte
	// HeaderB is the opaque region after magic B, up to the first
	// MetadataStart byte or the end of input.
	HeaderB []byte
	// Human is nil when the metadata block did not parse.
	Human *HumanMetadata
	// Leftover holds every byte after the last recognized structure.
	Leftover []byte
}

// ParseContainer decodes a complete STEL buffer.
//
// Only a missing signature or a short header region A fails the parse, with a
// *ParseError wrapping ErrBadMagic or ErrUnexpectedEOF. Past magic B the
// decoder is total: header region B may be empty or run to the end of input,
// the metadata block may be absent, and whatever is left becomes Leftover.
func ParseContainer(b []byte, opts Options) (Container, error) {
	rest, _, err := buf.Tag(b, MagicA)
	if err != nil {
		return Container{}, &ParseError{Offset: MagicAOffset, Section: "magic A", Err: ErrBadMagic}
	}
	rest, headerA, err := buf.Take(rest, HeaderASize)
	if err != nil {
		return Container{}, &ParseError{Offset: HeaderAOffset, Section: "header A", Err: ErrUnexpectedEOF}
	}
	rest, _, err = buf.Tag(rest, MagicB)
	if err != nil {
		return Container{}, &ParseError{Offset: MagicBOffset, Section: "magic B", Err: ErrBadMagic}
	}
	rest, headerB := buf.TakeTillByte(rest, MetadataStart)

	c := Container{
		HeaderA: bytes.Clone(headerA),
		HeaderB: bytes.Clone(headerB),
	}
	if next, human, err := ParseHumanMetadata(rest, opts.Decoder); err == nil {
		human.Raw = bytes.Clone(human.Raw)
		c.Human = &human
		rest = next
	}
	c.Leftover = bytes.Clone(rest)
	return c, nil
}

// MetadataOffset returns the offset of the human metadata block, which is
// where header region B ends.
func (c Container) MetadataOffset() int {
	return HeaderBOffset + len(c.HeaderB)
}

// LeftoverOffset returns the offset of the first leftover byte.
func (c Container) LeftoverOffset() int {
	off := c.MetadataOffset()
	if c.Human != nil {
		off += len(c.Human.Raw)
	}
	return off
}

// Bytes reassembles the input the Container was decoded from.
func (c Container) Bytes() []byte {
	out := make([]byte, 0, c.LeftoverOffset()+len(c.Leftover))
	out = append(out, MagicA...)
	out = append(out, c.HeaderA...)
	out = append(out, MagicB...)
	out = append(out, c.HeaderB...)
	if c.Human != nil {
		out = append(out, c.Human.Raw...)
	}
	return append(out, c.Leftover...)
}
