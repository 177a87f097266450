package stel

import (
	"github.com/joshuapare/stelkit/internal/format"
)

// Container is a decoded STEL file. HeaderA is always HeaderASize bytes,
// Human is nil when the metadata block did not parse, and Bytes reassembles
// the original input.
type Container = format.Container

// HumanMetadata is the optional tagged-string block of a STEL file.
type HumanMetadata = format.HumanMetadata

// ParseError reports a fatal decode failure with its byte offset.
type ParseError = format.ParseError

// Errors returned (wrapped) by Parse and ParseFile.
var (
	ErrBadMagic      = format.ErrBadMagic
	ErrUnexpectedEOF = format.ErrUnexpectedEOF
	ErrTagMismatch   = format.ErrTagMismatch
)

// HeaderASize is the fixed length of Container.HeaderA.
const HeaderASize = format.HeaderASize

// DefaultEncoding is the text encoding used when Options.Encoding is empty.
const DefaultEncoding = format.DefaultEncoding

// Options controls parsing.
type Options struct {
	// Encoding is the WHATWG label of the encoding used for tagged strings,
	// for example "utf-8" or "windows-1252".
	// Default: "utf-8"
	Encoding string
}

// DefaultOptions returns the default parse options.
func DefaultOptions() Options {
	return Options{Encoding: DefaultEncoding}
}

// Validate reports an error when Options.Encoding is not a known label.
func (o Options) Validate() error {
	_, err := o.formatOptions()
	return err
}

func (o Options) formatOptions() (format.Options, error) {
	dec, err := format.NewTextDecoder(o.Encoding)
	if err != nil {
		return format.Options{}, err
	}
	return format.Options{Decoder: dec}, nil
}

// Parse decodes a complete STEL buffer. The returned Container does not
// reference b.
//
// Errors wrap ErrBadMagic when a signature is missing and ErrUnexpectedEOF
// when the buffer ends inside the fixed header; both come as *ParseError.
// An unknown Options.Encoding is reported before any decoding.
func Parse(b []byte, opts Options) (*Container, error) {
	fopts, err := opts.formatOptions()
	if err != nil {
		return nil, err
	}
	c, err := format.ParseContainer(b, fopts)
	if err != nil {
		return nil, err
	}
	return &c, nil
}
