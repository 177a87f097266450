// Package printer renders parsed STEL files as text, JSON or CBOR.
package printer

import (
	"fmt"
	"io"
	"strings"

	"github.com/joshuapare/stelkit/stel"
)

// Format specifies the output format for printing.
type Format string

const (
	// FormatText outputs the human-readable report.
	FormatText Format = "text"

	// FormatJSON outputs one indented JSON object per file.
	FormatJSON Format = "json"

	// FormatCBOR outputs one deterministic CBOR item per file.
	FormatCBOR Format = "cbor"
)

// ParseFormat parses a format name.
func ParseFormat(name string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(name))); f {
	case FormatText, FormatJSON, FormatCBOR:
		return f, nil
	case "":
		return FormatText, nil
	default:
		return "", fmt.Errorf("unknown output format: %q", name)
	}
}

func (f Format) String() string {
	return string(f)
}

// Options controls printing behavior.
type Options struct {
	// Format specifies output format (text, json, cbor).
	// Default: FormatText
	Format Format

	// ShowDigest includes the file size and BLAKE3 digest.
	// Default: false
	ShowDigest bool
}

// DefaultOptions returns sensible defaults for printing.
func DefaultOptions() Options {
	return Options{
		Format:     FormatText,
		ShowDigest: false,
	}
}

// Printer writes one report per file to a writer.
type Printer struct {
	opts   Options
	writer io.Writer
}

// New creates a new Printer.
//
// Example:
//
//	f, _ := stel.ParseFile("level.stel", stel.DefaultOptions())
//	p := printer.New(os.Stdout, printer.DefaultOptions())
//	p.PrintFile(f)
func New(w io.Writer, opts Options) *Printer {
	if opts.Format == "" {
		opts.Format = FormatText
	}
	return &Printer{
		writer: w,
		opts:   opts,
	}
}

// PrintFile writes the report for a successfully parsed file.
func (p *Printer) PrintFile(f *stel.File) error {
	if f == nil || f.Container == nil {
		return fmt.Errorf("printer: nil file")
	}
	switch p.opts.Format {
	case FormatText:
		return p.printFileText(f)
	case FormatJSON:
		return p.printJSON(newJSONFile(f, p.opts.ShowDigest))
	case FormatCBOR:
		return p.printCBOR(newCBORFile(f, p.opts.ShowDigest))
	default:
		return fmt.Errorf("printer: unsupported format %q", p.opts.Format)
	}
}

// PrintFailure writes the report for a file that could not be parsed.
func (p *Printer) PrintFailure(path string, err error) error {
	switch p.opts.Format {
	case FormatText:
		_, werr := fmt.Fprintf(p.writer, "Failed to parse %s: %v\n\n", path, err)
		return werr
	case FormatJSON:
		return p.printJSON(failure{Path: path, Error: err.Error()})
	case FormatCBOR:
		return p.printCBOR(failure{Path: path, Error: err.Error()})
	default:
		return fmt.Errorf("printer: unsupported format %q", p.opts.Format)
	}
}

// failure is the json/cbor record for an unparsable file.
type failure struct {
	Path  string `json:"path" cbor:"path"`
	Error string `json:"error" cbor:"error"`
}
