// Package rle models run-length encoded byte data.
//
// CompressedData is an ordered list of runs. Each run is a byte sequence
// and a repeat count; decompression concatenates every run repeated its
// count, in order. Runs are never merged or reordered.
//
// Compress is a greedy encoder that emits one single-byte run per maximal
// stretch of a repeated byte value. It is one valid encoding among many:
// Decompress accepts any run list, including multi-byte runs and runs that
// a different encoder would have merged.
package rle

import (
	"bytes"

	"github.com/joshuapare/stelkit/internal/buf"
)

// CompressedRun is Run repeated Copies times.
type CompressedRun struct {
	Copies int
	Run    []byte
}

// CompressedData is an ordered sequence of runs.
type CompressedData []CompressedRun

// New returns CompressedData holding runs in the given order.
func New(runs ...CompressedRun) CompressedData {
	return CompressedData(runs)
}

// Len returns the decompressed length. ok is false when the length does not
// fit in an int.
func (d CompressedData) Len() (n int, ok bool) {
	for _, r := range d {
		if r.Copies <= 0 {
			continue
		}
		size, ok := buf.MulOverflowSafe(r.Copies, len(r.Run))
		if !ok {
			return 0, false
		}
		if n, ok = buf.AddOverflowSafe(n, size); !ok {
			return 0, false
		}
	}
	return n, true
}

// Decompress expands every run in order. A run with Copies <= 0 or an empty
// Run contributes nothing.
func (d CompressedData) Decompress() []byte {
	var out []byte
	if n, ok := d.Len(); ok {
		out = make([]byte, 0, n)
	}
	for _, r := range d {
		if r.Copies <= 0 || len(r.Run) == 0 {
			continue
		}
		if r.Copies == 1 {
			out = append(out, r.Run...)
			continue
		}
		out = append(out, bytes.Repeat(r.Run, r.Copies)...)
	}
	return out
}

// Compress encodes b as one single-byte run per maximal stretch of equal
// bytes. Compress(b).Decompress() reproduces b.
func Compress(b []byte) CompressedData {
	var d CompressedData
	for len(b) > 0 {
		v := b[0]
		n := 1
		for n < len(b) && b[n] == v {
			n++
		}
		d = append(d, CompressedRun{Copies: n, Run: []byte{v}})
		b = b[n:]
	}
	return d
}
