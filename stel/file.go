package stel

import (
	"encoding/hex"
	"fmt"

	"github.com/zeebo/blake3"

	"github.com/joshuapare/stelkit/internal/format"
	"github.com/joshuapare/stelkit/internal/mmfile"
)

// Digest is a BLAKE3-256 digest of a file's contents.
type Digest [32]byte

// Sum returns the BLAKE3-256 digest of data.
func Sum(data []byte) Digest {
	return blake3.Sum256(data)
}

// String returns the lowercase hex encoding of d.
func (d Digest) String() string {
	return hex.EncodeToString(d[:])
}

// File is the result of parsing one STEL file from disk.
type File struct {
	Path      string
	Size      int
	Digest    Digest
	Container *Container
}

// ParseFile maps path read-only, decodes it, and releases the mapping before
// returning.
func ParseFile(path string, opts Options) (*File, error) {
	fopts, err := opts.formatOptions()
	if err != nil {
		return nil, err
	}
	data, unmap, err := mmfile.Map(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer func() { _ = unmap() }()

	c, err := format.ParseContainer(data, fopts)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return &File{
		Path:      path,
		Size:      len(data),
		Digest:    Sum(data),
		Container: &c,
	}, nil
}
