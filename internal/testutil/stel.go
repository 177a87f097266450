// Package testutil builds STEL fixtures for tests.
package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// Tag bytes of the human metadata fields.
const (
	TagName        byte = 0x33
	TagDescription byte = 0x37
	TagField3A     byte = 0x3A
	TagWebsiteLink byte = 0x8E
)

var (
	magicA = []byte("Stella BINARY ")
	magicB = []byte{0xB8, 0xA5, 0xA9, 0x6A}

	// DefaultHeaderA is the header region A used when Builder.HeaderA is nil.
	DefaultHeaderA = []byte("ABCDEFGHIJKLMN")
)

// Field encodes one tagged string: tag, 0x00, payload, NUL.
func Field(tag byte, payload string) []byte {
	out := make([]byte, 0, len(payload)+3)
	out = append(out, tag, 0x00)
	out = append(out, payload...)
	return append(out, 0x00)
}

// Builder assembles a STEL buffer.
//
// Example:
//
//	data := testutil.Builder{
//	    HeaderB: []byte{0x01},
//	    Fields:  [][]byte{testutil.Field(testutil.TagName, "Ode")},
//	    Tail:    []byte{0xFF},
//	}.Bytes()
type Builder struct {
	HeaderA []byte
	HeaderB []byte
	Fields  [][]byte
	Tail    []byte
}

// Bytes returns the encoded buffer.
func (b Builder) Bytes() []byte {
	headerA := b.HeaderA
	if headerA == nil {
		headerA = DefaultHeaderA
	}
	var out []byte
	out = append(out, magicA...)
	out = append(out, headerA...)
	out = append(out, magicB...)
	out = append(out, b.HeaderB...)
	for _, f := range b.Fields {
		out = append(out, f...)
	}
	return append(out, b.Tail...)
}

// WriteFile writes data to rel under dir, creating parent directories, and
// returns the full path.
func WriteFile(t *testing.T, dir, rel string, data []byte) string {
	t.Helper()
	path := filepath.Join(dir, rel)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("MkdirAll: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}
