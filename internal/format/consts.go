// Package format houses the low-level decoders for the STEL binary container.
// The goal is to keep the parsing focused, allocation-free until a result is
// committed, and independent from the public API so the stel package can
// orchestrate file loading and reporting around it.
//
// A STEL file is laid out as follows:
//
//	Offset    Size      Field
//	0x00      14        "Stella BINARY " (magic A)
//	0x0E      14        header region A, opaque
//	0x1C      4         B8 A5 A9 6A (magic B)
//	0x20      variable  header region B, opaque, runs up to the next 0x33
//	variable  variable  human metadata block (tagged NUL-terminated strings)
//	variable  variable  leftover, opaque
//
// The human metadata block is a fixed sequence of tagged fields:
//
//	33 00 <name> 00
//	37 00 <description> 00   optional
//	3A 00 <field 3A> 00      optional
//	8E 00 <website link> 00  optional
package format

var (
	// MagicA is the ASCII signature at the start of every STEL file.
	MagicA = []byte("Stella BINARY ")

	// MagicB is the binary signature that follows header region A.
	MagicB = []byte{0xB8, 0xA5, 0xA9, 0x6A}

	// TagName introduces the name field. It is the only required field of
	// the human metadata block.
	TagName = []byte{0x33, 0x00}

	// TagDescription introduces the optional description field.
	TagDescription = []byte{0x37, 0x00}

	// TagField3A introduces an optional field whose meaning is unknown.
	TagField3A = []byte{0x3A, 0x00}

	// TagWebsiteLink introduces the optional website link field.
	TagWebsiteLink = []byte{0x8E, 0x00}

	terminator = []byte{StringTerminator}
)

const (
	// HeaderASize is the fixed size of header region A.
	HeaderASize = 14

	// MetadataStart is the byte that ends header region B. It doubles as
	// the first byte of TagName.
	MetadataStart byte = 0x33

	// StringTerminator ends every tagged string payload.
	StringTerminator byte = 0x00

	// Field offsets within the fixed-layout prefix.
	MagicAOffset  = 0x00
	HeaderAOffset = MagicAOffset + 14
	MagicBOffset  = HeaderAOffset + HeaderASize
	HeaderBOffset = MagicBOffset + 4
)
