package printer

import (
	"github.com/fxamacker/cbor/v2"

	"github.com/joshuapare/stelkit/stel"
)

// encMode encodes with Core Deterministic Encoding (RFC 8949 §4.2), so the
// same file always produces identical bytes.
var encMode cbor.EncMode

func init() {
	var err error
	encMode, err = cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic("printer: CBOR encoder initialization failed: " + err.Error())
	}
}

// cborFile represents a parsed file in CBOR format. Byte regions are CBOR
// byte strings.
type cborFile struct {
	Path          string     `cbor:"path"`
	Size          int        `cbor:"size,omitempty"`
	Digest        []byte     `cbor:"blake3,omitempty"`
	HeaderA       []byte     `cbor:"header_a"`
	HeaderB       []byte     `cbor:"header_b"`
	HumanMetadata *cborHuman `cbor:"human_metadata"`
	Leftover      []byte     `cbor:"leftover"`
}

type cborHuman struct {
	Raw         []byte  `cbor:"raw"`
	Name        *string `cbor:"name,omitempty"`
	Description *string `cbor:"description,omitempty"`
	Field3A     *string `cbor:"field_3a,omitempty"`
	WebsiteLink *string `cbor:"website_link,omitempty"`
}

func newCBORFile(f *stel.File, withDigest bool) cborFile {
	c := f.Container
	out := cborFile{
		Path:     f.Path,
		HeaderA:  c.HeaderA,
		HeaderB:  c.HeaderB,
		Leftover: c.Leftover,
	}
	if withDigest {
		out.Size = f.Size
		out.Digest = f.Digest[:]
	}
	if h := c.Human; h != nil {
		out.HumanMetadata = &cborHuman{
			Raw:         h.Raw,
			Name:        h.Name,
			Description: h.Description,
			Field3A:     h.Field3A,
			WebsiteLink: h.WebsiteLink,
		}
	}
	return out
}

// printCBOR outputs v as one CBOR data item.
func (p *Printer) printCBOR(v any) error {
	return encMode.NewEncoder(p.writer).Encode(v)
}
