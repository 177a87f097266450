package printer

import (
	"encoding/hex"
	"encoding/json"
	"strings"

	"github.com/joshuapare/stelkit/stel"
)

// jsonFile represents a parsed file in JSON format. Byte regions are
// uppercase hex strings.
type jsonFile struct {
	Path          string     `json:"path"`
	Size          int        `json:"size,omitempty"`
	Digest        string     `json:"blake3,omitempty"`
	HeaderA       string     `json:"header_a"`
	HeaderB       string     `json:"header_b"`
	HumanMetadata *jsonHuman `json:"human_metadata"`
	Leftover      string     `json:"leftover"`
}

// jsonHuman represents the human metadata block. Absent fields are omitted.
type jsonHuman struct {
	Raw         string  `json:"raw"`
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	Field3A     *string `json:"field_3a,omitempty"`
	WebsiteLink *string `json:"website_link,omitempty"`
}

func upperHex(b []byte) string {
	return strings.ToUpper(hex.EncodeToString(b))
}

func newJSONFile(f *stel.File, withDigest bool) jsonFile {
	c := f.Container
	out := jsonFile{
		Path:     f.Path,
		HeaderA:  upperHex(c.HeaderA),
		HeaderB:  upperHex(c.HeaderB),
		Leftover: upperHex(c.Leftover),
	}
	if withDigest {
		out.Size = f.Size
		out.Digest = f.Digest.String()
	}
	if h := c.Human; h != nil {
		out.HumanMetadata = &jsonHuman{
			Raw:         upperHex(h.Raw),
			Name:        h.Name,
			Description: h.Description,
			Field3A:     h.Field3A,
			WebsiteLink: h.WebsiteLink,
		}
	}
	return out
}

// printJSON outputs v as indented JSON.
func (p *Printer) printJSON(v any) error {
	encoder := json.NewEncoder(p.writer)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
