package format

import "fmt"

// HumanMetadata is the tagged-string block that follows header region B.
// A nil field means its tag was not found, in order, at the position where
// it was expected. A present field may hold an empty string.
type HumanMetadata struct {
	// Raw is every byte the block consumed, tags and terminators included.
	Raw         []byte
	Name        *string
	Description *string
	Field3A     *string
	WebsiteLink *string
}

// optionalField binds one optional tag to the HumanMetadata slot it fills.
type optionalField struct {
	tag  []byte
	slot func(*HumanMetadata) **string
}

// optionalFields are tried in this order after the name. A field whose tag
// does not match at its turn is skipped for good.
var optionalFields = []optionalField{
	{TagDescription, func(h *HumanMetadata) **string { return &h.Description }},
	{TagField3A, func(h *HumanMetadata) **string { return &h.Field3A }},
	{TagWebsiteLink, func(h *HumanMetadata) **string { return &h.WebsiteLink }},
}

// ParseHumanMetadata decodes the human metadata block at the front of b.
//
// The name field is required; when it cannot be read the whole block fails
// and b is returned unchanged. Each optional field is then attempted against
// the current position. A field that does not match is left nil and the next
// field is tried from the same position.
//
// The returned metadata's Raw aliases b.
func ParseHumanMetadata(b []byte, dec TextDecoder) (rest []byte, h HumanMetadata, err error) {
	rest, name, err := ReadTaggedString(b, TagName, dec)
	if err != nil {
		return b, HumanMetadata{}, fmt.Errorf("human metadata name: %w", err)
	}
	h.Name = &name
	for _, f := range optionalFields {
		var value *string
		rest, value = attempt(rest, f.tag, dec)
		if value != nil {
			*f.slot(&h) = value
		}
	}
	h.Raw = b[:len(b)-len(rest)]
	return rest, h, nil
}

// attempt reads one optional tagged string. On failure it hands back b
// untouched and a nil value, so the caller's cursor never moves.
func attempt(b, tag []byte, dec TextDecoder) ([]byte, *string) {
	rest, text, err := ReadTaggedString(b, tag, dec)
	if err != nil {
		return b, nil
	}
	return rest, &text
}
