package printer

import (
	"bufio"
	"fmt"

	"github.com/joshuapare/stelkit/stel"
)

// printFileText prints the human-readable report. Byte regions are written as
// uppercase hex without separators.
func (p *Printer) printFileText(f *stel.File) error {
	w := bufio.NewWriter(p.writer)
	c := f.Container

	fmt.Fprintf(w, "Data for %s:\n", f.Path)
	if p.opts.ShowDigest {
		fmt.Fprintf(w, "Size: %d bytes\n", f.Size)
		fmt.Fprintf(w, "BLAKE3: %s\n", f.Digest)
	}
	fmt.Fprintf(w, "First metadata section: %X\n", c.HeaderA)
	fmt.Fprintf(w, "Second metadata section: %X\n", c.HeaderB)
	if h := c.Human; h != nil {
		fmt.Fprintf(w, "Human metadata section: %X\n", h.Raw)
		for _, field := range humanFields(h) {
			if field.value != nil {
				fmt.Fprintf(w, "%s: %s\n", field.label, *field.value)
			}
		}
	} else {
		fmt.Fprintln(w, "Failed to parse human metadata.")
	}
	fmt.Fprintln(w, "Leftover:")
	fmt.Fprintf(w, "%X\n\n", c.Leftover)
	return w.Flush()
}

type humanField struct {
	label string
	value *string
}

func humanFields(h *stel.HumanMetadata) []humanField {
	return []humanField{
		{"Name", h.Name},
		{"Description", h.Description},
		{"Field 3A", h.Field3A},
		{"Website", h.WebsiteLink},
	}
}
