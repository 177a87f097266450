// Package stel decodes STEL binary containers.
//
// # Overview
//
// A STEL file starts with two signatures around a fixed 14-byte header
// region, continues with a variable header region that runs up to the first
// 0x33 byte, and may then carry a block of tagged, NUL-terminated strings
// (name, description, an unidentified field tagged 0x3A, and a website link).
// Anything after that is kept verbatim as leftover.
//
// Only the two signatures and the fixed header region are mandatory. A
// missing or malformed metadata block never fails a parse; it leaves
// Container.Human nil and its bytes end up in Container.Leftover.
//
// # Parsing
//
// Parse works on an in-memory buffer:
//
//	c, err := stel.Parse(data, stel.DefaultOptions())
//	if errors.Is(err, stel.ErrBadMagic) {
//	    // not a STEL file
//	}
//
// ParseFile maps a file read-only, parses it, and returns a File that also
// carries the file size and a BLAKE3 digest of its contents:
//
//	f, err := stel.ParseFile("level.stel", stel.DefaultOptions())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if f.Container.Human != nil && f.Container.Human.Name != nil {
//	    fmt.Println(*f.Container.Human.Name)
//	}
//
// # Text Encoding
//
// Tagged strings are decoded lossily: invalid bytes become U+FFFD instead of
// failing the parse. Options.Encoding selects the source encoding by WHATWG
// label and defaults to "utf-8".
//
// Related packages: stel/rle models run-length encoded data, stel/scan finds
// STEL files on disk, and stel/printer renders parse results.
package stel
