package drawio

import (
	"encoding/xml"
	"fmt"
	"io"

	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// newDecoder returns a strict XML decoder over r. A leading byte order mark
// switches the input to the matching Unicode decoding; a UTF-8 BOM is dropped.
func newDecoder(r io.Reader) *xml.Decoder {
	dec := xml.NewDecoder(transform.NewReader(r, unicode.BOMOverride(transform.Nop)))
	dec.Strict = true
	dec.CharsetReader = charsetReader
	return dec
}

// charsetReader is called by encoding/xml for any declared encoding other
// than UTF-8.
func charsetReader(label string, input io.Reader) (io.Reader, error) {
	enc, err := htmlindex.Get(label)
	if err != nil {
		return nil, fmt.Errorf("unsupported encoding %q: %w", label, err)
	}

	name, _ := htmlindex.Name(enc)
	switch name {
	case "utf-8", "utf-16le", "utf-16be":
		// Unicode input was already normalized to UTF-8 by the BOM override.
		return input, nil
	}

	return enc.NewDecoder().Reader(input), nil
}
