package drawio

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/klauspost/compress/flate"
)

// maxInflatedBytes caps the size of a decompressed diagram payload.
const maxInflatedBytes = 32 << 20

var errPayloadTooLarge = errors.New("compressed diagram exceeds size limit")

// inflateDiagram decodes the compressed form draw.io stores inside
// <diagram> elements: base64 of raw DEFLATE of the URI-encoded model XML.
func inflateDiagram(payload string) ([]byte, error) {
	raw, err := base64.StdEncoding.DecodeString(strings.Join(strings.Fields(payload), ""))
	if err != nil {
		return nil, fmt.Errorf("base64: %w", err)
	}

	fr := flate.NewReader(bytes.NewReader(raw))
	defer fr.Close()

	data, err := io.ReadAll(io.LimitReader(fr, maxInflatedBytes+1))
	if err != nil {
		return nil, fmt.Errorf("deflate: %w", err)
	}
	if len(data) > maxInflatedBytes {
		return nil, errPayloadTooLarge
	}

	xmlText, err := url.PathUnescape(string(data))
	if err != nil {
		return nil, fmt.Errorf("uri decode: %w", err)
	}

	return []byte(xmlText), nil
}
