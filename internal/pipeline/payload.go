package pipeline

import (
	"bytes"
	"compress/zlib"
	"encoding/json"
	"io"

	"github.com/rotisserie/eris"
)

// DecodePayload parses a stored execution payload blob. The engine writes
// either raw UTF-8 JSON or a zlib-compressed stream of it; decompression is
// attempted first and the raw bytes used as a fallback.
func DecodePayload(blob []byte) (any, error) {
	text := blob
	if r, err := zlib.NewReader(bytes.NewReader(blob)); err == nil {
		if inflated, err := io.ReadAll(r); err == nil {
			text = inflated
		}
		r.Close()
	}

	var v any
	if err := json.Unmarshal(text, &v); err != nil {
		return nil, eris.Wrap(err, "payload: parse")
	}
	return v, nil
}
