// Package codec converts between the library's in-memory types and JSON:
// payloads in, validation reports out. JSON handling is backed by
// goccy/go-json.
package codec

import (
	"bytes"
	"fmt"
	"io"

	json "github.com/goccy/go-json"
)

// DecodePayload decodes a single JSON object into the map[string]any shape
// RuleSet.Validate consumes. Numbers decode as json.Number so integer
// payloads survive without float drift.
func DecodePayload(data []byte) (map[string]any, error) {
	return DecodePayloadReader(bytes.NewReader(data))
}

// DecodePayloadReader is DecodePayload over an io.Reader.
func DecodePayloadReader(r io.Reader) (map[string]any, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()
	var payload map[string]any
	if err := dec.Decode(&payload); err != nil {
		return nil, fmt.Errorf("codec: decode payload: %w", err)
	}
	return payload, nil
}
