// Package wire encodes model objects and ledger records as JSON. Field names
// follow the Textract wire names carried in the struct tags, and decoding
// runs every enum's strict UnmarshalJSON.
package wire

import (
	"fmt"
	"io"

	jsoniter "github.com/json-iterator/go"
)

var codec = jsoniter.ConfigCompatibleWithStandardLibrary

// Marshal encodes v compactly.
func Marshal(v any) ([]byte, error) {
	data, err := codec.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("wire: encode %T: %w", v, err)
	}
	return data, nil
}

// Unmarshal decodes data into v.
func Unmarshal(data []byte, v any) error {
	if err := codec.Unmarshal(data, v); err != nil {
		return fmt.Errorf("wire: decode %T: %w", v, err)
	}
	return nil
}

// Write encodes v to w as indented JSON followed by a newline.
func Write(w io.Writer, v any) error {
	data, err := codec.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("wire: encode %T: %w", v, err)
	}
	data = append(data, '\n')
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("wire: write: %w", err)
	}
	return nil
}

// Read decodes a single JSON document from r into v.
func Read(r io.Reader, v any) error {
	if err := codec.NewDecoder(r).Decode(v); err != nil {
		return fmt.Errorf("wire: decode %T: %w", v, err)
	}
	return nil
}
