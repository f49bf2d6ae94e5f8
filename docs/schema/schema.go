// Package schema exposes the embedded Textract model schema for runtime use.
package schema

import (
	_ "embed"
	"encoding/json"
	"sync"
)

// Metadata captures the high-level metadata block from the canonical
// textract-model JSON.
type Metadata struct {
	Source string `json:"source"`
	Status string `json:"status"`
}

type headerDoc struct {
	Version  string   `json:"version"`
	Metadata Metadata `json:"metadata"`
}

// Canonical textract-model JSON content. The generator in
// internal/tools/modelgen reads the same file.
//
//go:embed textract-model.json
var textractModelSchema []byte

var (
	headerOnce sync.Once
	header     headerDoc
	headerErr  error
)

func loadHeader() (headerDoc, error) {
	headerOnce.Do(func() {
		headerErr = json.Unmarshal(textractModelSchema, &header)
	})
	return header, headerErr
}

// ModelVersion returns the Textract API version the generated model targets.
func ModelVersion() (string, error) {
	doc, err := loadHeader()
	if err != nil {
		return "", err
	}
	return doc.Version, nil
}

// ModelMetadata returns the schema metadata (status, source) declared in
// the canonical textract-model JSON.
func ModelMetadata() (Metadata, error) {
	doc, err := loadHeader()
	if err != nil {
		return Metadata{}, err
	}
	return doc.Metadata, nil
}

// Raw returns a copy of the embedded schema document.
func Raw() []byte {
	out := make([]byte, len(textractModelSchema))
	copy(out, textractModelSchema)
	return out
}
