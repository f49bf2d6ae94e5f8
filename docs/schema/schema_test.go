package schema

import (
	"encoding/json"
	"testing"
)

func TestModelVersion(t *testing.T) {
	got, err := ModelVersion()
	if err != nil {
		t.Fatalf("ModelVersion: %v", err)
	}
	if got != "2018-06-27" {
		t.Fatalf("unexpected model version %q", got)
	}
}

func TestModelMetadata(t *testing.T) {
	got, err := ModelMetadata()
	if err != nil {
		t.Fatalf("ModelMetadata: %v", err)
	}
	if got.Status == "" || got.Source == "" {
		t.Fatalf("expected status and source, got %+v", got)
	}

	var doc headerDoc
	if err := json.Unmarshal(textractModelSchema, &doc); err != nil {
		t.Fatalf("unmarshal schema: %v", err)
	}
	if got != doc.Metadata {
		t.Fatalf("metadata mismatch: got %+v want %+v", got, doc.Metadata)
	}
}

func TestRawReturnsCopy(t *testing.T) {
	raw := Raw()
	if len(raw) == 0 {
		t.Fatal("expected embedded schema")
	}
	raw[0] = 'x'
	if textractModelSchema[0] == 'x' {
		t.Fatal("Raw must not expose the embedded buffer")
	}
}
