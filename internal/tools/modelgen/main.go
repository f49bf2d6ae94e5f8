// Program modelgen reads docs/schema/textract-model.json and emits the Go model.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

var exitFunc = os.Exit

type enumSpec struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Values      []string `json:"values"`
}

type memberSpec struct {
	Name       string `json:"name"`
	Type       string `json:"type"`
	Constraint string `json:"constraint"`
}

type shapeSpec struct {
	Name        string       `json:"name"`
	Role        string       `json:"role"`
	Description string       `json:"description"`
	Members     []memberSpec `json:"members"`
}

type errorSpec struct {
	Name        string `json:"name"`
	Fault       string `json:"fault"`
	Description string `json:"description"`
}

type metadataSpec struct {
	Source string `json:"source"`
	Status string `json:"status"`
}

type schemaDoc struct {
	Version  string       `json:"version"`
	Metadata metadataSpec `json:"metadata"`
	Enums    []enumSpec   `json:"enums"`
	Shapes   []shapeSpec  `json:"shapes"`
	Errors   []errorSpec  `json:"errors"`
}

func main() {
	schemaPath := flag.String("schema", "docs/schema/textract-model.json", "path to the textract model schema")
	outPath := flag.String("out", "pkg/textract/model_gen.go", "output file for generated Go code")
	pkgName := flag.String("package", "textract", "package name of the generated file")
	flag.Parse()

	doc, err := loadSchema(*schemaPath)
	if err != nil {
		exitErr(err)
	}

	code, err := generateCode(doc, *pkgName)
	if err != nil {
		exitErr(err)
	}

	if err := writeFile(*outPath, code); err != nil {
		exitErr(err)
	}

	fmt.Printf("generated %s from %s\n", *outPath, *schemaPath)
}

func loadSchema(path string) (schemaDoc, error) {
	//nolint:gosec // generator intentionally reads caller-provided schema path.
	raw, err := os.ReadFile(path)
	if err != nil {
		return schemaDoc{}, fmt.Errorf("read schema: %w", err)
	}

	var doc schemaDoc
	if err := json.Unmarshal(raw, &doc); err != nil {
		return schemaDoc{}, fmt.Errorf("parse schema: %w", err)
	}

	return doc, nil
}

func writeFile(path string, data []byte) error {
	if strings.TrimSpace(path) == "" {
		return fmt.Errorf("output path must not be empty")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}

func exitErr(err error) {
	if err == nil {
		return
	}
	//nolint:forbidigo // generator writes to stderr on failure.
	fmt.Fprintln(os.Stderr, err)
	exitFunc(1)
}
