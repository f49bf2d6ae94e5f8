package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func sampleDoc() schemaDoc {
	return schemaDoc{
		Version: "2018-06-27",
		Enums: []enumSpec{
			{Name: "BlockType", Description: "classifies a block.", Values: []string{"KEY_VALUE_SET", "LINE"}},
		},
		Shapes: []shapeSpec{
			{Name: "Point", Role: roleValue, Description: "is a coordinate.", Members: []memberSpec{
				{Name: "X", Type: "float"},
				{Name: "Y", Type: "float"},
			}},
			{Name: "Block", Role: roleValue, Description: "is a detected item.", Members: []memberSpec{
				{Name: "BlockType", Type: "BlockType"},
				{Name: "Text", Type: "string", Constraint: "at most 1000 characters"},
				{Name: "Polygon", Type: "list<Point>"},
				{Name: "Anchor", Type: "Point"},
				{Name: "Bytes", Type: "blob"},
			}},
		},
		Errors: []errorSpec{
			{Name: "ThrottlingException", Fault: "server", Description: "is returned when throttled."},
			{Name: "BadDocumentException", Fault: "client", Description: "is returned for unreadable input."},
		},
	}
}

func TestGenerateCodeEmitsDeclarations(t *testing.T) {
	code, err := generateCode(sampleDoc(), "textract")
	if err != nil {
		t.Fatalf("generateCode: %v", err)
	}
	text := string(code)

	for _, want := range []string{
		header,
		"package textract",
		`const ModelVersion = "2018-06-27"`,
		"type BlockType string",
		`BlockTypeKeyValueSet BlockType = "KEY_VALUE_SET"`,
		"func ParseBlockType(s string) (BlockType, error)",
		"func ParseBlockTypeNullable(s *string) (BlockType, error) { return blockTypeEnum.ParseNullable(s) }",
		"func (v *BlockType) UnmarshalJSON(data []byte) error { return blockTypeEnum.Decode(data, v) }",
		"type Block struct",
		"Polygon   []Point",
		"func (v *Block) GetText() string",
		"// Constraint: at most 1000 characters",
		"func (v *Block) WithPolygon(values ...Point) *Block",
		"func (v *Block) GetAnchor() *Point",
		"func (v *Block) WithBytes(value []byte) *Block",
		"func (v *Point) Hash() uint64",
		"type ThrottlingException struct",
		"func (e *ThrottlingException) ErrorFault() smithy.ErrorFault { return smithy.FaultServer }",
		"func (e *BadDocumentException) ErrorFault() smithy.ErrorFault { return smithy.FaultClient }",
		"func newServiceError(code string, message *string) error",
		`"github.com/aws/smithy-go"`,
	} {
		if !strings.Contains(text, want) {
			t.Fatalf("generated code missing %q:\n%s", want, text)
		}
	}
}

func TestGenerateCodeWithoutErrorsSkipsSmithyImport(t *testing.T) {
	doc := sampleDoc()
	doc.Errors = nil

	code, err := generateCode(doc, "model")
	if err != nil {
		t.Fatalf("generateCode: %v", err)
	}
	text := string(code)
	if strings.Contains(text, "smithy") || strings.Contains(text, "newServiceError") {
		t.Fatalf("unexpected error plumbing:\n%s", text)
	}
	if !strings.Contains(text, "package model") {
		t.Fatalf("expected package clause:\n%s", text)
	}
}

func TestBuildIndexRejectsInvalidSchemas(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*schemaDoc)
		want   string
	}{
		{"empty enum name", func(d *schemaDoc) { d.Enums[0].Name = " " }, "enum with empty name"},
		{"duplicate name", func(d *schemaDoc) { d.Shapes[0].Name = "BlockType" }, `duplicate declaration "BlockType"`},
		{"enum without values", func(d *schemaDoc) { d.Enums[0].Values = nil }, "enum BlockType declares no values"},
		{"empty enum value", func(d *schemaDoc) { d.Enums[0].Values = []string{""} }, "enum BlockType declares an empty value"},
		{"repeated enum value", func(d *schemaDoc) { d.Enums[0].Values = []string{"LINE", "LINE"} }, `enum BlockType declares "LINE" twice`},
		{"unknown role", func(d *schemaDoc) { d.Shapes[0].Role = "entity" }, `shape Point has unknown role "entity"`},
		{"unknown fault", func(d *schemaDoc) { d.Errors[0].Fault = "network" }, `error ThrottlingException has unknown fault "network"`},
		{"repeated member", func(d *schemaDoc) {
			d.Shapes[0].Members = append(d.Shapes[0].Members, memberSpec{Name: "X", Type: "float"})
		}, "shape Point declares member X twice"},
		{"unknown member type", func(d *schemaDoc) { d.Shapes[1].Members[0].Type = "Geometry" }, `shape Block member BlockType: unknown type "Geometry"`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			doc := sampleDoc()
			tc.mutate(&doc)
			_, err := buildIndex(doc)
			if err == nil {
				t.Fatalf("expected error containing %q", tc.want)
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("error %q does not contain %q", err, tc.want)
			}
			if _, genErr := generateCode(doc, "textract"); genErr == nil {
				t.Fatalf("generateCode accepted invalid schema")
			}
		})
	}
}

func TestResolveTypes(t *testing.T) {
	idx, err := buildIndex(sampleDoc())
	if err != nil {
		t.Fatalf("buildIndex: %v", err)
	}

	cases := map[string]string{
		"string":          "*string",
		"integer":         "*int32",
		"float":           "*float32",
		"blob":            "[]byte",
		"BlockType":       "*BlockType",
		"Point":           "*Point",
		"list<string>":    "[]string",
		"list<BlockType>": "[]BlockType",
		"list<Point>":     "[]Point",
	}
	for expr, want := range cases {
		ft, err := idx.resolve(expr)
		if err != nil {
			t.Fatalf("resolve %q: %v", expr, err)
		}
		if got := ft.goType(); got != want {
			t.Fatalf("resolve %q = %s, want %s", expr, got, want)
		}
	}

	failures := map[string]string{
		"list<Point":        `malformed list type "list<Point"`,
		"list<list<Point>>": `unsupported list element "list<Point>"`,
		"list<blob>":        `unsupported list element "blob"`,
		"Geometry":          `unknown type "Geometry"`,
		"":                  "missing type",
	}
	for expr, want := range failures {
		if _, err := idx.resolve(expr); err == nil || err.Error() != want {
			t.Fatalf("resolve %q error = %v, want %q", expr, err, want)
		}
	}
}

func TestConstName(t *testing.T) {
	cases := []struct {
		typ, value, want string
	}{
		{"BlockType", "KEY_VALUE_SET", "BlockTypeKeyValueSet"},
		{"BlockType", "LINE", "BlockTypeLine"},
		{"ContentClassifier", "FreeOfPersonallyIdentifiableInformation", "ContentClassifierFreeOfPersonallyIdentifiableInformation"},
		{"TextType", "PRINTED", "TextTypePrinted"},
		{"ValueType", "DATE", "ValueTypeDate"},
		{"Kind", "a-b c.d", "KindABCD"},
	}
	for _, tc := range cases {
		if got := constName(tc.typ, tc.value); got != tc.want {
			t.Fatalf("constName(%q, %q) = %q, want %q", tc.typ, tc.value, got, tc.want)
		}
	}
}

func TestGenerateFromCommittedSchema(t *testing.T) {
	doc, err := loadSchema(filepath.Join("..", "..", "..", "docs", "schema", "textract-model.json"))
	if err != nil {
		t.Fatalf("load schema: %v", err)
	}
	code, err := generateCode(doc, "textract")
	if err != nil {
		t.Fatalf("generate code: %v", err)
	}

	text := string(code)
	for _, enum := range doc.Enums {
		if !strings.Contains(text, "type "+enum.Name+" string") {
			t.Errorf("enum %s not generated", enum.Name)
		}
	}
	for _, shape := range doc.Shapes {
		if !strings.Contains(text, "type "+shape.Name+" struct") {
			t.Errorf("shape %s not generated", shape.Name)
		}
	}
	for _, e := range doc.Errors {
		if !strings.Contains(text, "return &"+e.Name+"{Message: message}") {
			t.Errorf("error %s not mapped", e.Name)
		}
	}
}

func TestGenerateMatchesCommitted(t *testing.T) {
	root := filepath.Join("..", "..", "..")
	doc, err := loadSchema(filepath.Join(root, "docs", "schema", "textract-model.json"))
	if err != nil {
		t.Fatalf("load schema: %v", err)
	}
	generated, err := generateCode(doc, "textract")
	if err != nil {
		t.Fatalf("generate code: %v", err)
	}

	//nolint:gosec // path is repo-local and deterministic.
	committed, err := os.ReadFile(filepath.Join(root, "pkg", "textract", "model_gen.go"))
	if err != nil {
		t.Fatalf("read generated file: %v", err)
	}
	if !bytes.Equal(bytes.TrimSpace(generated), bytes.TrimSpace(committed)) {
		t.Fatalf("pkg/textract/model_gen.go is out of date; run `go generate ./pkg/textract`")
	}
}

func TestLoadSchemaErrors(t *testing.T) {
	dir := t.TempDir()
	if _, err := loadSchema(filepath.Join(dir, "missing.json")); err == nil || !strings.Contains(err.Error(), "read schema") {
		t.Fatalf("expected read error, got %v", err)
	}

	bad := filepath.Join(dir, "bad.json")
	if err := os.WriteFile(bad, []byte("{"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := loadSchema(bad); err == nil || !strings.Contains(err.Error(), "parse schema") {
		t.Fatalf("expected parse error, got %v", err)
	}
}

func TestWriteFile(t *testing.T) {
	if err := writeFile("  ", []byte("x")); err == nil {
		t.Fatalf("expected error for empty path")
	}

	path := filepath.Join(t.TempDir(), "nested", "model_gen.go")
	if err := writeFile(path, []byte("package textract\n")); err != nil {
		t.Fatalf("writeFile: %v", err)
	}
	//nolint:gosec // test reads its own temp file.
	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if string(got) != "package textract\n" {
		t.Fatalf("unexpected content %q", got)
	}
}

func TestExitErr(t *testing.T) {
	prev := exitFunc
	t.Cleanup(func() { exitFunc = prev })

	code := -1
	exitFunc = func(c int) { code = c }

	exitErr(nil)
	if code != -1 {
		t.Fatalf("exitErr(nil) exited with %d", code)
	}
	exitErr(os.ErrNotExist)
	if code != 1 {
		t.Fatalf("exit code = %d, want 1", code)
	}
}
