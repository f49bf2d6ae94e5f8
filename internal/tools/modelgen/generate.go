package main

import (
	"fmt"
	"go/format"
	"strings"
)

const header = "// Code generated by internal/tools/modelgen. DO NOT EDIT.\n\n"

func generateCode(doc schemaDoc, pkg string) ([]byte, error) {
	idx, err := buildIndex(doc)
	if err != nil {
		return nil, err
	}

	var body strings.Builder
	for _, enum := range doc.Enums {
		writeEnum(&body, enum)
	}
	for _, shape := range doc.Shapes {
		if err := writeShape(&body, shape, idx); err != nil {
			return nil, err
		}
	}
	writeErrors(&body, doc.Errors)

	var file strings.Builder
	file.WriteString(header)
	fmt.Fprintf(&file, "package %s\n\n", pkg)
	file.WriteString("import (\n")
	if len(doc.Errors) > 0 {
		file.WriteString("\t\"fmt\"\n\n\t\"github.com/aws/smithy-go\"\n\n")
	}
	file.WriteString("\t\"textractkit/pkg/model\"\n)\n\n")
	fmt.Fprintf(&file, "// ModelVersion is the Textract API version this file was generated from.\nconst ModelVersion = %q\n\n", doc.Version)
	file.WriteString(body.String())

	formatted, err := format.Source([]byte(file.String()))
	if err != nil {
		return nil, fmt.Errorf("format generated code: %w", err)
	}
	return formatted, nil
}

func writeEnum(body *strings.Builder, enum enumSpec) {
	name := enum.Name
	table := lowerFirst(name) + "Enum"

	fmt.Fprintf(body, "// %s %s\n", name, enum.Description)
	fmt.Fprintf(body, "type %s string\n\n", name)
	fmt.Fprintf(body, "// %s values.\n", name)
	body.WriteString("const (\n")
	for _, v := range enum.Values {
		fmt.Fprintf(body, "\t%s %s = %q\n", constName(name, v), name, v)
	}
	body.WriteString(")\n\n")

	fmt.Fprintf(body, "var %s = model.NewEnum(%q,\n", table, name)
	for _, v := range enum.Values {
		fmt.Fprintf(body, "\t%s,\n", constName(name, v))
	}
	body.WriteString(")\n\n")

	fmt.Fprintf(body, "// Values returns every declared %s in declaration order.\n", name)
	fmt.Fprintf(body, "func (%s) Values() []%s { return %s.Values() }\n\n", name, name, table)
	body.WriteString("// String returns the wire string of v.\n")
	fmt.Fprintf(body, "func (v %s) String() string { return string(v) }\n\n", name)
	fmt.Fprintf(body, "// Parse%s returns the %s whose wire string is exactly s.\n", name, name)
	fmt.Fprintf(body, "func Parse%s(s string) (%s, error) { return %s.Parse(s) }\n\n", name, name, table)
	fmt.Fprintf(body, "// Parse%sNullable is Parse%s for optional wire values; nil is rejected.\n", name, name)
	fmt.Fprintf(body, "func Parse%sNullable(s *string) (%s, error) { return %s.ParseNullable(s) }\n\n", name, name, table)
	body.WriteString("// UnmarshalJSON rejects null, empty, and undeclared wire strings.\n")
	fmt.Fprintf(body, "func (v *%s) UnmarshalJSON(data []byte) error { return %s.Decode(data, v) }\n\n", name, table)
}

func writeShape(body *strings.Builder, shape shapeSpec, idx schemaIndex) error {
	name := shape.Name
	fmt.Fprintf(body, "// %s %s\n", name, shape.Description)
	fmt.Fprintf(body, "type %s struct {\n", name)
	types := make([]fieldType, len(shape.Members))
	for i, member := range shape.Members {
		ft, err := idx.resolve(member.Type)
		if err != nil {
			return fmt.Errorf("shape %s member %s: %w", name, member.Name, err)
		}
		types[i] = ft
		fmt.Fprintf(body, "\t%s %s `json:\"%s,omitempty\"`\n", member.Name, ft.goType(), member.Name)
	}
	body.WriteString("}\n\n")

	for i, member := range shape.Members {
		writeAccessors(body, name, member, types[i])
	}

	fmt.Fprintf(body, "// String returns the debug representation of the %s.\n", name)
	fmt.Fprintf(body, "func (v *%s) String() string { return model.Format(v) }\n\n", name)
	body.WriteString("// Equal reports whether v and other hold the same field values.\n")
	fmt.Fprintf(body, "func (v *%s) Equal(other *%s) bool { return model.Equal(v, other) }\n\n", name, name)
	body.WriteString("// Hash returns a digest consistent with Equal.\n")
	fmt.Fprintf(body, "func (v *%s) Hash() uint64 { return model.Hash(v) }\n\n", name)
	body.WriteString("// Clone returns a deep copy of v.\n")
	fmt.Fprintf(body, "func (v *%s) Clone() *%s { return model.Clone(v) }\n\n", name, name)
	return nil
}

func writeAccessors(body *strings.Builder, owner string, member memberSpec, ft fieldType) {
	field := member.Name

	switch ft.kind {
	case kindScalar:
		fmt.Fprintf(body, "// Get%s returns %s, or the zero value when it is unset.\n", field, field)
		writeConstraint(body, member)
		fmt.Fprintf(body, "func (v *%s) Get%s() %s {\n", owner, field, ft.elem)
		fmt.Fprintf(body, "\tif v == nil || v.%s == nil {\n\t\treturn %s\n\t}\n", field, ft.zero)
		fmt.Fprintf(body, "\treturn *v.%s\n}\n\n", field)

		fmt.Fprintf(body, "// Set%s replaces %s with a copy of value; nil clears the field.\n", field, field)
		fmt.Fprintf(body, "func (v *%s) Set%s(value *%s) *%s {\n", owner, field, ft.elem, owner)
		fmt.Fprintf(body, "\tv.%s = model.ClonePtr(value)\n\treturn v\n}\n\n", field)

		fmt.Fprintf(body, "// With%s sets %s to value.\n", field, field)
		fmt.Fprintf(body, "func (v *%s) With%s(value %s) *%s {\n", owner, field, ft.elem, owner)
		fmt.Fprintf(body, "\tv.%s = &value\n\treturn v\n}\n\n", field)

	case kindStruct:
		fmt.Fprintf(body, "// Get%s returns %s, or nil when it is unset.\n", field, field)
		fmt.Fprintf(body, "func (v *%s) Get%s() *%s {\n", owner, field, ft.elem)
		fmt.Fprintf(body, "\tif v == nil {\n\t\treturn nil\n\t}\n\treturn v.%s\n}\n\n", field)

		fmt.Fprintf(body, "// Set%s replaces %s; nil clears the field.\n", field, field)
		fmt.Fprintf(body, "func (v *%s) Set%s(value *%s) *%s {\n", owner, field, ft.elem, owner)
		fmt.Fprintf(body, "\tv.%s = value\n\treturn v\n}\n\n", field)

		fmt.Fprintf(body, "// With%s sets %s to a copy of value.\n", field, field)
		fmt.Fprintf(body, "func (v *%s) With%s(value %s) *%s {\n", owner, field, ft.elem, owner)
		fmt.Fprintf(body, "\tv.%s = &value\n\treturn v\n}\n\n", field)

	case kindBlob, kindList:
		param, variadic := "values", "values ..."+ft.elem
		if ft.kind == kindBlob {
			param, variadic = "value", "value []byte"
		}
		fmt.Fprintf(body, "// Get%s returns %s, or nil when it is unset.\n", field, field)
		writeConstraint(body, member)
		fmt.Fprintf(body, "func (v *%s) Get%s() %s {\n", owner, field, ft.goType())
		fmt.Fprintf(body, "\tif v == nil {\n\t\treturn nil\n\t}\n\treturn v.%s\n}\n\n", field)

		fmt.Fprintf(body, "// Set%s replaces %s with a copy of %s; nil clears the field.\n", field, field, param)
		fmt.Fprintf(body, "func (v *%s) Set%s(%s %s) *%s {\n", owner, field, param, ft.goType(), owner)
		fmt.Fprintf(body, "\tv.%s = model.CloneSlice(%s)\n\treturn v\n}\n\n", field, param)

		if ft.kind == kindBlob {
			fmt.Fprintf(body, "// With%s sets %s to a present copy of value.\n", field, field)
			fmt.Fprintf(body, "func (v *%s) With%s(%s) *%s {\n", owner, field, variadic, owner)
			fmt.Fprintf(body, "\tv.%s = model.Append([]byte(nil), value...)\n\treturn v\n}\n\n", field)
			return
		}
		fmt.Fprintf(body, "// With%s appends values to %s.\n", field, field)
		fmt.Fprintf(body, "func (v *%s) With%s(%s) *%s {\n", owner, field, variadic, owner)
		fmt.Fprintf(body, "\tv.%s = model.Append(v.%s, values...)\n\treturn v\n}\n\n", field, field)
	}
}

func writeConstraint(body *strings.Builder, member memberSpec) {
	if member.Constraint == "" {
		return
	}
	fmt.Fprintf(body, "//\n// Constraint: %s\n", member.Constraint)
}

func writeErrors(body *strings.Builder, errs []errorSpec) {
	if len(errs) == 0 {
		return
	}
	for _, e := range errs {
		fault := "smithy.FaultClient"
		if e.Fault == "server" {
			fault = "smithy.FaultServer"
		}
		fmt.Fprintf(body, "// %s %s\n", e.Name, e.Description)
		fmt.Fprintf(body, "type %s struct {\n\tMessage *string `json:\"Message,omitempty\"`\n}\n\n", e.Name)
		fmt.Fprintf(body, "func (e *%s) Error() string {\n", e.Name)
		body.WriteString("\treturn fmt.Sprintf(\"api error %s: %s\", e.ErrorCode(), e.ErrorMessage())\n}\n\n")
		body.WriteString("// ErrorMessage returns the service-provided message.\n")
		fmt.Fprintf(body, "func (e *%s) ErrorMessage() string {\n", e.Name)
		body.WriteString("\tif e == nil || e.Message == nil {\n\t\treturn \"\"\n\t}\n\treturn *e.Message\n}\n\n")
		body.WriteString("// ErrorCode returns the service error code.\n")
		fmt.Fprintf(body, "func (e *%s) ErrorCode() string { return %q }\n\n", e.Name, e.Name)
		body.WriteString("// ErrorFault reports whether the caller or the service is at fault.\n")
		fmt.Fprintf(body, "func (e *%s) ErrorFault() smithy.ErrorFault { return %s }\n\n", e.Name, fault)
	}

	body.WriteString("var (\n")
	for _, e := range errs {
		fmt.Fprintf(body, "\t_ smithy.APIError = (*%s)(nil)\n", e.Name)
	}
	body.WriteString(")\n\n")

	body.WriteString("// newServiceError returns the typed error for code, or nil when code is not\n// a declared service error.\n")
	body.WriteString("func newServiceError(code string, message *string) error {\n\tswitch code {\n")
	for _, e := range errs {
		fmt.Fprintf(body, "\tcase %q:\n\t\treturn &%s{Message: message}\n", e.Name, e.Name)
	}
	body.WriteString("\t}\n\treturn nil\n}\n")
}
