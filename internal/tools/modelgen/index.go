package main

import (
	"fmt"
	"strings"
)

const (
	roleValue   = "value"
	roleRequest = "request"
	roleResult  = "result"
)

type fieldKind int

const (
	kindScalar fieldKind = iota
	kindBlob
	kindStruct
	kindList
)

// fieldType is a resolved member type. For lists, elem names the element type.
type fieldType struct {
	kind fieldKind
	elem string
	zero string
}

// goType returns the Go type of the struct field.
func (f fieldType) goType() string {
	switch f.kind {
	case kindBlob:
		return "[]byte"
	case kindList:
		return "[]" + f.elem
	default:
		return "*" + f.elem
	}
}

var scalarTypes = map[string]string{
	"string":  "string",
	"integer": "int32",
	"float":   "float32",
}

type schemaIndex struct {
	enums  map[string]enumSpec
	shapes map[string]shapeSpec
}

// buildIndex validates doc and indexes its declarations by name.
func buildIndex(doc schemaDoc) (schemaIndex, error) {
	idx := schemaIndex{
		enums:  make(map[string]enumSpec, len(doc.Enums)),
		shapes: make(map[string]shapeSpec, len(doc.Shapes)),
	}
	declared := map[string]struct{}{}
	declare := func(kind, name string) error {
		if strings.TrimSpace(name) == "" {
			return fmt.Errorf("%s with empty name", kind)
		}
		if _, ok := declared[name]; ok {
			return fmt.Errorf("duplicate declaration %q", name)
		}
		declared[name] = struct{}{}
		return nil
	}

	for _, enum := range doc.Enums {
		if err := declare("enum", enum.Name); err != nil {
			return schemaIndex{}, err
		}
		if len(enum.Values) == 0 {
			return schemaIndex{}, fmt.Errorf("enum %s declares no values", enum.Name)
		}
		seen := map[string]struct{}{}
		for _, v := range enum.Values {
			if v == "" {
				return schemaIndex{}, fmt.Errorf("enum %s declares an empty value", enum.Name)
			}
			if _, ok := seen[v]; ok {
				return schemaIndex{}, fmt.Errorf("enum %s declares %q twice", enum.Name, v)
			}
			seen[v] = struct{}{}
		}
		idx.enums[enum.Name] = enum
	}
	for _, shape := range doc.Shapes {
		if err := declare("shape", shape.Name); err != nil {
			return schemaIndex{}, err
		}
		switch shape.Role {
		case roleValue, roleRequest, roleResult:
		default:
			return schemaIndex{}, fmt.Errorf("shape %s has unknown role %q", shape.Name, shape.Role)
		}
		idx.shapes[shape.Name] = shape
	}
	for _, e := range doc.Errors {
		if err := declare("error", e.Name); err != nil {
			return schemaIndex{}, err
		}
		if e.Fault != "client" && e.Fault != "server" {
			return schemaIndex{}, fmt.Errorf("error %s has unknown fault %q", e.Name, e.Fault)
		}
	}

	for _, shape := range doc.Shapes {
		members := map[string]struct{}{}
		for _, member := range shape.Members {
			if _, ok := members[member.Name]; ok {
				return schemaIndex{}, fmt.Errorf("shape %s declares member %s twice", shape.Name, member.Name)
			}
			members[member.Name] = struct{}{}
			if _, err := idx.resolve(member.Type); err != nil {
				return schemaIndex{}, fmt.Errorf("shape %s member %s: %w", shape.Name, member.Name, err)
			}
		}
	}
	return idx, nil
}

// resolve maps a schema type expression (string, integer, float, blob,
// list<T>, or a declared enum or shape name) to its Go representation.
func (idx schemaIndex) resolve(expr string) (fieldType, error) {
	if inner, ok := strings.CutPrefix(expr, "list<"); ok {
		inner, ok = strings.CutSuffix(inner, ">")
		if !ok {
			return fieldType{}, fmt.Errorf("malformed list type %q", expr)
		}
		elem, err := idx.resolve(inner)
		if err != nil {
			return fieldType{}, err
		}
		if elem.kind == kindBlob || elem.kind == kindList {
			return fieldType{}, fmt.Errorf("unsupported list element %q", inner)
		}
		return fieldType{kind: kindList, elem: elem.elem}, nil
	}
	if expr == "blob" {
		return fieldType{kind: kindBlob, elem: "byte"}, nil
	}
	if goType, ok := scalarTypes[expr]; ok {
		zero := "0"
		if goType == "string" {
			zero = `""`
		}
		return fieldType{kind: kindScalar, elem: goType, zero: zero}, nil
	}
	if _, ok := idx.enums[expr]; ok {
		return fieldType{kind: kindScalar, elem: expr, zero: `""`}, nil
	}
	if _, ok := idx.shapes[expr]; ok {
		return fieldType{kind: kindStruct, elem: expr}, nil
	}
	if expr == "" {
		return fieldType{}, fmt.Errorf("missing type")
	}
	return fieldType{}, fmt.Errorf("unknown type %q", expr)
}

// constName builds the Go constant for an enum wire value. Upper-case words
// are title-cased; mixed-case words keep their casing.
func constName(typeName, value string) string {
	parts := strings.FieldsFunc(value, func(r rune) bool {
		return r == '_' || r == '-' || r == ' ' || r == '.'
	})
	var b strings.Builder
	b.WriteString(typeName)
	for _, p := range parts {
		if strings.ToUpper(p) == p {
			b.WriteString(capitalize(p))
			continue
		}
		b.WriteString(strings.ToUpper(p[:1]) + p[1:])
	}
	return b.String()
}

func capitalize(s string) string {
	if s == "" {
		return ""
	}
	if len(s) == 1 {
		return strings.ToUpper(s)
	}
	return strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
}

func lowerFirst(s string) string {
	if s == "" {
		return ""
	}
	return strings.ToLower(s[:1]) + s[1:]
}
