package model

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// Format renders v as a debug string. Structs list only present fields as
// `Name: value` pairs in declaration order, lists render as `[a, b]`, and
// byte slices render as their length only.
func Format(v any) string {
	var b strings.Builder
	writeValue(&b, reflect.ValueOf(v))
	return b.String()
}

func writeValue(b *strings.Builder, rv reflect.Value) {
	if !rv.IsValid() {
		b.WriteString("<nil>")
		return
	}
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			b.WriteString("<nil>")
			return
		}
		writeValue(b, rv.Elem())
	case reflect.Struct:
		writeStruct(b, rv)
	case reflect.Slice, reflect.Array:
		if rv.Type().Elem().Kind() == reflect.Uint8 {
			fmt.Fprintf(b, "<%d bytes>", rv.Len())
			return
		}
		b.WriteByte('[')
		for i := 0; i < rv.Len(); i++ {
			if i > 0 {
				b.WriteString(", ")
			}
			writeValue(b, rv.Index(i))
		}
		b.WriteByte(']')
	case reflect.String:
		b.WriteString(rv.String())
	case reflect.Bool:
		b.WriteString(strconv.FormatBool(rv.Bool()))
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		b.WriteString(strconv.FormatInt(rv.Int(), 10))
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		b.WriteString(strconv.FormatUint(rv.Uint(), 10))
	case reflect.Float32:
		b.WriteString(strconv.FormatFloat(rv.Float(), 'g', -1, 32))
	case reflect.Float64:
		b.WriteString(strconv.FormatFloat(rv.Float(), 'g', -1, 64))
	default:
		if rv.CanInterface() {
			fmt.Fprint(b, rv.Interface())
			return
		}
		b.WriteString(rv.Type().String())
	}
}

func writeStruct(b *strings.Builder, rv reflect.Value) {
	t := rv.Type()
	b.WriteByte('{')
	first := true
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}
		fv := rv.Field(i)
		if absent(fv) {
			continue
		}
		if !first {
			b.WriteByte(',')
		}
		first = false
		b.WriteString(field.Name)
		b.WriteString(": ")
		writeValue(b, fv)
	}
	b.WriteByte('}')
}

// absent reports whether a field holds the "not set" state.
func absent(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Slice, reflect.Map:
		return v.IsNil()
	default:
		return false
	}
}
