package model

import "reflect"

// Clone returns a deep copy of v. Absent fields stay absent and empty lists
// stay empty.
func Clone[T any](v *T) *T {
	if v == nil {
		return nil
	}
	out, ok := cloneValue(reflect.ValueOf(v)).Interface().(*T)
	if !ok {
		return nil
	}
	return out
}

// ClonePtr copies the value behind p into a fresh pointer.
func ClonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	c := *p
	return &c
}

// CloneSlice returns a shallow copy of s, preserving nil versus empty.
func CloneSlice[T any](s []T) []T {
	if s == nil {
		return nil
	}
	out := make([]T, len(s))
	copy(out, s)
	return out
}

// Append appends values to dst, allocating an empty list when dst is absent
// so that a variadic call with no arguments still marks the field present.
func Append[T any](dst []T, values ...T) []T {
	if dst == nil {
		dst = make([]T, 0, len(values))
	}
	return append(dst, values...)
}

func cloneValue(rv reflect.Value) reflect.Value {
	switch rv.Kind() {
	case reflect.Pointer:
		if rv.IsNil() {
			return reflect.Zero(rv.Type())
		}
		p := reflect.New(rv.Type().Elem())
		p.Elem().Set(cloneValue(rv.Elem()))
		return p
	case reflect.Struct:
		out := reflect.New(rv.Type()).Elem()
		out.Set(rv)
		t := rv.Type()
		for i := 0; i < t.NumField(); i++ {
			if t.Field(i).IsExported() {
				out.Field(i).Set(cloneValue(rv.Field(i)))
			}
		}
		return out
	case reflect.Slice:
		if rv.IsNil() {
			return reflect.Zero(rv.Type())
		}
		out := reflect.MakeSlice(rv.Type(), rv.Len(), rv.Len())
		for i := 0; i < rv.Len(); i++ {
			out.Index(i).Set(cloneValue(rv.Index(i)))
		}
		return out
	case reflect.Map:
		if rv.IsNil() {
			return reflect.Zero(rv.Type())
		}
		out := reflect.MakeMapWithSize(rv.Type(), rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			out.SetMapIndex(iter.Key(), cloneValue(iter.Value()))
		}
		return out
	default:
		return rv
	}
}
