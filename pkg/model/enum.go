package model

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
)

// ErrInvalidEnumValue matches every InvalidEnumValueError via errors.Is.
var ErrInvalidEnumValue = errors.New("model: invalid enum value")

// InvalidEnumValueError reports a wire string that does not name a declared
// enum tag. Value is empty when the input was null or empty.
type InvalidEnumValueError struct {
	Enum  string
	Value string
	Null  bool
}

func (e *InvalidEnumValueError) Error() string {
	if e.Null || e.Value == "" {
		return fmt.Sprintf("model: %s value cannot be null or empty", e.Enum)
	}
	return fmt.Sprintf("model: cannot create %s from %q", e.Enum, e.Value)
}

// Is reports whether target is ErrInvalidEnumValue.
func (e *InvalidEnumValueError) Is(target error) bool {
	return target == ErrInvalidEnumValue
}

// Enum is an immutable lookup table for a closed set of string tags. Build
// one per enum type at package init; it is safe for concurrent use.
type Enum[T ~string] struct {
	name   string
	values []T
	lookup map[string]T
}

// NewEnum builds the table for name from values in declaration order. It
// panics on duplicate values since that is a generator bug.
func NewEnum[T ~string](name string, values ...T) *Enum[T] {
	lookup := make(map[string]T, len(values))
	for _, v := range values {
		if _, dup := lookup[string(v)]; dup {
			panic(fmt.Sprintf("model: duplicate %s value %q", name, v))
		}
		lookup[string(v)] = v
	}
	return &Enum[T]{name: name, values: slices.Clone(values), lookup: lookup}
}

// Name returns the enum type name used in error messages.
func (e *Enum[T]) Name() string { return e.name }

// Values returns a copy of the declared tags in declaration order.
func (e *Enum[T]) Values() []T { return slices.Clone(e.values) }

// Parse returns the tag whose wire string equals s exactly.
func (e *Enum[T]) Parse(s string) (T, error) {
	var zero T
	if s == "" {
		return zero, &InvalidEnumValueError{Enum: e.name}
	}
	v, ok := e.lookup[s]
	if !ok {
		return zero, &InvalidEnumValueError{Enum: e.name, Value: s}
	}
	return v, nil
}

// ParseNullable is Parse for optional wire values; nil is rejected.
func (e *Enum[T]) ParseNullable(s *string) (T, error) {
	if s == nil {
		var zero T
		return zero, &InvalidEnumValueError{Enum: e.name, Null: true}
	}
	return e.Parse(*s)
}

// Decode reads a JSON string into dst, rejecting null, empty, and undeclared
// values. dst is left untouched on error. Generated UnmarshalJSON methods
// delegate here.
func (e *Enum[T]) Decode(data []byte, dst *T) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		_, err := e.ParseNullable(nil)
		return err
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("model: decode %s: %w", e.name, err)
	}
	v, err := e.Parse(s)
	if err != nil {
		return err
	}
	*dst = v
	return nil
}
