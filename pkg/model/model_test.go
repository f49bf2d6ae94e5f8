package model

import (
	"encoding/json"
	"errors"
	"math"
	"testing"
)

type sampleLocation struct {
	Bucket *string
	Name   *string
}

type sampleRecord struct {
	Pages    *int32
	Score    *float32
	Tags     []string
	Payload  []byte
	Location *sampleLocation
	Children []sampleLocation
	internal string
}

func strPtr(s string) *string { return &s }

func TestFormatListsOnlyPresentFields(t *testing.T) {
	pages := int32(3)
	rec := &sampleRecord{Pages: &pages}
	if got := Format(rec); got != "{Pages: 3}" {
		t.Fatalf("unexpected format %q", got)
	}
	rec.Pages = nil
	if got := Format(rec); got != "{}" {
		t.Fatalf("expected empty braces, got %q", got)
	}
}

func TestFormatNestedAndLists(t *testing.T) {
	rec := &sampleRecord{
		Tags:     []string{"a", "b"},
		Payload:  []byte("hello"),
		Location: &sampleLocation{Bucket: strPtr("docs"), Name: strPtr("scan.png")},
		Children: []sampleLocation{{Bucket: strPtr("x")}, {}},
		internal: "hidden",
	}
	want := "{Tags: [a, b],Payload: <5 bytes>,Location: {Bucket: docs,Name: scan.png},Children: [{Bucket: x}, {}]}"
	if got := Format(rec); got != want {
		t.Fatalf("format mismatch\n got: %s\nwant: %s", got, want)
	}
	if got := Format((*sampleRecord)(nil)); got != "<nil>" {
		t.Fatalf("expected <nil>, got %q", got)
	}
}

func TestFormatShowsEmptyListAsPresent(t *testing.T) {
	rec := &sampleRecord{Tags: []string{}}
	if got := Format(rec); got != "{Tags: []}" {
		t.Fatalf("expected empty list rendered, got %q", got)
	}
}

func TestEqualStructural(t *testing.T) {
	a := &sampleRecord{Tags: []string{"x"}, Location: &sampleLocation{Name: strPtr("n")}}
	b := &sampleRecord{Tags: []string{"x"}, Location: &sampleLocation{Name: strPtr("n")}}
	if !Equal(a, b) {
		t.Fatal("expected structurally equal records")
	}
	b.Location.Name = strPtr("other")
	if Equal(a, b) {
		t.Fatal("expected nested difference to break equality")
	}
	if !Equal((*sampleRecord)(nil), (*sampleRecord)(nil)) {
		t.Fatal("expected nil records to be equal")
	}
	if Equal(a, (*sampleRecord)(nil)) {
		t.Fatal("expected nil and non-nil to differ")
	}
}

func TestEqualNilVersusEmptyList(t *testing.T) {
	a := &sampleRecord{Tags: nil}
	b := &sampleRecord{Tags: []string{}}
	if Equal(a, b) {
		t.Fatal("nil list must differ from empty list")
	}
	if Hash(a) == Hash(b) {
		t.Fatal("nil and empty list should hash differently")
	}
}

func TestEqualIgnoresUnexportedFields(t *testing.T) {
	a := &sampleRecord{internal: "one"}
	b := &sampleRecord{internal: "two"}
	if !Equal(a, b) || Hash(a) != Hash(b) {
		t.Fatal("unexported fields must not participate")
	}
}

func TestFloatEdgeCases(t *testing.T) {
	nan := float32(math.NaN())
	a := &sampleRecord{Score: &nan}
	b := &sampleRecord{Score: &nan}
	if !Equal(a, b) || Hash(a) != Hash(b) {
		t.Fatal("NaN scores must compare and hash equal")
	}
	zero := float32(0)
	negZero := float32(math.Copysign(0, -1))
	c := &sampleRecord{Score: &zero}
	d := &sampleRecord{Score: &negZero}
	if !Equal(c, d) || Hash(c) != Hash(d) {
		t.Fatal("signed zeros must compare and hash equal")
	}
}

func TestHashConsistentWithEqual(t *testing.T) {
	pages := int32(7)
	a := &sampleRecord{Pages: &pages, Children: []sampleLocation{{Bucket: strPtr("b")}}}
	b := Clone(a)
	if !Equal(a, b) {
		t.Fatal("clone must equal original")
	}
	if Hash(a) != Hash(b) {
		t.Fatal("equal values must hash equal")
	}
	b.Children[0].Bucket = strPtr("c")
	if Hash(a) == Hash(b) {
		t.Fatal("expected differing hashes after mutation")
	}
}

func TestCloneIsDeep(t *testing.T) {
	pages := int32(1)
	orig := &sampleRecord{
		Pages:    &pages,
		Tags:     []string{"a"},
		Payload:  []byte{1, 2},
		Location: &sampleLocation{Bucket: strPtr("b")},
		Children: []sampleLocation{},
	}
	cp := Clone(orig)
	*cp.Pages = 9
	cp.Tags[0] = "z"
	cp.Payload[0] = 42
	*cp.Location.Bucket = "changed"
	if *orig.Pages != 1 || orig.Tags[0] != "a" || orig.Payload[0] != 1 || *orig.Location.Bucket != "b" {
		t.Fatalf("clone shares state with original: %s", Format(orig))
	}
	if cp.Children == nil {
		t.Fatal("clone must keep empty list present")
	}
	if Clone[sampleRecord](nil) != nil {
		t.Fatal("clone of nil must be nil")
	}
}

func TestCloneSliceAndAppend(t *testing.T) {
	if CloneSlice[string](nil) != nil {
		t.Fatal("nil slice must stay nil")
	}
	src := []string{"a", "b"}
	cp := CloneSlice(src)
	src[0] = "mutated"
	if cp[0] != "a" {
		t.Fatal("CloneSlice must copy")
	}
	got := Append[string](nil)
	if got == nil || len(got) != 0 {
		t.Fatalf("Append with no values must yield empty present list, got %#v", got)
	}
	got = Append(got, "x", "y")
	if len(got) != 2 || got[1] != "y" {
		t.Fatalf("unexpected append result %#v", got)
	}
	if p := ClonePtr[int32](nil); p != nil {
		t.Fatal("ClonePtr(nil) must be nil")
	}
}

type color string

const (
	colorRed  color = "RED"
	colorBlue color = "BLUE"
)

var colorEnum = NewEnum("Color", colorRed, colorBlue)

func (c *color) UnmarshalJSON(data []byte) error { return colorEnum.Decode(data, c) }

func TestEnumRoundTrip(t *testing.T) {
	for _, v := range colorEnum.Values() {
		got, err := colorEnum.Parse(string(v))
		if err != nil {
			t.Fatalf("parse %s: %v", v, err)
		}
		if got != v {
			t.Fatalf("round trip mismatch: %s -> %s", v, got)
		}
	}
	if colorEnum.Name() != "Color" {
		t.Fatalf("unexpected enum name %q", colorEnum.Name())
	}
}

func TestEnumRejectsInvalidInput(t *testing.T) {
	green := "GREEN"
	cases := []struct {
		name  string
		parse func() (color, error)
	}{
		{name: "empty", parse: func() (color, error) { return colorEnum.Parse("") }},
		{name: "null", parse: func() (color, error) { return colorEnum.ParseNullable(nil) }},
		{name: "nullableUnknown", parse: func() (color, error) { return colorEnum.ParseNullable(&green) }},
		{name: "unknown", parse: func() (color, error) { return colorEnum.Parse("NOT_A_REAL_TAG") }},
		{name: "caseMismatch", parse: func() (color, error) { return colorEnum.Parse("red") }},
		{name: "prefix", parse: func() (color, error) { return colorEnum.Parse("RE") }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := tc.parse()
			if !errors.Is(err, ErrInvalidEnumValue) {
				t.Fatalf("expected ErrInvalidEnumValue, got %v", err)
			}
			var target *InvalidEnumValueError
			if !errors.As(err, &target) || target.Enum != "Color" {
				t.Fatalf("expected InvalidEnumValueError for Color, got %v", err)
			}
		})
	}
}

func TestEnumValuesIsACopy(t *testing.T) {
	values := colorEnum.Values()
	values[0] = "MUTATED"
	if colorEnum.Values()[0] != colorRed {
		t.Fatal("Values must not expose the internal table")
	}
}

func TestEnumUnmarshalJSON(t *testing.T) {
	var c color
	if err := json.Unmarshal([]byte(`"BLUE"`), &c); err != nil || c != colorBlue {
		t.Fatalf("expected BLUE, got %q (%v)", c, err)
	}
	for _, raw := range []string{`null`, `""`, `"PURPLE"`} {
		var dst color
		err := json.Unmarshal([]byte(raw), &dst)
		if !errors.Is(err, ErrInvalidEnumValue) {
			t.Fatalf("%s: expected ErrInvalidEnumValue, got %v", raw, err)
		}
	}
	var dst color
	if err := json.Unmarshal([]byte(`42`), &dst); err == nil || errors.Is(err, ErrInvalidEnumValue) {
		t.Fatalf("expected a decode error for non-string input, got %v", err)
	}
}

func TestNewEnumPanicsOnDuplicates(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Fatal("expected panic for duplicate values")
		}
	}()
	_ = NewEnum("Dup", colorRed, colorRed)
}
