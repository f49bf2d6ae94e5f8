package model

import (
	"encoding/binary"
	"math"
	"reflect"

	"github.com/cespare/xxhash/v2"
)

const (
	tagAbsent  byte = 0
	tagPresent byte = 1
)

// Hash returns a 64-bit digest over the same fields Equal compares, so equal
// values always hash equal.
func Hash(v any) uint64 {
	d := xxhash.New()
	writeHash(d, reflect.ValueOf(v))
	return d.Sum64()
}

func writeHash(d *xxhash.Digest, rv reflect.Value) {
	if !rv.IsValid() {
		_, _ = d.Write([]byte{tagAbsent})
		return
	}
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			_, _ = d.Write([]byte{tagAbsent})
			return
		}
		_, _ = d.Write([]byte{tagPresent})
		writeHash(d, rv.Elem())
	case reflect.Struct:
		t := rv.Type()
		for i := 0; i < t.NumField(); i++ {
			if t.Field(i).IsExported() {
				writeHash(d, rv.Field(i))
			}
		}
	case reflect.Slice:
		if rv.IsNil() {
			_, _ = d.Write([]byte{tagAbsent})
			return
		}
		_, _ = d.Write([]byte{tagPresent})
		writeSequence(d, rv)
	case reflect.Array:
		writeSequence(d, rv)
	case reflect.Map:
		if rv.IsNil() {
			_, _ = d.Write([]byte{tagAbsent})
			return
		}
		// Map iteration order is random; combine entry digests with a
		// commutative sum.
		var sum uint64
		iter := rv.MapRange()
		for iter.Next() {
			entry := xxhash.New()
			writeHash(entry, iter.Key())
			writeHash(entry, iter.Value())
			sum += entry.Sum64()
		}
		writeUint(d, uint64(rv.Len()))
		writeUint(d, sum)
	case reflect.String:
		writeUint(d, uint64(rv.Len()))
		_, _ = d.WriteString(rv.String())
	case reflect.Bool:
		if rv.Bool() {
			writeUint(d, 1)
		} else {
			writeUint(d, 0)
		}
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		writeUint(d, uint64(rv.Int()))
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		writeUint(d, rv.Uint())
	case reflect.Float32, reflect.Float64:
		writeUint(d, canonicalFloatBits(rv.Float()))
	default:
		_, _ = d.WriteString(rv.Type().String())
	}
}

func writeSequence(d *xxhash.Digest, rv reflect.Value) {
	writeUint(d, uint64(rv.Len()))
	if rv.Type().Elem().Kind() == reflect.Uint8 && rv.Kind() == reflect.Slice {
		_, _ = d.Write(rv.Bytes())
		return
	}
	for i := 0; i < rv.Len(); i++ {
		writeHash(d, rv.Index(i))
	}
}

func writeUint(d *xxhash.Digest, v uint64) {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], v)
	_, _ = d.Write(buf[:])
}

// canonicalFloatBits folds -0 into 0 and every NaN into one payload, matching
// the float rules in Equal.
func canonicalFloatBits(f float64) uint64 {
	switch {
	case math.IsNaN(f):
		return math.Float64bits(math.NaN())
	case f == 0:
		return 0
	default:
		return math.Float64bits(f)
	}
}
