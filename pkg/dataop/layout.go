package dataop

import (
	"bytes"
	"cmp"
	"math"
	"reflect"
	"strings"
	"unsafe"
)

// field is a scalar located at offset within a value.
// Adjacent bytes and bools are merged into a single
// uint8 field of the given size since their memory order
// matches their value order.
type field struct {
	offset uintptr
	size   uintptr
	kind   reflect.Kind
}

// layout appends the scalar fields of t located at base to fs
// in declaration order. Returns false if t holds a kind
// without a builtin order.
func layout(t reflect.Type, base uintptr, fs []field) ([]field, bool) {
	switch k := t.Kind(); k {
	case reflect.Uint8, reflect.Bool:
		if n := len(fs); n > 0 && fs[n-1].kind == reflect.Uint8 &&
			fs[n-1].offset+fs[n-1].size == base {
			fs[n-1].size++
			return fs, true
		}
		return append(fs, field{offset: base, size: 1, kind: reflect.Uint8}), true
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Uintptr, reflect.Float32, reflect.Float64, reflect.String:
		return append(fs, field{offset: base, size: t.Size(), kind: k}), true
	case reflect.Pointer, reflect.UnsafePointer:
		return append(fs, field{
			offset: base, size: t.Size(), kind: reflect.Uintptr,
		}), true
	case reflect.Complex64:
		return append(fs,
			field{offset: base, size: 4, kind: reflect.Float32},
			field{offset: base + 4, size: 4, kind: reflect.Float32},
		), true
	case reflect.Complex128:
		return append(fs,
			field{offset: base, size: 8, kind: reflect.Float64},
			field{offset: base + 8, size: 8, kind: reflect.Float64},
		), true
	case reflect.Array:
		var ok bool
		for i := 0; i < t.Len(); i++ {
			off := base + uintptr(i)*t.Elem().Size()
			if fs, ok = layout(t.Elem(), off, fs); !ok {
				return fs, false
			}
		}
		return fs, true
	case reflect.Struct:
		var ok bool
		for i := 0; i < t.NumField(); i++ {
			f := t.Field(i)
			if fs, ok = layout(f.Type, base+f.Offset, fs); !ok {
				return fs, false
			}
		}
		return fs, true
	}
	return fs, false
}

// compareFields compares the values at a and b field by field.
func compareFields(fs []field, a, b unsafe.Pointer) int {
	for _, f := range fs {
		x, y := unsafe.Add(a, f.offset), unsafe.Add(b, f.offset)
		var c int
		switch f.kind {
		case reflect.Uint8:
			c = bytes.Compare(
				unsafe.Slice((*byte)(x), f.size),
				unsafe.Slice((*byte)(y), f.size),
			)
		case reflect.Int:
			c = compareAt[int](x, y)
		case reflect.Int8:
			c = compareAt[int8](x, y)
		case reflect.Int16:
			c = compareAt[int16](x, y)
		case reflect.Int32:
			c = compareAt[int32](x, y)
		case reflect.Int64:
			c = compareAt[int64](x, y)
		case reflect.Uint:
			c = compareAt[uint](x, y)
		case reflect.Uint16:
			c = compareAt[uint16](x, y)
		case reflect.Uint32:
			c = compareAt[uint32](x, y)
		case reflect.Uint64:
			c = compareAt[uint64](x, y)
		case reflect.Uintptr:
			c = compareAt[uintptr](x, y)
		case reflect.Float32:
			c = compareAt[float32](x, y)
		case reflect.Float64:
			c = compareAt[float64](x, y)
		case reflect.String:
			c = strings.Compare(*(*string)(x), *(*string)(y))
		}
		if c != 0 {
			return c
		}
	}
	return 0
}

func compareAt[S cmp.Ordered](a, b unsafe.Pointer) int {
	return cmp.Compare(*(*S)(a), *(*S)(b))
}

// floatFields returns the float fields of fs or nil if there are none.
func floatFields(fs []field) (floats []field) {
	for _, f := range fs {
		if f.kind == reflect.Float32 || f.kind == reflect.Float64 {
			floats = append(floats, f)
		}
	}
	return floats
}

// canonicalize rewrites the float fields of the value at p so that
// values equal by comparison have equal memory:
// -0 becomes +0 and every NaN becomes the same NaN.
func canonicalize(floats []field, p unsafe.Pointer) {
	for _, f := range floats {
		x := unsafe.Add(p, f.offset)
		switch f.kind {
		case reflect.Float32:
			v := (*float32)(x)
			if *v != *v {
				*v = float32(math.NaN())
			} else if *v == 0 {
				*v = 0
			}
		case reflect.Float64:
			v := (*float64)(x)
			if *v != *v {
				*v = math.NaN()
			} else if *v == 0 {
				*v = 0
			}
		}
	}
}
