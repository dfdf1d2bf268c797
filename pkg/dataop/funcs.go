package dataop

import (
	"bytes"
	"cmp"
	"fmt"
	"reflect"
	"strings"
	"unsafe"

	"github.com/evolib/evo/pkg/typeid"
	"github.com/zeebo/xxh3"
	"golang.org/x/exp/constraints"
)

// funcs holds the element operations selected for T.
// Every field is non-nil, unsupported operations panic.
type funcs[T any] struct {
	equal   func(a, b T) bool
	compare func(a, b T) int
	hash    func(v T, seed uint64) uint64
	// copyOf returns an independent copy of v.
	copyOf func(v T) T
	// ordered is true if T has a compare operation of its own,
	// otherwise Pod values are ordered by their raw memory.
	ordered bool
	// floats are the float fields of a Pod type. Values holding
	// floats are equal and hashed by value instead of by memory.
	floats []field
}

func newFuncs[T any](t reflect.Type) *funcs[T] {
	f := &funcs[T]{}

	if typeid.IsItem[T]() {
		f.equal = func(a, b T) bool {
			return any(&a).(typeid.Item[T]).Equal(b)
		}
		f.compare = func(a, b T) int {
			return any(&a).(typeid.Item[T]).Compare(b)
		}
		f.hash = func(v T, seed uint64) uint64 {
			return any(&v).(typeid.Item[T]).Hash(seed)
		}
	} else {
		f.builtin(t)
	}

	f.ordered = f.compare != nil

	if typeid.OfType(t) == typeid.Pod {
		if fs, ok := layout(t, 0, nil); ok {
			f.floats = floatFields(fs)
		}
	}

	switch {
	case typeid.IsCopier[T]():
		f.copyOf = func(v T) T { return any(&v).(typeid.Copier[T]).Copy() }
	case t.Kind() == reflect.Slice && t.Elem().Kind() == reflect.Uint8:
		f.copyOf = func(v T) T {
			b := as[[]byte](&v)
			if b == nil {
				return v
			}
			c := append(make([]byte, 0, len(b)), b...)
			return *(*T)(unsafe.Pointer(&c))
		}
	default:
		f.copyOf = func(v T) T { return v }
	}

	if f.equal == nil && t.Comparable() {
		f.equal = func(a, b T) bool { return any(a) == any(b) }
	}
	if f.equal == nil {
		f.equal = func(a, b T) bool { panic(unsupported(t, "equal")) }
	}
	if f.compare == nil {
		f.compare = func(a, b T) int { panic(unsupported(t, "compare")) }
	}
	if f.hash == nil {
		f.hash = func(v T, seed uint64) uint64 { panic(unsupported(t, "hash")) }
	}
	return f
}

func unsupported(t reflect.Type, op string) error {
	return fmt.Errorf(
		"dataop: %v supports no %s operation (implement typeid.Item)", t, op,
	)
}

// builtin selects operations for types without the Item capability
// by their kind.
func (f *funcs[T]) builtin(t reflect.Type) {
	switch t.Kind() {
	case reflect.Int:
		setOrdered[T, int](f)
	case reflect.Int8:
		setOrdered[T, int8](f)
	case reflect.Int16:
		setOrdered[T, int16](f)
	case reflect.Int32:
		setOrdered[T, int32](f)
	case reflect.Int64:
		setOrdered[T, int64](f)
	case reflect.Uint:
		setOrdered[T, uint](f)
	case reflect.Uint8:
		setOrdered[T, uint8](f)
	case reflect.Uint16:
		setOrdered[T, uint16](f)
	case reflect.Uint32:
		setOrdered[T, uint32](f)
	case reflect.Uint64:
		setOrdered[T, uint64](f)
	case reflect.Uintptr, reflect.Pointer, reflect.UnsafePointer:
		setOrdered[T, uintptr](f)
	case reflect.Float32:
		setOrdered[T, float32](f)
	case reflect.Float64:
		setOrdered[T, float64](f)
	case reflect.Complex64:
		setComplex[T, float32](f)
	case reflect.Complex128:
		setComplex[T, float64](f)
	case reflect.Bool:
		f.compare = func(a, b T) int {
			x, y := as[bool](&a), as[bool](&b)
			switch {
			case x == y:
				return 0
			case x:
				return 1
			}
			return -1
		}
	case reflect.String:
		f.equal = func(a, b T) bool { return as[string](&a) == as[string](&b) }
		f.compare = func(a, b T) int {
			return strings.Compare(as[string](&a), as[string](&b))
		}
		f.hash = func(v T, seed uint64) uint64 {
			return xxh3.HashStringSeed(as[string](&v), seed)
		}
	case reflect.Struct, reflect.Array:
		if typeid.OfType(t) == typeid.Normal {
			return
		}
		fs, ok := layout(t, 0, nil)
		if !ok {
			return
		}
		f.compare = func(a, b T) int {
			return compareFields(fs, unsafe.Pointer(&a), unsafe.Pointer(&b))
		}
	case reflect.Slice:
		if t.Elem().Kind() != reflect.Uint8 {
			return
		}
		f.equal = func(a, b T) bool {
			return bytes.Equal(as[[]byte](&a), as[[]byte](&b))
		}
		f.compare = func(a, b T) int {
			return bytes.Compare(as[[]byte](&a), as[[]byte](&b))
		}
		f.hash = func(v T, seed uint64) uint64 {
			return xxh3.HashSeed(as[[]byte](&v), seed)
		}
	}
}

// setOrdered orders floats totally, NaN is less than any number
// and equal to NaN, -0 equals +0.
func setOrdered[T any, S cmp.Ordered](f *funcs[T]) {
	f.compare = func(a, b T) int {
		return cmp.Compare(as[S](&a), as[S](&b))
	}
}

func setComplex[T any, S constraints.Float](f *funcs[T]) {
	f.compare = func(a, b T) int {
		x, y := as[[2]S](&a), as[[2]S](&b)
		if c := cmp.Compare(x[0], y[0]); c != 0 {
			return c
		}
		return cmp.Compare(x[1], y[1])
	}
}

// as reinterprets the memory of v as S.
// S must have the same memory layout as T.
func as[S, T any](v *T) S {
	return *(*S)(unsafe.Pointer(v))
}

// raw returns the memory of the elements of s.
func raw[T any](s []T) []byte {
	if len(s) == 0 {
		return nil
	}
	return unsafe.Slice(
		(*byte)(unsafe.Pointer(unsafe.SliceData(s))),
		len(s)*int(unsafe.Sizeof(s[0])),
	)
}

// rawValue returns the memory of *v.
func rawValue[T any](v *T) []byte {
	return unsafe.Slice((*byte)(unsafe.Pointer(v)), unsafe.Sizeof(*v))
}
