// Package typeid classifies element types into the categories that decide
// which data operations may take raw memory shortcuts.
//
// Every type is Normal unless it is a built-in scalar, a pointer, an array of
// Pod elements, or it declares a category by embedding PodType or
// ByteCopyType as its first field (or through Register).
// The category of a type is resolved once per process and never changes.
package typeid

import (
	"fmt"
	"reflect"
	"sync"

	"golang.org/x/exp/constraints"
)

// Category is the element category of a type.
type Category uint8

const (
	// Normal types use their methods for every operation.
	Normal Category = iota
	// ByteCopy types may be copied by plain assignment
	// but are compared and hashed structurally.
	ByteCopy
	// Pod types may be copied, compared and hashed as raw bytes.
	Pod
)

func (c Category) String() string {
	switch c {
	case Normal:
		return "Normal"
	case ByteCopy:
		return "ByteCopy"
	case Pod:
		return "Pod"
	}
	return fmt.Sprintf("Category(%d)", uint8(c))
}

// Scalar is satisfied by all built-in scalar types.
type Scalar interface {
	constraints.Integer | constraints.Float | constraints.Complex | ~bool
}

// PodType declares the embedding struct as plain old data.
// It must be embedded as the first field, the struct must not have
// padding and all of its fields must be Pod themselves.
type PodType struct{}

func (PodType) evoPod() {}

// ByteCopyType declares the embedding struct as ByteCopy.
type ByteCopyType struct{}

func (ByteCopyType) evoByteCopy() {}

type podDecl interface{ evoPod() }

type byteCopyDecl interface{ evoByteCopy() }

var (
	typePodDecl      = reflect.TypeOf((*podDecl)(nil)).Elem()
	typeByteCopyDecl = reflect.TypeOf((*byteCopyDecl)(nil)).Elem()
)

// resolved maps reflect.Type to Category.
var resolved sync.Map

// Of returns the category of T.
func Of[T any]() Category {
	return OfType(reflect.TypeOf((*T)(nil)).Elem())
}

// OfType returns the category of t.
// Panics if t declares Pod but its memory layout isn't plain data.
func OfType(t reflect.Type) Category {
	if c, ok := resolved.Load(t); ok {
		return c.(Category)
	}
	c, _ := resolved.LoadOrStore(t, classify(t))
	return c.(Category)
}

// Register declares the category of T for types that can't embed
// a declaration marker. Must be called before T is first classified.
// Panics if T was already resolved to a different category
// or if T can't be Pod.
func Register[T any](c Category) {
	t := reflect.TypeOf((*T)(nil)).Elem()
	if c == Pod {
		if err := checkPodLayout(t); err != "" {
			panic(fmt.Errorf("typeid: %v can't be Pod: %s", t, err))
		}
	}
	if actual, loaded := resolved.LoadOrStore(t, c); loaded &&
		actual.(Category) != c {
		panic(fmt.Errorf(
			"typeid: %v is already resolved as %s, can't register as %s",
			t, actual.(Category), c,
		))
	}
}

// IsPod returns true if T is Pod.
func IsPod[T any]() bool { return Of[T]() == Pod }

// IsByteCopy returns true if T is ByteCopy.
func IsByteCopy[T any]() bool { return Of[T]() == ByteCopy }

// IsNormal returns true if T is Normal.
func IsNormal[T any]() bool { return Of[T]() == Normal }

func classify(t reflect.Type) Category {
	switch t.Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32,
		reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64,
		reflect.Complex64, reflect.Complex128,
		reflect.Pointer, reflect.UnsafePointer:
		return Pod
	case reflect.String:
		return ByteCopy
	case reflect.Array:
		switch OfType(t.Elem()) {
		case Pod:
			return Pod
		case ByteCopy:
			return ByteCopy
		}
		return Normal
	case reflect.Struct:
		pod := t.Implements(typePodDecl)
		byteCopy := t.Implements(typeByteCopyDecl)
		switch {
		case pod && byteCopy:
			panic(fmt.Errorf("typeid: %v declares both Pod and ByteCopy", t))
		case pod:
			if err := checkPodLayout(t); err != "" {
				panic(fmt.Errorf("typeid: %v declared Pod but %s", t, err))
			}
			return Pod
		case byteCopy:
			return ByteCopy
		}
	}
	return Normal
}

// checkPodLayout returns a non-empty message if values of t
// can't be safely handled as raw bytes.
func checkPodLayout(t reflect.Type) (errMsg string) {
	switch t.Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32,
		reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64,
		reflect.Complex64, reflect.Complex128,
		reflect.Pointer, reflect.UnsafePointer:
		return ""
	case reflect.Array:
		return checkPodLayout(t.Elem())
	case reflect.Struct:
		var size uintptr
		for i := 0; i < t.NumField(); i++ {
			f := t.Field(i)
			if msg := checkPodLayout(f.Type); msg != "" {
				return "field " + f.Name + ": " + msg
			}
			size += f.Type.Size()
		}
		if size != t.Size() {
			return "has padding"
		}
		return ""
	}
	return "holds a " + t.Kind().String()
}
