// Package dataop provides the array and element operations used by
// containers: initialization, copying, filling, equality, three-way
// comparison and seeded hashing.
//
// The implementation is picked once per element type according to its
// typeid.Category. Pod types are handled as raw memory, ByteCopy types
// are copied by assignment but compared and hashed structurally, Normal
// types use their Copy, Compare, Equal and Hash methods for everything.
package dataop

import (
	"reflect"
	"sync"

	"github.com/evolib/evo/pkg/typeid"
)

// Ops is the set of data operations for elements of type T.
type Ops[T any] interface {
	// Category returns the category the operations were selected for.
	Category() typeid.Category

	// Init initializes dst.
	// Pod elements are left untouched, others are reset to zero values.
	Init(dst []T)

	// InitSafe resets all elements of dst to zero values.
	InitSafe(dst []T)

	// InitCopy copies min(len(dst), len(src)) elements from src to dst
	// and returns the number of copied elements.
	// The tail of dst is reset to zero values unless T is Pod,
	// in which case it's left untouched.
	InitCopy(dst, src []T) (count int)

	// InitCopySafe is InitCopy with the tail of dst always reset.
	InitCopySafe(dst, src []T) (count int)

	// Copy assigns a copy of src to dst.
	Copy(dst *T, src T)

	// Fill assigns copies of v to all elements of dst.
	Fill(dst []T, v T)

	// Uninit releases all elements of dst.
	Uninit(dst []T)

	Equal(a, b T) bool
	EqualN(a, b []T) bool

	// Compare returns a negative number, zero or a positive number
	// if a is less than, equal to or greater than b.
	Compare(a, b T) int

	// CompareN compares a and b lexicographically.
	CompareN(a, b []T) int

	// Hash returns the hash of v chained onto seed.
	Hash(v T, seed uint64) uint64

	// HashN returns the hash of all elements of v chained onto seed.
	HashN(v []T, seed uint64) uint64
}

// resolved maps reflect.Type to Ops.
var resolved sync.Map

// For returns the data operations for T.
// The operations are selected once per type and cached.
//
// Operations T can't support (like comparing a Normal type
// that doesn't implement typeid.Item) panic when called.
// Use ForPod and ForItem to have the support checked at compile time.
func For[T any]() Ops[T] {
	t := reflect.TypeOf((*T)(nil)).Elem()
	if o, ok := resolved.Load(t); ok {
		return o.(Ops[T])
	}
	o, _ := resolved.LoadOrStore(t, resolve[T](t))
	return o.(Ops[T])
}

// ForPod returns the data operations for the scalar type T.
func ForPod[T typeid.Scalar]() Ops[T] { return For[T]() }

// ForItem returns the data operations for the Item type T.
func ForItem[T any, P typeid.ItemPtr[T]]() Ops[T] { return For[T]() }

func resolve[T any](t reflect.Type) Ops[T] {
	f := newFuncs[T](t)
	switch typeid.OfType(t) {
	case typeid.Pod:
		return podOps[T]{f}
	case typeid.ByteCopy:
		return byteCopyOps[T]{f}
	}
	return normalOps[T]{f}
}
