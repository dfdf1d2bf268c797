package dataop

import (
	"bytes"
	"cmp"
	"unsafe"

	"github.com/evolib/evo/pkg/typeid"
	"github.com/evolib/evo/pkg/xxhash"
)

// podOps handles elements as raw memory.
type podOps[T any] struct{ f *funcs[T] }

func (podOps[T]) Category() typeid.Category { return typeid.Pod }

func (podOps[T]) Init(dst []T) {}

func (podOps[T]) InitSafe(dst []T) { clear(dst) }

func (podOps[T]) InitCopy(dst, src []T) int { return copy(dst, src) }

func (podOps[T]) InitCopySafe(dst, src []T) int {
	n := copy(dst, src)
	clear(dst[n:])
	return n
}

func (podOps[T]) Copy(dst *T, src T) { *dst = src }

func (podOps[T]) Fill(dst []T, v T) { fill(dst, v) }

func (podOps[T]) Uninit(dst []T) {}

func (o podOps[T]) Equal(a, b T) bool {
	if o.f.floats != nil {
		return o.f.compare(a, b) == 0
	}
	return bytes.Equal(rawValue(&a), rawValue(&b))
}

func (o podOps[T]) EqualN(a, b []T) bool {
	if o.f.floats != nil {
		return equalN(o.Equal, a, b)
	}
	return len(a) == len(b) && bytes.Equal(raw(a), raw(b))
}

func (o podOps[T]) Compare(a, b T) int {
	if o.f.ordered {
		return o.f.compare(a, b)
	}
	return bytes.Compare(rawValue(&a), rawValue(&b))
}

func (o podOps[T]) CompareN(a, b []T) int {
	if o.f.ordered {
		return compareN(o.f.compare, a, b)
	}
	return bytes.Compare(raw(a), raw(b))
}

func (o podOps[T]) Hash(v T, seed uint64) uint64 {
	if o.f.floats != nil {
		canonicalize(o.f.floats, unsafe.Pointer(&v))
	}
	return xxhash.Sum64Seed(rawValue(&v), seed)
}

func (o podOps[T]) HashN(v []T, seed uint64) uint64 {
	if o.f.floats != nil {
		return hashN(o.Hash, v, seed)
	}
	return xxhash.Sum64Seed(raw(v), seed)
}

// byteCopyOps copies elements by assignment
// and uses structural operations otherwise.
type byteCopyOps[T any] struct{ f *funcs[T] }

func (byteCopyOps[T]) Category() typeid.Category { return typeid.ByteCopy }

func (byteCopyOps[T]) Init(dst []T) { clear(dst) }

func (byteCopyOps[T]) InitSafe(dst []T) { clear(dst) }

func (byteCopyOps[T]) InitCopy(dst, src []T) int {
	n := copy(dst, src)
	clear(dst[n:])
	return n
}

func (o byteCopyOps[T]) InitCopySafe(dst, src []T) int {
	return o.InitCopy(dst, src)
}

func (byteCopyOps[T]) Copy(dst *T, src T) { *dst = src }

func (byteCopyOps[T]) Fill(dst []T, v T) { fill(dst, v) }

func (byteCopyOps[T]) Uninit(dst []T) { clear(dst) }

func (o byteCopyOps[T]) Equal(a, b T) bool { return o.f.equal(a, b) }

func (o byteCopyOps[T]) EqualN(a, b []T) bool { return equalN(o.f.equal, a, b) }

func (o byteCopyOps[T]) Compare(a, b T) int { return o.f.compare(a, b) }

func (o byteCopyOps[T]) CompareN(a, b []T) int {
	return compareN(o.f.compare, a, b)
}

func (o byteCopyOps[T]) Hash(v T, seed uint64) uint64 { return o.f.hash(v, seed) }

func (o byteCopyOps[T]) HashN(v []T, seed uint64) uint64 {
	return hashN(o.f.hash, v, seed)
}

// normalOps uses the methods of T for every operation.
type normalOps[T any] struct{ f *funcs[T] }

func (normalOps[T]) Category() typeid.Category { return typeid.Normal }

func (normalOps[T]) Init(dst []T) { clear(dst) }

func (normalOps[T]) InitSafe(dst []T) { clear(dst) }

func (o normalOps[T]) InitCopy(dst, src []T) int {
	n := min(len(dst), len(src))
	for i := 0; i < n; i++ {
		dst[i] = o.f.copyOf(src[i])
	}
	clear(dst[n:])
	return n
}

func (o normalOps[T]) InitCopySafe(dst, src []T) int {
	return o.InitCopy(dst, src)
}

func (o normalOps[T]) Copy(dst *T, src T) { *dst = o.f.copyOf(src) }

func (o normalOps[T]) Fill(dst []T, v T) {
	for i := range dst {
		dst[i] = o.f.copyOf(v)
	}
}

func (normalOps[T]) Uninit(dst []T) {
	if typeid.IsItem[T]() {
		for i := range dst {
			any(&dst[i]).(typeid.Item[T]).Clear()
		}
	}
	clear(dst)
}

func (o normalOps[T]) Equal(a, b T) bool { return o.f.equal(a, b) }

func (o normalOps[T]) EqualN(a, b []T) bool { return equalN(o.f.equal, a, b) }

func (o normalOps[T]) Compare(a, b T) int { return o.f.compare(a, b) }

func (o normalOps[T]) CompareN(a, b []T) int {
	return compareN(o.f.compare, a, b)
}

func (o normalOps[T]) Hash(v T, seed uint64) uint64 { return o.f.hash(v, seed) }

func (o normalOps[T]) HashN(v []T, seed uint64) uint64 {
	return hashN(o.f.hash, v, seed)
}

// fill assigns v to all elements of dst doubling the copied range.
func fill[T any](dst []T, v T) {
	if len(dst) < 1 {
		return
	}
	dst[0] = v
	for i := 1; i < len(dst); i *= 2 {
		copy(dst[i:], dst[:i])
	}
}

func equalN[T any](equal func(a, b T) bool, a, b []T) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !equal(a[i], b[i]) {
			return false
		}
	}
	return true
}

func compareN[T any](compare func(a, b T) int, a, b []T) int {
	n := min(len(a), len(b))
	for i := 0; i < n; i++ {
		if c := compare(a[i], b[i]); c != 0 {
			return c
		}
	}
	return cmp.Compare(len(a), len(b))
}

// hashN folds the hashes of v from left to right.
func hashN[T any](hash func(v T, seed uint64) uint64, v []T, seed uint64) uint64 {
	for i := range v {
		seed = hash(v[i], seed)
	}
	return seed
}
