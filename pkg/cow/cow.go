// Package cow provides a reference counted copy-on-write array.
//
// Any number of Arrays may alias the same buffer after Share.
// Every mutating method privatizes the buffer first (see Unshare)
// so that writes never become visible through another alias.
package cow

import (
	"sync/atomic"

	"github.com/evolib/evo/pkg/dataop"
)

type buffer[T any] struct {
	refs  atomic.Int32
	items []T
}

func newBuffer[T any](length, capacity int) *buffer[T] {
	b := &buffer[T]{items: make([]T, length, capacity)}
	b.refs.Store(1)
	return b
}

// Array is a resizable sequence with copy-on-write storage.
// The zero value is a null array.
//
// Arrays must not be copied by assignment, use Share instead.
// Arrays are not safe for concurrent use, but Shared copies
// of an array can be used by different goroutines.
type Array[T any] struct {
	buf *buffer[T]
}

// Null returns true if a has no storage assigned.
func (a *Array[T]) Null() bool { return a.buf == nil }

// Len returns the number of elements.
func (a *Array[T]) Len() int {
	if a.buf == nil {
		return 0
	}
	return len(a.buf.items)
}

// Cap returns the capacity of the storage.
func (a *Array[T]) Cap() int {
	if a.buf == nil {
		return 0
	}
	return cap(a.buf.items)
}

// Shared returns true if the storage is aliased by another Array.
func (a *Array[T]) Shared() bool {
	return a.buf != nil && a.buf.refs.Load() > 1
}

// Share returns an Array aliasing the storage of a.
func (a *Array[T]) Share() Array[T] {
	if a.buf == nil {
		return Array[T]{}
	}
	a.buf.refs.Add(1)
	return Array[T]{buf: a.buf}
}

// Release drops the reference to the storage making a null.
// Elements are uninitialized if a held the last reference.
func (a *Array[T]) Release() {
	if a.buf == nil {
		return
	}
	if a.buf.refs.Add(-1) == 0 {
		dataop.For[T]().Uninit(a.buf.items)
	}
	a.buf = nil
}

// Unshare makes the storage of a private by copying it
// if it's shared. Noop if a isn't shared.
func (a *Array[T]) Unshare() {
	if !a.Shared() {
		return
	}
	old := a.buf
	b := newBuffer[T](len(old.items), cap(old.items))
	dataop.For[T]().InitCopy(b.items, old.items)
	a.buf = b
	old.refs.Add(-1)
}

// SetEmpty makes a an empty non-null array with at least
// the given capacity.
func (a *Array[T]) SetEmpty(capacity int) {
	if a.buf == nil || a.Shared() || cap(a.buf.items) < capacity {
		a.Release()
		a.buf = newBuffer[T](0, capacity)
		return
	}
	a.truncate(0)
}

// Clear removes all elements. Null arrays remain null.
func (a *Array[T]) Clear() {
	switch {
	case a.buf == nil:
	case a.Shared():
		a.Release()
		a.buf = newBuffer[T](0, 0)
	default:
		a.truncate(0)
	}
}

// Reserve grows the capacity to hold at least n more elements.
func (a *Array[T]) Reserve(n int) {
	a.mutable()
	if l := len(a.buf.items); cap(a.buf.items)-l < n {
		items := make([]T, l, l+n)
		copy(items, a.buf.items)
		a.buf.items = items
	}
}

// Items returns the elements. The slice must not be modified
// and is valid until the next mutation of a.
func (a *Array[T]) Items() []T {
	if a.buf == nil {
		return nil
	}
	return a.buf.items
}

// ItemsM unshares a and returns the elements for modification.
func (a *Array[T]) ItemsM() []T {
	a.Unshare()
	return a.Items()
}

// At returns a read-only pointer to the element at index i.
func (a *Array[T]) At(i int) *T { return &a.buf.items[i] }

// AtM unshares a and returns a pointer to the element at index i.
func (a *Array[T]) AtM(i int) *T {
	a.Unshare()
	return &a.buf.items[i]
}

// Insert inserts v at index i and returns a pointer to it.
func (a *Array[T]) Insert(i int, v T) *T {
	a.mutable()
	s := a.buf.items
	if i == len(s) {
		s = append(s, v)
	} else {
		s = append(s[:i+1], s[i:]...)
		s[i] = v
	}
	a.buf.items = s
	return &s[i]
}

// Append appends v and returns a pointer to it.
func (a *Array[T]) Append(v T) *T { return a.Insert(a.Len(), v) }

// Remove removes the element at index i shifting the tail down.
func (a *Array[T]) Remove(i int) {
	a.mutable()
	dataop.For[T]().Uninit(a.buf.items[i : i+1])
	a.removeAt(i)
}

// RemoveTake removes the element at index i and returns it.
// The ownership of the element is transferred to the caller.
func (a *Array[T]) RemoveTake(i int) (v T) {
	a.mutable()
	v = a.buf.items[i]
	a.removeAt(i)
	return v
}

// Truncate removes all elements from index n on.
func (a *Array[T]) Truncate(n int) {
	if a.buf == nil || n >= len(a.buf.items) {
		return
	}
	a.mutable()
	a.truncate(n)
}

func (a *Array[T]) truncate(n int) {
	tail := a.buf.items[n:]
	dataop.For[T]().Uninit(tail)
	a.buf.items = a.buf.items[:n]
}

func (a *Array[T]) removeAt(i int) {
	s := a.buf.items
	copy(s[i:], s[i+1:])
	clear(s[len(s)-1:])
	a.buf.items = s[:len(s)-1]
}

// mutable assigns a buffer to a null array and unshares a shared one.
func (a *Array[T]) mutable() {
	if a.buf == nil {
		a.buf = newBuffer[T](0, 0)
		return
	}
	a.Unshare()
}
