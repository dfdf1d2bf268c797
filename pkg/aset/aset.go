// Package aset provides search over sorted sequences
// and a sorted set built on top of it.
package aset

import "github.com/evolib/evo/pkg/compare"

// ExpThreshold is the sequence length from which
// Search switches from binary to exponential search.
const ExpThreshold = 256

// Search searches a sorted sequence of length n.
// cmp(i) must return the result of comparing the element at index i
// against the searched value.
// Returns either the index and true if the value was found
// or the insertion index and false if it wasn't.
func Search(n int, cmp func(i int) int) (int, bool) {
	if n >= ExpThreshold {
		return FindExp(n, cmp)
	}
	return FindBin(cmp, 0, n-1)
}

// FindExp is an exponential binary search implementation.
// Returns either index and true if the element found
// or left bound and false if not found.
func FindExp(n int, cmp func(i int) int) (int, bool) {
	l, r := 0, 1
	if n > 1 {
		for r < n && cmp(r) < 0 {
			l = r
			r = r << 1
		}
	}
	return FindBin(cmp, l, min(r, n-1))
}

// FindBin is a binary search implementation over the range [l, r].
// Returns either index and true if the element found
// or left bound and false if not found.
func FindBin(cmp func(i int) int, l, r int) (int, bool) {
	for l <= r {
		m := l + (r-l)>>1

		c := cmp(m)
		if c == 0 {
			return m, true
		}

		if c > 0 {
			r = m - 1
		} else {
			l = m + 1
		}
	}

	return l, false
}

// Set is a sorted set implementation based on arrays and binary search.
type Set[T any] struct {
	a   []T
	cmp compare.Comparer[T]
}

// New creates a new instance of Set ordered ascending.
func New[T any](capacity int, elements ...T) *Set[T] {
	return NewWith[T](compare.Compare[T]{}, capacity, elements...)
}

// NewWith creates a new instance of Set ordered by c.
func NewWith[T any](
	c compare.Comparer[T],
	capacity int,
	elements ...T,
) *Set[T] {
	s := &Set[T]{
		a:   make([]T, 0, capacity),
		cmp: c,
	}
	for _, el := range elements {
		s.Add(el)
	}

	return s
}

// Reset resets the set.
func (as *Set[T]) Reset() {
	clear(as.a)
	as.a = as.a[:0]
}

// Add adds a new element to the set.
// Returns false if el already existed.
func (as *Set[T]) Add(el T) bool {
	idx, found := as.search(el)
	if found {
		return false
	}
	if idx == len(as.a) {
		as.a = append(as.a, el)
	} else {
		as.a = append(as.a[:idx+1], as.a[idx:]...)
		as.a[idx] = el
	}
	return true
}

// Get returns an element at the index.
func (as *Set[T]) Get(idx int) T {
	return as.a[idx]
}

// Delete returns and removes an element at the index.
func (as *Set[T]) Delete(idx int) T {
	el := as.a[idx]
	copy(as.a[idx:], as.a[idx+1:])
	clear(as.a[len(as.a)-1:])
	as.a = as.a[:len(as.a)-1]

	return el
}

// Find searches for an element and returns its index if found
// or -1 if not found.
func (as *Set[T]) Find(el T) int {
	if idx, found := as.search(el); found {
		return idx
	}

	return -1
}

// Len returns the set length.
func (as *Set[T]) Len() int {
	return len(as.a)
}

// Visit loops through the set. Breaks if true is returned by the fn function.
func (as *Set[T]) Visit(fn func(T) (stop bool)) {
	for i := range as.a {
		if fn(as.a[i]) {
			break
		}
	}
}

func (as *Set[T]) search(el T) (int, bool) {
	return Search(len(as.a), func(i int) int {
		return as.cmp.Compare(as.a[i], el)
	})
}
